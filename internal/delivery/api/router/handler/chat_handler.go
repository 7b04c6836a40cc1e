package handler

import (
	"log/slog"
	"net/http"

	"ondeta/internal/delivery/api/response"
	"ondeta/internal/delivery/api/validator"
	"ondeta/internal/domain/entity"
	"ondeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the per-title assistant.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ChatMessageRequest is one prior turn kept by the client.
type ChatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat/:mediaType/:id.
type ChatRequest struct {
	Message string               `json:"message"`
	History []ChatMessageRequest `json:"history" validate:"dive"`
}

// ChatReplyResponse wraps the assistant answer.
type ChatReplyResponse struct {
	Reply string `json:"reply"`
}

// StarterResponse opens a conversation.
type StarterResponse struct {
	Welcome string   `json:"welcome"`
	Topics  []string `json:"topics"`
	Title   string   `json:"title"`
}

// Starter handles GET /api/chat/:mediaType/:id/starter.
func (h *ChatHandler) Starter(c echo.Context) error {
	starter, err := h.chatUC.Starter(c.Request().Context(), c.Param("mediaType"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := StarterResponse{
		Welcome: starter.Welcome,
		Topics:  starter.Topics,
	}
	if starter.Title != nil {
		resp.Title = starter.Title.Title
	}

	return response.Success(c, http.StatusOK, resp)
}

// Reply handles POST /api/chat/:mediaType/:id.
func (h *ChatHandler) Reply(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Histórico de conversa inválido", validator.Describe(err))
	}

	history := make([]entity.ChatMessage, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, entity.ChatMessage{
			Role:    entity.ChatRole(m.Role),
			Content: m.Content,
		})
	}

	out, err := h.chatUC.Reply(c.Request().Context(), &usecase.ChatInput{
		MediaType: c.Param("mediaType"),
		ID:        c.Param("id"),
		Message:   req.Message,
		History:   history,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ChatReplyResponse{Reply: out.Reply})
}
