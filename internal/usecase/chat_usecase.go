package usecase

import (
	"context"

	"ondeta/internal/domain/entity"
)

// ChatInput is one user turn about a title. History is kept by the client.
type ChatInput struct {
	MediaType string
	ID        string
	Message   string
	History   []entity.ChatMessage
}

// ChatOutput is the assistant's reply.
type ChatOutput struct {
	Reply string
}

// ChatStarter opens a conversation: a greeting and suggested topics.
type ChatStarter struct {
	Welcome string
	Topics  []string
	Title   *entity.TitleContext
}

// ChatUsecase drives the per-title assistant.
type ChatUsecase interface {
	Reply(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	Starter(ctx context.Context, mediaType, id string) (*ChatStarter, error)
}
