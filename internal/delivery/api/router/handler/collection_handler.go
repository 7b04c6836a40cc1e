package handler

import (
	"log/slog"
	"net/http"

	"ondeta/internal/delivery/api/middleware"
	"ondeta/internal/delivery/api/response"
	"ondeta/internal/domain/entity"
	"ondeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves favorites, watchlist and watched. One instance
// handles all three; the route decides which list via For.
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler.
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// AddEntryRequest is the snapshot posted by the client.
type AddEntryRequest struct {
	ID         FlexibleID `json:"id"`
	MediaType  string     `json:"mediaType"`
	Title      string     `json:"title"`
	Name       string     `json:"name"`
	PosterPath string     `json:"poster_path"`
}

// CollectionRoutes binds the three handlers of one collection.
type CollectionRoutes struct {
	List   echo.HandlerFunc
	Add    echo.HandlerFunc
	Remove echo.HandlerFunc
}

// For returns handlers fixed to the named collection.
func (h *CollectionHandler) For(name entity.CollectionName) CollectionRoutes {
	return CollectionRoutes{
		List:   func(c echo.Context) error { return h.list(c, name) },
		Add:    func(c echo.Context) error { return h.add(c, name) },
		Remove: func(c echo.Context) error { return h.remove(c, name) },
	}
}

func (h *CollectionHandler) list(c echo.Context, name entity.CollectionName) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Não autorizado")
	}

	coll, err := h.collectionUC.List(c.Request().Context(), userID, name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCollectionResponse(coll))
}

func (h *CollectionHandler) add(c echo.Context, name entity.CollectionName) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Não autorizado")
	}

	var req AddEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media input")
	}

	coll, err := h.collectionUC.Add(c.Request().Context(), userID, &usecase.AddEntryInput{
		Collection: name,
		MediaType:  req.MediaType,
		ID:         string(req.ID),
		Title:      req.Title,
		Name:       req.Name,
		PosterPath: req.PosterPath,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCollectionResponse(coll))
}

func (h *CollectionHandler) remove(c echo.Context, name entity.CollectionName) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Não autorizado")
	}

	coll, err := h.collectionUC.Remove(c.Request().Context(), userID, &usecase.RemoveEntryInput{
		Collection: name,
		MediaType:  c.Param("mediaType"),
		ID:         c.Param("id"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCollectionResponse(coll))
}
