package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"ondeta/internal/delivery/api/response"
	deliverycontext "ondeta/internal/delivery/context"
	"ondeta/internal/domain/service"
	"ondeta/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const profileImagePrefix = "profile_images/"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

// MediaHandler streams stored profile images when the service hosts its own bucket.
type MediaHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// ProfileImage handles GET /media/profile_images/:name.
func (h *MediaHandler) ProfileImage(c echo.Context) error {
	name := c.Param("name")
	// Only bare file names; anything else could walk out of the prefix.
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return response.NotFound(c, "NOT_FOUND", "Imagem não encontrada")
	}

	ctx := c.Request().Context()
	r, contentType, err := h.storage.Open(ctx, profileImagePrefix+name)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return response.NotFound(c, "NOT_FOUND", "Imagem não encontrada")
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to open profile image",
			slog.String("name", name), slog.Any("error", err))

		return response.InternalServerError(c, "IMAGE_STORE_FAILED", "Falha ao carregar imagem", err.Error())
	}
	defer r.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)

	_, err = io.Copy(c.Response(), r)

	return errors.WithStack(err)
}
