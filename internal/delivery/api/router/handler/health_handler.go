package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ondeta/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler reports liveness plus database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:     params.DB,
		logger: params.Logger,
	}
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check always answers 200 while the process serves requests; database state is informational.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{
		Status:   "ok",
		Database: h.databaseStatus(c.Request().Context()),
	})
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return "unconfigured"
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return "down"
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Warn("Database ping failed", slog.Any("error", err))

		return "down"
	}

	return "up"
}
