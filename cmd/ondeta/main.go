package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ondeta/config"
	"ondeta/internal/delivery"
	"ondeta/internal/delivery/api"
	"ondeta/internal/delivery/api/middleware"
	"ondeta/internal/delivery/api/router/handler"
	"ondeta/internal/infra/auth"
	"ondeta/internal/infra/gemini"
	"ondeta/internal/infra/imaging"
	logs "ondeta/internal/infra/log"
	"ondeta/internal/infra/metrics"
	"ondeta/internal/infra/persistence/postgres"
	"ondeta/internal/infra/storage"
	"ondeta/internal/infra/tmdb"
	"ondeta/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			newRootContext,
			postgres.New,
		),
		metrics.Module,
		storage.Module,
	)
}

// newRootContext is cancelled by SIGINT or SIGTERM, which also interrupts
// blocking startup steps such as the production database connect loop.
func newRootContext(lc fx.Lifecycle) context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	lc.Append(fx.StopHook(stop))

	return ctx
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			imaging.NewAvatarProcessor,
		),
		tmdb.Module,
		gemini.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCollectionService,
			impl.NewCatalogService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			newRateLimiter,
		),
	)
}

// newRateLimiter builds the per-IP limiter for the auth routes.
func newRateLimiter(cfg *config.Config, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCollectionHandler,
			handler.NewCatalogHandler,
			handler.NewChatHandler,
			handler.NewMediaHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return api.Module
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
