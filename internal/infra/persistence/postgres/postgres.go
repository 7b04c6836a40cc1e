package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ondeta/config"
	"ondeta/internal/domain/lifecycle"
	"ondeta/internal/errors"
	"ondeta/internal/infra/persistence/model"

	"github.com/avast/retry-go/v4"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	// Context is cancelled on shutdown signals; it bounds the production connect loop.
	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// New opens the PostgreSQL pool. Production keeps retrying an unreachable
// database on a fixed interval; every other environment fails on the first error.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := connect(params.Context, params.Config, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return configure(db, params)
}

func connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	open := func() (*gorm.DB, error) { return pgLib.New(cfg.Postgres) }
	if !cfg.IsProduction() {
		return open()
	}

	return connectWithRetry(ctx, open, cfg.Database.RetryInterval, logger)
}

// connectWithRetry calls open on a fixed interval until it succeeds or ctx is done.
func connectWithRetry(ctx context.Context, open func() (*gorm.DB, error), interval time.Duration, logger *slog.Logger) (*gorm.DB, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = open()

			return err
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Database unavailable, retrying",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Duration("retryIn", interval),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "database connect loop stopped")
	}

	return db, nil
}

func configure(db *gorm.DB, params Params) (*gorm.DB, error) {
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables backing the repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
