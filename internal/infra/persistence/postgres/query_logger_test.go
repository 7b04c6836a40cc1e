package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ondeta/config"
	deliverycontext "ondeta/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingQueryLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newQueryLogger(base, cfg), buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{SlowQueryThreshold: 50 * time.Millisecond}}

	t.Run("failures are logged with the error", func(t *testing.T) {
		ql, buf := newCapturingQueryLogger(t, cfg)
		ql.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), assert.AnError)

		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), assert.AnError.Error())
	})

	t.Run("record not found is quiet", func(t *testing.T) {
		ql, buf := newCapturingQueryLogger(t, cfg)
		ql.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		ql, buf := newCapturingQueryLogger(t, cfg)
		ql.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

		assert.Contains(t, buf.String(), "Slow query")
		assert.Contains(t, buf.String(), "threshold=50ms")
	})

	t.Run("fast queries are dropped outside debug", func(t *testing.T) {
		ql, buf := newCapturingQueryLogger(t, cfg)
		ql.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)

		assert.Empty(t, buf.String())
	})

	t.Run("debug logs every query", func(t *testing.T) {
		debugCfg := &config.Config{}
		debugCfg.Env.Debug = true
		ql, buf := newCapturingQueryLogger(t, debugCfg)
		ql.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)

		assert.Contains(t, buf.String(), "Query executed")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		ql, buf := newCapturingQueryLogger(t, cfg)
		ql.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), assert.AnError)

		assert.Empty(t, buf.String())
	})
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	ql, _ := newCapturingQueryLogger(t, nil)

	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	ql.Trace(ctx, time.Now(), sqlFn("UPDATE users"), assert.AnError)

	assert.Contains(t, reqBuf.String(), "request_id=req-42")
	assert.Contains(t, reqBuf.String(), "component=database")
}

func TestNewQueryLogger_NilBaseDiscards(t *testing.T) {
	assert.Equal(t, logger.Discard, newQueryLogger(nil, nil))
}
