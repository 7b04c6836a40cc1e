package postgres

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"ondeta/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectWithRetry_RetriesUntilOpen(t *testing.T) {
	var calls atomic.Int32
	want := &gorm.DB{}
	open := func() (*gorm.DB, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("connection refused")
		}

		return want, nil
	}

	db, err := connectWithRetry(context.Background(), open, time.Millisecond, slog.New(slog.DiscardHandler))

	require.NoError(t, err)
	assert.Same(t, want, db)
	assert.Equal(t, int32(3), calls.Load())
}

func TestConnectWithRetry_StopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	open := func() (*gorm.DB, error) {
		if calls.Add(1) == 2 {
			cancel()
		}

		return nil, errors.New("connection refused")
	}

	done := make(chan error, 1)
	go func() {
		_, err := connectWithRetry(ctx, open, 10*time.Millisecond, slog.New(slog.DiscardHandler))
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("connect loop ignored cancellation")
	}
}
