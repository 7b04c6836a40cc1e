package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ondeta/config"
	domainerrors "ondeta/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(config.GeminiConfig{
		BaseURL:     srv.URL,
		APIKey:      "key",
		Model:       "gemini-2.0-flash",
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
	}, slog.New(slog.DiscardHandler), nil)
	c.retryDelay = time.Millisecond

	return c
}

func TestClient_GenerateSendsSettings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))

		var body generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "olá", body.Contents[0].Parts[0].Text)
		assert.InDelta(t, 0.7, body.GenerationConfig.Temperature, 1e-9)
		assert.Equal(t, 40, body.GenerationConfig.TopK)
		assert.InDelta(t, 0.95, body.GenerationConfig.TopP, 1e-9)
		assert.Equal(t, 1024, body.GenerationConfig.MaxOutputTokens)
		require.Len(t, body.SafetySettings, 4)
		for _, s := range body.SafetySettings {
			assert.Equal(t, "BLOCK_MEDIUM_AND_ABOVE", s.Threshold)
		}

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Oi! "},{"text":"Tudo bem?"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), "olá")
	require.NoError(t, err)
	assert.Equal(t, "Oi! Tudo bem?", text)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"no candidates": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		},
		"blocked prompt": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
		},
		"api error": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad"}}`))
		},
		"always unavailable": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestClient(t, handler).Generate(context.Background(), "x")
			assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
		})
	}
}

func TestClient_MissingKey(t *testing.T) {
	c := New(config.GeminiConfig{BaseURL: "http://unused", Model: "m"}, slog.New(slog.DiscardHandler), nil)

	_, err := c.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}
