package tmdb

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ondeta/config"
	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	provider string
	failed   bool
}

type fakeMetrics struct {
	calls []recordedCall
}

func (f *fakeMetrics) RecordCollectionChange(string, string) {}
func (f *fakeMetrics) RecordWriteConflict()                  {}
func (f *fakeMetrics) RecordProviderCall(provider string, err error, _ time.Duration) {
	f.calls = append(f.calls, recordedCall{provider: provider, failed: err != nil})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...func(*config.TMDBConfig)) (*Client, *fakeMetrics) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.TMDBConfig{
		BaseURL:     srv.URL,
		APIKey:      "v3key",
		Language:    "pt-BR",
		Region:      "BR",
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		CacheSize:   16,
		CacheTTL:    time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics := &fakeMetrics{}
	c := New(cfg, slog.New(slog.DiscardHandler), metrics)
	c.retryDelay = time.Millisecond

	return c, metrics
}

func TestClient_TrendingSendsLanguageAndKey(t *testing.T) {
	c, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		assert.Equal(t, "v3key", r.URL.Query().Get("api_key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"results":[{"id":603,"title":"Matrix","poster_path":"/m.jpg"}]}`))
	})

	items, err := c.Trending(context.Background(), "movie", "month")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Matrix", items[0].Title)
	require.Len(t, metrics.calls, 1)
	assert.False(t, metrics.calls[0].failed)
}

func TestClient_BearerToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer eyJhbGciOi.token", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Ação"}]}`))
	}, func(cfg *config.TMDBConfig) { cfg.APIKey = "eyJhbGciOi.token" })

	genres, err := c.Genres(context.Background(), entity.MediaKindMovie)
	require.NoError(t, err)
	assert.Equal(t, []entity.Genre{{ID: 28, Name: "Ação"}}, genres)
}

func TestClient_CachesResponses(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	for range 3 {
		items, err := c.TopRated(context.Background(), entity.MediaKindTV)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	c, metrics := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}
		_, _ = w.Write([]byte(`{"results":[{"id":1}]}`))
	})

	items, err := c.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(3), hits.Load())
	require.Len(t, metrics.calls, 1)
}

func TestClient_GivesUpAfterMaxAttempts(t *testing.T) {
	var hits atomic.Int32
	c, metrics := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Upcoming(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Equal(t, int32(3), hits.Load())
	require.Len(t, metrics.calls, 1)
	assert.True(t, metrics.calls[0].failed)
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Details(context.Background(), entity.MediaKindMovie, "999999")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Genres(context.Background(), entity.MediaKindTV)
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_DiscoverParams(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/discover/tv", r.URL.Path)
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "18", q.Get("with_genres"))
		assert.Equal(t, "2019", q.Get("first_air_date_year"))
		assert.Empty(t, q.Get("primary_release_year"))
		assert.Equal(t, "2", q.Get("page"))
		_, _ = w.Write([]byte(`{"page":2,"total_pages":5,"total_results":90,"results":[{"id":1399,"name":"GoT"}]}`))
	})

	page, err := c.Discover(context.Background(), entity.MediaKindTV, service.DiscoverQuery{GenreID: "18", Year: "2019", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, "GoT", page.Results[0].Name)
}

func TestClient_SearchEndpointByType(t *testing.T) {
	cases := map[string]string{
		"":       "/search/multi",
		"all":    "/search/multi",
		"movies": "/search/movie",
		"tv":     "/search/tv",
		"people": "/search/person",
	}
	for searchType, wantPath := range cases {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, wantPath, r.URL.Path)
			assert.Equal(t, "matrix", r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`{"results":[]}`))
		})

		_, err := c.Search(context.Background(), service.SearchQuery{Query: "matrix", Type: searchType})
		require.NoError(t, err, searchType)
	}
}

func TestClient_VideosFallBackToEnglish(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("language") == "pt-BR" {
			_, _ = w.Write([]byte(`{"results":[]}`))

			return
		}
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"results":[{"key":"abc","site":"YouTube","type":"Trailer"}]}`))
	})

	videos, err := c.Videos(context.Background(), entity.MediaKindMovie, "603")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc", videos[0].Key)
}

func TestClient_DetailsSetsMediaType(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1399,"name":"Game of Thrones","genres":[{"id":18,"name":"Drama"}]}`))
	})

	details, err := c.Details(context.Background(), entity.MediaKindTV, "1399")
	require.NoError(t, err)
	assert.Equal(t, entity.MediaKindTV, details.MediaType)
	assert.Equal(t, "Game of Thrones", details.DisplayTitle())
}

func TestClient_WatchProviders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":603,"results":{"BR":{"link":"https://tmdb/watch","flatrate":[{"provider_id":8,"provider_name":"Netflix"}]}}}`))
	})

	providers, err := c.WatchProviders(context.Background(), entity.MediaKindMovie, "603")
	require.NoError(t, err)
	require.Contains(t, providers, "BR")
	assert.Equal(t, "Netflix", providers["BR"].Flatrate[0].ProviderName)
}

func TestClient_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := c.Recommendations(context.Background(), entity.MediaKindMovie, "603")
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}
