// Package tmdb is the metadata provider client. Every call is rate limited,
// retried on transient failures and cached by request URL.
package tmdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ondeta/config"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"
	"ondeta/internal/errors"

	"github.com/avast/retry-go/v4"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	providerName     = "tmdb"
	retryBaseDelay   = 300 * time.Millisecond
	maxResponseBytes = 4 << 20
)

// errRetryable marks a response worth another attempt.
var errRetryable = errors.New("tmdb transient failure")

// Params holds dependencies for the client, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// Client talks to the TMDB v3 REST API.
type Client struct {
	baseURL     string
	apiKey      string
	language    string
	region      string
	maxAttempts uint
	retryDelay  time.Duration

	httpc   *http.Client
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []byte]
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewCatalogProvider builds the client from the tmdb config section.
func NewCatalogProvider(params Params) service.CatalogProvider {
	return New(params.Config.TMDB, params.Logger, params.Metrics)
}

// New builds a client. A nil metrics recorder disables instrumentation.
func New(cfg config.TMDBConfig, logger *slog.Logger, metrics service.MetricsRecorder) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
		burst = max(1, int(cfg.RequestsPerSec))
	}

	var cache *expirable.LRU[string, []byte]
	if cfg.CacheSize > 0 {
		cache = expirable.NewLRU[string, []byte](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		language:    cfg.Language,
		region:      cfg.Region,
		maxAttempts: max(1, cfg.MaxAttempts),
		retryDelay:  retryBaseDelay,
		httpc:       &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(limit, burst),
		cache:       cache,
		metrics:     metrics,
		logger:      logger.With(slog.String("provider", providerName)),
	}
}

// usesBearer reports whether the key is a v4 read access token rather than a v3 api key.
func (c *Client) usesBearer() bool {
	return strings.HasPrefix(c.apiKey, "eyJ")
}

// get fetches path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("language") == "" && c.language != "" {
		params.Set("language", c.language)
	}
	cacheKey := path + "?" + params.Encode()

	if c.cache != nil {
		if body, ok := c.cache.Get(cacheKey); ok {
			return decode(body, out)
		}
	}

	start := time.Now()
	body, err := c.fetch(ctx, path, params)
	if c.metrics != nil {
		c.metrics.RecordProviderCall(providerName, err, time.Since(start))
	}
	if err != nil {
		return err
	}

	if err := decode(body, out); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Add(cacheKey, body)
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	if !c.usesBearer() && c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + query.Encode()

	var body []byte
	err := retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}

			var err error
			body, err = c.do(ctx, endpoint)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.maxAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errRetryable)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.WarnContext(ctx, "Retrying provider call",
				slog.String("path", path),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.usesBearer() {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, errors.Wrapf(errRetryable, "request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Wrapf(errRetryable, "status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, errors.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(errRetryable, "read body: %v", err)
	}

	return body, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return domainerrors.ErrProviderUnavailable.WithDetails("invalid provider response: " + err.Error())
	}

	return nil
}

// Module provides the TMDB FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogProvider),
)
