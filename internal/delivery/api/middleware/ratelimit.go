package middleware

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"ondeta/config"
	"ondeta/internal/delivery/api/response"
	domainerrors "ondeta/internal/domain/errors"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10_000
	clientIdleTTL     = 10 * time.Minute
)

// RateLimiter throttles a route group per client IP with a token bucket.
// Idle clients age out of the LRU, so memory stays bounded.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   *expirable.LRU[string, *rate.Limiter]
	limit      rate.Limit
	burst      int
	retryAfter string
	logger     *slog.Logger
}

// NewRateLimiter builds the auth limiter from config. perMinute <= 0 disables throttling.
func NewRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	limit := rate.Inf
	if cfg.Enabled && cfg.AuthPerMinute > 0 {
		limit = rate.Limit(cfg.AuthPerMinute / 60)
	}

	burst := cfg.AuthBurst
	if burst <= 0 {
		burst = 1
	}

	retryAfter := cfg.RetryAfterSecs
	if retryAfter <= 0 {
		retryAfter = 60
	}

	return &RateLimiter{
		limiters:   expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		limit:      limit,
		burst:      burst,
		retryAfter: strconv.Itoa(retryAfter),
		logger:     logger,
	}
}

// limiter returns the client's bucket, creating it on first sight. The lock
// keeps concurrent first requests from the same IP on one bucket.
func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters.Get(ip); ok {
		return l
	}

	l := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters.Add(ip, l)

	return l
}

// Limit answers 429 once the client's bucket is empty.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if rl.limit == rate.Inf {
			return next(c)
		}

		ip := c.RealIP()
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("Rate limit exceeded",
				slog.String("remote_ip", ip),
				slog.String("path", c.Path()))
			c.Response().Header().Set("Retry-After", rl.retryAfter)

			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}
