package middleware

import (
	"time"

	"ondeta/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	collector *metrics.Collector
}

// NewMetricsMiddleware creates the middleware. A nil collector turns it into a pass-through.
func NewMetricsMiddleware(collector *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Handle wraps next and observes the final status, including errors rendered by echo.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.collector == nil {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the recorded status matches what the client sees.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.collector.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
