// Package metrics collects Prometheus metrics and serves the scrape endpoint.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"ondeta/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "ondeta"

// Collector implements service.MetricsRecorder plus HTTP request metrics.
type Collector struct {
	collectionChanges *prometheus.CounterVec
	writeConflicts    prometheus.Counter
	providerCalls     *prometheus.CounterVec
	providerLatency   *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		collectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_changes_total",
			Help:      "Collection entries added or removed.",
		}, []string{"collection", "op"}),
		writeConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_write_conflicts_total",
			Help:      "Collection writes that lost the version check and were retried.",
		}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Outbound provider calls by outcome.",
		}, []string{"provider", "outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Outbound provider call latency including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.collectionChanges,
		c.writeConflicts,
		c.providerCalls,
		c.providerLatency,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// RecordCollectionChange counts an add or remove on a collection.
func (c *Collector) RecordCollectionChange(collection, op string) {
	c.collectionChanges.WithLabelValues(collection, op).Inc()
}

// RecordWriteConflict counts a lost optimistic write.
func (c *Collector) RecordWriteConflict() {
	c.writeConflicts.Inc()
}

// RecordProviderCall records the outcome and latency of an outbound call.
func (c *Collector) RecordProviderCall(provider string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.providerCalls.WithLabelValues(provider, outcome).Inc()
	c.providerLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordHTTPRequest records a served request. route is the registered path pattern, not the raw URL.
func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry with the Go runtime and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func newCollectorFromRegistry(reg *prometheus.Registry) *Collector {
	return NewCollector(reg)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		newCollectorFromRegistry,
		func(c *Collector) service.MetricsRecorder { return c },
	),
)
