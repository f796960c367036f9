package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics records calls made to the commerce backend.
type BackendMetrics struct {
	duration *prometheus.HistogramVec
	failure  *prometheus.CounterVec
	cache    *prometheus.CounterVec
}

// NewBackendMetrics registers the backend client metrics on the provided registerer.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	if reg == nil {
		return &BackendMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_backend_request_duration_seconds",
		Help:    "Duration of commerce backend requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_backend_request_failures_total",
		Help: "Failed commerce backend requests.",
	}, []string{"op"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_cache_lookups_total",
		Help: "Catalog cache lookups by result.",
	}, []string{"op", "result"})
	reg.MustRegister(duration, failure, cache)
	return &BackendMetrics{
		duration: duration,
		failure:  failure,
		cache:    cache,
	}
}

// ObserveDuration records the duration of a backend call.
func (m *BackendMetrics) ObserveDuration(op string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(op)).Observe(duration.Seconds())
}

// IncFailure increments the failure counter for the operation.
func (m *BackendMetrics) IncFailure(op string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(op)).Inc()
}

// CacheHit counts a catalog cache hit.
func (m *BackendMetrics) CacheHit(op string) {
	m.cacheResult(op, "hit")
}

// CacheMiss counts a catalog cache miss.
func (m *BackendMetrics) CacheMiss(op string) {
	m.cacheResult(op, "miss")
}

func (m *BackendMetrics) cacheResult(op, result string) {
	if m == nil || m.cache == nil {
		return
	}
	m.cache.WithLabelValues(normalizeLabel(op), result).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
