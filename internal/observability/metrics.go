// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache reads served without an upstream call, by key.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_cache_hits_total",
		Help: "Total number of cache reads served from memory",
	}, []string{"key"})

	// CacheMisses counts cache reads that required an upstream fetch, by key.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_cache_misses_total",
		Help: "Total number of cache reads that went upstream",
	}, []string{"key"})

	// CacheInvalidations counts explicit invalidations, by key.
	CacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_cache_invalidations_total",
		Help: "Total number of cache entries invalidated by mutations",
	}, []string{"key"})

	// CacheEvictions counts entries dropped by the retention sweep.
	CacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_cache_evictions_total",
		Help: "Total number of cache entries evicted after the retention window",
	})

	// UpstreamLatency records posts API request latency by method.
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postboard_upstream_request_latency_seconds",
		Help:    "Posts API request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// UpstreamErrors counts failed posts API requests by method.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_upstream_errors_total",
		Help: "Total number of failed posts API requests",
	}, []string{"method"})
)

// ObserveUpstreamRequest records latency and, for transport failures, the
// error counter for one posts API request.
func ObserveUpstreamRequest(method string, elapsed time.Duration, ok bool) {
	UpstreamLatency.WithLabelValues(method).Observe(elapsed.Seconds())
	if !ok {
		UpstreamErrors.WithLabelValues(method).Inc()
	}
}
