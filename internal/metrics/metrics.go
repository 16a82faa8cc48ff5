// Package metrics exposes Prometheus instrumentation for the session layer
// and the upstream FMP client. A nil *Recorder is a no-op on every method so
// callers never have to guard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the process collectors and their private registry.
type Recorder struct {
	registry *prometheus.Registry

	sessionsCreated  *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheEvictions   prometheus.Counter
	cacheExpirations prometheus.Counter

	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

// New constructs a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessionsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmp_mcp_sessions_created_total",
			Help: "Sessions created, labeled by resolved operating mode.",
		}, []string{"mode"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fmp_mcp_active_sessions",
			Help: "Sessions currently held in the cache.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fmp_mcp_session_cache_hits_total",
			Help: "Session cache lookups that returned a live entry.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fmp_mcp_session_cache_misses_total",
			Help: "Session cache lookups that found no live entry.",
		}),
		cacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fmp_mcp_session_cache_evictions_total",
			Help: "Entries evicted because the cache was full.",
		}),
		cacheExpirations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fmp_mcp_session_cache_expirations_total",
			Help: "Entries removed because their idle TTL elapsed.",
		}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmp_mcp_upstream_requests_total",
			Help: "Requests sent to the FMP API, labeled by outcome.",
		}, []string{"status"}),
		upstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fmp_mcp_upstream_request_duration_seconds",
			Help:    "FMP API request latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	r.registry.MustRegister(
		r.sessionsCreated,
		r.activeSessions,
		r.cacheHits,
		r.cacheMisses,
		r.cacheEvictions,
		r.cacheExpirations,
		r.upstreamRequests,
		r.upstreamDuration,
	)
	return r
}

// Handler returns the scrape endpoint handler.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// SessionCreated records a new session in the given mode.
func (r *Recorder) SessionCreated(mode string) {
	if r == nil {
		return
	}
	r.sessionsCreated.WithLabelValues(mode).Inc()
}

// SetActiveSessions tracks the current cache population.
func (r *Recorder) SetActiveSessions(n int) {
	if r == nil {
		return
	}
	r.activeSessions.Set(float64(n))
}

// CacheHit records a lookup that returned a live entry.
func (r *Recorder) CacheHit() {
	if r == nil {
		return
	}
	r.cacheHits.Inc()
}

// CacheMiss records a lookup that found nothing usable.
func (r *Recorder) CacheMiss() {
	if r == nil {
		return
	}
	r.cacheMisses.Inc()
}

// SessionEvicted records a capacity eviction.
func (r *Recorder) SessionEvicted() {
	if r == nil {
		return
	}
	r.cacheEvictions.Inc()
}

// SessionExpired records a TTL removal, whether from a lookup or the sweep.
func (r *Recorder) SessionExpired() {
	if r == nil {
		return
	}
	r.cacheExpirations.Inc()
}

// UpstreamRequest records one FMP API call and its latency. The status label
// is the HTTP status code, or "error" for transport failures.
func (r *Recorder) UpstreamRequest(status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(status).Inc()
	r.upstreamDuration.Observe(elapsed.Seconds())
}
