package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records calculation outcomes and cache behavior.
type PricingMetrics struct {
	duration    *prometheus.HistogramVec
	failures    *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_calculation_duration_seconds",
		Help:    "Duration of price calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_calculation_failures",
		Help: "Failed price calculations by error code.",
	}, []string{"code"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_options_cache_hits",
		Help: "Pricing options served from cache.",
	})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_options_cache_misses",
		Help: "Pricing options assembled from the database.",
	})
	reg.MustRegister(duration, failures, cacheHits, cacheMisses)
	return &PricingMetrics{
		duration:    duration,
		failures:    failures,
		cacheHits:   cacheHits,
		cacheMisses: cacheMisses,
	}
}

// ObserveDuration records the duration of the named operation.
func (m *PricingMetrics) ObserveDuration(operation string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncFailure increments the failure counter for the error code.
func (m *PricingMetrics) IncFailure(code string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(code)).Inc()
}

// IncCacheHit counts an options payload served from cache.
func (m *PricingMetrics) IncCacheHit() {
	if m == nil || m.cacheHits == nil {
		return
	}
	m.cacheHits.Inc()
}

// IncCacheMiss counts an options payload assembled from the database.
func (m *PricingMetrics) IncCacheMiss() {
	if m == nil || m.cacheMisses == nil {
		return
	}
	m.cacheMisses.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
