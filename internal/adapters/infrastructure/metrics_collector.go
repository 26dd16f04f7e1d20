package infrastructure

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/ports"
)

// PrometheusMetricsCollector implements the MetricsCollector port on its own registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheLookups     *prometheus.CounterVec
	cacheHitRatio    prometheus.Gauge
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	mu          sync.RWMutex
	hits        int64
	misses      int64
	lastUpdated time.Time
	now         func() time.Time
}

func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_cache_lookups_total",
				Help: "Store lookups by kind and result (hit, miss)",
			},
			[]string{"kind", "result"},
		),
		cacheHitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "weatherdash_cache_hit_ratio",
			Help: "Fresh store hits divided by all lookups",
		}),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_upstream_requests_total",
				Help: "Upstream weather requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherdash_upstream_request_duration_seconds",
				Help:    "Upstream weather request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		now: time.Now,
	}
}

func (m *PrometheusMetricsCollector) RecordCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(kind, result).Inc()

	m.mu.Lock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
	m.lastUpdated = m.now()
	ratio := float64(m.hits) / float64(m.hits+m.misses)
	m.mu.Unlock()

	m.cacheHitRatio.Set(ratio)
}

func (m *PrometheusMetricsCollector) RecordUpstreamRequest(endpoint string, success bool, duration time.Duration) {
	outcome := "error"
	if success {
		outcome = "success"
	}
	m.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) CacheStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.hits + m.misses
	stats := ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    total,
		LastUpdated: m.lastUpdated,
	}
	if total > 0 {
		stats.HitRatio = float64(m.hits) / float64(total)
	}
	return stats
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests and for registering extra collectors
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
