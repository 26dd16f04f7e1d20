package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

func TestPrometheusMetricsCollector_CacheStats(t *testing.T) {
	collector := NewPrometheusMetricsCollector()
	fixed := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	collector.now = func() time.Time { return fixed }

	assert.Equal(t, ports.CacheStats{}, collector.CacheStats())

	collector.RecordCacheLookup(ports.LookupCurrent, true)
	collector.RecordCacheLookup(ports.LookupCurrent, false)
	collector.RecordCacheLookup(ports.LookupForecast, true)
	collector.RecordCacheLookup(ports.LookupForecast, true)

	stats := collector.CacheStats()
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(4), stats.TotalOps)
	assert.InDelta(t, 0.75, stats.HitRatio, 1e-9)
	assert.Equal(t, fixed, stats.LastUpdated)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.cacheLookups.WithLabelValues("current", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.cacheLookups.WithLabelValues("forecast", "hit")))
	assert.InDelta(t, 0.75, testutil.ToFloat64(collector.cacheHitRatio), 1e-9)
}

func TestPrometheusMetricsCollector_UpstreamRequests(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	collector.RecordUpstreamRequest("current", true, 120*time.Millisecond)
	collector.RecordUpstreamRequest("current", false, 80*time.Millisecond)
	collector.RecordUpstreamRequest("forecast", true, 200*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.upstreamRequests.WithLabelValues("current", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.upstreamRequests.WithLabelValues("current", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.upstreamLatency))
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	collector := NewPrometheusMetricsCollector()
	collector.RecordCacheLookup(ports.LookupCurrent, false)
	collector.RecordUpstreamRequest("current", true, time.Second)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `weatherdash_cache_lookups_total{kind="current",result="miss"} 1`)
	assert.Contains(t, string(body), `weatherdash_upstream_requests_total{endpoint="current",outcome="success"} 1`)
	assert.Contains(t, string(body), "weatherdash_upstream_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestPrometheusMetricsCollector_IndependentRegistries(t *testing.T) {
	first := NewPrometheusMetricsCollector()
	second := NewPrometheusMetricsCollector()

	first.RecordCacheLookup(ports.LookupCurrent, true)
	assert.Equal(t, int64(0), second.CacheStats().TotalOps)
}

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 9090},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:  "key",
			CurrentTTLMinutes:  10,
			ForecastTTLMinutes: 30,
		},
		Cache:   config.CacheConfig{Type: config.CacheTypeValkey, RetentionMinutes: 60},
		History: config.HistoryConfig{Enabled: true, DefaultLimit: 500},
	}
	provider := NewConfigProviderAdapter(cfg)

	assert.Equal(t, ports.ServerConfig{Port: 9090}, provider.GetServerConfig())
	assert.Equal(t, ports.WeatherConfig{CurrentTTL: 10 * time.Minute, ForecastTTL: 30 * time.Minute, HasAPIKey: true}, provider.GetWeatherConfig())
	assert.Equal(t, ports.CacheConfig{Type: "valkey", Retention: time.Hour}, provider.GetCacheConfig())

	history := provider.GetHistoryConfig()
	assert.True(t, history.Enabled)
	assert.Equal(t, MaxHistoryLimit, history.DefaultLimit)
	assert.Equal(t, MaxHistoryLimit, history.MaxLimit)

	cfg.Weather.OpenWeatherMapKey = ""
	assert.False(t, provider.GetWeatherConfig().HasAPIKey)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestCacheHealthChecker(t *testing.T) {
	memory := NewCacheHealthChecker("memory", nil).Check(context.Background())
	assert.Equal(t, StatusHealthy, memory.Status)
	assert.Equal(t, "memory", memory.Details["type"])

	redis := NewCacheHealthChecker("redis", stubPinger{}).Check(context.Background())
	assert.Equal(t, StatusHealthy, redis.Status)

	down := NewCacheHealthChecker("valkey", stubPinger{err: fmt.Errorf("connection refused")}).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, down.Status)
	assert.Equal(t, "connection refused", down.Error)
}

func TestUpstreamHealthChecker(t *testing.T) {
	provider := mocks.NewWeatherProvider(t)
	provider.EXPECT().ProviderName().Return("OpenWeatherMap")

	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{HasAPIKey: false}).Once()
	cfg.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{HasAPIKey: true}).Once()

	checker := NewUpstreamHealthChecker(provider, cfg)

	degraded := checker.Check(context.Background())
	assert.Equal(t, StatusDegraded, degraded.Status)
	assert.Equal(t, "OpenWeatherMap", degraded.Details["provider"])

	healthy := checker.Check(context.Background())
	assert.Equal(t, StatusHealthy, healthy.Status)

	missing := NewUpstreamHealthChecker(nil, nil).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, missing.Status)
}

func TestDatabaseHealthChecker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	status := NewDatabaseHealthChecker(db).Check(context.Background())
	assert.Equal(t, StatusHealthy, status.Status)
	assert.Equal(t, "history", status.Component)
	assert.Equal(t, true, status.Details["connected"])
	assert.Contains(t, status.Details, "openConnections")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status = NewDatabaseHealthChecker(db).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)

	status = NewDatabaseHealthChecker(nil).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
}

func TestSystemHealthChecker(t *testing.T) {
	checker := NewSystemHealthChecker(map[string]ports.HealthChecker{
		"cache":   NewCacheHealthChecker("memory", nil),
		"history": nil,
	})

	results := checker.CheckAll(context.Background())
	require.Len(t, results, 1)
	assert.Equal(t, "ok", ports.OverallStatus(results))

	results["history"] = ports.HealthStatus{Status: StatusUnhealthy}
	assert.Equal(t, "error", ports.OverallStatus(results))

	results["history"] = ports.HealthStatus{Status: StatusDegraded}
	assert.Equal(t, "ok", ports.OverallStatus(results))
}

func TestSlogLoggerAdapter_NilSafe(t *testing.T) {
	var adapter *SlogLoggerAdapter
	assert.NotPanics(t, func() {
		adapter.Info("message", ports.F("key", "value"))
		NewSlogLoggerAdapter(nil).Error("message", ports.F("error", fmt.Errorf("boom")))
	})
}
