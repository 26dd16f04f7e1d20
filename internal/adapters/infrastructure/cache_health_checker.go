package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// Pinger is implemented by shared cache backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the configured store backend. In-memory stores have
// nothing to ping and are always healthy.
type CacheHealthChecker struct {
	cacheType string
	pinger    Pinger
}

func NewCacheHealthChecker(cacheType string, pinger Pinger) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, pinger: pinger}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    StatusHealthy,
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.pinger == nil {
		return status
	}

	if err := c.pinger.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// UpstreamHealthChecker reports whether the weather provider can authenticate.
// It does not call the upstream API.
type UpstreamHealthChecker struct {
	provider ports.WeatherProvider
	config   ports.ConfigProvider
}

func NewUpstreamHealthChecker(provider ports.WeatherProvider, config ports.ConfigProvider) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{provider: provider, config: config}
}

func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstream",
		Status:    StatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if u.provider == nil {
		status.Status = StatusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = u.provider.ProviderName()

	if u.config != nil && !u.config.GetWeatherConfig().HasAPIKey {
		status.Status = StatusDegraded
		status.Error = "OPENWEATHERMAP_API_KEY is not set"
	}
	return status
}
