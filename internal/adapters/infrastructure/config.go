package infrastructure

import (
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// MaxHistoryLimit caps the number of rows one history request may return
const MaxHistoryLimit = 200

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		CurrentTTL:  c.config.Weather.CurrentTTL(),
		ForecastTTL: c.config.Weather.ForecastTTL(),
		HasAPIKey:   c.config.Weather.OpenWeatherMapKey != "",
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:      c.config.Cache.Type.String(),
		Retention: c.config.Cache.Retention(),
	}
}

func (c *ConfigProviderAdapter) GetHistoryConfig() ports.HistoryConfig {
	limit := c.config.History.DefaultLimit
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	return ports.HistoryConfig{
		Enabled:      c.config.History.Enabled,
		DefaultLimit: limit,
		MaxLimit:     MaxHistoryLimit,
	}
}
