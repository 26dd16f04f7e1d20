package external

import (
	"context"
	"fmt"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend selected by CACHE_TYPE. Shared backends are
// verified with a bounded number of ping retries.
func (f *CacheProviderFactory) CreateCacheProvider(ctx context.Context, cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(ctx, &cfg.Redis, cfg.ConnectRetries)
	case config.CacheTypeValkey:
		return NewValkeyCacheProviderAdapter(ctx, &cfg.Valkey, cfg.ConnectRetries)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}

// CreateWeatherStore picks the store for the configured backend: the memory backend
// uses the map store directly, shared backends go through the JSON cache store.
func (f *CacheProviderFactory) CreateWeatherStore(ctx context.Context, cfg *config.CacheConfig) (ports.WeatherStore, ports.CacheProvider, error) {
	// MemoryCacheProvider is not used here: the map store needs no JSON round trip
	if cfg != nil && cfg.Type == config.CacheTypeMemory {
		return NewMemoryWeatherStore(), nil, nil
	}

	provider, err := f.CreateCacheProvider(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewCacheWeatherStore(provider, cfg.Retention()), provider, nil
}
