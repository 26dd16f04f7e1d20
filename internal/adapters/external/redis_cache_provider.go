package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// RedisCacheProviderAdapter implements CacheProvider port using Redis.
// Keys are stored under prefix.
type RedisCacheProviderAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisCacheProviderAdapter connects to Redis, retrying the initial ping up to retries times
func NewRedisCacheProviderAdapter(ctx context.Context, cfg *config.RedisConfig, retries int) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	adapter := &RedisCacheProviderAdapter{client: client, prefix: cfg.KeyPrefix}
	if err := pingWithRetry(ctx, retries, adapter.Ping); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return adapter, nil
}

func (r *RedisCacheProviderAdapter) key(key string) string {
	return r.prefix + key
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case err == redis.Nil:
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
