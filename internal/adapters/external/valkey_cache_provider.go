package external

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// ValkeyCacheProviderAdapter implements CacheProvider port using a Valkey server.
// Keys are stored under prefix.
type ValkeyCacheProviderAdapter struct {
	client valkey.Client
	prefix string
}

// NewValkeyCacheProviderAdapter connects to Valkey, retrying the initial ping up to retries times
func NewValkeyCacheProviderAdapter(ctx context.Context, cfg *config.ValkeyConfig, retries int) (*ValkeyCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("valkey config cannot be nil", nil)
	}

	var client valkey.Client
	err := pingWithRetry(ctx, retries, func(ctx context.Context) error {
		if client != nil {
			return client.Do(ctx, client.B().Ping().Build()).Error()
		}
		c, err := valkey.NewClient(valkey.ClientOption{
			InitAddress:  []string{cfg.Addr},
			Password:     cfg.Password,
			SelectDB:     cfg.DB,
			DisableCache: true,
			AlwaysRESP2:  cfg.RESP2,
		})
		if err != nil {
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		if client != nil {
			client.Close()
		}
		return nil, errors.NewExternalAPIError("failed to connect to Valkey", err)
	}

	return &ValkeyCacheProviderAdapter{client: client, prefix: cfg.KeyPrefix}, nil
}

func (v *ValkeyCacheProviderAdapter) key(key string) string {
	return v.prefix + key
}

func (v *ValkeyCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := v.client.Do(ctx, v.client.B().Get().Key(v.key(key)).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("valkey get operation failed", err)
	}

	return val, nil
}

func (v *ValkeyCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}
	// EX has whole-second resolution
	if ttl < time.Second {
		return errors.NewValidationError("cache TTL must be at least one second")
	}

	cmd := v.client.B().Set().Key(v.key(key)).Value(valkey.BinaryString(value)).Ex(ttl).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return errors.NewExternalAPIError("valkey set operation failed", err)
	}

	return nil
}

func (v *ValkeyCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := v.client.Do(ctx, v.client.B().Del().Key(v.key(key)).Build()).Error(); err != nil {
		return errors.NewExternalAPIError("valkey delete operation failed", err)
	}

	return nil
}

func (v *ValkeyCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := v.client.Do(ctx, v.client.B().Ping().Build()).Error(); err != nil {
		return errors.NewExternalAPIError("Valkey ping failed", err)
	}
	return nil
}

func (v *ValkeyCacheProviderAdapter) Close() error {
	v.client.Close()
	return nil
}
