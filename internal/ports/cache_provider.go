package ports

import (
	"context"
	"time"
)

// CacheProvider is the byte-level key/value backend behind the weather store.
// Implementations: memory, redis, valkey.
type CacheProvider interface {
	// Get returns a NotFound error on a miss or an expired entry
	Get(ctx context.Context, key string) ([]byte, error)
	// Set rejects empty keys, nil values and non-positive TTLs with a Validation error
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
