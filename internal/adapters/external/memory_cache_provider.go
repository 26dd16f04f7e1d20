package external

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider with per-entry expiry.
// Expired entries are dropped when they are next read.
type MemoryCacheProvider struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// validateEntry holds the write checks shared by every backend
func validateEntry(key string, value []byte, ttl time.Duration) error {
	switch {
	case key == "":
		return errors.NewValidationError("cache key cannot be empty")
	case value == nil:
		return errors.NewValidationError("cache value cannot be nil")
	case ttl <= 0:
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	entry, ok := c.lookup(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}
	return entry.value, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = memoryEntry{value: stored, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
	return nil
}

// lookup returns a live entry and evicts it if it has expired
func (c *MemoryCacheProvider) lookup(key string) (memoryEntry, bool) {
	c.mutex.RLock()
	entry, ok := c.entries[key]
	c.mutex.RUnlock()

	if !ok {
		return memoryEntry{}, false
	}

	now := c.now()
	if !entry.expired(now) {
		return entry, true
	}

	c.mutex.Lock()
	if current, still := c.entries[key]; still && current.expired(now) {
		delete(c.entries, key)
	}
	c.mutex.Unlock()
	return memoryEntry{}, false
}
