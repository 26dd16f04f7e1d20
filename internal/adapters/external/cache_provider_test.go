package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const testKeyPrefix = "weatherdash:"

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return mockRedis, &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		KeyPrefix:    testKeyPrefix,
	}
}

func setupMockValkey(t *testing.T) (*miniredis.Miniredis, *config.ValkeyConfig) {
	t.Helper()

	mockValkey := miniredis.RunT(t)
	return mockValkey, &config.ValkeyConfig{
		Addr:      mockValkey.Addr(),
		RESP2:     true,
		KeyPrefix: testKeyPrefix,
	}
}

// runCacheProviderContract exercises behaviour every CacheProvider backend shares.
// advance moves the backend clock forward.
func runCacheProviderContract(t *testing.T, provider ports.CacheProvider, advance func(time.Duration)) {
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "weather:current:kyiv", []byte(`{"cityName":"Kyiv"}`), time.Minute))

		got, err := provider.Get(ctx, "weather:current:kyiv")
		require.NoError(t, err)
		assert.Equal(t, `{"cityName":"Kyiv"}`, string(got))
	})

	t.Run("MissIsNotFound", func(t *testing.T) {
		got, err := provider.Get(ctx, "weather:current:atlantis")
		assert.Nil(t, got)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "delete-me", []byte("x"), time.Minute))
		require.NoError(t, provider.Delete(ctx, "delete-me"))

		_, err := provider.Get(ctx, "delete-me")
		assert.True(t, errors.IsNotFoundError(err))
		assert.NoError(t, provider.Delete(ctx, "never-set"))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "overwrite", []byte("old"), time.Minute))
		require.NoError(t, provider.Set(ctx, "overwrite", []byte("new"), time.Minute))

		got, err := provider.Get(ctx, "overwrite")
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("BinaryData", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0xFF, 0xFE, 0x00}
		require.NoError(t, provider.Set(ctx, "binary", data, time.Minute))

		got, err := provider.Get(ctx, "binary")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "short-lived", []byte("x"), 2*time.Second))
		advance(3 * time.Second)

		_, err := provider.Get(ctx, "short-lived")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		_, err := provider.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))
		assert.True(t, errors.IsValidationError(provider.Set(ctx, "", []byte("x"), time.Minute)))
		assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
		assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("x"), 0)))
		assert.True(t, errors.IsValidationError(provider.Delete(ctx, "")))
	})
}

func TestMemoryCacheProvider_Contract(t *testing.T) {
	provider := NewMemoryCacheProvider()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return now }

	runCacheProviderContract(t, provider, func(d time.Duration) { now = now.Add(d) })
}

func TestMemoryCacheProvider_EvictsExpiredOnRead(t *testing.T) {
	provider := NewMemoryCacheProvider()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "weather:current:oslo", []byte("{}"), time.Minute))
	require.NoError(t, provider.Set(ctx, "weather:current:rome", []byte("{}"), time.Hour))

	now = now.Add(2 * time.Minute)
	_, err := provider.Get(ctx, "weather:current:oslo")
	assert.True(t, errors.IsNotFoundError(err))

	provider.mutex.RLock()
	defer provider.mutex.RUnlock()
	assert.Len(t, provider.entries, 1)
	assert.Contains(t, provider.entries, "weather:current:rome")
}

func TestMemoryCacheProvider_StoresCopy(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, provider.Set(ctx, "k", value, time.Minute))
	value[0] = 'z'

	got, err := provider.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestRedisCacheProviderAdapter_Contract(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(context.Background(), redisConfig, 0)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	runCacheProviderContract(t, adapter, mockRedis.FastForward)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisCacheProviderAdapter_Constructor(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(context.Background(), nil, 0)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("UnreachableServer", func(t *testing.T) {
		cfg := &config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}

		adapter, err := NewRedisCacheProviderAdapter(context.Background(), cfg, 1)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("CancelledContextStopsRetries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cfg := &config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}

		start := time.Now()
		_, err := NewRedisCacheProviderAdapter(ctx, cfg, 10)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestRedisCacheProviderAdapter_ContextCancellation(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(context.Background(), redisConfig, 0)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = adapter.Get(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, adapter.Set(ctx, "key", []byte("value"), time.Minute))
	assert.Error(t, adapter.Delete(ctx, "key"))
}

func TestValkeyCacheProviderAdapter_Contract(t *testing.T) {
	mockValkey, valkeyConfig := setupMockValkey(t)

	adapter, err := NewValkeyCacheProviderAdapter(context.Background(), valkeyConfig, 0)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	runCacheProviderContract(t, adapter, mockValkey.FastForward)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestNamespacedBackends_KeysLiveUnderPrefix(t *testing.T) {
	ctx := context.Background()

	mockRedis, redisConfig := setupMockRedis(t)
	redisAdapter, err := NewRedisCacheProviderAdapter(ctx, redisConfig, 0)
	require.NoError(t, err)
	defer func() { _ = redisAdapter.Close() }()

	mockValkey, valkeyConfig := setupMockValkey(t)
	valkeyAdapter, err := NewValkeyCacheProviderAdapter(ctx, valkeyConfig, 0)
	require.NoError(t, err)
	defer func() { _ = valkeyAdapter.Close() }()

	backends := []struct {
		name     string
		server   *miniredis.Miniredis
		provider ports.CacheProvider
	}{
		{"Redis", mockRedis, redisAdapter},
		{"Valkey", mockValkey, valkeyAdapter},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			require.NoError(t, b.server.Set("weather:current:oslo", "other-app"))
			require.NoError(t, b.provider.Set(ctx, "weather:current:oslo", []byte("{}"), time.Minute))

			assert.True(t, b.server.Exists(testKeyPrefix+"weather:current:oslo"))

			require.NoError(t, b.provider.Delete(ctx, "weather:current:oslo"))
			assert.False(t, b.server.Exists(testKeyPrefix+"weather:current:oslo"))

			foreign, err := b.server.Get("weather:current:oslo")
			require.NoError(t, err)
			assert.Equal(t, "other-app", foreign)
		})
	}
}

func TestValkeyCacheProviderAdapter_SubSecondTTLRejected(t *testing.T) {
	_, valkeyConfig := setupMockValkey(t)

	adapter, err := NewValkeyCacheProviderAdapter(context.Background(), valkeyConfig, 0)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	err = adapter.Set(context.Background(), "k", []byte("x"), 500*time.Millisecond)
	assert.True(t, errors.IsValidationError(err))
}

func TestValkeyCacheProviderAdapter_Constructor(t *testing.T) {
	adapter, err := NewValkeyCacheProviderAdapter(context.Background(), nil, 0)
	assert.Nil(t, adapter)
	assert.True(t, errors.IsConfigurationError(err))

	mockValkey := miniredis.RunT(t)
	addr := mockValkey.Addr()
	mockValkey.Close()

	adapter, err = NewValkeyCacheProviderAdapter(context.Background(), &config.ValkeyConfig{Addr: addr, RESP2: true}, 1)
	assert.Nil(t, adapter)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(ctx, &config.CacheConfig{Type: config.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("Redis", func(t *testing.T) {
		_, redisConfig := setupMockRedis(t)
		provider, err := factory.CreateCacheProvider(ctx, &config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig})
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
	})

	t.Run("Valkey", func(t *testing.T) {
		_, valkeyConfig := setupMockValkey(t)
		provider, err := factory.CreateCacheProvider(ctx, &config.CacheConfig{Type: config.CacheTypeValkey, Valkey: *valkeyConfig})
		require.NoError(t, err)
		assert.IsType(t, &ValkeyCacheProviderAdapter{}, provider)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := factory.CreateCacheProvider(ctx, &config.CacheConfig{Type: config.CacheTypeUnknown})
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("NilConfig", func(t *testing.T) {
		_, err := factory.CreateCacheProvider(ctx, nil)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestCacheProviderFactory_CreateWeatherStore(t *testing.T) {
	factory := NewCacheProviderFactory()
	ctx := context.Background()

	store, provider, err := factory.CreateWeatherStore(ctx, &config.CacheConfig{Type: config.CacheTypeMemory})
	require.NoError(t, err)
	assert.Nil(t, provider)
	assert.IsType(t, &MemoryWeatherStore{}, store)

	_, redisConfig := setupMockRedis(t)
	store, provider, err = factory.CreateWeatherStore(ctx, &config.CacheConfig{
		Type:             config.CacheTypeRedis,
		RetentionMinutes: 60,
		Redis:            *redisConfig,
	})
	require.NoError(t, err)
	assert.NotNil(t, provider)
	assert.IsType(t, &CacheWeatherStore{}, store)
}
