package external

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	currentKeyPrefix  = "weather:current:"
	forecastKeyPrefix = "weather:forecast:"
)

// CacheWeatherStore keeps samples as JSON documents in a CacheProvider so that several
// instances can share one store. Entries outlive their freshness window and are only
// dropped by the backend after retention.
type CacheWeatherStore struct {
	cache     ports.CacheProvider
	retention time.Duration
}

func NewCacheWeatherStore(cache ports.CacheProvider, retention time.Duration) *CacheWeatherStore {
	if retention < time.Second {
		retention = time.Second
	}
	return &CacheWeatherStore{cache: cache, retention: retention}
}

func (s *CacheWeatherStore) GetCurrent(ctx context.Context, city string) (*ports.WeatherSample, bool, error) {
	data, found, err := s.get(ctx, currentKeyPrefix+ports.CityKey(city))
	if err != nil || !found {
		return nil, false, err
	}

	var sample ports.WeatherSample
	if err := json.Unmarshal(data, &sample); err != nil {
		return nil, false, fmt.Errorf("decode current weather for %s: %w", city, err)
	}
	return &sample, true, nil
}

func (s *CacheWeatherStore) PutCurrent(ctx context.Context, sample *ports.WeatherSample) error {
	if sample == nil {
		return nil
	}

	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("encode current weather for %s: %w", sample.CityName, err)
	}
	return s.cache.Set(ctx, currentKeyPrefix+ports.CityKey(sample.CityName), data, s.retention)
}

func (s *CacheWeatherStore) GetForecast(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	data, found, err := s.get(ctx, forecastKeyPrefix+ports.CityKey(city))
	if err != nil {
		return nil, err
	}
	if !found {
		return []ports.ForecastSample{}, nil
	}

	var samples []ports.ForecastSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("decode forecast for %s: %w", city, err)
	}
	return samples, nil
}

// ReplaceForecast writes the whole list as one document
func (s *CacheWeatherStore) ReplaceForecast(ctx context.Context, city string, samples []ports.ForecastSample) error {
	if samples == nil {
		samples = []ports.ForecastSample{}
	}

	data, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("encode forecast for %s: %w", city, err)
	}
	return s.cache.Set(ctx, forecastKeyPrefix+ports.CityKey(city), data, s.retention)
}

// PutForecast appends one sample with a read-modify-write. Concurrent appends to one
// city can lose samples; refreshes go through ReplaceForecast.
func (s *CacheWeatherStore) PutForecast(ctx context.Context, city string, sample ports.ForecastSample) error {
	samples, err := s.GetForecast(ctx, city)
	if err != nil {
		return err
	}
	return s.ReplaceForecast(ctx, city, append(samples, sample))
}

func (s *CacheWeatherStore) ClearForecast(ctx context.Context, city string) error {
	return s.cache.Delete(ctx, forecastKeyPrefix+ports.CityKey(city))
}

func (s *CacheWeatherStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
