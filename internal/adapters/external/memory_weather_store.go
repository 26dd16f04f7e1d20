package external

import (
	"context"
	"sync"

	"weatherdash.app/internal/ports"
)

// MemoryWeatherStore keeps the latest current sample and forecast list per city key.
// It never expires entries; freshness is decided by the caller.
type MemoryWeatherStore struct {
	mu       sync.RWMutex
	current  map[string]ports.WeatherSample
	forecast map[string][]ports.ForecastSample
}

func NewMemoryWeatherStore() *MemoryWeatherStore {
	return &MemoryWeatherStore{
		current:  make(map[string]ports.WeatherSample),
		forecast: make(map[string][]ports.ForecastSample),
	}
}

func (s *MemoryWeatherStore) GetCurrent(ctx context.Context, city string) (*ports.WeatherSample, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sample, ok := s.current[ports.CityKey(city)]
	if !ok {
		return nil, false, nil
	}
	return &sample, true, nil
}

func (s *MemoryWeatherStore) PutCurrent(ctx context.Context, sample *ports.WeatherSample) error {
	if sample == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current[ports.CityKey(sample.CityName)] = *sample
	return nil
}

func (s *MemoryWeatherStore) GetForecast(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.forecast[ports.CityKey(city)]
	out := make([]ports.ForecastSample, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryWeatherStore) ReplaceForecast(ctx context.Context, city string, samples []ports.ForecastSample) error {
	stored := make([]ports.ForecastSample, len(samples))
	copy(stored, samples)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.forecast[ports.CityKey(city)] = stored
	return nil
}

func (s *MemoryWeatherStore) PutForecast(ctx context.Context, city string, sample ports.ForecastSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ports.CityKey(city)
	s.forecast[key] = append(s.forecast[key], sample)
	return nil
}

func (s *MemoryWeatherStore) ClearForecast(ctx context.Context, city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.forecast, ports.CityKey(city))
	return nil
}
