package ports

import (
	"context"
	"strings"
)

// WeatherStore keeps the latest current sample and the forecast list per city key.
// Lookups are case-insensitive; freshness is decided by the caller.
type WeatherStore interface {
	GetCurrent(ctx context.Context, city string) (*WeatherSample, bool, error)
	// PutCurrent stores the sample under its own CityName
	PutCurrent(ctx context.Context, sample *WeatherSample) error
	// GetForecast returns an empty slice on miss
	GetForecast(ctx context.Context, city string) ([]ForecastSample, error)
	// ReplaceForecast swaps the whole list in one write. Of two concurrent
	// replacements for a city, one list survives intact.
	ReplaceForecast(ctx context.Context, city string, samples []ForecastSample) error
	PutForecast(ctx context.Context, city string, sample ForecastSample) error
	ClearForecast(ctx context.Context, city string) error
}

// CityKey is the store identity of a city name. Only case is folded.
func CityKey(city string) string {
	return strings.ToLower(city)
}
