package ports

import (
	"context"
	"time"
)

// WeatherSample is a point-in-time observation for one city
type WeatherSample struct {
	CityName           string    `json:"cityName"`
	Country            string    `json:"country"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Temperature        float64   `json:"temperature"`
	FeelsLike          float64   `json:"feelsLike"`
	Humidity           int       `json:"humidity"`
	Pressure           int       `json:"pressure"`
	WindSpeed          float64   `json:"windSpeed"`
	WindDirection      int       `json:"windDirection"`
	Visibility         int       `json:"visibility"`
	UVIndex            float64   `json:"uvIndex"`
	AirQuality         *int      `json:"airQuality"`
	WeatherMain        string    `json:"weatherMain"`
	WeatherDescription string    `json:"weatherDescription"`
	WeatherIcon        string    `json:"weatherIcon"`
	Sunrise            time.Time `json:"sunrise"`
	Sunset             time.Time `json:"sunset"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ApplyUVIndex stores the UV reading, 0 when unavailable
func (s *WeatherSample) ApplyUVIndex(uv Enrichment[float64]) {
	s.UVIndex = uv.OrDefault(0)
}

// ApplyAirQuality stores the air quality index, nil when unavailable
func (s *WeatherSample) ApplyAirQuality(aqi Enrichment[int]) {
	if v, ok := aqi.Get(); ok {
		s.AirQuality = &v
		return
	}
	s.AirQuality = nil
}

// ForecastSample is one forecast time-slice for a city
type ForecastSample struct {
	CityName            string    `json:"cityName"`
	Date                time.Time `json:"date"`
	Temperature         float64   `json:"temperature"`
	TempMin             float64   `json:"tempMin"`
	TempMax             float64   `json:"tempMax"`
	Humidity            int       `json:"humidity"`
	WindSpeed           float64   `json:"windSpeed"`
	WeatherMain         string    `json:"weatherMain"`
	WeatherDescription  string    `json:"weatherDescription"`
	WeatherIcon         string    `json:"weatherIcon"`
	PrecipitationChance int       `json:"precipitationChance"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Enrichment holds an optional reading from a secondary endpoint.
// The zero value is Unavailable.
type Enrichment[T any] struct {
	value    T
	measured bool
}

func Measured[T any](value T) Enrichment[T] {
	return Enrichment[T]{value: value, measured: true}
}

func Unavailable[T any]() Enrichment[T] {
	return Enrichment[T]{}
}

// Get returns the reading and whether it was measured
func (e Enrichment[T]) Get() (T, bool) {
	return e.value, e.measured
}

func (e Enrichment[T]) OrDefault(def T) T {
	if e.measured {
		return e.value
	}
	return def
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	TotalOps    int64     `json:"totalOps"`
	HitRatio    float64   `json:"hitRatio"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// WeatherProvider defines the contract for the upstream weather API
type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (*WeatherSample, error)
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (*WeatherSample, error)
	ForecastByCity(ctx context.Context, city string) ([]ForecastSample, error)
	ProviderName() string
}
