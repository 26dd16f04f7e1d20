package ports

import (
	"context"
	"time"
)

// Observation is one recorded current-weather sample
type Observation struct {
	ID          uint      `json:"id"`
	CityKey     string    `json:"cityKey"`
	CityName    string    `json:"cityName"`
	Country     string    `json:"country"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	WeatherMain string    `json:"weatherMain"`
	ObservedAt  time.Time `json:"observedAt"`
}

// HistoryRepository defines the contract for observation persistence
type HistoryRepository interface {
	Record(ctx context.Context, sample *WeatherSample) error
	// Recent returns up to limit observations for the city key, newest first
	Recent(ctx context.Context, cityKey string, limit int) ([]Observation, error)
}
