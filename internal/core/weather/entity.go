package weather

import (
	"fmt"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/validation"
)

const (
	DefaultCurrentTTL  = 10 * time.Minute
	DefaultForecastTTL = 30 * time.Minute
)

// CityRequest represents a request addressed by city name
type CityRequest struct {
	City string
}

// IsValid validates the city request. The name is kept as given.
func (r *CityRequest) IsValid() error {
	if !validation.IsValidCityName(r.City) {
		return fmt.Errorf("city must be a non-empty name of at most 100 characters")
	}
	return nil
}

// CoordinatesRequest represents a request addressed by coordinates
type CoordinatesRequest struct {
	Latitude  float64
	Longitude float64
}

// IsValid validates the coordinates range
func (r *CoordinatesRequest) IsValid() error {
	if !validation.IsValidLatitude(r.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(r.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// HistoryRequest asks for recorded observations of a city
type HistoryRequest struct {
	City  string
	Limit int
}

// FreshnessPolicy decides whether cached records may be served without a refresh
type FreshnessPolicy struct {
	CurrentTTL  time.Duration
	ForecastTTL time.Duration
	Now         func() time.Time
}

// NewFreshnessPolicy builds a policy on the wall clock, falling back to the default windows
func NewFreshnessPolicy(currentTTL, forecastTTL time.Duration) FreshnessPolicy {
	if currentTTL <= 0 {
		currentTTL = DefaultCurrentTTL
	}
	if forecastTTL <= 0 {
		forecastTTL = DefaultForecastTTL
	}
	return FreshnessPolicy{CurrentTTL: currentTTL, ForecastTTL: forecastTTL, Now: time.Now}
}

// CurrentFresh reports whether sample is younger than CurrentTTL
func (p FreshnessPolicy) CurrentFresh(sample *ports.WeatherSample) bool {
	if sample == nil {
		return false
	}
	return p.now().Sub(sample.CreatedAt) < p.CurrentTTL
}

// ForecastFresh reports whether the list is non-empty and its first slice is younger than ForecastTTL
func (p FreshnessPolicy) ForecastFresh(samples []ports.ForecastSample) bool {
	if len(samples) == 0 {
		return false
	}
	return p.now().Sub(samples[0].CreatedAt) < p.ForecastTTL
}

func (p FreshnessPolicy) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
