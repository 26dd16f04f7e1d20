package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ObservationModel represents the database model for recorded current-weather samples
type ObservationModel struct {
	ID          uint   `gorm:"primaryKey"`
	CityKey     string `gorm:"index:idx_observations_city_time,priority:1;not null"`
	CityName    string `gorm:"not null"`
	Country     string
	Temperature float64
	Humidity    int
	WindSpeed   float64
	WeatherMain string
	ObservedAt  time.Time `gorm:"index:idx_observations_city_time,priority:2;not null"`
	CreatedAt   time.Time
}

func (ObservationModel) TableName() string {
	return "observations"
}

// HistoryRepositoryAdapter implements the HistoryRepository port using GORM
type HistoryRepositoryAdapter struct {
	db *gorm.DB
}

func NewHistoryRepositoryAdapter(db *gorm.DB) *HistoryRepositoryAdapter {
	return &HistoryRepositoryAdapter{db: db}
}

// Migrate creates or updates the observations table
func (r *HistoryRepositoryAdapter) Migrate() error {
	if err := r.db.AutoMigrate(&ObservationModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate observations", err)
	}
	return nil
}

// Record appends one observation for the sample's city
func (r *HistoryRepositoryAdapter) Record(ctx context.Context, sample *ports.WeatherSample) error {
	if sample == nil {
		return errors.NewValidationError("weather sample cannot be nil")
	}
	if sample.CityName == "" {
		return errors.NewValidationError("weather sample has no city name")
	}

	model := sampleToModel(sample)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to record observation", err)
	}

	return nil
}

// Recent returns up to limit observations for the city key, newest first
func (r *HistoryRepositoryAdapter) Recent(ctx context.Context, cityKey string, limit int) ([]ports.Observation, error) {
	if cityKey == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	if limit <= 0 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []ObservationModel
	result := r.db.WithContext(ctx).
		Where("city_key = ?", ports.CityKey(cityKey)).
		Order("observed_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to load observations", result.Error)
	}

	observations := make([]ports.Observation, len(models))
	for i := range models {
		observations[i] = modelToObservation(&models[i])
	}

	return observations, nil
}

func sampleToModel(sample *ports.WeatherSample) *ObservationModel {
	observedAt := sample.CreatedAt
	if observedAt.IsZero() {
		observedAt = time.Now()
	}

	return &ObservationModel{
		CityKey:     ports.CityKey(sample.CityName),
		CityName:    sample.CityName,
		Country:     sample.Country,
		Temperature: sample.Temperature,
		Humidity:    sample.Humidity,
		WindSpeed:   sample.WindSpeed,
		WeatherMain: sample.WeatherMain,
		ObservedAt:  observedAt.UTC(),
	}
}

func modelToObservation(model *ObservationModel) ports.Observation {
	return ports.Observation{
		ID:          model.ID,
		CityKey:     model.CityKey,
		CityName:    model.CityName,
		Country:     model.Country,
		Temperature: model.Temperature,
		Humidity:    model.Humidity,
		WindSpeed:   model.WindSpeed,
		WeatherMain: model.WeatherMain,
		ObservedAt:  model.ObservedAt,
	}
}
