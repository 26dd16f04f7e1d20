package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// CurrentByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) CurrentByCity(ctx context.Context, city string) (*ports.WeatherSample, error) {
	fields := []ports.Field{ports.F("city", city)}
	started := d.logRequest("current", fields)

	sample, err := d.provider.CurrentByCity(ctx, city)
	if err != nil {
		d.logFailure("current", fields, started, err)
		return nil, err
	}

	d.logCurrent(fields, started, sample)
	return sample, nil
}

// CurrentByCoordinates wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*ports.WeatherSample, error) {
	fields := []ports.Field{ports.F("lat", lat), ports.F("lon", lon)}
	started := d.logRequest("current", fields)

	sample, err := d.provider.CurrentByCoordinates(ctx, lat, lon)
	if err != nil {
		d.logFailure("current", fields, started, err)
		return nil, err
	}

	d.logCurrent(fields, started, sample)
	return sample, nil
}

// ForecastByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ForecastByCity(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	fields := []ports.Field{ports.F("city", city)}
	started := d.logRequest("forecast", fields)

	samples, err := d.provider.ForecastByCity(ctx, city)
	if err != nil {
		d.logFailure("forecast", fields, started, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(fields,
		ports.F("provider", d.provider.ProviderName()),
		ports.F("operation", "forecast"),
		ports.F("event", "response"),
		ports.F("duration_ms", time.Since(started).Milliseconds()),
		ports.F("samples", len(samples)))...)
	return samples, nil
}

// ProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) ProviderName() string {
	return "logged(" + d.provider.ProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) logRequest(operation string, fields []ports.Field) time.Time {
	d.logger.Info("Weather API request started", append(fields,
		ports.F("provider", d.provider.ProviderName()),
		ports.F("operation", operation),
		ports.F("event", "request"))...)
	return time.Now()
}

func (d *WeatherProviderLoggingDecorator) logFailure(operation string, fields []ports.Field, started time.Time, err error) {
	d.logger.Error("Weather API request failed", append(fields,
		ports.F("provider", d.provider.ProviderName()),
		ports.F("operation", operation),
		ports.F("event", "error"),
		ports.F("duration_ms", time.Since(started).Milliseconds()),
		ports.F("error", err.Error()))...)
}

func (d *WeatherProviderLoggingDecorator) logCurrent(fields []ports.Field, started time.Time, sample *ports.WeatherSample) {
	d.logger.Info("Weather API request completed", append(fields,
		ports.F("provider", d.provider.ProviderName()),
		ports.F("operation", "current"),
		ports.F("event", "response"),
		ports.F("duration_ms", time.Since(started).Milliseconds()),
		ports.F("resolved_city", sample.CityName),
		ports.F("temperature", sample.Temperature),
		ports.F("humidity", sample.Humidity),
		ports.F("condition", sample.WeatherMain))...)
}
