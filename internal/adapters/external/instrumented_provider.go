package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// Upstream operation labels reported to the metrics collector
const (
	EndpointCurrent  = "current"
	EndpointForecast = "forecast"
)

// InstrumentedWeatherProvider reports the outcome and latency of every upstream operation
type InstrumentedWeatherProvider struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

func NewInstrumentedWeatherProvider(provider ports.WeatherProvider, metrics ports.MetricsCollector) *InstrumentedWeatherProvider {
	return &InstrumentedWeatherProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedWeatherProvider) CurrentByCity(ctx context.Context, city string) (*ports.WeatherSample, error) {
	started := time.Now()
	sample, err := p.provider.CurrentByCity(ctx, city)
	p.metrics.RecordUpstreamRequest(EndpointCurrent, err == nil, time.Since(started))
	return sample, err
}

func (p *InstrumentedWeatherProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*ports.WeatherSample, error) {
	started := time.Now()
	sample, err := p.provider.CurrentByCoordinates(ctx, lat, lon)
	p.metrics.RecordUpstreamRequest(EndpointCurrent, err == nil, time.Since(started))
	return sample, err
}

func (p *InstrumentedWeatherProvider) ForecastByCity(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	started := time.Now()
	samples, err := p.provider.ForecastByCity(ctx, city)
	p.metrics.RecordUpstreamRequest(EndpointForecast, err == nil, time.Since(started))
	return samples, err
}

func (p *InstrumentedWeatherProvider) ProviderName() string {
	return p.provider.ProviderName()
}

var _ ports.WeatherProvider = (*InstrumentedWeatherProvider)(nil)
