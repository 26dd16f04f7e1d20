package external

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// RateLimitedWeatherProvider wraps a WeatherProvider with a shared token bucket.
// Every upstream operation waits for one token; a cancelled wait fails the call.
type RateLimitedWeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider creates a new rate limited weather provider.
// rps may be fractional; burst is the number of calls allowed back to back.
func NewRateLimitedWeatherProvider(provider ports.WeatherProvider, rps float64, burst int) *RateLimitedWeatherProvider {
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedWeatherProvider) CurrentByCity(ctx context.Context, city string) (*ports.WeatherSample, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.CurrentByCity(ctx, city)
}

func (r *RateLimitedWeatherProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*ports.WeatherSample, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.CurrentByCoordinates(ctx, lat, lon)
}

func (r *RateLimitedWeatherProvider) ForecastByCity(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.ForecastByCity(ctx, city)
}

// ProviderName returns the provider name
func (r *RateLimitedWeatherProvider) ProviderName() string {
	return fmt.Sprintf("%s [Rate Limited]", r.provider.ProviderName())
}

func (r *RateLimitedWeatherProvider) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewExternalAPIError("rate limit wait canceled", err)
	}
	return nil
}

var _ ports.WeatherProvider = (*RateLimitedWeatherProvider)(nil)
