package weather

import (
	"context"
	"fmt"

	"weatherdash.app/internal/core/statistics"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	provider   ports.WeatherProvider
	store      ports.WeatherStore
	history    ports.HistoryRepository
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	freshness  FreshnessPolicy
	aggregator *statistics.Aggregator
}

// UseCaseDependencies lists the collaborators of UseCase. History and Aggregator are optional:
// a nil History disables observation recording.
type UseCaseDependencies struct {
	Provider   ports.WeatherProvider
	Store      ports.WeatherStore
	History    ports.HistoryRepository
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Aggregator *statistics.Aggregator
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("weather store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	aggregator := deps.Aggregator
	if aggregator == nil {
		aggregator = statistics.NewAggregator(nil)
	}

	weatherConfig := deps.Config.GetWeatherConfig()
	freshness := NewFreshnessPolicy(weatherConfig.CurrentTTL, weatherConfig.ForecastTTL)
	freshness.Now = aggregator.CurrentTime

	return &UseCase{
		provider:   deps.Provider,
		store:      deps.Store,
		history:    deps.History,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		freshness:  freshness,
		aggregator: aggregator,
	}, nil
}

// GetCurrent serves the cached sample for the city while it is fresh and refreshes it otherwise
func (uc *UseCase) GetCurrent(ctx context.Context, request CityRequest) (*ports.WeatherSample, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	city := request.City
	uc.logger.Debug("Getting current weather", ports.F("city", city))

	if cached := uc.cachedCurrent(ctx, city); cached != nil {
		return cached, nil
	}

	sample, err := uc.provider.CurrentByCity(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to fetch current weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get current weather for %s: %w", city, uc.classifyProviderError(err))
	}

	uc.storeCurrent(ctx, sample)
	return sample, nil
}

// GetCurrentByCoordinates always reaches the provider; the result is stored under its city name
func (uc *UseCase) GetCurrentByCoordinates(ctx context.Context, request CoordinatesRequest) (*ports.WeatherSample, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid coordinates: " + err.Error())
	}

	uc.logger.Debug("Getting current weather by coordinates",
		ports.F("lat", request.Latitude),
		ports.F("lon", request.Longitude))

	sample, err := uc.provider.CurrentByCoordinates(ctx, request.Latitude, request.Longitude)
	if err != nil {
		uc.logger.Error("Failed to fetch current weather by coordinates",
			ports.F("lat", request.Latitude),
			ports.F("lon", request.Longitude),
			ports.F("error", err))
		return nil, fmt.Errorf("get current weather for %.4f,%.4f: %w",
			request.Latitude, request.Longitude, uc.classifyProviderError(err))
	}

	uc.storeCurrent(ctx, sample)
	return sample, nil
}

// GetForecast serves the cached forecast while fresh, otherwise replaces it with a new one
func (uc *UseCase) GetForecast(ctx context.Context, request CityRequest) ([]ports.ForecastSample, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid forecast request: " + err.Error())
	}
	return uc.forecastFor(ctx, request.City)
}

// GetStatistics aggregates the current sample and forecast of a city
func (uc *UseCase) GetStatistics(ctx context.Context, request CityRequest) (*statistics.Statistics, error) {
	current, err := uc.GetCurrent(ctx, request)
	if err != nil {
		return nil, err
	}
	return uc.statisticsFor(ctx, current)
}

// GetStatisticsByCoordinates aggregates using the city the provider resolved for the coordinates
func (uc *UseCase) GetStatisticsByCoordinates(ctx context.Context, request CoordinatesRequest) (*statistics.Statistics, error) {
	current, err := uc.GetCurrentByCoordinates(ctx, request)
	if err != nil {
		return nil, err
	}
	return uc.statisticsFor(ctx, current)
}

// GetHistory lists recorded observations for a city, newest first
func (uc *UseCase) GetHistory(ctx context.Context, request HistoryRequest) ([]ports.Observation, error) {
	historyConfig := uc.config.GetHistoryConfig()
	if uc.history == nil || !historyConfig.Enabled {
		return nil, errors.NewNotFoundError("Observation history is not enabled")
	}

	cityRequest := CityRequest{City: request.City}
	if err := cityRequest.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid history request: " + err.Error())
	}

	limit := request.Limit
	switch {
	case limit < 0:
		return nil, errors.NewValidationError("limit must not be negative")
	case limit == 0:
		limit = historyConfig.DefaultLimit
	case historyConfig.MaxLimit > 0 && limit > historyConfig.MaxLimit:
		limit = historyConfig.MaxLimit
	}

	observations, err := uc.history.Recent(ctx, ports.CityKey(request.City), limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load observation history", err)
	}
	return observations, nil
}

// GetCacheStats returns the store hit/miss counters
func (uc *UseCase) GetCacheStats(ctx context.Context) ports.CacheStats {
	return uc.metrics.CacheStats()
}

// GetProviderInfo describes the upstream provider and cache backend
func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	weatherConfig := uc.config.GetWeatherConfig()
	cacheConfig := uc.config.GetCacheConfig()
	return map[string]interface{}{
		"provider":             uc.provider.ProviderName(),
		"api_key_configured":   weatherConfig.HasAPIKey,
		"cache_type":           cacheConfig.Type,
		"current_ttl_seconds":  weatherConfig.CurrentTTL.Seconds(),
		"forecast_ttl_seconds": weatherConfig.ForecastTTL.Seconds(),
		"history_enabled":      uc.history != nil && uc.config.GetHistoryConfig().Enabled,
	}
}

func (uc *UseCase) statisticsFor(ctx context.Context, current *ports.WeatherSample) (*statistics.Statistics, error) {
	forecast, err := uc.forecastFor(ctx, current.CityName)
	if err != nil {
		return nil, err
	}
	stats := uc.aggregator.Compute(current, forecast)
	return &stats, nil
}

func (uc *UseCase) forecastFor(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	cached, err := uc.store.GetForecast(ctx, city)
	if err != nil {
		uc.logger.Warn("Failed to read forecast from store",
			ports.F("city", city),
			ports.F("error", err))
	} else if uc.freshness.ForecastFresh(cached) {
		uc.metrics.RecordCacheLookup(ports.LookupForecast, true)
		uc.logger.Debug("Forecast found in store", ports.F("city", city))
		return cached, nil
	}
	uc.metrics.RecordCacheLookup(ports.LookupForecast, false)

	forecast, err := uc.provider.ForecastByCity(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to fetch forecast",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for %s: %w", city, uc.classifyProviderError(err))
	}

	storeCity := forecastCity(city, forecast)
	if err := uc.store.ReplaceForecast(ctx, storeCity, forecast); err != nil {
		uc.logger.Warn("Failed to store forecast",
			ports.F("city", storeCity),
			ports.F("error", err))
	}

	return forecast, nil
}

func (uc *UseCase) cachedCurrent(ctx context.Context, city string) *ports.WeatherSample {
	cached, found, err := uc.store.GetCurrent(ctx, city)
	if err != nil {
		uc.logger.Warn("Failed to read current weather from store",
			ports.F("city", city),
			ports.F("error", err))
	}

	if err == nil && found && uc.freshness.CurrentFresh(cached) {
		uc.metrics.RecordCacheLookup(ports.LookupCurrent, true)
		uc.logger.Debug("Current weather found in store", ports.F("city", city))
		return cached
	}

	uc.metrics.RecordCacheLookup(ports.LookupCurrent, false)
	return nil
}

func (uc *UseCase) storeCurrent(ctx context.Context, sample *ports.WeatherSample) {
	if err := uc.store.PutCurrent(ctx, sample); err != nil {
		uc.logger.Warn("Failed to store current weather",
			ports.F("city", sample.CityName),
			ports.F("error", err))
	}

	if uc.history == nil || !uc.config.GetHistoryConfig().Enabled {
		return
	}
	if err := uc.history.Record(ctx, sample); err != nil {
		uc.logger.Warn("Failed to record observation",
			ports.F("city", sample.CityName),
			ports.F("error", err))
	}
}

// classifyProviderError keeps typed provider errors and treats anything else as an upstream failure
func (uc *UseCase) classifyProviderError(err error) error {
	switch errors.TypeOf(err) {
	case errors.NotFoundError, errors.UpstreamAuthError, errors.ExternalAPIError, errors.ValidationError:
		return err
	default:
		return errors.NewExternalAPIError("weather provider failed", err)
	}
}

// forecastCity is the name the provider resolved the forecast to, falling back to the request
func forecastCity(requested string, forecast []ports.ForecastSample) string {
	if len(forecast) > 0 && forecast[0].CityName != "" {
		return forecast[0].CityName
	}
	return requested
}
