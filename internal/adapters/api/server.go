// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/statistics"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	metricsHandler http.Handler
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
	startedAt      time.Time
	now            func() time.Time
}

// WeatherUseCase is the part of the weather use case the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrent(ctx context.Context, request weather.CityRequest) (*ports.WeatherSample, error)
	GetCurrentByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*ports.WeatherSample, error)
	GetForecast(ctx context.Context, request weather.CityRequest) ([]ports.ForecastSample, error)
	GetStatistics(ctx context.Context, request weather.CityRequest) (*statistics.Statistics, error)
	GetStatisticsByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*statistics.Statistics, error)
	GetHistory(ctx context.Context, request weather.HistoryRequest) ([]ports.Observation, error)
	GetCacheStats(ctx context.Context) ports.CacheStats
	GetProviderInfo(ctx context.Context) map[string]interface{}
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	// MetricsHandler serves /metrics; the route is skipped when nil
	MetricsHandler http.Handler
	HealthChecker  ports.SystemHealthChecker
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		metricsHandler: opts.MetricsHandler,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
		startedAt:      time.Now(),
		now:            time.Now,
	}

	router.Use(gin.Recovery(), RequestID(), RequestLogger(opts.Logger))
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather/coords", s.getWeatherByCoordinates)
		api.GET("/weather/statistics/coords", s.getStatisticsByCoordinates)
		api.GET("/weather/statistics/:city", s.getStatistics)
		api.GET("/weather/history/:city", s.getHistory)
		api.GET("/weather/:city", s.getWeather)
		api.GET("/forecast/:city", s.getForecast)
		api.GET("/metrics", s.getMetrics)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}
	s.router.GET("/health", s.getHealth)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
