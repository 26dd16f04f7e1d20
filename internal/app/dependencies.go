package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

type DependencyContainer struct {
	config       *config.Config
	db           *gorm.DB
	ownsDB       bool
	cacheBackend ports.CacheProvider
	fileLogger   *infrastructure.FileLoggerAdapter
	metrics      *infrastructure.PrometheusMetricsCollector
	ports        *ports.ApplicationPorts
}

// DependencyOption customizes the container, mostly for tests
type DependencyOption func(*DependencyContainer)

// WithDatabase supplies an already opened history database instead of dialing Postgres
func WithDatabase(db *gorm.DB) DependencyOption {
	return func(c *DependencyContainer) {
		c.db = db
	}
}

// openDatabase dials the history database. Tests replace it.
var openDatabase = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func NewDependencyContainer(ctx context.Context, cfg *config.Config, opts ...DependencyOption) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:  cfg,
		metrics: infrastructure.NewPrometheusMetricsCollector(),
	}
	for _, opt := range opts {
		opt(container)
	}

	if cfg.History.Enabled {
		if err := container.initializeDatabase(); err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
	}

	if err := container.initializePorts(ctx); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	if c.db == nil {
		slog.Info("Initializing database connection...")

		db, err := openDatabase(c.config.History.Database.GetDSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		c.db = db
		c.ownsDB = true
	}

	slog.Info("Running database migrations...")
	if err := database.NewHistoryRepositoryAdapter(c.db).Migrate(); err != nil {
		if closeErr := c.closeDatabase(); closeErr != nil {
			slog.Warn("Failed to close database after migration error", "error", closeErr)
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("Database ready")
	return nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context) error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	var providerLogger ports.Logger = logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider traffic logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	provider := BuildWeatherProvider(c.config.Weather, providerLogger, c.metrics)

	store, backend, err := external.NewCacheProviderFactory().CreateWeatherStore(ctx, &c.config.Cache)
	if err != nil {
		return fmt.Errorf("create weather store: %w", err)
	}
	c.cacheBackend = backend
	slog.Info("Weather store initialized", "type", c.config.Cache.Type.String())

	checkers := map[string]ports.HealthChecker{
		"upstream": infrastructure.NewUpstreamHealthChecker(provider, configProvider),
	}
	pinger, _ := backend.(infrastructure.Pinger)
	checkers["cache"] = infrastructure.NewCacheHealthChecker(c.config.Cache.Type.String(), pinger)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		WeatherStore:    store,
		Metrics:         c.metrics,
		ConfigProvider:  configProvider,
		Logger:          logger,
	}

	if c.config.History.Enabled && c.db != nil {
		c.ports.History = database.NewHistoryRepositoryAdapter(c.db)
		checkers["history"] = infrastructure.NewDatabaseHealthChecker(c.db)
	}
	c.ports.HealthChecker = infrastructure.NewSystemHealthChecker(checkers)

	slog.Info("Ports initialized successfully")
	return nil
}

// BuildWeatherProvider assembles the OpenWeatherMap adapter with its decorators. The
// rate limiter sits outside the logger so waiting time is not counted as upstream latency.
// metrics may be nil.
func BuildWeatherProvider(cfg config.WeatherConfig, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherProvider {
	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  cfg.OpenWeatherMapKey,
		BaseURL: cfg.OpenWeatherMapBaseURL,
		Timeout: cfg.RequestTimeout(),
		Logger:  logger,
	})

	if metrics != nil {
		provider = external.NewInstrumentedWeatherProvider(provider, metrics)
	}
	if cfg.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, logger)
	}
	if cfg.RateLimitRPS > 0 {
		provider = external.NewRateLimitedWeatherProvider(provider, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return provider
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases the cache connection, the provider log file and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if closer, ok := c.cacheBackend.(io.Closer); ok {
		keep(closer.Close())
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	keep(c.closeDatabase())
	return firstErr
}

// closeDatabase closes the history connection if the container opened it
func (c *DependencyContainer) closeDatabase() error {
	if c.db == nil || !c.ownsDB {
		return nil
	}
	db, err := c.db.DB()
	if err != nil {
		return err
	}
	c.db = nil
	c.ownsDB = false
	return db.Close()
}
