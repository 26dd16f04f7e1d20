package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherStore    WeatherStore
	History         HistoryRepository

	// Infrastructure
	Metrics        MetricsCollector
	ConfigProvider ConfigProvider
	Logger         Logger
	HealthChecker  SystemHealthChecker
}
