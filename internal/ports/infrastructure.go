package ports

import "time"

// WeatherConfig represents weather service configuration
type WeatherConfig struct {
	CurrentTTL  time.Duration
	ForecastTTL time.Duration
	HasAPIKey   bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	Retention time.Duration
}

// HistoryConfig represents observation history configuration
type HistoryConfig struct {
	Enabled      bool
	DefaultLimit int
	MaxLimit     int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetHistoryConfig() HistoryConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Cache lookup kinds
const (
	LookupCurrent  = "current"
	LookupForecast = "forecast"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheLookup(kind string, hit bool)
	RecordUpstreamRequest(endpoint string, success bool, duration time.Duration)
	CacheStats() CacheStats
}
