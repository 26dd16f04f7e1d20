package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxTTLMinutes        = 1440
	maxRetentionMinutes  = 10080
	maxPortNumber        = 65535
	maxConnectRetries    = 10
	maxRequestTimeoutSec = 120
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Weather    WeatherConfig    `split_words:"true"`
	Cache      CacheConfig      `split_words:"true"`
	Statistics StatisticsConfig `split_words:"true"`
	History    HistoryConfig    `split_words:"true"`
}

type ServerConfig struct {
	Port     int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string  `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	CurrentTTLMinutes     int     `envconfig:"WEATHER_CURRENT_TTL_MINUTES" default:"10"`
	ForecastTTLMinutes    int     `envconfig:"WEATHER_FORECAST_TTL_MINUTES" default:"30"`
	RequestTimeoutSeconds int     `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS          float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst        int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"10"`
	EnableLogging         bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string  `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

// CurrentTTL returns the staleness window for current weather samples
func (w WeatherConfig) CurrentTTL() time.Duration {
	return time.Duration(w.CurrentTTLMinutes) * time.Minute
}

// ForecastTTL returns the staleness window for forecast lists
func (w WeatherConfig) ForecastTTL() time.Duration {
	return time.Duration(w.ForecastTTLMinutes) * time.Minute
}

// RequestTimeout returns the per-call upstream timeout
func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeValkey
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeValkey:
		return "valkey"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeValkey
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(s) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "valkey":
		return CacheTypeValkey
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type             CacheType    `envconfig:"CACHE_TYPE" default:"memory"`
	RetentionMinutes int          `envconfig:"CACHE_RETENTION_MINUTES" default:"1440"`
	ConnectRetries   int          `envconfig:"CACHE_CONNECT_RETRIES" default:"3"`
	Redis            RedisConfig  `split_words:"true"`
	Valkey           ValkeyConfig `split_words:"true"`
}

// Retention returns how long a cached record is kept by shared backends
func (c CacheConfig) Retention() time.Duration {
	return time.Duration(c.RetentionMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	// KeyPrefix is prepended to every key written by this server
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"weatherdash:"`
}

type ValkeyConfig struct {
	Addr     string `envconfig:"VALKEY_ADDR" default:"localhost:6379"`
	Password string `envconfig:"VALKEY_PASSWORD" default:""`
	DB       int    `envconfig:"VALKEY_DB" default:"0"`
	// RESP2 forces the RESP2 protocol for servers that do not speak HELLO 3
	RESP2     bool   `envconfig:"VALKEY_RESP2" default:"false"`
	KeyPrefix string `envconfig:"VALKEY_KEY_PREFIX" default:"weatherdash:"`
}

type StatisticsConfig struct {
	Timezone string `envconfig:"STATS_TIMEZONE" default:"Local"`
}

// Location resolves the configured timezone used for weekly bucketing
func (s StatisticsConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

type HistoryConfig struct {
	Enabled      bool           `envconfig:"HISTORY_ENABLED" default:"false"`
	DefaultLimit int            `envconfig:"HISTORY_DEFAULT_LIMIT" default:"24"`
	Database     DatabaseConfig `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Statistics.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

// Validate checks the upstream settings. A missing API key is accepted here:
// requests then fail individually with an upstream auth error.
func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapBaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.OpenWeatherMapBaseURL, "http://") && !strings.HasPrefix(w.OpenWeatherMapBaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.CurrentTTLMinutes < 1 || w.CurrentTTLMinutes > maxTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CURRENT_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.ForecastTTLMinutes < 1 || w.ForecastTTLMinutes > maxTTLMinutes {
		return errors.NewConfigurationError("WEATHER_FORECAST_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxRequestTimeoutSec {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, valkey", nil)
	}
	if c.RetentionMinutes < 1 || c.RetentionMinutes > maxRetentionMinutes {
		return errors.NewConfigurationError("CACHE_RETENTION_MINUTES must be between 1 and 10080 minutes", nil)
	}
	if c.ConnectRetries < 0 || c.ConnectRetries > maxConnectRetries {
		return errors.NewConfigurationError("CACHE_CONNECT_RETRIES must be between 0 and 10", nil)
	}

	switch c.Type {
	case CacheTypeRedis:
		return c.Redis.Validate()
	case CacheTypeValkey:
		return c.Valkey.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (v *ValkeyConfig) Validate() error {
	if v.Addr == "" {
		return errors.NewConfigurationError("VALKEY_ADDR cannot be empty when using Valkey cache", nil)
	}
	if v.DB < 0 || v.DB > maxRedisDB {
		return errors.NewConfigurationError("VALKEY_DB must be between 0 and 15", nil)
	}
	return nil
}

func (s *StatisticsConfig) Validate() error {
	if _, err := s.Location(); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("STATS_TIMEZONE %q is not a known timezone", s.Timezone), err)
	}
	return nil
}

func (h *HistoryConfig) Validate() error {
	if !h.Enabled {
		return nil
	}
	if h.DefaultLimit < 1 || h.DefaultLimit > 200 {
		return errors.NewConfigurationError("HISTORY_DEFAULT_LIMIT must be between 1 and 200", nil)
	}
	return h.Database.Validate()
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}
