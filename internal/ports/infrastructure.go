package ports

import (
	"time"
)

// WeatherConfig represents upstream weather API configuration
type WeatherConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	EnableLogging bool
	LogFilePath   string
}

// WidgetConfig represents presentation-state configuration
type WidgetConfig struct {
	DefaultCity string
	DisplayZone *time.Location
	SessionTTL  time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// StoreConfig represents session store configuration
type StoreConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// GeolocationConfig represents server-side geolocation configuration
type GeolocationConfig struct {
	Enabled bool
	BaseURL string
}

// TracingConfig represents span export configuration
type TracingConfig struct {
	Enabled     bool
	ZipkinURL   string
	ServiceName string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetWidgetConfig() WidgetConfig
	GetServerConfig() ServerConfig
	GetStoreConfig() StoreConfig
	GetGeolocationConfig() GeolocationConfig
	GetTracingConfig() TracingConfig
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

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordWeatherAPICall(provider, operation string, success bool, duration time.Duration)
	RecordStaleResponse(operation string)
	RecordNotice(level string)
}
