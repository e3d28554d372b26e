package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherwidget.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxPortNumber        = 65535
	maxTimeoutSeconds    = 120
	maxSessionTTLMinutes = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Widget      WidgetConfig      `split_words:"true"`
	Store       StoreConfig       `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Tracing     TracingConfig     `split_words:"true"`
	LogLevel    string            `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey         string `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL        string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging  bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath    string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_client.log"`
}

// Timeout is the per-request upstream timeout
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

type WidgetConfig struct {
	DefaultCity       string `envconfig:"WIDGET_DEFAULT_CITY" default:"London"`
	DisplayTimezone   string `envconfig:"WIDGET_DISPLAY_TIMEZONE" default:"UTC"`
	SessionTTLMinutes int    `envconfig:"WIDGET_SESSION_TTL_MINUTES" default:"60"`
}

// DisplayZone resolves the zone forecast days are labelled in
func (w WidgetConfig) DisplayZone() (*time.Location, error) {
	zone, err := time.LoadLocation(w.DisplayTimezone)
	if err != nil {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("WIDGET_DISPLAY_TIMEZONE %q is not a known time zone", w.DisplayTimezone), err)
	}
	return zone, nil
}

// SessionTTL is how long an idle widget session is kept
func (w WidgetConfig) SessionTTL() time.Duration {
	return time.Duration(w.SessionTTLMinutes) * time.Minute
}

// StoreType represents the backend holding widget sessions
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
)

// String returns the string representation of the store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type  StoreType   `envconfig:"STATE_STORE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type GeolocationConfig struct {
	Enabled bool   `envconfig:"GEOLOCATION_ENABLED" default:"false"`
	BaseURL string `envconfig:"GEOLOCATION_API_BASE_URL" default:"http://ip-api.com"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"TRACING_ENABLED" default:"false"`
	ZipkinURL   string `envconfig:"TRACING_ZIPKIN_URL" default:"http://localhost:9411/api/v2/spans"`
	ServiceName string `envconfig:"TRACING_SERVICE_NAME" default:"weather-widget"`
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
	if err := c.Widget.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if err := validateHTTPURL("OPENWEATHERMAP_API_BASE_URL", w.BaseURL); err != nil {
		return err
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (w *WidgetConfig) Validate() error {
	if strings.TrimSpace(w.DefaultCity) == "" {
		return errors.NewConfigurationError("WIDGET_DEFAULT_CITY cannot be empty", nil)
	}
	if _, err := w.DisplayZone(); err != nil {
		return err
	}
	if w.SessionTTLMinutes < 1 || w.SessionTTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("WIDGET_SESSION_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STATE_STORE_TYPE must be one of: memory, redis", nil)
	}

	if s.Type == StoreTypeRedis {
		return s.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis store", nil)
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

func (g *GeolocationConfig) Validate() error {
	if !g.Enabled {
		return nil
	}
	return validateHTTPURL("GEOLOCATION_API_BASE_URL", g.BaseURL)
}

func (t *TracingConfig) Validate() error {
	if !t.Enabled {
		return nil
	}
	if t.ServiceName == "" {
		return errors.NewConfigurationError("TRACING_SERVICE_NAME cannot be empty when tracing is enabled", nil)
	}
	return validateHTTPURL("TRACING_ZIPKIN_URL", t.ZipkinURL)
}

func validateHTTPURL(name, raw string) error {
	if raw == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
