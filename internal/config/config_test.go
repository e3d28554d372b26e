package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/pkg/errors"
)

var configKeys = []string{
	"SERVER_PORT", "LOG_LEVEL",
	"OPENWEATHERMAP_API_KEY", "OPENWEATHERMAP_API_BASE_URL", "WEATHER_HTTP_TIMEOUT_SECONDS",
	"WEATHER_ENABLE_LOGGING", "WEATHER_LOG_FILE_PATH",
	"WIDGET_DEFAULT_CITY", "WIDGET_DISPLAY_TIMEZONE", "WIDGET_SESSION_TTL_MINUTES",
	"STATE_STORE_TYPE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"REDIS_DIAL_TIMEOUT", "REDIS_READ_TIMEOUT", "REDIS_WRITE_TIMEOUT",
	"GEOLOCATION_ENABLED", "GEOLOCATION_API_BASE_URL",
	"TRACING_ENABLED", "TRACING_ZIPKIN_URL", "TRACING_SERVICE_NAME",
}

// clearEnv unsets every configuration variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "OPENWEATHERMAP_API_KEY must be configured")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "test-api-key", config.Weather.APIKey)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", config.Weather.BaseURL)
		assert.Equal(t, 10*time.Second, config.Weather.Timeout())
		assert.True(t, config.Weather.EnableLogging)
		assert.Equal(t, "logs/weather_client.log", config.Weather.LogFilePath)
		assert.Equal(t, "London", config.Widget.DefaultCity)
		assert.Equal(t, time.Hour, config.Widget.SessionTTL())
		assert.Equal(t, StoreTypeMemory, config.Store.Type)
		assert.Equal(t, "localhost:6379", config.Store.Redis.Addr)
		assert.False(t, config.Geolocation.Enabled)
		assert.Equal(t, "http://ip-api.com", config.Geolocation.BaseURL)
		assert.False(t, config.Tracing.Enabled)
		assert.Equal(t, "weather-widget", config.Tracing.ServiceName)

		zone, err := config.Widget.DisplayZone()
		require.NoError(t, err)
		assert.Equal(t, "UTC", zone.String())
	})

	t.Run("CustomValues", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENWEATHERMAP_API_KEY", "key")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("OPENWEATHERMAP_API_BASE_URL", "http://localhost:8081/data/2.5")
		t.Setenv("WEATHER_HTTP_TIMEOUT_SECONDS", "3")
		t.Setenv("WEATHER_ENABLE_LOGGING", "false")
		t.Setenv("WIDGET_DEFAULT_CITY", "Kyiv")
		t.Setenv("WIDGET_SESSION_TTL_MINUTES", "15")
		t.Setenv("STATE_STORE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("GEOLOCATION_ENABLED", "true")
		t.Setenv("TRACING_ENABLED", "true")
		t.Setenv("TRACING_ZIPKIN_URL", "http://zipkin:9411/api/v2/spans")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "http://localhost:8081/data/2.5", config.Weather.BaseURL)
		assert.Equal(t, 3*time.Second, config.Weather.Timeout())
		assert.False(t, config.Weather.EnableLogging)
		assert.Equal(t, "Kyiv", config.Widget.DefaultCity)
		assert.Equal(t, 15*time.Minute, config.Widget.SessionTTL())
		assert.Equal(t, StoreTypeRedis, config.Store.Type)
		assert.Equal(t, "redis:6379", config.Store.Redis.Addr)
		assert.Equal(t, 2, config.Store.Redis.DB)
		assert.True(t, config.Geolocation.Enabled)
		assert.True(t, config.Tracing.Enabled)
		assert.Equal(t, "http://zipkin:9411/api/v2/spans", config.Tracing.ZipkinURL)
	})

	t.Run("MalformedNumber", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENWEATHERMAP_API_KEY", "key")
		t.Setenv("SERVER_PORT", "eighty")

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Weather: WeatherConfig{
			APIKey:         "key",
			BaseURL:        "https://api.openweathermap.org/data/2.5",
			TimeoutSeconds: 10,
		},
		Widget: WidgetConfig{DefaultCity: "London", DisplayTimezone: "UTC", SessionTTLMinutes: 60},
		Store: StoreConfig{
			Type:  StoreTypeMemory,
			Redis: RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3},
		},
		Geolocation: GeolocationConfig{BaseURL: "http://ip-api.com"},
		Tracing:     TracingConfig{ZipkinURL: "http://localhost:9411/api/v2/spans", ServiceName: "weather-widget"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port too low", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "SERVER_PORT"},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "SERVER_PORT"},
		{name: "blank api key", mutate: func(c *Config) { c.Weather.APIKey = "  " }, wantErr: "OPENWEATHERMAP_API_KEY"},
		{name: "base url scheme", mutate: func(c *Config) { c.Weather.BaseURL = "ftp://example.com" }, wantErr: "OPENWEATHERMAP_API_BASE_URL"},
		{name: "timeout zero", mutate: func(c *Config) { c.Weather.TimeoutSeconds = 0 }, wantErr: "WEATHER_HTTP_TIMEOUT_SECONDS"},
		{
			name:    "logging without path",
			mutate:  func(c *Config) { c.Weather.EnableLogging = true; c.Weather.LogFilePath = "" },
			wantErr: "WEATHER_LOG_FILE_PATH",
		},
		{name: "empty default city", mutate: func(c *Config) { c.Widget.DefaultCity = "" }, wantErr: "WIDGET_DEFAULT_CITY"},
		{name: "unknown zone", mutate: func(c *Config) { c.Widget.DisplayTimezone = "Mars/Olympus" }, wantErr: "WIDGET_DISPLAY_TIMEZONE"},
		{name: "session ttl", mutate: func(c *Config) { c.Widget.SessionTTLMinutes = 0 }, wantErr: "WIDGET_SESSION_TTL_MINUTES"},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Type = StoreTypeUnknown }, wantErr: "STATE_STORE_TYPE"},
		{
			name:    "redis without addr",
			mutate:  func(c *Config) { c.Store.Type = StoreTypeRedis; c.Store.Redis.Addr = "" },
			wantErr: "REDIS_ADDR",
		},
		{
			name:    "redis db out of range",
			mutate:  func(c *Config) { c.Store.Type = StoreTypeRedis; c.Store.Redis.DB = 16 },
			wantErr: "REDIS_DB",
		},
		{
			name:   "redis settings ignored for memory store",
			mutate: func(c *Config) { c.Store.Redis.Addr = "" },
		},
		{
			name:    "geolocation bad url",
			mutate:  func(c *Config) { c.Geolocation.Enabled = true; c.Geolocation.BaseURL = "ip-api.com" },
			wantErr: "GEOLOCATION_API_BASE_URL",
		},
		{
			name:    "tracing without url",
			mutate:  func(c *Config) { c.Tracing.Enabled = true; c.Tracing.ZipkinURL = "" },
			wantErr: "TRACING_ZIPKIN_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoreType(t *testing.T) {
	assert.Equal(t, StoreTypeRedis, StoreTypeFromString(" Redis "))
	assert.Equal(t, StoreTypeUnknown, StoreTypeFromString("memcached"))
	assert.Equal(t, "memory", StoreTypeMemory.String())
	assert.Equal(t, "unknown", StoreTypeUnknown.String())

	var st StoreType
	require.NoError(t, st.UnmarshalText([]byte("memory")))
	assert.Equal(t, StoreTypeMemory, st)

	text, err := StoreTypeRedis.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "redis", string(text))
}
