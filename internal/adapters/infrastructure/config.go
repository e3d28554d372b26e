package infrastructure

import (
	"time"

	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
	zone   *time.Location
}

// NewConfigProviderAdapter creates a config provider over a validated configuration
func NewConfigProviderAdapter(cfg *config.Config) (*ConfigProviderAdapter, error) {
	zone, err := cfg.Widget.DisplayZone()
	if err != nil {
		return nil, err
	}

	return &ConfigProviderAdapter{
		config: cfg,
		zone:   zone,
	}, nil
}

// GetWeatherConfig returns upstream weather API configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		APIKey:        c.config.Weather.APIKey,
		BaseURL:       c.config.Weather.BaseURL,
		Timeout:       c.config.Weather.Timeout(),
		EnableLogging: c.config.Weather.EnableLogging,
		LogFilePath:   c.config.Weather.LogFilePath,
	}
}

// GetWidgetConfig returns presentation-state configuration
func (c *ConfigProviderAdapter) GetWidgetConfig() ports.WidgetConfig {
	return ports.WidgetConfig{
		DefaultCity: c.config.Widget.DefaultCity,
		DisplayZone: c.zone,
		SessionTTL:  c.config.Widget.SessionTTL(),
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetStoreConfig returns session store configuration
func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	return ports.StoreConfig{
		Type: c.config.Store.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Store.Redis.Addr,
			Password:     c.config.Store.Redis.Password,
			DB:           c.config.Store.Redis.DB,
			DialTimeout:  c.config.Store.Redis.DialTimeout,
			ReadTimeout:  c.config.Store.Redis.ReadTimeout,
			WriteTimeout: c.config.Store.Redis.WriteTimeout,
		},
	}
}

// GetGeolocationConfig returns server-side geolocation configuration
func (c *ConfigProviderAdapter) GetGeolocationConfig() ports.GeolocationConfig {
	return ports.GeolocationConfig{
		Enabled: c.config.Geolocation.Enabled,
		BaseURL: c.config.Geolocation.BaseURL,
	}
}

// GetTracingConfig returns span export configuration
func (c *ConfigProviderAdapter) GetTracingConfig() ports.TracingConfig {
	return ports.TracingConfig{
		Enabled:     c.config.Tracing.Enabled,
		ZipkinURL:   c.config.Tracing.ZipkinURL,
		ServiceName: c.config.Tracing.ServiceName,
	}
}
