package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	tracing *infrastructure.Tracing
	closers []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup(context.Background())
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	configProvider, err := infrastructure.NewConfigProviderAdapter(c.config)
	if err != nil {
		return fmt.Errorf("create config provider: %w", err)
	}

	logger := infrastructure.NewSlogLoggerAdapter(os.Stdout, infrastructure.ParseLogLevel(c.config.LogLevel))
	weatherConfig := configProvider.GetWeatherConfig()

	// Upstream request log goes to a file when enabled, alongside the process log
	var clientLogger ports.Logger = logger
	if weatherConfig.EnableLogging && weatherConfig.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherConfig.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			clientLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", weatherConfig.LogFilePath)
		}
	}

	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	c.tracing, err = infrastructure.SetupTracing(configProvider.GetTracingConfig())
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}

	weatherClient := c.buildWeatherClient(weatherConfig, logger, clientLogger)

	storeConfig := configProvider.GetStoreConfig()
	keyValueStore, err := external.NewKeyValueStoreFactory().CreateKeyValueStore(&storeConfig)
	if err != nil {
		slog.Error("Failed to create session store", "error", err)
		return fmt.Errorf("create session store: %w", err)
	}
	if closer, ok := keyValueStore.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	if stats, ok := keyValueStore.(infrastructure.StoreStatsSource); ok {
		if err := c.metrics.RegisterStoreStats(storeConfig.Type, stats); err != nil {
			return fmt.Errorf("register store metrics: %w", err)
		}
	}

	slog.Info("Session store initialized",
		"type", storeConfig.Type,
		"redis_addr", storeConfig.Redis.Addr)

	var locator ports.Locator
	if geo := configProvider.GetGeolocationConfig(); geo.Enabled {
		locator = external.NewIPLocator(external.IPLocatorParams{
			BaseURL: geo.BaseURL,
			Timeout: weatherConfig.Timeout,
			Logger:  logger,
		})
		slog.Info("Server-side geolocation enabled", "base_url", geo.BaseURL)
	}

	c.ports = &ports.ApplicationPorts{
		// Weather
		WeatherClient: weatherClient,
		Locator:       locator,

		// Widget state
		KeyValueStore: keyValueStore,
		SessionStore:  external.NewSessionStoreAdapter(keyValueStore),

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// buildWeatherClient stacks metrics, logging and tracing around the OpenWeatherMap client
func (c *DependencyContainer) buildWeatherClient(cfg ports.WeatherConfig, logger, clientLogger ports.Logger) ports.WeatherClient {
	var client ports.WeatherClient = external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})

	// innermost, so the provider label is the bare client name
	client = external.NewWeatherClientMetricsDecorator(client, c.metrics)

	if cfg.EnableLogging {
		client = external.NewWeatherClientLoggingDecorator(client, clientLogger)
		slog.Info("Weather client logging enabled")
	}

	if c.tracing.Enabled() {
		client = external.NewWeatherClientTracingDecorator(client, c.tracing.Tracer())
		slog.Info("Weather client tracing enabled")
	}

	return client
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

func (c *DependencyContainer) Tracing() *infrastructure.Tracing {
	return c.tracing
}

// Cleanup flushes spans and closes files and connections
func (c *DependencyContainer) Cleanup(ctx context.Context) error {
	var firstErr error

	if c.tracing != nil {
		if err := c.tracing.Shutdown(ctx); err != nil {
			slog.Warn("Error shutting down tracing", "error", err)
			firstErr = err
		}
	}

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			slog.Warn("Error closing resource", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	c.closers = nil

	return firstErr
}
