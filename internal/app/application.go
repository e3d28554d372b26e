package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/api"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/assets"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
)

const storeSweepInterval = time.Minute

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase *weather.UseCase
	widgetUseCase  *widget.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
}

// sweeper is implemented by stores that expire entries lazily
type sweeper interface {
	Sweep() int
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig builds the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup(context.Background())
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup(context.Background())
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Client: a.ports.WeatherClient,
		Icons:  assets.NewIconMap(),
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	widgetUseCase, err := widget.NewUseCase(widget.UseCaseDependencies{
		Weather: a.weatherUseCase,
		Store:   a.ports.SessionStore,
		Locator: a.ports.Locator,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create widget use case: %w", err)
	}
	a.widgetUseCase = widgetUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	storeConfig := a.ports.ConfigProvider.GetStoreConfig()
	var storeChecker ports.HealthChecker
	if pinger, ok := a.ports.KeyValueStore.(infrastructure.Pinger); ok {
		storeChecker = infrastructure.NewStoreHealthChecker(storeConfig.Type, pinger)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(
			a.ports.WeatherClient, a.ports.ConfigProvider.GetWeatherConfig()),
		StoreChecker:   storeChecker,
		ConfigProvider: a.ports.ConfigProvider,
	})

	serverOptions := api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WidgetUseCase:  a.widgetUseCase,
		HealthChecker:  systemHealthChecker,
		MetricsHandler: a.deps.Metrics().Handler(),
	}
	if a.deps.Tracing().Enabled() {
		serverOptions.Tracer = a.deps.Tracing().Tracer()
	}

	httpAdapter, err := api.NewHTTPServerAdapter(serverOptions)
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      httpAdapter.GetRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.startStoreSweeper(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startStoreSweeper drops expired sessions from stores without native expiry
func (a *Application) startStoreSweeper(ctx context.Context) {
	store, ok := a.ports.KeyValueStore.(sweeper)
	if !ok {
		return
	}

	slog.Info("Starting session sweeper...", "interval", storeSweepInterval)
	ticker := time.NewTicker(storeSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session sweeper stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				slog.Debug("Expired sessions removed", "count", removed)
			}
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(ctx); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases resources of an application that was never started
func (a *Application) Close(ctx context.Context) error {
	a.stopOnce.Do(func() { close(a.stopChan) })
	return a.deps.Cleanup(ctx)
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetWidgetUseCase returns the widget use case
func (a *Application) GetWidgetUseCase() *widget.UseCase {
	return a.widgetUseCase
}
