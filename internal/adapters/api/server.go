// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"weatherwidget.app/internal/assets"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	widgetUseCase  WidgetUseCase
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	tracer         trace.Tracer
}

// WidgetUseCase is the widget interaction surface the HTTP adapter drives
type WidgetUseCase interface {
	EnsureSession(ctx context.Context, sessionID string) error
	Search(ctx context.Context, sessionID, city string) error
	Locate(ctx context.Context, sessionID string, request widget.LocateRequest) error
	ToggleUnit(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (*widget.ViewModel, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WidgetUseCase  WidgetUseCase
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	// Tracer is optional; requests are traced only when it is set.
	Tracer trace.Tracer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	RegisterValidations()
	router := gin.Default()

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		widgetUseCase:  opts.WidgetUseCase,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		tracer:         opts.Tracer,
	}

	if err := server.setupTemplates(); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WidgetUseCase == nil {
		return errors.NewValidationError("widget use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupTemplates() error {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	s.router.SetHTMLTemplate(tmpl)
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	if s.tracer != nil {
		s.router.Use(tracingMiddleware(s.tracer))
	}

	page := s.router.Group("/", s.sessionMiddleware())
	{
		page.GET("/", s.showWidget)
		page.POST("/search", s.submitSearch)
		page.POST("/locate", s.submitLocate)
		page.POST("/unit", s.submitToggleUnit)
	}

	api := s.router.Group("/api")
	{
		api.GET("/health", s.getHealth)

		widgetAPI := api.Group("/widget", s.sessionMiddleware())
		widgetAPI.GET("", s.getWidget)
		widgetAPI.POST("/search", s.searchWidget)
		widgetAPI.POST("/locate", s.locateWidget)
		widgetAPI.POST("/unit", s.toggleWidgetUnit)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	s.setupStaticFiles()
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles serves the embedded icon set
func (s *HTTPServerAdapter) setupStaticFiles() {
	s.router.StaticFS("/static/icons", http.FS(assets.FS()))
}
