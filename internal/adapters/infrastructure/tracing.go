package infrastructure

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"weatherwidget.app/internal/ports"
)

// TracerName is the instrumentation name of the widget's spans
const TracerName = "weatherwidget.app"

// Tracing owns the process tracer provider
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// SetupTracing installs a Zipkin-exporting tracer provider and the W3C trace
// context propagator. When tracing is disabled the global no-op provider stays.
func SetupTracing(cfg ports.TracingConfig) (*Tracing, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if !cfg.Enabled {
		return &Tracing{}, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, fmt.Errorf("create zipkin exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return &Tracing{provider: provider}, nil
}

// Enabled reports whether spans are exported
func (t *Tracing) Enabled() bool {
	return t.provider != nil
}

// Tracer returns the widget tracer from the active provider
func (t *Tracing) Tracer() trace.Tracer {
	if t.provider == nil {
		return otel.Tracer(TracerName)
	}
	return t.provider.Tracer(TracerName)
}

// Shutdown flushes pending spans
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
