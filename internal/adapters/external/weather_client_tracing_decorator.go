package external

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherClientTracingDecorator opens a client span around every upstream request
type WeatherClientTracingDecorator struct {
	client ports.WeatherClient
	tracer trace.Tracer
}

// NewWeatherClientTracingDecorator creates a new tracing decorator for weather clients
func NewWeatherClientTracingDecorator(client ports.WeatherClient, tracer trace.Tracer) ports.WeatherClient {
	return &WeatherClientTracingDecorator{
		client: client,
		tracer: tracer,
	}
}

func (d *WeatherClientTracingDecorator) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.CurrentConditions, error) {
	ctx, span := d.start(ctx, "weather.current", location)
	defer span.End()

	conditions, err := d.client.GetCurrentWeather(ctx, location)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("weather.place", conditions.Place))
	return conditions, nil
}

func (d *WeatherClientTracingDecorator) GetForecast(ctx context.Context, location ports.Location) ([]ports.ForecastItem, error) {
	ctx, span := d.start(ctx, "weather.forecast", location)
	defer span.End()

	items, err := d.client.GetForecast(ctx, location)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("weather.forecast.entries", len(items)))
	return items, nil
}

func (d *WeatherClientTracingDecorator) GetProviderName() string {
	return d.client.GetProviderName()
}

func (d *WeatherClientTracingDecorator) start(ctx context.Context, name string, location ports.Location) (context.Context, trace.Span) {
	return d.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("weather.provider", d.client.GetProviderName()),
			attribute.String("weather.location", describeLocation(location)),
		))
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if appErr, ok := errors.As(err); ok {
		span.SetAttributes(attribute.String("error.type", appErr.Type.String()))
		if appErr.Status != 0 {
			span.SetAttributes(attribute.Int("http.status_code", appErr.Status))
		}
	}
}
