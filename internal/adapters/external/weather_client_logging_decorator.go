package external

import (
	"context"
	"fmt"
	"time"

	"weatherwidget.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// GetCurrentWeather wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.CurrentConditions, error) {
	providerName := d.client.GetProviderName()
	d.logRequest(providerName, "current", location)

	startTime := time.Now()
	conditions, err := d.client.GetCurrentWeather(ctx, location)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "current", location, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "current"),
		ports.F("location", describeLocation(location)),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("place", conditions.Place))

	return conditions, nil
}

// GetForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) GetForecast(ctx context.Context, location ports.Location) ([]ports.ForecastItem, error) {
	providerName := d.client.GetProviderName()
	d.logRequest(providerName, "forecast", location)

	startTime := time.Now()
	items, err := d.client.GetForecast(ctx, location)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "forecast", location, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "forecast"),
		ports.F("location", describeLocation(location)),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("entries", len(items)))

	return items, nil
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *WeatherClientLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}

func (d *WeatherClientLoggingDecorator) logRequest(providerName, operation string, location ports.Location) {
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("location", describeLocation(location)),
		ports.F("event", "request"))
}

func (d *WeatherClientLoggingDecorator) logFailure(providerName, operation string, location ports.Location, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("location", describeLocation(location)),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

func describeLocation(location ports.Location) string {
	if location.Coordinates != nil {
		return fmt.Sprintf("%.4f,%.4f", location.Coordinates.Lat, location.Coordinates.Lon)
	}
	return location.City
}
