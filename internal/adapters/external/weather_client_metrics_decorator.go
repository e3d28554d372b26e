package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
)

// WeatherClientMetricsDecorator records call outcome and latency for every upstream request
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics ports.MetricsCollector
}

// NewWeatherClientMetricsDecorator creates a new metrics decorator for weather clients
func NewWeatherClientMetricsDecorator(client ports.WeatherClient, metrics ports.MetricsCollector) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{
		client:  client,
		metrics: metrics,
	}
}

func (d *WeatherClientMetricsDecorator) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.CurrentConditions, error) {
	startTime := time.Now()
	conditions, err := d.client.GetCurrentWeather(ctx, location)
	d.metrics.RecordWeatherAPICall(d.client.GetProviderName(), "current", err == nil, time.Since(startTime))
	return conditions, err
}

func (d *WeatherClientMetricsDecorator) GetForecast(ctx context.Context, location ports.Location) ([]ports.ForecastItem, error) {
	startTime := time.Now()
	items, err := d.client.GetForecast(ctx, location)
	d.metrics.RecordWeatherAPICall(d.client.GetProviderName(), "forecast", err == nil, time.Since(startTime))
	return items, err
}

func (d *WeatherClientMetricsDecorator) GetProviderName() string {
	return d.client.GetProviderName()
}
