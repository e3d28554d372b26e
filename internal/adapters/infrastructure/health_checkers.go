package infrastructure

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
)

const (
	statusHealthy   = ports.StatusHealthy
	statusUnhealthy = ports.StatusUnhealthy
)

// Pinger is implemented by stores that can verify their backend connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker reports whether the session store backend answers
type StoreHealthChecker struct {
	store     Pinger
	storeType string
}

func NewStoreHealthChecker(storeType string, store Pinger) *StoreHealthChecker {
	return &StoreHealthChecker{store: store, storeType: storeType}
}

func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "sessionStore",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": s.storeType,
		},
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "session store is not available"
		return status
	}

	start := time.Now()
	if err := s.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	status.Details["latency_ms"] = time.Since(start).Milliseconds()

	return status
}

// WeatherAPIHealthChecker reports the configured upstream without calling it,
// since every probe would spend API quota.
type WeatherAPIHealthChecker struct {
	client ports.WeatherClient
	config ports.WeatherConfig
}

func NewWeatherAPIHealthChecker(client ports.WeatherClient, config ports.WeatherConfig) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{client: client, config: config}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"base_url":        w.config.BaseURL,
			"timeout_seconds": w.config.Timeout.Seconds(),
		},
	}

	if w.client == nil {
		status.Status = statusUnhealthy
		status.Error = "weather client is not available"
		return status
	}
	status.Details["provider"] = w.client.GetProviderName()

	if w.config.APIKey == "" {
		status.Status = statusUnhealthy
		status.Error = "API key is not configured"
	}

	return status
}
