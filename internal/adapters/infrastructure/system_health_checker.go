package infrastructure

import (
	"context"

	"weatherwidget.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherAPIChecker ports.HealthChecker
	StoreChecker      ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.WeatherAPIChecker != nil {
		checkers["weatherAPI"] = config.WeatherAPIChecker
	}
	if config.StoreChecker != nil {
		checkers["sessionStore"] = config.StoreChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		widget := s.configProvider.GetWidgetConfig()
		details := map[string]interface{}{
			"defaultCity": widget.DefaultCity,
			"geolocation": s.configProvider.GetGeolocationConfig().Enabled,
			"tracing":     s.configProvider.GetTracingConfig().Enabled,
		}
		if widget.DisplayZone != nil {
			details["displayZone"] = widget.DisplayZone.String()
		}
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details:   details,
		}
	}

	return results
}
