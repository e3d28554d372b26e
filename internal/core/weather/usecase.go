package weather

import (
	"context"
	"fmt"
	"math"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

type UseCase struct {
	client ports.WeatherClient
	icons  IconMap
	logger ports.Logger
}

type UseCaseDependencies struct {
	Client ports.WeatherClient
	Icons  IconMap
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Icons.Codes() == 0 {
		return nil, errors.NewValidationError("icon map is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		client: deps.Client,
		icons:  deps.Icons,
		logger: deps.Logger,
	}, nil
}

// Icons returns the icon map used to resolve provider codes
func (uc *UseCase) Icons() IconMap {
	return uc.icons
}

// Current fetches current conditions and builds a Celsius snapshot.
// Missing fields fall back to zero values, UnknownPlace and the default icon.
func (uc *UseCase) Current(ctx context.Context, location Location) (*Snapshot, error) {
	if err := location.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	location.Normalize()

	uc.logger.Debug("Getting current weather", ports.F("location", location.String()))

	conditions, err := uc.client.GetCurrentWeather(ctx, toPortsLocation(location))
	if err != nil {
		return nil, fmt.Errorf("get current weather for %s: %w", location, err)
	}

	snapshot := uc.convertFromPortsConditions(conditions)
	uc.logger.Debug("Current weather retrieved",
		ports.F("location", location.String()),
		ports.F("place", snapshot.Place),
		ports.F("temperature_c", snapshot.TemperatureC))

	return snapshot, nil
}

// Forecast fetches the 3-hour feed and reduces it to one entry per day
func (uc *UseCase) Forecast(ctx context.Context, location Location) ([]ForecastEntry, error) {
	if err := location.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	location.Normalize()

	items, err := uc.client.GetForecast(ctx, toPortsLocation(location))
	if err != nil {
		return nil, fmt.Errorf("get forecast for %s: %w", location, err)
	}

	daily := ReduceToDaily(items)
	entries := make([]ForecastEntry, 0, len(daily))
	for _, item := range daily {
		entries = append(entries, ForecastEntry{
			Timestamp:    item.Timestamp,
			TemperatureC: item.Temperature,
			IconCode:     item.IconCode,
		})
	}

	uc.logger.Debug("Forecast retrieved",
		ports.F("location", location.String()),
		ports.F("raw_entries", len(items)),
		ports.F("daily_entries", len(entries)))

	return entries, nil
}

func (uc *UseCase) convertFromPortsConditions(c *ports.CurrentConditions) *Snapshot {
	place := c.Place
	if place == "" {
		place = UnknownPlace
	}

	tempC := int(math.Floor(c.Temperature))
	return &Snapshot{
		Humidity:     clampHumidity(c.Humidity),
		Temperature:  tempC,
		TemperatureC: tempC,
		WindSpeed:    c.WindSpeed,
		Place:        place,
		Icon:         uc.icons.Lookup(c.IconCode),
		Unit:         Celsius,
	}
}

func clampHumidity(h float64) int {
	switch {
	case h < 0:
		return 0
	case h > 100:
		return 100
	default:
		return int(math.Round(h))
	}
}

func toPortsLocation(l Location) ports.Location {
	if l.Coordinates != nil {
		return ports.Location{Coordinates: &ports.Coordinates{Lat: l.Coordinates.Lat, Lon: l.Coordinates.Lon}}
	}
	return ports.Location{City: l.City}
}
