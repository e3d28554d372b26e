package ports

import (
	"context"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// Location addresses a weather lookup either by place name or by coordinates.
// Coordinates take precedence when set.
type Location struct {
	City        string
	Coordinates *Coordinates
}

// CurrentConditions represents the fields read from a current-weather payload.
// Absent numeric fields arrive as zero, absent strings as empty.
type CurrentConditions struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
	Place       string
	IconCode    string
}

// ForecastItem is one raw entry of the 3-hour forecast feed
type ForecastItem struct {
	Timestamp   int64
	Temperature float64
	IconCode    string
}

// WeatherClient defines the contract for the upstream weather API
type WeatherClient interface {
	GetCurrentWeather(ctx context.Context, location Location) (*CurrentConditions, error)
	GetForecast(ctx context.Context, location Location) ([]ForecastItem, error)
	GetProviderName() string
}

// Locator resolves the caller's position when the browser did not provide one
type Locator interface {
	Locate(ctx context.Context, clientIP string) (*Coordinates, error)
}
