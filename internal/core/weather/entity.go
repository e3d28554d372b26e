package weather

import (
	"fmt"
	"math"
	"strings"

	"weatherwidget.app/pkg/validation"
)

const (
	// UnknownPlace is shown when the provider omits the place name
	UnknownPlace = "Unknown location"

	// ForecastStride is the number of 3-hour entries that make up one day
	ForecastStride = 8
)

// Unit is a temperature display unit
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// ParseUnit accepts "C"/"F" in either case, with or without a leading degree sign
func ParseUnit(s string) (Unit, error) {
	if !validation.IsValidUnit(s) {
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
	return Unit(strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "°"))), nil
}

// IsValid reports whether u is one of the supported units
func (u Unit) IsValid() bool {
	return u == Celsius || u == Fahrenheit
}

// Toggle returns the other unit
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Label returns the unit with a degree sign, e.g. "°C"
func (u Unit) Label() string {
	return "°" + string(u)
}

func (u Unit) String() string {
	return string(u)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

// CelsiusToFahrenheit converts C to F
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts F to C
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Convert converts a temperature between units
func Convert(value float64, from, to Unit) float64 {
	switch {
	case from == to:
		return value
	case to == Fahrenheit:
		return CelsiusToFahrenheit(value)
	default:
		return FahrenheitToCelsius(value)
	}
}

// Round rounds to the nearest integer with halves going up (2.5 -> 3, -2.5 -> -2)
func Round(value float64) int {
	return int(math.Floor(value + 0.5))
}

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// IsValid validates coordinate ranges
func (c Coordinates) IsValid() error {
	if !validation.IsValidLatitude(c.Lat) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(c.Lon) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// Location identifies what to look up: a place name or a coordinate pair
type Location struct {
	City        string
	Coordinates *Coordinates
}

// CityLocation builds a name-based location
func CityLocation(city string) Location {
	return Location{City: city}
}

// CoordinatesLocation builds a coordinate-based location
func CoordinatesLocation(lat, lon float64) Location {
	return Location{Coordinates: &Coordinates{Lat: lat, Lon: lon}}
}

// IsValid validates the location request
func (l *Location) IsValid() error {
	if l.Coordinates != nil {
		return l.Coordinates.IsValid()
	}
	if !validation.IsNotEmpty(l.City) {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// Normalize trims the place name for consistent processing
func (l *Location) Normalize() {
	l.City = strings.TrimSpace(l.City)
}

func (l Location) String() string {
	if l.Coordinates != nil {
		return fmt.Sprintf("%.4f,%.4f", l.Coordinates.Lat, l.Coordinates.Lon)
	}
	return l.City
}

// Snapshot is the currently displayed current-weather reading.
// TemperatureC is the canonical value; Temperature is derived from it for Unit.
type Snapshot struct {
	Humidity     int
	Temperature  int
	TemperatureC int
	WindSpeed    float64
	Place        string
	Icon         string
	Unit         Unit
}

// WithUnit returns a copy of the snapshot displayed in unit
func (s Snapshot) WithUnit(unit Unit) Snapshot {
	s.Unit = unit
	s.Temperature = Round(Convert(float64(s.TemperatureC), Celsius, unit))
	return s
}

// ToggleUnit flips the display unit and recomputes the displayed temperature in place
func (s *Snapshot) ToggleUnit() {
	*s = s.WithUnit(s.Unit.Toggle())
}

// IsValid validates snapshot invariants
func (s *Snapshot) IsValid() error {
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if !s.Unit.IsValid() {
		return fmt.Errorf("unit must be C or F")
	}
	if want := Round(Convert(float64(s.TemperatureC), Celsius, s.Unit)); s.Temperature != want {
		return fmt.Errorf("temperature %d does not match unit %s", s.Temperature, s.Unit)
	}
	return nil
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %d %s, %d%% humidity, wind %.1f",
		s.Place, s.Temperature, s.Unit.Label(), s.Humidity, s.WindSpeed)
}

// ForecastEntry is one reduced daily data point. Temperature stays in Celsius.
type ForecastEntry struct {
	Timestamp    int64
	TemperatureC float64
	IconCode     string
}

// DisplayTemperature converts the stored Celsius value for rendering
func (f ForecastEntry) DisplayTemperature(unit Unit) int {
	return Round(Convert(f.TemperatureC, Celsius, unit))
}

// ReduceToDaily keeps every ForecastStride-th entry starting at index 0.
// The stride approximates one entry per day and is not calendar aware.
func ReduceToDaily[T any](items []T) []T {
	daily := make([]T, 0, (len(items)+ForecastStride-1)/ForecastStride)
	for i := 0; i < len(items); i += ForecastStride {
		daily = append(daily, items[i])
	}
	return daily
}
