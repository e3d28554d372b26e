package widget

import (
	"time"

	"weatherwidget.app/internal/core/weather"
)

// User-facing notice texts
const (
	MsgFetchFailed        = "Failed to fetch weather data. Please check your internet connection or try again."
	MsgLocationFailed     = "Failed to retrieve your location."
	MsgGeolocationMissing = "Geolocation is not supported by this browser."
	MsgCityRequired       = "Please enter a city name."
)

const (
	forecastDayLayout  = "Mon"
	forecastHeading    = "5-Day Forecast"
	windSpeedUnitLabel = "m/s"
	humidityCaption    = "Humidity"
	windSpeedCaption   = "Wind Speed"

	// older notices are dropped when a session never renders
	maxPendingNotices = 8

	defaultSessionTTL = time.Hour
)

// NoticeLevel grades a notice
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-visible notification, shown once
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// State is the presentation state of one widget session
type State struct {
	Snapshot    *weather.Snapshot
	Forecast    []weather.ForecastEntry
	Notices     []Notice
	LatestToken uint64
	UpdatedAt   time.Time
}

// HasData reports whether a snapshot is available for rendering
func (s *State) HasData() bool {
	return s.Snapshot != nil
}

// DisplayUnit is the snapshot's unit, or Celsius when there is no data yet
func (s *State) DisplayUnit() weather.Unit {
	if s.Snapshot == nil {
		return weather.Celsius
	}
	return s.Snapshot.Unit
}

func (s *State) notify(level NoticeLevel, message string) {
	s.Notices = append(s.Notices, Notice{Level: level, Message: message})
	if over := len(s.Notices) - maxPendingNotices; over > 0 {
		s.Notices = s.Notices[over:]
	}
}

// GeoStatus is what the browser reported about its geolocation attempt
type GeoStatus string

const (
	GeoNotAttempted GeoStatus = ""
	GeoDenied       GeoStatus = "denied"
	GeoUnsupported  GeoStatus = "unsupported"
)

// LocateRequest carries the outcome of a locate-me interaction
type LocateRequest struct {
	Coordinates *weather.Coordinates
	Browser     GeoStatus
	ClientIP    string
}

// ForecastDay is one rendered forecast column
type ForecastDay struct {
	Day         string `json:"day"`
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
	Unit        string `json:"unit"`
}

// ViewModel is everything the renderers need, already display-ready
type ViewModel struct {
	HasData         bool          `json:"has_data"`
	Unit            string        `json:"unit"`
	ToggleLabel     string        `json:"toggle_label"`
	Temperature     int           `json:"temperature"`
	Humidity        int           `json:"humidity"`
	WindSpeed       float64       `json:"wind_speed"`
	WindSpeedUnit   string        `json:"wind_speed_unit"`
	Place           string        `json:"place"`
	Icon            string        `json:"icon"`
	ForecastHeading string        `json:"forecast_heading"`
	Forecast        []ForecastDay `json:"forecast"`
	Notices         []Notice      `json:"notices"`
	Captions        Captions      `json:"captions"`
}

// Captions are static labels and control icons of the widget
type Captions struct {
	Humidity     string `json:"humidity"`
	WindSpeed    string `json:"wind_speed"`
	SearchIcon   string `json:"search_icon"`
	LocateIcon   string `json:"locate_icon"`
	HumidityIcon string `json:"humidity_icon"`
	WindIcon     string `json:"wind_icon"`
}
