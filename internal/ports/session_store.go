package ports

import (
	"context"
	"time"
)

// SnapshotData represents a persisted current-weather snapshot
type SnapshotData struct {
	Humidity     int     `json:"humidity"`
	Temperature  int     `json:"temperature"`
	TemperatureC int     `json:"temperature_c"`
	WindSpeed    float64 `json:"wind_speed"`
	Place        string  `json:"place"`
	Icon         string  `json:"icon"`
	Unit         string  `json:"unit"`
}

// ForecastData represents a persisted reduced forecast entry
type ForecastData struct {
	Timestamp    int64   `json:"dt"`
	TemperatureC float64 `json:"temp_c"`
	IconCode     string  `json:"icon_code"`
}

// NoticeData represents a pending user notification
type NoticeData struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SessionData represents the presentation state of one widget session
type SessionData struct {
	Snapshot    *SnapshotData  `json:"snapshot,omitempty"`
	Forecast    []ForecastData `json:"forecast"`
	Notices     []NoticeData   `json:"notices,omitempty"`
	LatestToken uint64         `json:"latest_token"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SessionStore defines the contract for widget session persistence.
// Load returns a NotFound error for unknown or expired sessions.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*SessionData, error)
	Save(ctx context.Context, sessionID string, data *SessionData, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
