package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

const defaultIPLocatorBaseURL = "http://ip-api.com"

// IPLocator implements the Locator port against an ip-api.com compatible endpoint
type IPLocator struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPLocatorParams holds parameters for creating the IP locator
type IPLocatorParams struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPLocator creates a new IP geolocation adapter
func NewIPLocator(params IPLocatorParams) *IPLocator {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultIPLocatorBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &IPLocator{
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// Locate resolves the approximate position of clientIP
func (l *IPLocator) Locate(ctx context.Context, clientIP string) (*ports.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/json/%s?fields=status,message,lat,lon", l.baseURL, url.PathEscape(clientIP))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewGeolocationError("failed to build geolocation request", err)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.NewGeolocationError("failed to call geolocation service", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			l.logger.Warn("Failed to close geolocation response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewGeolocationError(fmt.Sprintf("geolocation service returned status %d", resp.StatusCode), nil)
	}

	var payload ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewGeolocationError("failed to decode geolocation response", err)
	}

	if payload.Status != "success" {
		return nil, errors.NewGeolocationError(fmt.Sprintf("geolocation lookup failed: %s", payload.Message), nil)
	}
	if !validation.IsValidLatitude(payload.Lat) || !validation.IsValidLongitude(payload.Lon) {
		return nil, errors.NewGeolocationError("geolocation service returned invalid coordinates", nil)
	}

	l.logger.Debug("Client located",
		ports.F("client_ip", clientIP),
		ports.F("lat", payload.Lat),
		ports.F("lon", payload.Lon))

	return &ports.Coordinates{Lat: payload.Lat, Lon: payload.Lon}, nil
}
