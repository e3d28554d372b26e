// Package external provides adapters for external services:
// the OpenWeatherMap client, IP geolocation and session storage.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultHTTPTimeout           = 10 * time.Second

	// upstream error bodies are short; anything longer is not a provider message
	maxErrorBodyBytes = 4096
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClient implements the WeatherClient port for OpenWeatherMap
type OpenWeatherMapClient struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client built from Timeout
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type owmCondition struct {
	Icon string `json:"icon"`
}

// owmCurrentResponse represents the /weather payload
type owmCurrentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name    string         `json:"name"`
	Weather []owmCondition `json:"weather"`
}

// owmForecastResponse represents the /forecast payload
type owmForecastResponse struct {
	// nil when the feed is absent, which is not the same as an empty feed
	List *[]owmForecastItem `json:"list"`
}

type owmForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
}

type owmErrorResponse struct {
	Message string `json:"message"`
}

// NewOpenWeatherMapClient creates a new OpenWeatherMap client
func NewOpenWeatherMapClient(params OpenWeatherMapClientParams) *OpenWeatherMapClient {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapClient{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from OpenWeatherMap
func (c *OpenWeatherMapClient) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.CurrentConditions, error) {
	var payload *owmCurrentResponse
	if err := c.get(ctx, "weather", location, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.NewExternalAPIError("OpenWeatherMap weather response is empty", nil)
	}

	conditions := &ports.CurrentConditions{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Place:       payload.Name,
	}
	if len(payload.Weather) > 0 {
		conditions.IconCode = payload.Weather[0].Icon
	}
	return conditions, nil
}

// GetForecast retrieves the 3-hour forecast feed from OpenWeatherMap
func (c *OpenWeatherMapClient) GetForecast(ctx context.Context, location ports.Location) ([]ports.ForecastItem, error) {
	var payload owmForecastResponse
	if err := c.get(ctx, "forecast", location, &payload); err != nil {
		return nil, err
	}

	if payload.List == nil {
		return nil, errors.NewExternalAPIError("OpenWeatherMap forecast response has no list", nil)
	}

	items := make([]ports.ForecastItem, 0, len(*payload.List))
	for _, entry := range *payload.List {
		item := ports.ForecastItem{
			Timestamp:   entry.Dt,
			Temperature: entry.Main.Temp,
		}
		if len(entry.Weather) > 0 {
			item.IconCode = entry.Weather[0].Icon
		}
		items = append(items, item)
	}
	return items, nil
}

// GetProviderName returns the name of this weather provider
func (c *OpenWeatherMapClient) GetProviderName() string {
	return "openweathermap"
}

func (c *OpenWeatherMapClient) get(ctx context.Context, endpoint string, location ports.Location, out interface{}) error {
	query, err := c.query(location)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return providerError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode OpenWeatherMap %s response", endpoint), err)
	}
	return nil
}

func (c *OpenWeatherMapClient) query(location ports.Location) (url.Values, error) {
	query := url.Values{}
	switch {
	case location.Coordinates != nil:
		query.Set("lat", strconv.FormatFloat(location.Coordinates.Lat, 'f', -1, 64))
		query.Set("lon", strconv.FormatFloat(location.Coordinates.Lon, 'f', -1, 64))
	case location.City != "":
		query.Set("q", location.City)
	default:
		return nil, errors.NewValidationError("city cannot be empty")
	}
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)
	return query, nil
}

// providerError keeps the upstream message so it can be shown to the user verbatim.
// A body that is not a provider JSON object (a proxy's HTML page, say) is an
// unreadable payload rather than a provider answer.
func providerError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return errors.NewExternalAPIError(
			fmt.Sprintf("failed to read OpenWeatherMap error response (status %d)", resp.StatusCode), err)
	}

	var payload *owmErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return errors.NewExternalAPIError(
			fmt.Sprintf("OpenWeatherMap returned status %d with an unreadable body", resp.StatusCode), err)
	}

	message := payload.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return errors.NewProviderError(resp.StatusCode, message)
}
