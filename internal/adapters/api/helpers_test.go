package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/assets"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const mondayNoon = int64(1700481600) // 2023-11-20 12:00 UTC

type apiEnv struct {
	router  *gin.Engine
	client  *mocks.WeatherClient
	metrics *infrastructure.PrometheusMetricsCollector
}

type apiEnvOptions struct {
	store  ports.SessionStore
	health ports.SystemHealthChecker
}

type apiEnvOption func(*apiEnvOptions)

func withStore(store ports.SessionStore) apiEnvOption {
	return func(o *apiEnvOptions) { o.store = store }
}

func withHealth(health ports.SystemHealthChecker) apiEnvOption {
	return func(o *apiEnvOptions) { o.health = health }
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// newAPIEnv wires the real widget and weather use cases over an in-memory
// session store and a mocked upstream client.
func newAPIEnv(t *testing.T, opts ...apiEnvOption) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := external.NewMemoryKeyValueStore()
	options := apiEnvOptions{
		store: external.NewSessionStoreAdapter(kv),
		health: infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
			StoreChecker: infrastructure.NewStoreHealthChecker("memory", kv),
		}),
	}
	for _, opt := range opts {
		opt(&options)
	}

	client := mocks.NewWeatherClient(t)
	client.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything).RunAndReturn(currentWeather).Maybe()
	client.EXPECT().GetForecast(mock.Anything, mock.Anything).RunAndReturn(forecast).Maybe()

	logger := infrastructure.NewSlogLoggerAdapter(io.Discard, slog.LevelDebug)
	metrics := infrastructure.NewPrometheusMetricsCollector()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Client: client,
		Icons:  assets.NewIconMap(),
		Logger: logger,
	})
	require.NoError(t, err)

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWidgetConfig().Return(ports.WidgetConfig{
		DefaultCity: "London",
		DisplayZone: time.UTC,
		SessionTTL:  time.Hour,
	})

	widgetUseCase, err := widget.NewUseCase(widget.UseCaseDependencies{
		Weather: weatherUseCase,
		Store:   options.store,
		Config:  config,
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		WidgetUseCase:  widgetUseCase,
		HealthChecker:  options.health,
		MetricsHandler: metrics.Handler(),
	})
	require.NoError(t, err)

	return &apiEnv{router: server.GetRouter(), client: client, metrics: metrics}
}

func currentWeather(_ context.Context, location ports.Location) (*ports.CurrentConditions, error) {
	if location.Coordinates != nil {
		return &ports.CurrentConditions{Temperature: 21.2, Humidity: 40, WindSpeed: 1.5, Place: "Greenwich", IconCode: "02d"}, nil
	}
	switch location.City {
	case "London":
		return &ports.CurrentConditions{Temperature: 15.7, Humidity: 70, WindSpeed: 3.1, Place: "London", IconCode: "01d"}, nil
	case "Kyiv":
		return &ports.CurrentConditions{Temperature: -3.2, Humidity: 85, WindSpeed: 6, Place: "Kyiv", IconCode: "13d"}, nil
	default:
		return nil, errors.NewProviderError(http.StatusNotFound, "city not found")
	}
}

func forecast(_ context.Context, _ ports.Location) ([]ports.ForecastItem, error) {
	items := make([]ports.ForecastItem, 40)
	for i := range items {
		items[i] = ports.ForecastItem{
			Timestamp:   mondayNoon + int64(i)*3*3600,
			Temperature: 10,
			IconCode:    "10d",
		}
	}
	return items, nil
}

type request struct {
	method      string
	path        string
	body        string
	contentType string
	cookie      *http.Cookie
}

func (e *apiEnv) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.cookie != nil {
		req.AddCookie(r.cookie)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

// startSession opens the widget once and returns the issued session cookie
func (e *apiEnv) startSession(t *testing.T) *http.Cookie {
	t.Helper()

	recorder := e.do(t, request{method: http.MethodGet, path: "/api/widget"})
	require.Equal(t, http.StatusOK, recorder.Code)
	return sessionCookie(t, recorder)
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookieName)
	return nil
}

func decodeView(t *testing.T, recorder *httptest.ResponseRecorder) widget.ViewModel {
	t.Helper()

	var view widget.ViewModel
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view), recorder.Body.String())
	return view
}
