package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// testWeatherClient returns canned answers after an optional delay
type testWeatherClient struct {
	name       string
	conditions *ports.CurrentConditions
	forecast   []ports.ForecastItem
	err        error
	delay      time.Duration
}

func (c *testWeatherClient) GetCurrentWeather(ctx context.Context, _ ports.Location) (*ports.CurrentConditions, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.conditions, nil
}

func (c *testWeatherClient) GetForecast(ctx context.Context, _ ports.Location) ([]ports.ForecastItem, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.forecast, nil
}

func (c *testWeatherClient) GetProviderName() string {
	return c.name
}

func (c *testWeatherClient) wait(ctx context.Context) error {
	select {
	case <-time.After(c.delay):
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.addEntry("DEBUG", msg, fields...) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.addEntry("INFO", msg, fields...) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.addEntry("WARN", msg, fields...) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.addEntry("ERROR", msg, fields...) }

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, fields: fieldMap})
}

func TestWeatherClientLoggingDecorator_Current(t *testing.T) {
	client := &testWeatherClient{
		name:       "test-provider",
		conditions: &ports.CurrentConditions{Temperature: 15.7, Place: "London"},
	}
	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(client, logger)

	result, err := decorator.GetCurrentWeather(context.Background(), ports.Location{City: "London"})

	require.NoError(t, err)
	assert.Equal(t, "London", result.Place)
	require.Len(t, logger.entries, 2)

	request := logger.entries[0]
	assert.Equal(t, "INFO", request.level)
	assert.Equal(t, "Weather API request started", request.message)
	assert.Equal(t, "test-provider", request.fields["provider"])
	assert.Equal(t, "current", request.fields["operation"])
	assert.Equal(t, "London", request.fields["location"])
	assert.Equal(t, "request", request.fields["event"])

	response := logger.entries[1]
	assert.Equal(t, "Weather API request completed", response.message)
	assert.Equal(t, "response", response.fields["event"])
	assert.Equal(t, "London", response.fields["place"])
	assert.Contains(t, response.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherClientLoggingDecorator_ForecastError(t *testing.T) {
	client := &testWeatherClient{name: "test-provider", err: errors.NewProviderError(404, "city not found")}
	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(client, logger)

	location := ports.Location{Coordinates: &ports.Coordinates{Lat: 51.5074, Lon: -0.1278}}
	_, err := decorator.GetForecast(context.Background(), location)

	require.True(t, errors.IsProviderError(err))
	require.Len(t, logger.entries, 2)

	failure := logger.entries[1]
	assert.Equal(t, "ERROR", failure.level)
	assert.Equal(t, "Weather API request failed", failure.message)
	assert.Equal(t, "forecast", failure.fields["operation"])
	assert.Equal(t, "51.5074,-0.1278", failure.fields["location"])
	assert.Equal(t, "PROVIDER_ERROR: city not found", failure.fields["error"])
}

func TestWeatherClientLoggingDecorator_DurationTracking(t *testing.T) {
	client := &testWeatherClient{name: "slow-provider", forecast: []ports.ForecastItem{{}}, delay: 10 * time.Millisecond}
	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(client, logger)

	_, err := decorator.GetForecast(context.Background(), ports.Location{City: "London"})

	require.NoError(t, err)
	duration, ok := logger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
	assert.Equal(t, 1, logger.entries[1].fields["entries"])
}

func TestWeatherClientMetricsDecorator(t *testing.T) {
	mockMetrics := mocks.NewMetricsCollector(t)
	mockMetrics.EXPECT().RecordWeatherAPICall("openweathermap", "current", true, mock.AnythingOfType("time.Duration")).Once()
	mockMetrics.EXPECT().RecordWeatherAPICall("openweathermap", "forecast", false, mock.AnythingOfType("time.Duration")).Once()

	ok := NewWeatherClientMetricsDecorator(&testWeatherClient{
		name:       "openweathermap",
		conditions: &ports.CurrentConditions{},
	}, mockMetrics)
	failing := NewWeatherClientMetricsDecorator(&testWeatherClient{
		name: "openweathermap",
		err:  errors.NewExternalAPIError("request failed", context.DeadlineExceeded),
	}, mockMetrics)

	_, err := ok.GetCurrentWeather(context.Background(), ports.Location{City: "London"})
	assert.NoError(t, err)
	_, err = failing.GetForecast(context.Background(), ports.Location{City: "London"})
	assert.Error(t, err)
	assert.Equal(t, "openweathermap", ok.GetProviderName())
}

func newRecordingTracer() (trace.Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return provider.Tracer("test"), recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestWeatherClientTracingDecorator_Success(t *testing.T) {
	tracer, recorder := newRecordingTracer()
	decorator := NewWeatherClientTracingDecorator(&testWeatherClient{
		name:       "openweathermap",
		conditions: &ports.CurrentConditions{Place: "London"},
	}, tracer)

	_, err := decorator.GetCurrentWeather(context.Background(), ports.Location{City: "London"})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "weather.current", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	attrs := spanAttributes(spans[0])
	assert.Equal(t, "openweathermap", attrs["weather.provider"].AsString())
	assert.Equal(t, "London", attrs["weather.location"].AsString())
	assert.Equal(t, "London", attrs["weather.place"].AsString())
}

func TestWeatherClientTracingDecorator_Error(t *testing.T) {
	tracer, recorder := newRecordingTracer()
	decorator := NewWeatherClientTracingDecorator(&testWeatherClient{
		name: "openweathermap",
		err:  errors.NewProviderError(401, "Invalid API key"),
	}, tracer)

	_, err := decorator.GetForecast(context.Background(), ports.Location{City: "London"})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "weather.forecast", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	attrs := spanAttributes(spans[0])
	assert.Equal(t, "PROVIDER_ERROR", attrs["error.type"].AsString())
	assert.Equal(t, int64(401), attrs["http.status_code"].AsInt64())
}
