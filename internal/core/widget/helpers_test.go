package widget

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/assets"
	"weatherwidget.app/internal/core/weather"
	mocks "weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	testSession = "0b4c1b0e-4a5d-4bcf-9c7e-9f1f6e1b2a11"
	mondayNoon  = int64(1700481600) // 2023-11-20 12:00 UTC
)

// memoryStore keeps sessions in a map for tests
type memoryStore struct {
	mu   sync.Mutex
	data map[string]*ports.SessionData
	ttl  time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]*ports.SessionData)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*ports.SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	return data, nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, data *ports.SessionData, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = data
	s.ttl = ttl
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// fakeFetcher answers every place with a fixed reading unless overridden
type fakeFetcher struct {
	mu         sync.Mutex
	current    func(ctx context.Context, location weather.Location) (*weather.Snapshot, error)
	forecast   func(ctx context.Context, location weather.Location) ([]weather.ForecastEntry, error)
	currentFor []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		current: func(_ context.Context, location weather.Location) (*weather.Snapshot, error) {
			return snapshotFor(location.String(), 15), nil
		},
		forecast: func(_ context.Context, _ weather.Location) ([]weather.ForecastEntry, error) {
			return fiveDays(), nil
		},
	}
}

func (f *fakeFetcher) Current(ctx context.Context, location weather.Location) (*weather.Snapshot, error) {
	f.mu.Lock()
	f.currentFor = append(f.currentFor, location.String())
	fn := f.current
	f.mu.Unlock()
	return fn(ctx, location)
}

func (f *fakeFetcher) Forecast(ctx context.Context, location weather.Location) ([]weather.ForecastEntry, error) {
	f.mu.Lock()
	fn := f.forecast
	f.mu.Unlock()
	return fn(ctx, location)
}

func (f *fakeFetcher) Icons() weather.IconMap {
	return assets.NewIconMap()
}

func (f *fakeFetcher) lookups() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.currentFor...)
}

func snapshotFor(place string, tempC int) *weather.Snapshot {
	s := weather.Snapshot{
		Humidity:     70,
		TemperatureC: tempC,
		WindSpeed:    3.1,
		Place:        place,
		Icon:         assets.Ref(assets.SunLight),
	}.WithUnit(weather.Celsius)
	return &s
}

func fiveDays() []weather.ForecastEntry {
	entries := make([]weather.ForecastEntry, 5)
	for i := range entries {
		entries[i] = weather.ForecastEntry{
			Timestamp:    mondayNoon + int64(i)*24*3600,
			TemperatureC: 10 + float64(i),
			IconCode:     "10d",
		}
	}
	return entries
}

func allowLogging(mockLogger *mocks.Logger) {
	args := []interface{}{}
	for i := 0; i < 8; i++ {
		args = append(args, mock.Anything)
		fields := append([]interface{}{}, args[1:]...)
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

type testEnv struct {
	uc      *UseCase
	store   *memoryStore
	fetcher *fakeFetcher
	metrics *mocks.MetricsCollector
}

type envOption func(*UseCaseDependencies, *ports.WidgetConfig)

func withLocator(locator ports.Locator) envOption {
	return func(deps *UseCaseDependencies, _ *ports.WidgetConfig) {
		deps.Locator = locator
	}
}

func withZone(zone *time.Location) envOption {
	return func(_ *UseCaseDependencies, cfg *ports.WidgetConfig) {
		cfg.DisplayZone = zone
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	store := newMemoryStore()
	fetcher := newFakeFetcher()
	mockLogger := mocks.NewLogger(t)
	mockMetrics := mocks.NewMetricsCollector(t)
	mockConfig := mocks.NewConfigProvider(t)
	allowLogging(mockLogger)

	deps := UseCaseDependencies{
		Weather: fetcher,
		Store:   store,
		Config:  mockConfig,
		Logger:  mockLogger,
		Metrics: mockMetrics,
	}
	cfg := ports.WidgetConfig{
		DefaultCity: "London",
		SessionTTL:  time.Hour,
	}
	for _, opt := range opts {
		opt(&deps, &cfg)
	}
	mockConfig.EXPECT().GetWidgetConfig().Return(cfg)

	uc, err := NewUseCase(deps)
	require.NoError(t, err)

	return &testEnv{uc: uc, store: store, fetcher: fetcher, metrics: mockMetrics}
}

func (e *testEnv) allowNotices() {
	e.metrics.EXPECT().RecordNotice(mock.Anything).Maybe()
}

func (e *testEnv) state(t *testing.T) *State {
	t.Helper()
	state, err := e.uc.State(context.Background(), testSession)
	require.NoError(t, err)
	return state
}

func messages(notices []Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Message)
	}
	return out
}
