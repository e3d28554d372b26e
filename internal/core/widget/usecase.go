package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weatherwidget.app/internal/assets"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherFetcher is the fetch layer the widget drives
type WeatherFetcher interface {
	Current(ctx context.Context, location weather.Location) (*weather.Snapshot, error)
	Forecast(ctx context.Context, location weather.Location) ([]weather.ForecastEntry, error)
	Icons() weather.IconMap
}

type UseCase struct {
	weather WeatherFetcher
	store   ports.SessionStore
	locator ports.Locator
	config  ports.WidgetConfig
	logger  ports.Logger
	metrics ports.MetricsCollector
	locks   *keyedMutex
	now     func() time.Time
}

type UseCaseDependencies struct {
	Weather WeatherFetcher
	Store   ports.SessionStore
	// Locator is optional; without it server-side geolocation is reported as unsupported.
	Locator ports.Locator
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("session store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	cfg := deps.Config.GetWidgetConfig()
	if strings.TrimSpace(cfg.DefaultCity) == "" {
		return nil, errors.NewValidationError("default city is required")
	}
	if cfg.DisplayZone == nil {
		cfg.DisplayZone = time.UTC
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	return &UseCase{
		weather: deps.Weather,
		store:   deps.Store,
		locator: deps.Locator,
		config:  cfg,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}, nil
}

// EnsureSession creates the session on first sight and runs the default-city
// lookup for it, the same way the widget does on initial mount.
func (uc *UseCase) EnsureSession(ctx context.Context, sessionID string) error {
	_, created, err := uc.update(ctx, sessionID, func(*State) {})
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	uc.logger.Info("New widget session", ports.F("session", sessionID), ports.F("city", uc.config.DefaultCity))
	return uc.fetch(ctx, sessionID, weather.CityLocation(uc.config.DefaultCity))
}

// Search looks up current weather and forecast by place name
func (uc *UseCase) Search(ctx context.Context, sessionID, city string) error {
	location := weather.CityLocation(city)
	location.Normalize()
	if err := location.IsValid(); err != nil {
		return uc.notify(ctx, sessionID, NoticeError, MsgCityRequired)
	}
	return uc.fetch(ctx, sessionID, location)
}

// Locate handles the locate-me trigger. Any failure to obtain a position
// notifies the user and falls back to the default city.
func (uc *UseCase) Locate(ctx context.Context, sessionID string, request LocateRequest) error {
	switch {
	case request.Coordinates != nil:
		location := weather.Location{Coordinates: request.Coordinates}
		if err := location.IsValid(); err != nil {
			uc.logger.Warn("Rejected browser coordinates",
				ports.F("session", sessionID),
				ports.F("error", err.Error()))
			return uc.fallback(ctx, sessionID, MsgLocationFailed)
		}
		return uc.fetch(ctx, sessionID, location)

	case request.Browser == GeoDenied:
		return uc.fallback(ctx, sessionID, MsgLocationFailed)

	case request.Browser == GeoUnsupported:
		return uc.fallback(ctx, sessionID, MsgGeolocationMissing)

	case uc.locator == nil:
		return uc.fallback(ctx, sessionID, MsgGeolocationMissing)
	}

	coords, err := uc.locator.Locate(ctx, request.ClientIP)
	if err != nil {
		uc.logger.Warn("Server-side geolocation failed",
			ports.F("session", sessionID),
			ports.F("client_ip", request.ClientIP),
			ports.F("error", err.Error()))
		return uc.fallback(ctx, sessionID, MsgLocationFailed)
	}

	location := weather.CoordinatesLocation(coords.Lat, coords.Lon)
	if err := location.IsValid(); err != nil {
		return uc.fallback(ctx, sessionID, MsgLocationFailed)
	}
	return uc.fetch(ctx, sessionID, location)
}

// ToggleUnit flips between Celsius and Fahrenheit without re-fetching
func (uc *UseCase) ToggleUnit(ctx context.Context, sessionID string) error {
	_, _, err := uc.update(ctx, sessionID, func(state *State) {
		if state.Snapshot == nil {
			return
		}
		state.Snapshot.ToggleUnit()
		uc.logger.Debug("Unit toggled",
			ports.F("session", sessionID),
			ports.F("unit", state.Snapshot.Unit.String()),
			ports.F("temperature", state.Snapshot.Temperature))
	})
	return err
}

// View renders the session state and drains its pending notices
func (uc *UseCase) View(ctx context.Context, sessionID string) (*ViewModel, error) {
	var notices []Notice
	state, _, err := uc.update(ctx, sessionID, func(state *State) {
		notices = state.Notices
		state.Notices = nil
	})
	if err != nil {
		return nil, err
	}

	state.Notices = notices
	return uc.render(&state), nil
}

// State returns a copy of the session state without draining notices
func (uc *UseCase) State(ctx context.Context, sessionID string) (*State, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	state, found, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("session not found")
	}
	return state, nil
}

func (uc *UseCase) fallback(ctx context.Context, sessionID, message string) error {
	if err := uc.notify(ctx, sessionID, NoticeError, message); err != nil {
		return err
	}
	return uc.fetch(ctx, sessionID, weather.CityLocation(uc.config.DefaultCity))
}

// fetch runs current weather then the dependent forecast. Responses are applied
// only while their token is the latest one issued for the session.
func (uc *UseCase) fetch(ctx context.Context, sessionID string, location weather.Location) error {
	token, err := uc.beginRequest(ctx, sessionID)
	if err != nil {
		return err
	}

	snapshot, err := uc.weather.Current(ctx, location)
	if err != nil {
		return uc.handleCurrentFailure(ctx, sessionID, token, location, err)
	}

	applied, err := uc.applyIfLatest(ctx, sessionID, token, "current", func(state *State) {
		state.Snapshot = snapshot
	})
	if err != nil || !applied {
		return err
	}

	forecast, err := uc.weather.Forecast(ctx, location)
	if err != nil {
		return uc.handleForecastFailure(ctx, sessionID, token, location, err)
	}

	_, err = uc.applyIfLatest(ctx, sessionID, token, "forecast", func(state *State) {
		state.Forecast = forecast
	})
	return err
}

func (uc *UseCase) beginRequest(ctx context.Context, sessionID string) (uint64, error) {
	var token uint64
	_, _, err := uc.update(ctx, sessionID, func(state *State) {
		state.LatestToken++
		token = state.LatestToken
	})
	return token, err
}

func (uc *UseCase) applyIfLatest(ctx context.Context, sessionID string, token uint64, operation string, apply func(*State)) (bool, error) {
	applied := false
	_, _, err := uc.update(ctx, sessionID, func(state *State) {
		if state.LatestToken != token {
			return
		}
		apply(state)
		applied = true
	})
	if err != nil {
		return false, err
	}

	if !applied {
		uc.metrics.RecordStaleResponse(operation)
		uc.logger.Info("Discarded stale response",
			ports.F("session", sessionID),
			ports.F("operation", operation),
			ports.F("token", token))
	}
	return applied, nil
}

func (uc *UseCase) handleCurrentFailure(ctx context.Context, sessionID string, token uint64, location weather.Location, cause error) error {
	uc.logger.Error("Error fetching weather data",
		ports.F("session", sessionID),
		ports.F("location", location.String()),
		ports.F("error", cause.Error()))

	appErr, ok := errors.As(cause)
	switch {
	case ok && (appErr.Type == errors.ProviderError || appErr.Type == errors.ValidationError):
		// keep last good state, show the message as-is
		_, err := uc.applyIfLatest(ctx, sessionID, token, "current", func(state *State) {
			uc.addNotice(state, NoticeError, appErr.Message)
		})
		return err
	default:
		_, err := uc.applyIfLatest(ctx, sessionID, token, "current", func(state *State) {
			state.Snapshot = nil
			uc.addNotice(state, NoticeError, MsgFetchFailed)
		})
		return err
	}
}

func (uc *UseCase) handleForecastFailure(ctx context.Context, sessionID string, token uint64, location weather.Location, cause error) error {
	uc.logger.Error("Error fetching forecast data",
		ports.F("session", sessionID),
		ports.F("location", location.String()),
		ports.F("error", cause.Error()))

	if !errors.IsProviderError(cause) {
		return nil
	}

	appErr, _ := errors.As(cause)
	_, err := uc.applyIfLatest(ctx, sessionID, token, "forecast", func(state *State) {
		uc.addNotice(state, NoticeError, appErr.Message)
	})
	return err
}

func (uc *UseCase) notify(ctx context.Context, sessionID string, level NoticeLevel, message string) error {
	_, _, err := uc.update(ctx, sessionID, func(state *State) {
		uc.addNotice(state, level, message)
	})
	return err
}

func (uc *UseCase) addNotice(state *State, level NoticeLevel, message string) {
	state.notify(level, message)
	uc.metrics.RecordNotice(string(level))
}

// update loads or creates the session under its lock, applies fn and saves.
// It returns a copy of the saved state and whether the session was created.
func (uc *UseCase) update(ctx context.Context, sessionID string, fn func(*State)) (State, bool, error) {
	if err := validateSessionID(sessionID); err != nil {
		return State{}, false, err
	}

	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	state, found, err := uc.load(ctx, sessionID)
	if err != nil {
		return State{}, false, err
	}
	if !found {
		state = &State{Forecast: []weather.ForecastEntry{}}
	}

	fn(state)
	state.UpdatedAt = uc.now()

	if err := uc.store.Save(ctx, sessionID, convertToSessionData(state), uc.config.SessionTTL); err != nil {
		return State{}, false, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	return *state, !found, nil
}

func (uc *UseCase) load(ctx context.Context, sessionID string) (*State, bool, error) {
	data, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return convertFromSessionData(data), true, nil
}

func (uc *UseCase) render(state *State) *ViewModel {
	unit := state.DisplayUnit()
	icons := uc.weather.Icons()

	vm := &ViewModel{
		HasData:         state.HasData(),
		Unit:            unit.String(),
		ToggleLabel:     unit.Label(),
		WindSpeedUnit:   windSpeedUnitLabel,
		ForecastHeading: forecastHeading,
		Forecast:        make([]ForecastDay, 0, len(state.Forecast)),
		Notices:         append([]Notice{}, state.Notices...),
		Captions: Captions{
			Humidity:     humidityCaption,
			WindSpeed:    windSpeedCaption,
			SearchIcon:   assets.Ref(assets.Search),
			LocateIcon:   assets.Ref(assets.MapPin),
			HumidityIcon: assets.Ref(assets.Humidity),
			WindIcon:     assets.Ref(assets.Wind),
		},
	}

	if s := state.Snapshot; s != nil {
		vm.Temperature = s.Temperature
		vm.Humidity = s.Humidity
		vm.WindSpeed = s.WindSpeed
		vm.Place = s.Place
		vm.Icon = s.Icon
	}

	for _, entry := range state.Forecast {
		vm.Forecast = append(vm.Forecast, ForecastDay{
			Day:         time.Unix(entry.Timestamp, 0).In(uc.config.DisplayZone).Format(forecastDayLayout),
			Icon:        icons.Lookup(entry.IconCode),
			Temperature: entry.DisplayTemperature(unit),
			Unit:        unit.Label(),
		})
	}

	return vm
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.NewValidationError("session id cannot be empty")
	}
	return nil
}

func convertToSessionData(state *State) *ports.SessionData {
	data := &ports.SessionData{
		Forecast:    make([]ports.ForecastData, 0, len(state.Forecast)),
		LatestToken: state.LatestToken,
		UpdatedAt:   state.UpdatedAt,
	}

	if s := state.Snapshot; s != nil {
		data.Snapshot = &ports.SnapshotData{
			Humidity:     s.Humidity,
			Temperature:  s.Temperature,
			TemperatureC: s.TemperatureC,
			WindSpeed:    s.WindSpeed,
			Place:        s.Place,
			Icon:         s.Icon,
			Unit:         s.Unit.String(),
		}
	}
	for _, f := range state.Forecast {
		data.Forecast = append(data.Forecast, ports.ForecastData{
			Timestamp:    f.Timestamp,
			TemperatureC: f.TemperatureC,
			IconCode:     f.IconCode,
		})
	}
	for _, n := range state.Notices {
		data.Notices = append(data.Notices, ports.NoticeData{Level: string(n.Level), Message: n.Message})
	}

	return data
}

func convertFromSessionData(data *ports.SessionData) *State {
	state := &State{
		Forecast:    make([]weather.ForecastEntry, 0, len(data.Forecast)),
		LatestToken: data.LatestToken,
		UpdatedAt:   data.UpdatedAt,
	}

	if s := data.Snapshot; s != nil {
		unit, err := weather.ParseUnit(s.Unit)
		if err != nil {
			unit = weather.Celsius
		}
		snapshot := weather.Snapshot{
			Humidity:     s.Humidity,
			TemperatureC: s.TemperatureC,
			WindSpeed:    s.WindSpeed,
			Place:        s.Place,
			Icon:         s.Icon,
		}.WithUnit(unit)
		state.Snapshot = &snapshot
	}
	for _, f := range data.Forecast {
		state.Forecast = append(state.Forecast, weather.ForecastEntry{
			Timestamp:    f.Timestamp,
			TemperatureC: f.TemperatureC,
			IconCode:     f.IconCode,
		})
	}
	for _, n := range data.Notices {
		state.Notices = append(state.Notices, Notice{Level: NoticeLevel(n.Level), Message: n.Message})
	}

	return state
}
