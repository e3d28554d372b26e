package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/core/widget"
)

func TestGetWidget_NewSessionLoadsDefaultCity(t *testing.T) {
	env := newAPIEnv(t)

	recorder := env.do(t, request{method: http.MethodGet, path: "/api/widget"})

	require.Equal(t, http.StatusOK, recorder.Code)
	cookie := sessionCookie(t, recorder)
	assert.NoError(t, uuid.Validate(cookie.Value))
	assert.True(t, cookie.HttpOnly)

	view := decodeView(t, recorder)
	assert.True(t, view.HasData)
	assert.Equal(t, "London", view.Place)
	assert.Equal(t, 15, view.Temperature)
	assert.Equal(t, 70, view.Humidity)
	assert.Equal(t, 3.1, view.WindSpeed)
	assert.Equal(t, "C", view.Unit)
	assert.Equal(t, "/static/icons/sun-light.svg", view.Icon)
	require.Len(t, view.Forecast, 5)
	assert.Equal(t, "Mon", view.Forecast[0].Day)
	assert.Equal(t, "Fri", view.Forecast[4].Day)
	assert.Equal(t, 10, view.Forecast[0].Temperature)
	assert.Empty(t, view.Notices)
}

func TestGetWidget_ExistingSessionIsNotRefetched(t *testing.T) {
	env := newAPIEnv(t)
	cookie := env.startSession(t)

	recorder := env.do(t, request{method: http.MethodGet, path: "/api/widget", cookie: cookie})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())
	assert.Equal(t, "London", decodeView(t, recorder).Place)
	env.client.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
}

func TestGetWidget_MalformedCookieIsReplaced(t *testing.T) {
	env := newAPIEnv(t)

	recorder := env.do(t, request{
		method: http.MethodGet,
		path:   "/api/widget",
		cookie: &http.Cookie{Name: sessionCookieName, Value: "not-a-uuid"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEqual(t, "not-a-uuid", sessionCookie(t, recorder).Value)
}

func TestSearchWidget(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantPlace   string
		wantNotices []widget.Notice
	}{
		{
			name:      "known city",
			body:      `{"city":"Kyiv"}`,
			wantCode:  http.StatusOK,
			wantPlace: "Kyiv",
		},
		{
			name:        "provider message keeps previous state",
			body:        `{"city":"Atlantis"}`,
			wantCode:    http.StatusOK,
			wantPlace:   "London",
			wantNotices: []widget.Notice{{Level: widget.NoticeError, Message: "city not found"}},
		},
		{
			name:        "blank city",
			body:        `{"city":"   "}`,
			wantCode:    http.StatusOK,
			wantPlace:   "London",
			wantNotices: []widget.Notice{{Level: widget.NoticeError, Message: widget.MsgCityRequired}},
		},
		{
			name:     "malformed body",
			body:     `{"city":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newAPIEnv(t)
			cookie := env.startSession(t)

			recorder := env.do(t, request{
				method:      http.MethodPost,
				path:        "/api/widget/search",
				body:        tt.body,
				contentType: "application/json",
				cookie:      cookie,
			})

			require.Equal(t, tt.wantCode, recorder.Code, recorder.Body.String())
			if tt.wantCode != http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "invalid request body")
				return
			}
			view := decodeView(t, recorder)
			assert.Equal(t, tt.wantPlace, view.Place)
			if tt.wantNotices == nil {
				assert.Empty(t, view.Notices)
			} else {
				assert.Equal(t, tt.wantNotices, view.Notices)
			}
		})
	}
}

func TestSearchWidget_NoticesAreShownOnce(t *testing.T) {
	env := newAPIEnv(t)
	cookie := env.startSession(t)

	env.do(t, request{
		method: http.MethodPost, path: "/api/widget/search",
		body: `{"city":"Atlantis"}`, contentType: "application/json", cookie: cookie,
	})
	recorder := env.do(t, request{method: http.MethodGet, path: "/api/widget", cookie: cookie})

	assert.Empty(t, decodeView(t, recorder).Notices)
}

func TestToggleWidgetUnit(t *testing.T) {
	env := newAPIEnv(t)
	cookie := env.startSession(t)

	recorder := env.do(t, request{method: http.MethodPost, path: "/api/widget/unit", cookie: cookie})

	require.Equal(t, http.StatusOK, recorder.Code)
	view := decodeView(t, recorder)
	assert.Equal(t, "F", view.Unit)
	assert.Equal(t, 59, view.Temperature)
	assert.Equal(t, "°F", view.ToggleLabel)
	assert.Equal(t, 50, view.Forecast[0].Temperature)

	recorder = env.do(t, request{method: http.MethodPost, path: "/api/widget/unit", cookie: cookie})
	view = decodeView(t, recorder)
	assert.Equal(t, "C", view.Unit)
	assert.Equal(t, 15, view.Temperature)
	env.client.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
}

func TestLocateWidget(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantPlace  string
		wantNotice string
	}{
		{name: "browser coordinates", body: `{"lat":51.48,"lon":0}`, wantCode: http.StatusOK, wantPlace: "Greenwich"},
		{name: "denied", body: `{"error":"denied"}`, wantCode: http.StatusOK, wantPlace: "London", wantNotice: widget.MsgLocationFailed},
		{
			name: "unsupported", body: `{"error":"unsupported"}`, wantCode: http.StatusOK,
			wantPlace: "London", wantNotice: widget.MsgGeolocationMissing,
		},
		{
			name: "no browser data and no locator", body: "", wantCode: http.StatusOK,
			wantPlace: "London", wantNotice: widget.MsgGeolocationMissing,
		},
		{name: "unknown status", body: `{"error":"timeout"}`, wantCode: http.StatusBadRequest},
		{name: "latitude out of range", body: `{"lat":91,"lon":0}`, wantCode: http.StatusBadRequest},
		{name: "longitude out of range", body: `{"lat":0,"lon":-181}`, wantCode: http.StatusBadRequest},
		{name: "latitude alone", body: `{"lat":10}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newAPIEnv(t)
			cookie := env.startSession(t)

			recorder := env.do(t, request{
				method:      http.MethodPost,
				path:        "/api/widget/locate",
				body:        tt.body,
				contentType: "application/json",
				cookie:      cookie,
			})

			require.Equal(t, tt.wantCode, recorder.Code, recorder.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}
			view := decodeView(t, recorder)
			assert.Equal(t, tt.wantPlace, view.Place)
			if tt.wantNotice == "" {
				assert.Empty(t, view.Notices)
			} else {
				require.Len(t, view.Notices, 1)
				assert.Equal(t, tt.wantNotice, view.Notices[0].Message)
			}
		})
	}
}

func TestWidgetAPI_StoreFailure(t *testing.T) {
	env := newAPIEnv(t, withStore(failingStore{}))

	recorder := env.do(t, request{method: http.MethodGet, path: "/api/widget"})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}
