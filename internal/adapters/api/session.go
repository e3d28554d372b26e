package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "widget_session"
	sessionContextKey = "widget_session"
	// a week; the store expires idle sessions much sooner
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// sessionMiddleware assigns every viewer a session cookie and makes sure
// the session exists before the handler runs.
func (s *HTTPServerAdapter) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		if err := s.widgetUseCase.EnsureSession(c.Request.Context(), sessionID); err != nil {
			slog.Error("Failed to prepare widget session", "session", sessionID, "error", err)
			s.handleError(c, err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
