package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/core/widget"
)

const widgetTemplate = "widget.html"

// showWidget handles GET / requests
func (s *HTTPServerAdapter) showWidget(c *gin.Context) {
	view, err := s.widgetUseCase.View(c.Request.Context(), sessionID(c))
	if err != nil {
		slog.Error("Widget view failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, widgetTemplate, view)
}

// submitSearch handles the search form
func (s *HTTPServerAdapter) submitSearch(c *gin.Context) {
	if err := s.widgetUseCase.Search(c.Request.Context(), sessionID(c), c.PostForm("city")); err != nil {
		slog.Error("Widget search failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}
	redirectToWidget(c)
}

// submitLocate handles the locate-me form. Coordinates the form cannot
// carry are treated as a failed browser lookup.
func (s *HTTPServerAdapter) submitLocate(c *gin.Context) {
	var req LocateRequest
	err := c.ShouldBind(&req)
	if err == nil {
		err = req.validatePair()
	}
	if err != nil {
		slog.Debug("Unusable locate form", "error", err)
		req = LocateRequest{Error: widget.GeoDenied}
	}

	if err := s.widgetUseCase.Locate(c.Request.Context(), sessionID(c), req.toDomain(c.ClientIP())); err != nil {
		slog.Error("Widget locate failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}
	redirectToWidget(c)
}

// submitToggleUnit handles the unit toggle button
func (s *HTTPServerAdapter) submitToggleUnit(c *gin.Context) {
	if err := s.widgetUseCase.ToggleUnit(c.Request.Context(), sessionID(c)); err != nil {
		slog.Error("Widget unit toggle failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}
	redirectToWidget(c)
}

func redirectToWidget(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
