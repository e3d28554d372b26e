package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/pkg/errors"
)

// SearchRequest is the body of POST /api/widget/search
type SearchRequest struct {
	City string `json:"city" form:"city"`
}

// LocateRequest carries the browser's geolocation outcome. Either both
// coordinates or the error status are set; an empty body asks the server.
type LocateRequest struct {
	Lat   *float64         `json:"lat" form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lon   *float64         `json:"lon" form:"lon" binding:"omitempty,gte=-180,lte=180"`
	Error widget.GeoStatus `json:"error" form:"geo_error" binding:"omitempty,geo_status"`
}

func (r LocateRequest) validatePair() error {
	if (r.Lat == nil) != (r.Lon == nil) {
		return errors.NewValidationError("lat and lon must be provided together")
	}
	return nil
}

func (r LocateRequest) toDomain(clientIP string) widget.LocateRequest {
	request := widget.LocateRequest{Browser: r.Error, ClientIP: clientIP}
	if r.Lat != nil && r.Lon != nil {
		request.Coordinates = &weather.Coordinates{Lat: *r.Lat, Lon: *r.Lon}
	}
	return request
}

// getWidget handles GET /api/widget requests
func (s *HTTPServerAdapter) getWidget(c *gin.Context) {
	s.respondWithView(c)
}

// searchWidget handles POST /api/widget/search requests
func (s *HTTPServerAdapter) searchWidget(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid search request", "error", err)
		s.handleError(c, errors.NewValidationError("invalid request body"))
		return
	}

	if err := s.widgetUseCase.Search(c.Request.Context(), sessionID(c), req.City); err != nil {
		slog.Error("Widget search failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}

	s.respondWithView(c)
}

// locateWidget handles POST /api/widget/locate requests
func (s *HTTPServerAdapter) locateWidget(c *gin.Context) {
	var req LocateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Debug("Invalid locate request", "error", err)
			s.handleError(c, errors.NewValidationError("invalid request body"))
			return
		}
	}
	if err := req.validatePair(); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.widgetUseCase.Locate(c.Request.Context(), sessionID(c), req.toDomain(c.ClientIP())); err != nil {
		slog.Error("Widget locate failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}

	s.respondWithView(c)
}

// toggleWidgetUnit handles POST /api/widget/unit requests
func (s *HTTPServerAdapter) toggleWidgetUnit(c *gin.Context) {
	if err := s.widgetUseCase.ToggleUnit(c.Request.Context(), sessionID(c)); err != nil {
		slog.Error("Widget unit toggle failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}

	s.respondWithView(c)
}

func (s *HTTPServerAdapter) respondWithView(c *gin.Context) {
	view, err := s.widgetUseCase.View(c.Request.Context(), sessionID(c))
	if err != nil {
		slog.Error("Widget view failed", "session", sessionID(c), "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
