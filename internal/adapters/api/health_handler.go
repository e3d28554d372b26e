package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := ports.StatusHealthy, http.StatusOK
	if !ports.AllHealthy(results) {
		status, code = ports.StatusUnhealthy, http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{Status: status, Components: results})
}
