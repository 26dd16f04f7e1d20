package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Uptime     string                        `json:"uptime"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// MetricsResponse is the body of GET /api/metrics
type MetricsResponse struct {
	Cache    ports.CacheStats       `json:"cache"`
	Provider map[string]interface{} `json:"provider"`
}

// getMetrics handles GET /api/metrics
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, MetricsResponse{
		Cache:    s.weatherUseCase.GetCacheStats(ctx),
		Provider: s.weatherUseCase.GetProviderInfo(ctx),
	})
}

// getHealth handles GET /health. Unhealthy components turn the status into 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())
	response := HealthResponse{
		Status:     ports.OverallStatus(components),
		Uptime:     s.now().Sub(s.startedAt).Round(time.Second).String(),
		Components: components,
	}

	statusCode := http.StatusOK
	if response.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
