package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/pkg/database"
	"github.com/shu-assistant/shu/pkg/version"
)

// Health handles GET /health. Reports database health and, when the feed
// worker pool is running, its per-worker status.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy", "version": version.Full()}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		pool := s.pool.Health()
		body["feed_pool"] = pool
		if !pool.IsHealthy && status == http.StatusOK {
			body["status"] = "degraded"
		}
	}

	c.JSON(status, body)
}
