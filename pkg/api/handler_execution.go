package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
)

const (
	defaultExecutionPageSize = 50
	maxExecutionPageSize     = 200
)

// ListExecutions handles GET /api/executions. Optional filters: schedule_id,
// status, plugin; limit caps the page size.
func (s *Server) ListExecutions(c *gin.Context) {
	q := s.db.PluginExecution.Query().
		Where(pluginexecution.UserIDEQ(currentUser(c)))

	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		q = q.Where(pluginexecution.ScheduleIDEQ(scheduleID))
	}
	if status := c.Query("status"); status != "" {
		q = q.Where(pluginexecution.StatusEQ(pluginexecution.Status(status)))
	}
	if pluginName := c.Query("plugin"); pluginName != "" {
		q = q.Where(pluginexecution.PluginNameEQ(pluginName))
	}

	limit := defaultExecutionPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxExecutionPageSize)
	}

	executions, err := q.
		Order(ent.Desc(pluginexecution.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": executions})
}

// GetExecution handles GET /api/executions/:id.
func (s *Server) GetExecution(c *gin.Context) {
	row, err := s.db.PluginExecution.Query().
		Where(
			pluginexecution.IDEQ(c.Param("id")),
			pluginexecution.UserIDEQ(currentUser(c)),
		).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "execution not found"})
			return
		}
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
