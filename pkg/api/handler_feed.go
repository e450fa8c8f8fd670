package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginfeed"
)

// createFeedRequest is the feed creation body.
type createFeedRequest struct {
	PluginName string         `json:"plugin_name" binding:"required"`
	Schedule   string         `json:"schedule" binding:"required"`
	Params     map[string]any `json:"params"`
}

// CreateFeed handles POST /api/feeds. The schedule must parse as a standard
// cron expression; the named plugin must have a discovered manifest, and the
// requested op (explicit or the manifest default) must be feed-allowed.
func (s *Server) CreateFeed(c *gin.Context) {
	var req createFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := cron.ParseStandard(req.Schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule: " + err.Error()})
		return
	}

	m, ok := s.registry.Manifests()[req.PluginName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plugin " + req.PluginName})
		return
	}
	op, _ := req.Params["op"].(string)
	if op == "" {
		op = m.DefaultFeedOp
	}
	if op == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no op given and plugin declares no default feed op"})
		return
	}
	if !m.HasFeedOp(op) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "op " + op + " is not feed-allowed for " + req.PluginName})
		return
	}

	feedRow, err := s.db.PluginFeed.Create().
		SetID(uuid.New().String()).
		SetUserID(currentUser(c)).
		SetPluginName(req.PluginName).
		SetSchedule(req.Schedule).
		SetParams(req.Params).
		Save(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedRow)
}

// ListFeeds handles GET /api/feeds, scoped to the caller.
func (s *Server) ListFeeds(c *gin.Context) {
	feeds, err := s.db.PluginFeed.Query().
		Where(pluginfeed.UserIDEQ(currentUser(c))).
		Order(ent.Desc(pluginfeed.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feeds": feeds})
}

// GetFeed handles GET /api/feeds/:id.
func (s *Server) GetFeed(c *gin.Context) {
	feedRow, ok := s.ownedFeed(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, feedRow)
}

// EnableFeed handles POST /api/feeds/:id/enable.
func (s *Server) EnableFeed(c *gin.Context) {
	s.setFeedEnabled(c, true)
}

// DisableFeed handles POST /api/feeds/:id/disable.
func (s *Server) DisableFeed(c *gin.Context) {
	s.setFeedEnabled(c, false)
}

func (s *Server) setFeedEnabled(c *gin.Context, enabled bool) {
	feedRow, ok := s.ownedFeed(c)
	if !ok {
		return
	}
	updated, err := feedRow.Update().SetEnabled(enabled).Save(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFeed handles DELETE /api/feeds/:id.
func (s *Server) DeleteFeed(c *gin.Context) {
	feedRow, ok := s.ownedFeed(c)
	if !ok {
		return
	}
	if err := s.db.PluginFeed.DeleteOne(feedRow).Exec(c.Request.Context()); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedFeed loads the :id feed and enforces ownership. Writes the error
// response itself when the feed is missing or foreign.
func (s *Server) ownedFeed(c *gin.Context) (*ent.PluginFeed, bool) {
	feedRow, err := s.db.PluginFeed.Query().
		Where(
			pluginfeed.IDEQ(c.Param("id")),
			pluginfeed.UserIDEQ(currentUser(c)),
		).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feed not found"})
			return nil, false
		}
		renderError(c, err)
		return nil, false
	}
	return feedRow, true
}
