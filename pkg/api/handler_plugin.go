package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/plugindefinition"
	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// pluginView is the list/detail representation of one plugin.
type pluginView struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Enabled         bool     `json:"enabled"`
	Capabilities    []string `json:"capabilities"`
	Ops             []string `json:"ops,omitempty"`
	ChatCallableOps []string `json:"chat_callable_ops,omitempty"`
	DefaultFeedOp   string   `json:"default_feed_op,omitempty"`
}

// ListPlugins handles GET /api/plugins. Joins discovered manifests with
// their persisted definition rows.
func (s *Server) ListPlugins(c *gin.Context) {
	defs, err := s.db.PluginDefinition.Query().
		Order(ent.Asc(plugindefinition.FieldName)).
		All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	enabled := make(map[string]bool, len(defs))
	for _, def := range defs {
		enabled[def.Name] = def.Enabled
	}

	manifests := s.registry.Manifests()
	views := make([]pluginView, 0, len(manifests))
	for name, m := range manifests {
		view := pluginView{
			Name:            name,
			Version:         m.Version,
			Enabled:         enabled[name],
			Capabilities:    m.Capabilities,
			ChatCallableOps: m.ChatCallableOps,
			DefaultFeedOp:   m.DefaultFeedOp,
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"plugins": views})
}

// SyncPlugins handles POST /api/plugins/sync: re-discovers manifests and
// reconciles definition rows.
func (s *Server) SyncPlugins(c *gin.Context) {
	if err := s.registry.Load(); err != nil {
		renderError(c, err)
		return
	}
	if err := s.registry.Sync(c.Request.Context()); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "synced"})
}

// EnablePlugin handles POST /api/plugins/:name/enable.
func (s *Server) EnablePlugin(c *gin.Context) {
	s.setPluginEnabled(c, true)
}

// DisablePlugin handles POST /api/plugins/:name/disable.
func (s *Server) DisablePlugin(c *gin.Context) {
	s.setPluginEnabled(c, false)
}

func (s *Server) setPluginEnabled(c *gin.Context, enabled bool) {
	name := c.Param("name")
	n, err := s.db.PluginDefinition.Update().
		Where(plugindefinition.NameEQ(name)).
		SetEnabled(enabled).
		Save(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "plugin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "enabled": enabled})
}

// executeRequest is the ad-hoc execution request body.
type executeRequest struct {
	Params map[string]any `json:"params"`
}

// ExecutePlugin handles POST /api/plugins/:name/execute: one synchronous
// plugin call through the full policy pipeline. Policy denials render 429
// with rate-limit headers.
func (s *Server) ExecutePlugin(c *gin.Context) {
	name := c.Param("name")

	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, err := s.registry.Definition(c.Request.Context(), name)
	if err != nil {
		renderError(c, err)
		return
	}
	var limits *plugin.Limits
	if def != nil {
		limits = plugin.LimitsFromMap(def.Limits)
	}

	result, err := s.exec.Execute(c.Request.Context(), executor.Request{
		PluginName: name,
		UserID:     currentUser(c),
		Params:     req.Params,
		Limits:     limits,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
