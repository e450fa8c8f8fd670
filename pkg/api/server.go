// Package api is the ops HTTP surface: health, plugin administration,
// feeds, executions, and the streaming chat endpoint. Handlers stay thin;
// policy lives in the executor and persistence in the services.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/pkg/database"
	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/feed"
	"github.com/shu-assistant/shu/pkg/orchestrator"
	"github.com/shu-assistant/shu/pkg/plugin"
	"github.com/shu-assistant/shu/pkg/services"
)

// Server is the ops API server.
type Server struct {
	db            *database.Client
	registry      *plugin.Registry
	exec          *executor.Executor
	orch          *orchestrator.Orchestrator
	pool          *feed.WorkerPool
	conversations *services.ConversationService
	identities    *services.IdentityService

	attachmentRoot string
	maxToolCalls   int
	log            *slog.Logger
}

// Options carries the server's collaborators and tunables.
type Options struct {
	DB             *database.Client
	Registry       *plugin.Registry
	Executor       *executor.Executor
	Orchestrator   *orchestrator.Orchestrator
	Pool           *feed.WorkerPool
	Conversations  *services.ConversationService
	Identities     *services.IdentityService
	AttachmentRoot string
	MaxToolCalls   int
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	return &Server{
		db:             opts.DB,
		registry:       opts.Registry,
		exec:           opts.Executor,
		orch:           opts.Orchestrator,
		pool:           opts.Pool,
		conversations:  opts.Conversations,
		identities:     opts.Identities,
		attachmentRoot: opts.AttachmentRoot,
		maxToolCalls:   opts.MaxToolCalls,
		log:            slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	r.GET("/health", s.Health)

	apiGroup := r.Group("/api")
	apiGroup.Use(requireUser())
	{
		apiGroup.GET("/plugins", s.ListPlugins)
		apiGroup.POST("/plugins/sync", s.SyncPlugins)
		apiGroup.POST("/plugins/:name/enable", s.EnablePlugin)
		apiGroup.POST("/plugins/:name/disable", s.DisablePlugin)
		apiGroup.POST("/plugins/:name/execute", s.ExecutePlugin)

		apiGroup.GET("/feeds", s.ListFeeds)
		apiGroup.POST("/feeds", s.CreateFeed)
		apiGroup.GET("/feeds/:id", s.GetFeed)
		apiGroup.POST("/feeds/:id/enable", s.EnableFeed)
		apiGroup.POST("/feeds/:id/disable", s.DisableFeed)
		apiGroup.DELETE("/feeds/:id", s.DeleteFeed)

		apiGroup.GET("/executions", s.ListExecutions)
		apiGroup.GET("/executions/:id", s.GetExecution)

		apiGroup.GET("/conversations", s.ListConversations)
		apiGroup.POST("/conversations", s.CreateConversation)
		apiGroup.GET("/conversations/:id", s.GetConversation)
		apiGroup.POST("/conversations/:id/messages", s.PostMessage)
	}

	return r
}
