package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/ent"
	entprovider "github.com/shu-assistant/shu/ent/provider"
	"github.com/shu-assistant/shu/pkg/orchestrator"
	"github.com/shu-assistant/shu/pkg/provider"
	"github.com/shu-assistant/shu/pkg/services"
)

// createConversationRequest is the conversation creation body.
type createConversationRequest struct {
	Title            string   `json:"title"`
	ProviderName     string   `json:"provider_name" binding:"required"`
	Model            string   `json:"model"`
	KnowledgeBaseIDs []string `json:"knowledge_base_ids"`
}

// CreateConversation handles POST /api/conversations.
func (s *Server) CreateConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject unknown providers up front rather than at first message.
	if _, err := s.providerRow(c, req.ProviderName); err != nil {
		return
	}

	conv, err := s.conversations.Create(c.Request.Context(), services.CreateConversationRequest{
		UserID:           currentUser(c),
		Title:            req.Title,
		ProviderName:     req.ProviderName,
		Model:            req.Model,
		KnowledgeBaseIDs: req.KnowledgeBaseIDs,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// ListConversations handles GET /api/conversations.
func (s *Server) ListConversations(c *gin.Context) {
	convs, err := s.conversations.List(c.Request.Context(), currentUser(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

// GetConversation handles GET /api/conversations/:id, including messages.
func (s *Server) GetConversation(c *gin.Context) {
	conv, err := s.conversations.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	msgs, err := s.conversations.Messages(c.Request.Context(), conv.ID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv, "messages": msgs})
}

// postMessageRequest is the user-turn body.
type postMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Model   string `json:"model"`
}

// PostMessage handles POST /api/conversations/:id/messages: persists the
// user message, streams the assistant turn as server-sent events, and
// persists the final assistant message with usage. A client disconnect
// mid-stream still persists the buffered content with the truncated flag.
func (s *Server) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUser(c)

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := s.conversations.Get(ctx, userID, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	providerRow, err := s.providerRow(c, conv.ProviderName)
	if err != nil {
		return
	}

	if _, err := s.conversations.AppendMessage(ctx, services.AppendMessageRequest{
		ConversationID: conv.ID,
		Role:           provider.RoleUser,
		Content:        req.Content,
	}); err != nil {
		renderError(c, err)
		return
	}

	history, err := s.conversations.History(ctx, conv.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	loaded, err := s.registry.EnabledLoaded(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	model := req.Model
	if model == "" {
		model = conv.Model
	}

	turnReq := orchestrator.TurnRequest{
		AdapterName: providerRow.Adapter,
		ProviderCtx: &provider.Context{
			Caller:           s.exec,
			UserID:           userID,
			KnowledgeBaseIDs: conv.KnowledgeBaseIds,
			Provider: provider.ProviderConfig{
				Name:    providerRow.Name,
				BaseURL: providerRow.BaseURL,
				Model:   providerRow.Model,
				APIKey:  providerRow.APIKey,
			},
			AttachmentRoot: s.attachmentRoot,
		},
		ChatContext:  &provider.ChatContext{Messages: history},
		Tools:        orchestrator.AssembleTools(loaded),
		Options:      provider.Options{Model: model},
		MaxToolCalls: s.maxToolCalls,
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	sink := func(ev *provider.Event) error {
		select {
		case <-ctx.Done():
			return orchestrator.ErrClientDisconnected
		default:
		}
		writeTurnEvent(c, ev)
		return nil
	}

	turn, runErr := s.orch.RunTurn(ctx, turnReq, sink)

	// Persist whatever the turn produced, truncated or not. Disconnects and
	// errors after partial output must not lose the assistant content.
	if turn != nil && turn.Content != "" {
		if _, err := s.conversations.AppendMessage(ctx, services.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           provider.RoleAssistant,
			Content:        turn.Content,
			Truncated:      turn.Truncated,
			ToolCycles:     turn.ToolCycles,
			Usage:          turn.Usage,
		}); err != nil {
			s.log.Error("Failed to persist assistant message",
				"conversation_id", conv.ID, "error", err)
		}
	}

	if runErr != nil && !errors.Is(runErr, orchestrator.ErrClientDisconnected) {
		c.SSEvent("error", gin.H{"message": runErr.Error()})
		c.Writer.Flush()
		return
	}
	if turn != nil {
		c.SSEvent("done", gin.H{
			"content":     turn.Content,
			"truncated":   turn.Truncated,
			"tool_cycles": turn.ToolCycles,
			"usage":       turn.Usage,
		})
		c.Writer.Flush()
	}
}

// writeTurnEvent forwards one provider event as an SSE frame.
func writeTurnEvent(c *gin.Context, ev *provider.Event) {
	switch ev.Type {
	case provider.EventContentDelta:
		c.SSEvent("content", gin.H{"delta": ev.Content})
	case provider.EventReasoningDelta:
		c.SSEvent("reasoning", gin.H{"delta": ev.Content})
	case provider.EventFunctionCall:
		names := make([]string, 0, len(ev.ToolCalls))
		for _, call := range ev.ToolCalls {
			names = append(names, call.PluginName+provider.ToolNameSeparator+call.Operation)
		}
		c.SSEvent("tool_calls", gin.H{"tools": names})
	case provider.EventError:
		c.SSEvent("error", gin.H{"message": ev.Err.Error()})
	default:
		return
	}
	c.Writer.Flush()
}

// providerRow loads an enabled provider row by name, writing the error
// response itself on failure.
func (s *Server) providerRow(c *gin.Context, name string) (*ent.Provider, error) {
	row, err := s.db.Provider.Query().
		Where(
			entprovider.NameEQ(name),
			entprovider.EnabledEQ(true),
		).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or disabled provider " + name})
			return nil, err
		}
		renderError(c, err)
		return nil, err
	}
	return row, nil
}
