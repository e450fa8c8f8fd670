package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/chatmessage"
	"github.com/shu-assistant/shu/ent/conversation"
	"github.com/shu-assistant/shu/pkg/provider"
)

// ConversationService manages conversations and their message history.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversationRequest carries the inputs for a new conversation.
type CreateConversationRequest struct {
	UserID           string
	Title            string
	ProviderName     string
	Model            string
	KnowledgeBaseIDs []string
}

// Create creates a conversation.
func (s *ConversationService) Create(ctx context.Context, req CreateConversationRequest) (*ent.Conversation, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.ProviderName == "" {
		return nil, NewValidationError("provider_name", "required")
	}

	create := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetProviderName(req.ProviderName)
	if req.Title != "" {
		create = create.SetTitle(req.Title)
	}
	if req.Model != "" {
		create = create.SetModel(req.Model)
	}
	if len(req.KnowledgeBaseIDs) > 0 {
		create = create.SetKnowledgeBaseIds(req.KnowledgeBaseIDs)
	}

	conv, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return conv, nil
}

// Get returns a conversation owned by userID, or ErrNotFound.
func (s *ConversationService) Get(ctx context.Context, userID, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.IDEQ(conversationID),
			conversation.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading conversation: %w", err)
	}
	return conv, nil
}

// List returns the user's conversations, most recently active first.
func (s *ConversationService) List(ctx context.Context, userID string) ([]*ent.Conversation, error) {
	convs, err := s.client.Conversation.Query().
		Where(conversation.UserIDEQ(userID)).
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return convs, nil
}

// Messages returns a conversation's messages in sequence order.
func (s *ConversationService) Messages(ctx context.Context, conversationID string) ([]*ent.ChatMessage, error) {
	msgs, err := s.client.ChatMessage.Query().
		Where(chatmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}
	return msgs, nil
}

// History converts the stored messages into the provider chat context.
func (s *ConversationService) History(ctx context.Context, conversationID string) ([]provider.Message, error) {
	rows, err := s.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	msgs := make([]provider.Message, len(rows))
	for i, row := range rows {
		msgs[i] = provider.Message{Role: row.Role, Content: row.Content}
	}
	return msgs, nil
}

// AppendMessageRequest carries one message to persist.
type AppendMessageRequest struct {
	ConversationID string
	Role           string
	Content        string
	Truncated      bool
	ToolCycles     int
	Usage          *provider.Usage
}

// AppendMessage persists one message with a server-assigned sequence number.
// The sequence is taken under a transaction; the unique
// (conversation_id, sequence) index rejects racing writers.
func (s *ConversationService) AppendMessage(ctx context.Context, req AppendMessageRequest) (*ent.ChatMessage, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	next, err := nextSequence(ctx, tx, req.ConversationID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	create := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetRole(req.Role).
		SetContent(req.Content).
		SetSequence(next).
		SetTruncated(req.Truncated)
	if req.ToolCycles > 0 {
		create = create.SetToolCycles(req.ToolCycles)
	}
	if req.Usage != nil {
		create = create.SetUsage(usageMap(req.Usage))
	}

	msg, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("saving message: %w", err)
	}

	if _, err := tx.Conversation.UpdateOneID(req.ConversationID).
		SetUpdatedAt(time.Now()).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("touching conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing message: %w", err)
	}
	return msg, nil
}

// nextSequence returns max(sequence)+1 for the conversation, starting at 1.
func nextSequence(ctx context.Context, tx *ent.Tx, conversationID string) (int, error) {
	last, err := tx.ChatMessage.Query().
		Where(chatmessage.ConversationIDEQ(conversationID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("reading last sequence: %w", err)
	}
	return last.Sequence + 1, nil
}

// usageMap converts provider usage to the stored JSON object.
func usageMap(u *provider.Usage) map[string]interface{} {
	data, err := json.Marshal(u)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
