package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("role").
			Comment("system, user, or assistant"),
		field.Text("content"),
		field.Int("sequence").
			Comment("Monotonic position within the conversation"),
		field.Bool("truncated").
			Default(false).
			Comment("Set when the client disconnected mid-stream"),
		field.JSON("usage", map[string]interface{}{}).
			Optional().
			Comment("Token usage summed across tool-call cycles"),
		field.Int("tool_cycles").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "sequence").
			Unique(),
	}
}
