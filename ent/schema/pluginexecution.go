package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PluginExecution holds the schema definition for the PluginExecution entity.
type PluginExecution struct {
	ent.Schema
}

// Fields of the PluginExecution.
func (PluginExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("schedule_id").
			Optional().
			Nillable().
			Comment("Feed that produced this execution; nil for ad-hoc runs"),
		field.String("plugin_name"),
		field.String("agent_key").
			Optional().
			Nillable(),
		field.JSON("params", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Normalized plugin result, capped at the output byte limit"),
		field.String("error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the row (pending to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Indexes of the PluginExecution.
func (PluginExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("schedule_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
