package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PluginFeed holds the schema definition for the PluginFeed entity.
type PluginFeed struct {
	ent.Schema
}

// Fields of the PluginFeed.
func (PluginFeed) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feed_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning user; every execution runs as this user"),
		field.String("plugin_name"),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("Execution params; may carry auth_mode/auth_subject and one-shot keys"),
		field.String("schedule").
			Comment("Cron expression or @every interval"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_run_at").
			Optional().
			Nillable().
			Comment("Advanced only on COMPLETED executions"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PluginFeed.
func (PluginFeed) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("enabled"),
		index.Fields("plugin_name"),
	}
}
