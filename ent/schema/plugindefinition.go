package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PluginDefinition holds the schema definition for the PluginDefinition entity.
type PluginDefinition struct {
	ent.Schema
}

// Fields of the PluginDefinition.
func (PluginDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("definition_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Plugin name from the manifest"),
		field.String("version"),
		field.Bool("enabled").
			Default(false).
			Comment("Created disabled; an operator enables explicitly"),
		field.JSON("input_schema", map[string]interface{}{}).
			Optional().
			Comment("Published JSON schema for params"),
		field.JSON("output_schema", map[string]interface{}{}).
			Optional(),
		field.JSON("limits", map[string]interface{}{}).
			Optional().
			Comment("Per-plugin policy limits merged over executor defaults"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PluginDefinition.
func (PluginDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
	}
}
