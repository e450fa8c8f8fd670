package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Provider holds the schema definition for the Provider entity: one
// configured LLM provider endpoint.
type Provider struct {
	ent.Schema
}

// Fields of the Provider.
func (Provider) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("provider_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Display name, e.g. openai-prod"),
		field.String("adapter").
			Comment("Adapter type: openai, completions, anthropic, gemini"),
		field.String("base_url").
			Optional().
			Comment("Override of the adapter's default API base URL"),
		field.String("model").
			Comment("Default model for conversations on this provider"),
		field.String("api_key").
			Sensitive().
			Comment("Encrypted at rest with the application key cipher"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
