package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderIdentity holds the schema definition for the ProviderIdentity entity.
type ProviderIdentity struct {
	ent.Schema
}

// Fields of the ProviderIdentity.
func (ProviderIdentity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("identity_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("provider").
			Comment("Auth provider key, e.g. google or github"),
		field.String("subject").
			Comment("Account identifier at the provider"),
		field.JSON("scopes", []string{}).
			Optional(),
		field.String("refresh_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Encrypted at rest with the application key cipher"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProviderIdentity.
func (ProviderIdentity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider"),
		index.Fields("user_id", "provider", "subject").
			Unique(),
	}
}
