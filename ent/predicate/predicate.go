// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// PluginDefinition is the predicate function for plugindefinition builders.
type PluginDefinition func(*sql.Selector)

// PluginExecution is the predicate function for pluginexecution builders.
type PluginExecution func(*sql.Selector)

// PluginFeed is the predicate function for pluginfeed builders.
type PluginFeed func(*sql.Selector)

// Provider is the predicate function for provider builders.
type Provider func(*sql.Selector)

// ProviderIdentity is the predicate function for provideridentity builders.
type ProviderIdentity func(*sql.Selector)
