// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "truncated", Type: field.TypeBool, Default: false},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_cycles", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_conversations_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_conversation_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[8], ChatMessagesColumns[3]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "provider_name", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "knowledge_base_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[7]},
			},
		},
	}
	// PluginDefinitionsColumns holds the columns for the "plugin_definitions" table.
	PluginDefinitionsColumns = []*schema.Column{
		{Name: "definition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "input_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "output_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "limits", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PluginDefinitionsTable holds the schema information for the "plugin_definitions" table.
	PluginDefinitionsTable = &schema.Table{
		Name:       "plugin_definitions",
		Columns:    PluginDefinitionsColumns,
		PrimaryKey: []*schema.Column{PluginDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plugindefinition_enabled",
				Unique:  false,
				Columns: []*schema.Column{PluginDefinitionsColumns[3]},
			},
		},
	}
	// PluginExecutionsColumns holds the columns for the "plugin_executions" table.
	PluginExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "schedule_id", Type: field.TypeString, Nullable: true},
		{Name: "plugin_name", Type: field.TypeString},
		{Name: "agent_key", Type: field.TypeString, Nullable: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// PluginExecutionsTable holds the schema information for the "plugin_executions" table.
	PluginExecutionsTable = &schema.Table{
		Name:       "plugin_executions",
		Columns:    PluginExecutionsColumns,
		PrimaryKey: []*schema.Column{PluginExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pluginexecution_status",
				Unique:  false,
				Columns: []*schema.Column{PluginExecutionsColumns[6]},
			},
			{
				Name:    "pluginexecution_user_id",
				Unique:  false,
				Columns: []*schema.Column{PluginExecutionsColumns[1]},
			},
			{
				Name:    "pluginexecution_schedule_id_status",
				Unique:  false,
				Columns: []*schema.Column{PluginExecutionsColumns[2], PluginExecutionsColumns[6]},
			},
			{
				Name:    "pluginexecution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PluginExecutionsColumns[6], PluginExecutionsColumns[10]},
			},
			{
				Name:    "pluginexecution_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{PluginExecutionsColumns[6], PluginExecutionsColumns[13]},
			},
		},
	}
	// PluginFeedsColumns holds the columns for the "plugin_feeds" table.
	PluginFeedsColumns = []*schema.Column{
		{Name: "feed_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plugin_name", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "schedule", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PluginFeedsTable holds the schema information for the "plugin_feeds" table.
	PluginFeedsTable = &schema.Table{
		Name:       "plugin_feeds",
		Columns:    PluginFeedsColumns,
		PrimaryKey: []*schema.Column{PluginFeedsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pluginfeed_user_id",
				Unique:  false,
				Columns: []*schema.Column{PluginFeedsColumns[1]},
			},
			{
				Name:    "pluginfeed_enabled",
				Unique:  false,
				Columns: []*schema.Column{PluginFeedsColumns[5]},
			},
			{
				Name:    "pluginfeed_plugin_name",
				Unique:  false,
				Columns: []*schema.Column{PluginFeedsColumns[2]},
			},
		},
	}
	// ProvidersColumns holds the columns for the "providers" table.
	ProvidersColumns = []*schema.Column{
		{Name: "provider_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "adapter", Type: field.TypeString},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "api_key", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProvidersTable holds the schema information for the "providers" table.
	ProvidersTable = &schema.Table{
		Name:       "providers",
		Columns:    ProvidersColumns,
		PrimaryKey: []*schema.Column{ProvidersColumns[0]},
	}
	// ProviderIdentitiesColumns holds the columns for the "provider_identities" table.
	ProviderIdentitiesColumns = []*schema.Column{
		{Name: "identity_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "scopes", Type: field.TypeJSON, Nullable: true},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderIdentitiesTable holds the schema information for the "provider_identities" table.
	ProviderIdentitiesTable = &schema.Table{
		Name:       "provider_identities",
		Columns:    ProviderIdentitiesColumns,
		PrimaryKey: []*schema.Column{ProviderIdentitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "provideridentity_user_id_provider",
				Unique:  false,
				Columns: []*schema.Column{ProviderIdentitiesColumns[1], ProviderIdentitiesColumns[2]},
			},
			{
				Name:    "provideridentity_user_id_provider_subject",
				Unique:  true,
				Columns: []*schema.Column{ProviderIdentitiesColumns[1], ProviderIdentitiesColumns[2], ProviderIdentitiesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ConversationsTable,
		PluginDefinitionsTable,
		PluginExecutionsTable,
		PluginFeedsTable,
		ProvidersTable,
		ProviderIdentitiesTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}
