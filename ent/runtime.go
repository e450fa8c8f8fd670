// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shu-assistant/shu/ent/chatmessage"
	"github.com/shu-assistant/shu/ent/conversation"
	"github.com/shu-assistant/shu/ent/plugindefinition"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/ent/pluginfeed"
	"github.com/shu-assistant/shu/ent/provider"
	"github.com/shu-assistant/shu/ent/provideridentity"
	"github.com/shu-assistant/shu/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescTruncated is the schema descriptor for truncated field.
	chatmessageDescTruncated := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultTruncated holds the default value on creation for the truncated field.
	chatmessage.DefaultTruncated = chatmessageDescTruncated.Default.(bool)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[8].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[6].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[7].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	plugindefinitionFields := schema.PluginDefinition{}.Fields()
	_ = plugindefinitionFields
	// plugindefinitionDescEnabled is the schema descriptor for enabled field.
	plugindefinitionDescEnabled := plugindefinitionFields[3].Descriptor()
	// plugindefinition.DefaultEnabled holds the default value on creation for the enabled field.
	plugindefinition.DefaultEnabled = plugindefinitionDescEnabled.Default.(bool)
	// plugindefinitionDescCreatedAt is the schema descriptor for created_at field.
	plugindefinitionDescCreatedAt := plugindefinitionFields[7].Descriptor()
	// plugindefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	plugindefinition.DefaultCreatedAt = plugindefinitionDescCreatedAt.Default.(func() time.Time)
	// plugindefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	plugindefinitionDescUpdatedAt := plugindefinitionFields[8].Descriptor()
	// plugindefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plugindefinition.DefaultUpdatedAt = plugindefinitionDescUpdatedAt.Default.(func() time.Time)
	// plugindefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plugindefinition.UpdateDefaultUpdatedAt = plugindefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	pluginexecutionFields := schema.PluginExecution{}.Fields()
	_ = pluginexecutionFields
	// pluginexecutionDescCreatedAt is the schema descriptor for created_at field.
	pluginexecutionDescCreatedAt := pluginexecutionFields[10].Descriptor()
	// pluginexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	pluginexecution.DefaultCreatedAt = pluginexecutionDescCreatedAt.Default.(func() time.Time)
	pluginfeedFields := schema.PluginFeed{}.Fields()
	_ = pluginfeedFields
	// pluginfeedDescEnabled is the schema descriptor for enabled field.
	pluginfeedDescEnabled := pluginfeedFields[5].Descriptor()
	// pluginfeed.DefaultEnabled holds the default value on creation for the enabled field.
	pluginfeed.DefaultEnabled = pluginfeedDescEnabled.Default.(bool)
	// pluginfeedDescCreatedAt is the schema descriptor for created_at field.
	pluginfeedDescCreatedAt := pluginfeedFields[7].Descriptor()
	// pluginfeed.DefaultCreatedAt holds the default value on creation for the created_at field.
	pluginfeed.DefaultCreatedAt = pluginfeedDescCreatedAt.Default.(func() time.Time)
	// pluginfeedDescUpdatedAt is the schema descriptor for updated_at field.
	pluginfeedDescUpdatedAt := pluginfeedFields[8].Descriptor()
	// pluginfeed.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pluginfeed.DefaultUpdatedAt = pluginfeedDescUpdatedAt.Default.(func() time.Time)
	// pluginfeed.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pluginfeed.UpdateDefaultUpdatedAt = pluginfeedDescUpdatedAt.UpdateDefault.(func() time.Time)
	providerFields := schema.Provider{}.Fields()
	_ = providerFields
	// providerDescEnabled is the schema descriptor for enabled field.
	providerDescEnabled := providerFields[6].Descriptor()
	// provider.DefaultEnabled holds the default value on creation for the enabled field.
	provider.DefaultEnabled = providerDescEnabled.Default.(bool)
	// providerDescCreatedAt is the schema descriptor for created_at field.
	providerDescCreatedAt := providerFields[7].Descriptor()
	// provider.DefaultCreatedAt holds the default value on creation for the created_at field.
	provider.DefaultCreatedAt = providerDescCreatedAt.Default.(func() time.Time)
	// providerDescUpdatedAt is the schema descriptor for updated_at field.
	providerDescUpdatedAt := providerFields[8].Descriptor()
	// provider.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provider.DefaultUpdatedAt = providerDescUpdatedAt.Default.(func() time.Time)
	// provider.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provider.UpdateDefaultUpdatedAt = providerDescUpdatedAt.UpdateDefault.(func() time.Time)
	provideridentityFields := schema.ProviderIdentity{}.Fields()
	_ = provideridentityFields
	// provideridentityDescCreatedAt is the schema descriptor for created_at field.
	provideridentityDescCreatedAt := provideridentityFields[6].Descriptor()
	// provideridentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	provideridentity.DefaultCreatedAt = provideridentityDescCreatedAt.Default.(func() time.Time)
	// provideridentityDescUpdatedAt is the schema descriptor for updated_at field.
	provideridentityDescUpdatedAt := provideridentityFields[7].Descriptor()
	// provideridentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provideridentity.DefaultUpdatedAt = provideridentityDescUpdatedAt.Default.(func() time.Time)
	// provideridentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provideridentity.UpdateDefaultUpdatedAt = provideridentityDescUpdatedAt.UpdateDefault.(func() time.Time)
}
