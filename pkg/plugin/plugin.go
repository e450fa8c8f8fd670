// Package plugin defines the plugin SDK surface: the Plugin contract,
// manifests, structured results, and the registry that binds on-disk
// manifests to compiled-in plugin factories.
//
// Plugins are compiled into the binary and reach the outside world only
// through the host capability layer (pkg/host). The SDK boundary plus the
// loader's static import scan are the two lines of defense that keep the
// plugin surface narrow and inspectable.
package plugin

import (
	"context"

	"github.com/shu-assistant/shu/pkg/host"
)

// Plugin is the contract every plugin implements.
// Implementations must be safe for concurrent Execute calls.
type Plugin interface {
	// Name returns the plugin name (matches the manifest).
	Name() string

	// Version returns the plugin version (matches the manifest).
	Version() string

	// Schema returns the input JSON schema, or nil if the plugin does not
	// declare one. The schema MUST contain properties.op.enum with at least
	// one operation name; the loader rejects plugins violating this.
	Schema() map[string]any

	// OutputSchema returns the output JSON schema for success data, or nil.
	OutputSchema() map[string]any

	// Execute runs one operation. params has already passed input-schema
	// validation and had reserved keys (__host) stripped by the executor.
	// All outbound access goes through h; direct network or store access is
	// forbidden and rejected by the loader's static scan.
	Execute(ctx context.Context, params map[string]any, h *host.Host) (*Result, error)
}

// Factory constructs a plugin instance. Registered per manifest entry.
type Factory func() (Plugin, error)

// Loaded is a plugin instance with its manifest attached after load.
// The manifest (capability allow-list, op_auth) is fixed at load time.
type Loaded struct {
	Plugin   Plugin
	Manifest *Manifest
}

// Ops returns the operation enum from the plugin's input schema.
func (l *Loaded) Ops() []string {
	return OpEnum(l.Plugin.Schema())
}

// OpEnum extracts properties.op.enum from an input schema.
// Returns nil when the schema does not declare the op enum contract.
func OpEnum(schema map[string]any) []string {
	if schema == nil {
		return nil
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil
	}
	op, ok := props["op"].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := op["enum"].([]any)
	if !ok {
		return nil
	}
	ops := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			ops = append(ops, s)
		}
	}
	if len(ops) == 0 {
		return nil
	}
	return ops
}
