package orchestrator

import (
	"github.com/shu-assistant/shu/pkg/plugin"
	"github.com/shu-assistant/shu/pkg/provider"
)

// AssembleTools builds one CallableTool per chat-callable (plugin, op).
// Plugins that restrict chat exposure via chat_callable_ops only surface
// those ops; otherwise every op in the schema enum is callable.
func AssembleTools(loaded []*plugin.Loaded) []provider.CallableTool {
	var tools []provider.CallableTool
	for _, l := range loaded {
		ops := l.Manifest.ChatCallableOps
		if len(ops) == 0 {
			ops = l.Ops()
		}
		schema := l.Plugin.Schema()
		for _, op := range ops {
			tools = append(tools, provider.CallableTool{
				PluginName:  l.Manifest.Name,
				Operation:   op,
				Description: toolDescription(schema, l.Manifest.Name, op),
				Parameters:  narrowSchemaToOp(schema, op),
			})
		}
	}
	return tools
}

func toolDescription(schema map[string]any, pluginName, op string) string {
	if desc, ok := schema["description"].(string); ok && desc != "" {
		return desc + " (operation: " + op + ")"
	}
	return pluginName + " operation " + op
}

// narrowSchemaToOp pins the op enum to a single value so the provider can
// only produce arguments for the advertised operation.
func narrowSchemaToOp(schema map[string]any, op string) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		out[k] = v
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return out
	}
	newProps := make(map[string]any, len(props))
	for k, v := range props {
		newProps[k] = v
	}
	if opSchema, ok := props["op"].(map[string]any); ok {
		pinned := make(map[string]any, len(opSchema))
		for k, v := range opSchema {
			pinned[k] = v
		}
		pinned["enum"] = []any{op}
		newProps["op"] = pinned
	}
	out["properties"] = newProps
	return out
}
