package executor

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validateAgainstSchema validates payload against a JSON schema expressed as
// a plain map. When the schema fails to compile, validation degrades to the
// required-keys check so a malformed schema never blocks execution outright.
func validateAgainstSchema(schema, payload map[string]any) error {
	if schema == nil {
		return nil
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return requiredKeysCheck(schema, payload)
	}

	// The validator wants the payload in decoded-JSON form (float64 numbers,
	// plain maps). Round-trip through encoding/json to normalize typed values
	// plugins may have put into the map.
	normalized, err := normalizeJSON(payload)
	if err != nil {
		return requiredKeysCheck(schema, payload)
	}
	return compiled.Validate(normalized)
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	// Round-trip so nested values are in canonical decoded-JSON form.
	doc, err := normalizeJSON(schema)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// requiredKeysCheck is the minimum fallback: every name listed in the
// schema's required array must be a key of payload.
func requiredKeysCheck(schema, payload map[string]any) error {
	required, ok := schema["required"].([]any)
	if !ok {
		return nil
	}
	for _, r := range required {
		name, ok := r.(string)
		if !ok {
			continue
		}
		if _, present := payload[name]; !present {
			return fmt.Errorf("missing required property %q", name)
		}
	}
	return nil
}
