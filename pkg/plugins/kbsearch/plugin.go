// Package kbsearch is the built-in knowledge-base search plugin. It exposes
// the scoped kb capability as chat-callable operations so the orchestrator
// can ground answers in the conversation's bound knowledge bases.
package kbsearch

import (
	"context"
	"fmt"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// Name is the plugin name, matching the manifest.
const Name = "kbsearch"

// Version is the plugin version, matching the manifest.
const Version = "1.0.0"

// Plugin implements knowledge-base search over the bound KB set.
type Plugin struct{}

// New is the factory registered for the manifest entry "kbsearch:Plugin".
func New() (plugin.Plugin, error) {
	return &Plugin{}, nil
}

func (p *Plugin) Name() string    { return Name }
func (p *Plugin) Version() string { return Version }

func (p *Plugin) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op": map[string]any{
				"type":        "string",
				"enum":        []any{"search_chunks", "search_documents", "get_document"},
				"description": "Operation to perform.",
			},
			"field": map[string]any{
				"type":        "string",
				"description": "Field to search (e.g. content, title, source).",
			},
			"operator": map[string]any{
				"type":        "string",
				"description": "Match operator (e.g. contains, equals).",
			},
			"value": map[string]any{
				"type":        "string",
				"description": "Value to match.",
			},
			"page": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Result page, starting at 1.",
			},
			"document_id": map[string]any{
				"type":        "string",
				"description": "Document id for get_document.",
			},
		},
		"required": []any{"op"},
	}
}

func (p *Plugin) OutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results":       map[string]any{"type": "array"},
			"total_results": map[string]any{"type": "integer"},
			"page":          map[string]any{"type": "integer"},
			"page_size":     map[string]any{"type": "integer"},
			"document":      map[string]any{"type": "object"},
		},
	}
}

// Execute dispatches one operation against the scoped kb capability.
func (p *Plugin) Execute(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	kbCap, err := h.KB()
	if err != nil {
		return nil, err
	}
	log, err := h.Log()
	if err != nil {
		return nil, err
	}

	op, _ := params["op"].(string)
	switch op {
	case "search_chunks", "search_documents":
		field, _ := params["field"].(string)
		operator, _ := params["operator"].(string)
		value, _ := params["value"].(string)
		page := intParam(params, "page", 1)

		var out map[string]any
		if op == "search_chunks" {
			out = kbCap.SearchChunks(ctx, field, operator, value, page)
		} else {
			out = kbCap.SearchDocuments(ctx, field, operator, value, page)
		}
		if result, failed := asError(out); failed {
			return result, nil
		}
		log.Info("KB search completed",
			"op", op, "field", field, "total", out["total_results"])
		return plugin.OK(out), nil

	case "get_document":
		documentID, _ := params["document_id"].(string)
		if documentID == "" {
			return plugin.Err("document_id is required", "invalid_params"), nil
		}
		out := kbCap.GetDocument(ctx, documentID)
		if result, failed := asError(out); failed {
			return result, nil
		}
		return plugin.OK(map[string]any{"document": out}), nil

	default:
		return plugin.Err(fmt.Sprintf("unknown operation %q", op), "invalid_params"), nil
	}
}

// asError converts the capability's error envelope into a plugin result.
func asError(out map[string]any) (*plugin.Result, bool) {
	if out["status"] != "error" {
		return nil, false
	}
	detail, _ := out["error"].(map[string]any)
	code, _ := detail["code"].(string)
	message, _ := detail["message"].(string)
	if code == "" {
		code = "kb_error"
	}
	return plugin.Err(message, code), true
}

func intParam(params map[string]any, key string, def int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}
