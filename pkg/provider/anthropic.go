package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// anthropicAdapter speaks the Anthropic Messages API: content-block stream
// framing, tool_use blocks whose input arrives as input_json_delta chunks,
// and tool_result round-trip blocks keyed by tool_use_id inside a user
// message.
type anthropicAdapter struct {
	base
	content strings.Builder
	failed  error
}

// NewAnthropicAdapter constructs the Anthropic Messages adapter.
func NewAnthropicAdapter(pctx *Context) (Adapter, error) {
	return &anthropicAdapter{base: newBase(pctx)}, nil
}

func (a *anthropicAdapter) Info() Info {
	baseURL := a.pctx.Provider.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1"
	}
	return Info{
		Name:           "anthropic",
		APIBaseURL:     baseURL,
		ChatEndpoint:   "/messages",
		ModelsEndpoint: "/models",
	}
}

func (a *anthropicAdapter) Capabilities() Capabilities {
	return Capabilities{Streaming: true, Tools: true, Vision: true}
}

func (a *anthropicAdapter) Headers() map[string]string {
	return map[string]string{
		"x-api-key":         a.pctx.Provider.APIKey,
		"anthropic-version": "2023-06-01",
	}
}

func (a *anthropicAdapter) ParameterMapping() map[string]string {
	return map[string]string{
		"temperature": "temperature",
		"top_p":       "top_p",
		"max_tokens":  "max_tokens",
		"tools":       "tools",
		"tool_choice": "tool_choice",
		"reasoning":   "thinking",
	}
}

func (a *anthropicAdapter) SupportsNativeDocuments() bool { return true }

func (a *anthropicAdapter) BuildPayload(chatCtx *ChatContext, tools []CallableTool, opts Options) (map[string]any, error) {
	var system strings.Builder
	messages := make([]any, 0, len(chatCtx.Messages)+len(chatCtx.Native))
	for _, m := range chatCtx.Messages {
		// System prompts ride the top-level system field, not the message list.
		if m.Role == RoleSystem {
			if system.Len() > 0 {
				system.WriteString("\n\n")
			}
			system.WriteString(m.Content)
			continue
		}

		content := m.Content
		var blocks []any
		for _, att := range m.Attachments {
			if block, err := a.contentBlock(att); err == nil {
				blocks = append(blocks, block)
			} else {
				content += inlineAttachmentText(att)
			}
		}
		if len(blocks) == 0 {
			messages = append(messages, map[string]any{"role": m.Role, "content": content})
			continue
		}
		blocks = append(blocks, map[string]any{"type": "text", "text": content})
		messages = append(messages, map[string]any{"role": m.Role, "content": blocks})
	}
	for _, native := range chatCtx.Native {
		messages = append(messages, native)
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	payload := map[string]any{
		"model":      opts.Model,
		"messages":   messages,
		"max_tokens": maxTokens,
		"stream":     true,
	}
	if system.Len() > 0 {
		payload["system"] = system.String()
	}
	if len(tools) > 0 {
		wire := make([]any, 0, len(tools))
		for _, t := range tools {
			wire = append(wire, map[string]any{
				"name":         t.WireName(),
				"description":  t.Description,
				"input_schema": t.Parameters,
			})
		}
		payload["tools"] = wire
	}
	if opts.Temperature != nil {
		payload["temperature"] = *opts.Temperature
	}
	if opts.TopP != nil {
		payload["top_p"] = *opts.TopP
	}
	if opts.Reasoning != "" {
		payload["thinking"] = map[string]any{"type": "enabled"}
	}
	for k, v := range opts.Extra {
		payload[k] = v
	}
	return payload, nil
}

func (a *anthropicAdapter) HandleEvent(chunk []byte) (*Event, error) {
	var event map[string]any
	if err := json.Unmarshal(chunk, &event); err != nil {
		return nil, fmt.Errorf("parsing stream event: %w", err)
	}

	switch stringField(event, "type") {
	case "message_start":
		if usage := mapField(mapField(event, "message"), "usage"); usage != nil {
			a.addUsage(anthropicUsage(usage))
		}
		return nil, nil

	case "content_block_start":
		block := mapField(event, "content_block")
		if stringField(block, "type") == "tool_use" {
			pc := a.upsertCall(intField(event, "index"))
			pc.id = stringField(block, "id")
			pc.name = stringField(block, "name")
		}
		return nil, nil

	case "content_block_delta":
		delta := mapField(event, "delta")
		switch stringField(delta, "type") {
		case "text_delta":
			text := stringField(delta, "text")
			a.content.WriteString(text)
			return &Event{Type: EventContentDelta, Content: text}, nil
		case "thinking_delta":
			return &Event{Type: EventReasoningDelta, Content: stringField(delta, "thinking")}, nil
		case "input_json_delta":
			pc := a.upsertCall(intField(event, "index"))
			pc.argsJSON.WriteString(stringField(delta, "partial_json"))
		}
		return nil, nil

	case "message_delta":
		if usage := mapField(event, "usage"); usage != nil {
			a.addUsage(anthropicUsage(usage))
		}
		return nil, nil

	case "error":
		a.failed = fmt.Errorf("provider stream failed: %s",
			stringField(mapField(event, "error"), "message"))
		return &Event{Type: EventError, Err: a.failed}, nil
	}
	return nil, nil
}

func (a *anthropicAdapter) Finalize(ctx context.Context) ([]*Event, error) {
	if a.failed != nil {
		return nil, nil
	}
	calls := a.drainCalls()
	if len(calls) == 0 {
		return []*Event{{
			Type:    EventFinalMessage,
			Content: a.content.String(),
			Usage:   a.totalUsage(),
		}}, nil
	}

	// Round trip: one assistant message carrying the tool_use blocks, then
	// one user message carrying a tool_result block per call, in order.
	useBlocks := make([]any, 0, len(calls))
	for _, call := range calls {
		useBlocks = append(useBlocks, map[string]any{
			"type":  "tool_use",
			"id":    call.ID,
			"name":  call.PluginName + ToolNameSeparator + call.Operation,
			"input": call.Args,
		})
	}
	resultBlocks := make([]any, 0, len(calls))
	for _, call := range calls {
		output := a.callPlugin(ctx, call.PluginName, call.Operation, call.Args)
		resultBlocks = append(resultBlocks, map[string]any{
			"type":        "tool_result",
			"tool_use_id": call.ID,
			"content":     output,
		})
	}
	messages := []map[string]any{
		{"role": RoleAssistant, "content": useBlocks},
		{"role": RoleUser, "content": resultBlocks},
	}
	return []*Event{{
		Type:               EventFunctionCall,
		ToolCalls:          calls,
		AdditionalMessages: messages,
	}}, nil
}

func (a *anthropicAdapter) HandleCompletion(ctx context.Context, body []byte) ([]*Event, error) {
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing completion body: %w", err)
	}
	if usage := mapField(resp, "usage"); usage != nil {
		a.addUsage(anthropicUsage(usage))
	}
	for i, raw := range sliceField(resp, "content") {
		block, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		switch stringField(block, "type") {
		case "text":
			a.content.WriteString(stringField(block, "text"))
		case "tool_use":
			pc := a.upsertCall(i)
			pc.id = stringField(block, "id")
			pc.name = stringField(block, "name")
			pc.args = mapField(block, "input")
		}
	}
	return a.Finalize(ctx)
}

// contentBlock base64-encodes an attachment as a native content block: image
// blocks for images, document blocks for PDFs. Other types take the inline
// text fallback.
func (a *anthropicAdapter) contentBlock(att Attachment) (map[string]any, error) {
	isImage := strings.HasPrefix(att.MimeType, "image/")
	if !isImage && att.MimeType != "application/pdf" {
		return nil, fmt.Errorf("no native block for %s", att.MimeType)
	}
	resolved, err := a.resolveAttachment(att)
	if err != nil {
		return nil, err
	}
	raw, err := readFileBase64(resolved)
	if err != nil {
		return nil, err
	}
	source := map[string]any{"type": "base64", "media_type": att.MimeType, "data": raw}
	if isImage {
		return map[string]any{"type": "image", "source": source}, nil
	}
	return map[string]any{"type": "document", "source": source}, nil
}

// anthropicUsage folds the split cache counters into cached tokens.
func anthropicUsage(usage map[string]any) Usage {
	u := Usage{
		InputTokens:  intField(usage, "input_tokens"),
		OutputTokens: intField(usage, "output_tokens"),
	}
	u.CachedTokens = intField(usage, "cache_read_input_tokens") +
		intField(usage, "cache_creation_input_tokens")
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}
