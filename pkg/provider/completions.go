package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// completionsAdapter speaks the OpenAI-compatible chat/completions dialect
// used by many hosted and self-hosted gateways: choice deltas, index-keyed
// tool-call argument chunks, and role:tool round-trip messages keyed by
// tool_call_id.
type completionsAdapter struct {
	base
	content strings.Builder
	failed  error
}

// NewCompletionsAdapter constructs the chat/completions adapter.
func NewCompletionsAdapter(pctx *Context) (Adapter, error) {
	return &completionsAdapter{base: newBase(pctx)}, nil
}

func (a *completionsAdapter) Info() Info {
	baseURL := a.pctx.Provider.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return Info{
		Name:           "completions",
		APIBaseURL:     baseURL,
		ChatEndpoint:   "/chat/completions",
		ModelsEndpoint: "/models",
	}
}

func (a *completionsAdapter) Capabilities() Capabilities {
	return Capabilities{Streaming: true, Tools: true, Vision: false}
}

func (a *completionsAdapter) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + a.pctx.Provider.APIKey}
}

func (a *completionsAdapter) ParameterMapping() map[string]string {
	return map[string]string{
		"temperature": "temperature",
		"top_p":       "top_p",
		"max_tokens":  "max_tokens",
		"tools":       "tools",
		"tool_choice": "tool_choice",
	}
}

func (a *completionsAdapter) SupportsNativeDocuments() bool { return false }

func (a *completionsAdapter) BuildPayload(chatCtx *ChatContext, tools []CallableTool, opts Options) (map[string]any, error) {
	messages := make([]any, 0, len(chatCtx.Messages)+len(chatCtx.Native))
	for _, m := range chatCtx.Messages {
		content := m.Content
		for _, att := range m.Attachments {
			content += inlineAttachmentText(att)
		}
		messages = append(messages, map[string]any{"role": m.Role, "content": content})
	}
	for _, native := range chatCtx.Native {
		messages = append(messages, native)
	}

	payload := map[string]any{
		"model":    opts.Model,
		"messages": messages,
		"stream":   true,
		"stream_options": map[string]any{
			"include_usage": true,
		},
	}
	if len(tools) > 0 {
		wire := make([]any, 0, len(tools))
		for _, t := range tools {
			wire = append(wire, map[string]any{
				"type": "function",
				"function": map[string]any{
					"name":        t.WireName(),
					"description": t.Description,
					"parameters":  t.Parameters,
				},
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
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	for k, v := range opts.Extra {
		payload[k] = v
	}
	return payload, nil
}

func (a *completionsAdapter) HandleEvent(chunk []byte) (*Event, error) {
	var event map[string]any
	if err := json.Unmarshal(chunk, &event); err != nil {
		return nil, fmt.Errorf("parsing stream chunk: %w", err)
	}
	if errObj := mapField(event, "error"); errObj != nil {
		a.failed = fmt.Errorf("provider stream failed: %s", stringField(errObj, "message"))
		return &Event{Type: EventError, Err: a.failed}, nil
	}
	if usage := mapField(event, "usage"); usage != nil {
		a.addUsage(completionsUsage(usage))
	}

	choices := sliceField(event, "choices")
	if len(choices) == 0 {
		return nil, nil
	}
	choice, _ := choices[0].(map[string]any)
	delta := mapField(choice, "delta")
	if delta == nil {
		return nil, nil
	}

	for _, raw := range sliceField(delta, "tool_calls") {
		tc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		pc := a.upsertCall(intField(tc, "index"))
		if id := stringField(tc, "id"); id != "" {
			pc.id = id
		}
		if fn := mapField(tc, "function"); fn != nil {
			if name := stringField(fn, "name"); name != "" {
				pc.name = name
			}
			pc.argsJSON.WriteString(stringField(fn, "arguments"))
		}
	}

	if reasoning := stringField(delta, "reasoning_content"); reasoning != "" {
		return &Event{Type: EventReasoningDelta, Content: reasoning}, nil
	}
	if content := stringField(delta, "content"); content != "" {
		a.content.WriteString(content)
		return &Event{Type: EventContentDelta, Content: content}, nil
	}
	return nil, nil
}

func (a *completionsAdapter) Finalize(ctx context.Context) ([]*Event, error) {
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

	wireCalls := make([]any, 0, len(calls))
	for _, call := range calls {
		args, _ := json.Marshal(call.Args)
		wireCalls = append(wireCalls, map[string]any{
			"id":   call.ID,
			"type": "function",
			"function": map[string]any{
				"name":      call.PluginName + ToolNameSeparator + call.Operation,
				"arguments": string(args),
			},
		})
	}
	messages := []map[string]any{{
		"role":       RoleAssistant,
		"content":    nil,
		"tool_calls": wireCalls,
	}}
	for _, call := range calls {
		output := a.callPlugin(ctx, call.PluginName, call.Operation, call.Args)
		messages = append(messages, map[string]any{
			"role":         "tool",
			"tool_call_id": call.ID,
			"content":      output,
		})
	}
	return []*Event{{
		Type:               EventFunctionCall,
		ToolCalls:          calls,
		AdditionalMessages: messages,
	}}, nil
}

func (a *completionsAdapter) HandleCompletion(ctx context.Context, body []byte) ([]*Event, error) {
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing completion body: %w", err)
	}
	if usage := mapField(resp, "usage"); usage != nil {
		a.addUsage(completionsUsage(usage))
	}
	choices := sliceField(resp, "choices")
	if len(choices) > 0 {
		choice, _ := choices[0].(map[string]any)
		message := mapField(choice, "message")
		a.content.WriteString(stringField(message, "content"))
		for i, raw := range sliceField(message, "tool_calls") {
			tc, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			pc := a.upsertCall(i)
			pc.id = stringField(tc, "id")
			if fn := mapField(tc, "function"); fn != nil {
				pc.name = stringField(fn, "name")
				pc.argsJSON.WriteString(stringField(fn, "arguments"))
			}
		}
	}
	return a.Finalize(ctx)
}

func completionsUsage(usage map[string]any) Usage {
	u := Usage{
		InputTokens:  intField(usage, "prompt_tokens"),
		OutputTokens: intField(usage, "completion_tokens"),
		TotalTokens:  intField(usage, "total_tokens"),
	}
	if details := mapField(usage, "prompt_tokens_details"); details != nil {
		u.CachedTokens = intField(details, "cached_tokens")
	}
	if details := mapField(usage, "completion_tokens_details"); details != nil {
		u.ReasoningTokens = intField(details, "reasoning_tokens")
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}
