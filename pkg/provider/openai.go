package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// openAIAdapter speaks the OpenAI Responses API: typed stream events,
// function calls delivered as output items with argument deltas keyed by
// output index, and function_call_output round-trip messages keyed by
// call_id.
type openAIAdapter struct {
	base
	content   strings.Builder
	completed bool
	failed    error
}

// NewOpenAIAdapter constructs the OpenAI Responses adapter.
func NewOpenAIAdapter(pctx *Context) (Adapter, error) {
	return &openAIAdapter{base: newBase(pctx)}, nil
}

func (a *openAIAdapter) Info() Info {
	baseURL := a.pctx.Provider.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return Info{
		Name:           "openai",
		APIBaseURL:     baseURL,
		ChatEndpoint:   "/responses",
		ModelsEndpoint: "/models",
	}
}

func (a *openAIAdapter) Capabilities() Capabilities {
	return Capabilities{Streaming: true, Tools: true, Vision: true}
}

func (a *openAIAdapter) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + a.pctx.Provider.APIKey}
}

func (a *openAIAdapter) ParameterMapping() map[string]string {
	return map[string]string{
		"temperature":    "temperature",
		"top_p":          "top_p",
		"max_tokens":     "max_output_tokens",
		"tools":          "tools",
		"tool_choice":    "tool_choice",
		"reasoning":      "reasoning.effort",
		"max_tool_calls": "max_tool_calls",
	}
}

func (a *openAIAdapter) SupportsNativeDocuments() bool { return true }

func (a *openAIAdapter) BuildPayload(chatCtx *ChatContext, tools []CallableTool, opts Options) (map[string]any, error) {
	input := make([]any, 0, len(chatCtx.Messages)+len(chatCtx.Native))
	for _, m := range chatCtx.Messages {
		content := m.Content
		var parts []any
		for _, att := range m.Attachments {
			if part, err := a.inputPart(att); err == nil {
				parts = append(parts, part)
			} else {
				content += inlineAttachmentText(att)
			}
		}
		if len(parts) == 0 {
			input = append(input, map[string]any{"role": m.Role, "content": content})
			continue
		}
		parts = append([]any{map[string]any{"type": "input_text", "text": content}}, parts...)
		input = append(input, map[string]any{"role": m.Role, "content": parts})
	}
	for _, native := range chatCtx.Native {
		input = append(input, native)
	}

	payload := map[string]any{
		"model":  opts.Model,
		"input":  input,
		"stream": true,
	}
	if len(tools) > 0 {
		wire := make([]any, 0, len(tools))
		for _, t := range tools {
			wire = append(wire, map[string]any{
				"type":        "function",
				"name":        t.WireName(),
				"description": t.Description,
				"parameters":  t.Parameters,
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
		payload["max_output_tokens"] = opts.MaxTokens
	}
	if opts.Reasoning != "" {
		payload["reasoning"] = map[string]any{"effort": opts.Reasoning}
	}
	for k, v := range opts.Extra {
		payload[k] = v
	}
	return payload, nil
}

func (a *openAIAdapter) HandleEvent(chunk []byte) (*Event, error) {
	var event map[string]any
	if err := json.Unmarshal(chunk, &event); err != nil {
		return nil, fmt.Errorf("parsing stream event: %w", err)
	}

	switch stringField(event, "type") {
	case "response.output_text.delta":
		delta := stringField(event, "delta")
		a.content.WriteString(delta)
		return &Event{Type: EventContentDelta, Content: delta}, nil

	case "response.reasoning_summary_text.delta":
		return &Event{Type: EventReasoningDelta, Content: stringField(event, "delta")}, nil

	case "response.output_item.added":
		item := mapField(event, "item")
		if stringField(item, "type") == "function_call" {
			pc := a.upsertCall(intField(event, "output_index"))
			pc.id = stringField(item, "call_id")
			pc.name = stringField(item, "name")
			if args := stringField(item, "arguments"); args != "" {
				pc.argsJSON.WriteString(args)
			}
		}
		return nil, nil

	case "response.function_call_arguments.delta":
		pc := a.upsertCall(intField(event, "output_index"))
		pc.argsJSON.WriteString(stringField(event, "delta"))
		return nil, nil

	case "response.completed":
		a.completed = true
		if usage := mapField(mapField(event, "response"), "usage"); usage != nil {
			a.addUsage(openAIUsage(usage))
		}
		return nil, nil

	case "response.failed", "error":
		msg := stringField(event, "message")
		if msg == "" {
			msg = stringField(mapField(mapField(event, "response"), "error"), "message")
		}
		a.failed = fmt.Errorf("provider stream failed: %s", msg)
		return &Event{Type: EventError, Err: a.failed}, nil
	}
	return nil, nil
}

func (a *openAIAdapter) Finalize(ctx context.Context) ([]*Event, error) {
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

	// Round trip: the assistant's function_call items first, then one
	// function_call_output per call, in provider emission order.
	messages := make([]map[string]any, 0, len(calls)*2)
	for _, call := range calls {
		args, _ := json.Marshal(call.Args)
		messages = append(messages, map[string]any{
			"type":      "function_call",
			"call_id":   call.ID,
			"name":      call.PluginName + ToolNameSeparator + call.Operation,
			"arguments": string(args),
		})
	}
	for _, call := range calls {
		output := a.callPlugin(ctx, call.PluginName, call.Operation, call.Args)
		messages = append(messages, map[string]any{
			"type":    "function_call_output",
			"call_id": call.ID,
			"output":  output,
		})
	}
	return []*Event{{
		Type:               EventFunctionCall,
		ToolCalls:          calls,
		AdditionalMessages: messages,
	}}, nil
}

func (a *openAIAdapter) HandleCompletion(ctx context.Context, body []byte) ([]*Event, error) {
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing completion body: %w", err)
	}
	if usage := mapField(resp, "usage"); usage != nil {
		a.addUsage(openAIUsage(usage))
	}
	for i, raw := range sliceField(resp, "output") {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		switch stringField(item, "type") {
		case "message":
			for _, part := range sliceField(item, "content") {
				pm, ok := part.(map[string]any)
				if ok && stringField(pm, "type") == "output_text" {
					a.content.WriteString(stringField(pm, "text"))
				}
			}
		case "function_call":
			pc := a.upsertCall(i)
			pc.id = stringField(item, "call_id")
			pc.name = stringField(item, "name")
			pc.argsJSON.WriteString(stringField(item, "arguments"))
		}
	}
	return a.Finalize(ctx)
}

// inputPart base64-encodes an attachment as a Responses API content part:
// input_image for images, input_file for everything else.
func (a *openAIAdapter) inputPart(att Attachment) (map[string]any, error) {
	resolved, err := a.resolveAttachment(att)
	if err != nil {
		return nil, err
	}
	raw, err := readFileBase64(resolved)
	if err != nil {
		return nil, err
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", att.MimeType, raw)
	if strings.HasPrefix(att.MimeType, "image/") {
		return map[string]any{"type": "input_image", "image_url": dataURL}, nil
	}
	return map[string]any{"type": "input_file", "filename": att.FileName, "file_data": dataURL}, nil
}

func openAIUsage(usage map[string]any) Usage {
	u := Usage{
		InputTokens:  intField(usage, "input_tokens"),
		OutputTokens: intField(usage, "output_tokens"),
		TotalTokens:  intField(usage, "total_tokens"),
	}
	if details := mapField(usage, "input_tokens_details"); details != nil {
		u.CachedTokens = intField(details, "cached_tokens")
	}
	if details := mapField(usage, "output_tokens_details"); details != nil {
		u.ReasoningTokens = intField(details, "reasoning_tokens")
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}
