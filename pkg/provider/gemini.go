package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// geminiAdapter speaks the Gemini generateContent API: candidate parts,
// whole functionCall parts delivered in a single chunk, and functionResponse
// round-trip parts keyed by function name.
type geminiAdapter struct {
	base
	content strings.Builder
	failed  error
	nextIdx int
	// cycleUsage holds the current stream's cumulative usageMetadata; it is
	// folded into the request totals once per cycle at Finalize.
	cycleUsage Usage
}

// NewGeminiAdapter constructs the Gemini adapter.
func NewGeminiAdapter(pctx *Context) (Adapter, error) {
	return &geminiAdapter{base: newBase(pctx)}, nil
}

func (a *geminiAdapter) Info() Info {
	baseURL := a.pctx.Provider.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return Info{
		Name:           "gemini",
		APIBaseURL:     baseURL,
		ChatEndpoint:   "/models/%s:streamGenerateContent?alt=sse",
		ModelsEndpoint: "/models",
	}
}

func (a *geminiAdapter) Capabilities() Capabilities {
	return Capabilities{Streaming: true, Tools: true, Vision: true}
}

func (a *geminiAdapter) Headers() map[string]string {
	return map[string]string{"x-goog-api-key": a.pctx.Provider.APIKey}
}

func (a *geminiAdapter) ParameterMapping() map[string]string {
	return map[string]string{
		"temperature":     "generationConfig.temperature",
		"top_p":           "generationConfig.topP",
		"max_tokens":      "generationConfig.maxOutputTokens",
		"tools":           "tools",
		"safety_settings": "safetySettings",
	}
}

func (a *geminiAdapter) SupportsNativeDocuments() bool { return true }

func (a *geminiAdapter) BuildPayload(chatCtx *ChatContext, tools []CallableTool, opts Options) (map[string]any, error) {
	var system strings.Builder
	contents := make([]any, 0, len(chatCtx.Messages)+len(chatCtx.Native))
	for _, m := range chatCtx.Messages {
		text := m.Content
		parts := []any{}

		if m.Role == RoleSystem {
			if system.Len() > 0 {
				system.WriteString("\n\n")
			}
			system.WriteString(text)
			continue
		}

		for _, att := range m.Attachments {
			if data, mime, err := a.inlineData(att); err == nil {
				parts = append(parts, map[string]any{
					"inlineData": map[string]any{"mimeType": mime, "data": data},
				})
			} else {
				text += inlineAttachmentText(att)
			}
		}
		parts = append(parts, map[string]any{"text": text})

		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, map[string]any{"role": role, "parts": parts})
	}
	for _, native := range chatCtx.Native {
		contents = append(contents, native)
	}

	payload := map[string]any{"contents": contents}
	if system.Len() > 0 {
		payload["systemInstruction"] = map[string]any{
			"parts": []any{map[string]any{"text": system.String()}},
		}
	}
	if len(tools) > 0 {
		decls := make([]any, 0, len(tools))
		for _, t := range tools {
			decls = append(decls, map[string]any{
				"name":        t.WireName(),
				"description": t.Description,
				"parameters":  t.Parameters,
			})
		}
		payload["tools"] = []any{map[string]any{"functionDeclarations": decls}}
	}

	generation := map[string]any{}
	if opts.Temperature != nil {
		generation["temperature"] = *opts.Temperature
	}
	if opts.TopP != nil {
		generation["topP"] = *opts.TopP
	}
	if opts.MaxTokens > 0 {
		generation["maxOutputTokens"] = opts.MaxTokens
	}
	if len(generation) > 0 {
		payload["generationConfig"] = generation
	}
	for k, v := range opts.Extra {
		payload[k] = v
	}
	return payload, nil
}

func (a *geminiAdapter) HandleEvent(chunk []byte) (*Event, error) {
	var event map[string]any
	if err := json.Unmarshal(chunk, &event); err != nil {
		return nil, fmt.Errorf("parsing stream chunk: %w", err)
	}
	if errObj := mapField(event, "error"); errObj != nil {
		a.failed = fmt.Errorf("provider stream failed: %s", stringField(errObj, "message"))
		return &Event{Type: EventError, Err: a.failed}, nil
	}
	if usage := mapField(event, "usageMetadata"); usage != nil {
		a.setUsage(geminiUsage(usage))
	}

	candidates := sliceField(event, "candidates")
	if len(candidates) == 0 {
		return nil, nil
	}
	candidate, _ := candidates[0].(map[string]any)
	var out *Event
	for _, raw := range sliceField(mapField(candidate, "content"), "parts") {
		part, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if fc := mapField(part, "functionCall"); fc != nil {
			// Whole call in one part; no delta accumulation needed.
			pc := a.upsertCall(a.nextIdx)
			a.nextIdx++
			pc.name = stringField(fc, "name")
			pc.id = pc.name
			pc.args = mapField(fc, "args")
			continue
		}
		if text := stringField(part, "text"); text != "" {
			if thought, _ := part["thought"].(bool); thought {
				out = &Event{Type: EventReasoningDelta, Content: text}
				continue
			}
			a.content.WriteString(text)
			out = &Event{Type: EventContentDelta, Content: text}
		}
	}
	return out, nil
}

func (a *geminiAdapter) Finalize(ctx context.Context) ([]*Event, error) {
	if a.failed != nil {
		return nil, nil
	}
	a.addUsage(a.cycleUsage)
	a.cycleUsage = Usage{}

	calls := a.drainCalls()
	if len(calls) == 0 {
		return []*Event{{
			Type:    EventFinalMessage,
			Content: a.content.String(),
			Usage:   a.totalUsage(),
		}}, nil
	}

	// Round trip: the model's functionCall parts, then one functionResponse
	// part per call keyed by function name.
	callParts := make([]any, 0, len(calls))
	for _, call := range calls {
		callParts = append(callParts, map[string]any{
			"functionCall": map[string]any{
				"name": call.PluginName + ToolNameSeparator + call.Operation,
				"args": call.Args,
			},
		})
	}
	responseParts := make([]any, 0, len(calls))
	for _, call := range calls {
		output := a.callPlugin(ctx, call.PluginName, call.Operation, call.Args)
		var response map[string]any
		if err := json.Unmarshal([]byte(output), &response); err != nil {
			response = map[string]any{"result": output}
		}
		responseParts = append(responseParts, map[string]any{
			"functionResponse": map[string]any{
				"name":     call.PluginName + ToolNameSeparator + call.Operation,
				"response": response,
			},
		})
	}
	messages := []map[string]any{
		{"role": "model", "parts": callParts},
		{"role": "user", "parts": responseParts},
	}
	return []*Event{{
		Type:               EventFunctionCall,
		ToolCalls:          calls,
		AdditionalMessages: messages,
	}}, nil
}

func (a *geminiAdapter) HandleCompletion(ctx context.Context, body []byte) ([]*Event, error) {
	if _, err := a.HandleEvent(body); err != nil {
		return nil, err
	}
	return a.Finalize(ctx)
}

// setUsage replaces the current cycle's usage. Gemini reports cumulative
// usageMetadata on every chunk, so adding per chunk would double count.
func (a *geminiAdapter) setUsage(u Usage) {
	a.cycleUsage = u
}

// inlineData base64-encodes an attachment for native document delivery.
func (a *geminiAdapter) inlineData(att Attachment) (data, mime string, err error) {
	resolved, err := a.resolveAttachment(att)
	if err != nil {
		return "", "", err
	}
	raw, err := readFileBase64(resolved)
	if err != nil {
		return "", "", err
	}
	return raw, att.MimeType, nil
}

func geminiUsage(usage map[string]any) Usage {
	u := Usage{
		InputTokens:     intField(usage, "promptTokenCount"),
		OutputTokens:    intField(usage, "candidatesTokenCount"),
		CachedTokens:    intField(usage, "cachedContentTokenCount"),
		ReasoningTokens: intField(usage, "thoughtsTokenCount"),
		TotalTokens:     intField(usage, "totalTokenCount"),
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}
