package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/plugin"
)

type fakeCaller struct {
	requests []executor.Request
	result   *plugin.Result
	err      error
}

func (f *fakeCaller) Execute(ctx context.Context, req executor.Request) (*plugin.Result, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func testContext(caller PluginCaller) *Context {
	return &Context{
		Caller:           caller,
		UserID:           "u1",
		KnowledgeBaseIDs: []string{"kb-1", "kb-2"},
		Provider:         ProviderConfig{Name: "test", Model: "m1", APIKey: "sk-test"},
	}
}

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		in         string
		plugin, op string
		ok         bool
	}{
		{"gmail_digest__list", "gmail_digest", "list", true},
		{"kb__search_chunks", "kb", "search_chunks", true},
		{"noseparator", "", "", false},
		{"__leading", "", "", false},
		{"trailing__", "", "", false},
	}
	for _, tt := range tests {
		pluginName, op, ok := SplitToolName(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.plugin, pluginName, tt.in)
		assert.Equal(t, tt.op, op, tt.in)
	}
}

func TestKeyCipherRoundTrip(t *testing.T) {
	c, err := NewKeyCipher("process-secret")
	require.NoError(t, err)

	sealed, err := c.Encrypt("sk-live-abc123")
	require.NoError(t, err)
	assert.NotEqual(t, "sk-live-abc123", sealed)

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "sk-live-abc123", plain)

	// A different secret cannot decrypt.
	other, err := NewKeyCipher("wrong-secret")
	require.NoError(t, err)
	_, err = other.Decrypt(sealed)
	assert.Error(t, err)

	_, err = c.Decrypt("not-base64!!!")
	assert.Error(t, err)
}

func TestRegistryDecryptsOnGet(t *testing.T) {
	cipher, err := NewKeyCipher("process-secret")
	require.NoError(t, err)
	sealed, err := cipher.Encrypt("sk-real")
	require.NoError(t, err)

	r := NewRegistry(cipher)
	r.RegisterDefaults()

	pctx := testContext(&fakeCaller{})
	pctx.Provider.APIKey = sealed
	a, err := r.Get("openai", pctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-real", a.Headers()["Authorization"])
}

func TestRegistryUnknownAdapter(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Get("nope", testContext(&fakeCaller{}))
	assert.Error(t, err)
}

func feedEvents(t *testing.T, a Adapter, events ...string) []*Event {
	t.Helper()
	var out []*Event
	for _, e := range events {
		ev, err := a.HandleEvent([]byte(e))
		require.NoError(t, err)
		if ev != nil {
			out = append(out, ev)
		}
	}
	return out
}

func TestOpenAIStreamToolCallCycle(t *testing.T) {
	caller := &fakeCaller{result: plugin.OK(map[string]any{"unread": 3})}
	a, err := NewOpenAIAdapter(testContext(caller))
	require.NoError(t, err)

	feedEvents(t, a,
		`{"type":"response.output_item.added","output_index":0,"item":{"type":"function_call","call_id":"call_1","name":"gmail_digest__list","arguments":""}}`,
		`{"type":"response.function_call_arguments.delta","output_index":0,"delta":"{\"op\":"}`,
		`{"type":"response.function_call_arguments.delta","output_index":0,"delta":"\"list\"}"}`,
		`{"type":"response.completed","response":{"usage":{"input_tokens":100,"output_tokens":20,"total_tokens":120}}}`,
	)

	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, EventFunctionCall, ev.Type)
	require.Len(t, ev.ToolCalls, 1)
	assert.Equal(t, "gmail_digest", ev.ToolCalls[0].PluginName)
	assert.Equal(t, "list", ev.ToolCalls[0].Operation)
	assert.Equal(t, map[string]any{"op": "list"}, ev.ToolCalls[0].Args)

	// Round trip: function_call item then function_call_output with the
	// matching call_id.
	require.Len(t, ev.AdditionalMessages, 2)
	assert.Equal(t, "function_call", ev.AdditionalMessages[0]["type"])
	assert.Equal(t, "call_1", ev.AdditionalMessages[0]["call_id"])
	assert.Equal(t, "function_call_output", ev.AdditionalMessages[1]["type"])
	assert.Equal(t, "call_1", ev.AdditionalMessages[1]["call_id"])

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(ev.AdditionalMessages[1]["output"].(string)), &result))
	assert.Equal(t, "success", result["status"])

	// The executor request carried the KB scope in the host overlay.
	require.Len(t, caller.requests, 1)
	req := caller.requests[0]
	assert.Equal(t, "gmail_digest", req.PluginName)
	assert.Equal(t, "u1", req.UserID)
	overlay := req.Params[executor.ParamHost].(map[string]any)
	kbSection := overlay["kb"].(map[string]any)
	assert.Equal(t, []any{"kb-1", "kb-2"}, kbSection["knowledge_base_ids"])

	// Second cycle: content then completion; usage sums across cycles.
	deltas := feedEvents(t, a,
		`{"type":"response.output_text.delta","delta":"You have "}`,
		`{"type":"response.output_text.delta","delta":"3 unread."}`,
		`{"type":"response.completed","response":{"usage":{"input_tokens":150,"output_tokens":30,"total_tokens":180}}}`,
	)
	require.Len(t, deltas, 2)
	assert.Equal(t, EventContentDelta, deltas[0].Type)

	events, err = a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	final := events[0]
	assert.Equal(t, EventFinalMessage, final.Type)
	assert.Equal(t, "You have 3 unread.", final.Content)
	require.NotNil(t, final.Usage)
	assert.Equal(t, 250, final.Usage.InputTokens)
	assert.Equal(t, 50, final.Usage.OutputTokens)
	assert.Equal(t, 300, final.Usage.TotalTokens)
}

func TestOpenAIPolicyDenialBecomesToolResult(t *testing.T) {
	caller := &fakeCaller{err: &executor.PolicyError{
		Status: 429, Code: executor.CodeQuotaExceeded, Message: "daily quota exceeded",
	}}
	a, err := NewOpenAIAdapter(testContext(caller))
	require.NoError(t, err)

	feedEvents(t, a,
		`{"type":"response.output_item.added","output_index":0,"item":{"type":"function_call","call_id":"call_9","name":"gmail_digest__list","arguments":"{\"op\":\"list\"}"}}`,
	)
	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	var result map[string]any
	output := events[0].AdditionalMessages[1]["output"].(string)
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "error", result["status"])
	errDetail := result["error"].(map[string]any)
	assert.Equal(t, executor.CodeQuotaExceeded, errDetail["code"])
}

func TestCompletionsStreamToolCalls(t *testing.T) {
	caller := &fakeCaller{result: plugin.OK(nil)}
	a, err := NewCompletionsAdapter(testContext(caller))
	require.NoError(t, err)

	feedEvents(t, a,
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"id":"tc_1","function":{"name":"github__list","arguments":"{\"op\""}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":":\"list\"}"}}]}}]}`,
		`{"choices":[{"delta":{},"finish_reason":"tool_calls"}],"usage":{"prompt_tokens":50,"completion_tokens":10,"total_tokens":60}}`,
	)

	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	require.Len(t, ev.ToolCalls, 1)
	assert.Equal(t, "github", ev.ToolCalls[0].PluginName)

	// Assistant tool_calls message first, then one role:tool message.
	require.Len(t, ev.AdditionalMessages, 2)
	assert.Equal(t, "assistant", ev.AdditionalMessages[0]["role"])
	assert.Equal(t, "tool", ev.AdditionalMessages[1]["role"])
	assert.Equal(t, "tc_1", ev.AdditionalMessages[1]["tool_call_id"])
}

func TestAnthropicStreamToolUse(t *testing.T) {
	caller := &fakeCaller{result: plugin.OK(nil)}
	a, err := NewAnthropicAdapter(testContext(caller))
	require.NoError(t, err)

	out := feedEvents(t, a,
		`{"type":"message_start","message":{"usage":{"input_tokens":80,"output_tokens":0}}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Checking."}}`,
		`{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"toolu_1","name":"github__list"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"op\":\"li"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"st\"}"}}`,
		`{"type":"content_block_stop","index":1}`,
		`{"type":"message_delta","usage":{"output_tokens":15}}`,
	)
	require.Len(t, out, 1)
	assert.Equal(t, EventContentDelta, out[0].Type)

	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	require.Len(t, ev.ToolCalls, 1)
	assert.Equal(t, map[string]any{"op": "list"}, ev.ToolCalls[0].Args)

	require.Len(t, ev.AdditionalMessages, 2)
	assert.Equal(t, "assistant", ev.AdditionalMessages[0]["role"])
	useBlocks := ev.AdditionalMessages[0]["content"].([]any)
	use := useBlocks[0].(map[string]any)
	assert.Equal(t, "tool_use", use["type"])
	assert.Equal(t, "toolu_1", use["id"])

	resultBlocks := ev.AdditionalMessages[1]["content"].([]any)
	res := resultBlocks[0].(map[string]any)
	assert.Equal(t, "tool_result", res["type"])
	assert.Equal(t, "toolu_1", res["tool_use_id"])
}

func TestGeminiStreamFunctionCall(t *testing.T) {
	caller := &fakeCaller{result: plugin.OK(map[string]any{"n": 1})}
	a, err := NewGeminiAdapter(testContext(caller))
	require.NoError(t, err)

	feedEvents(t, a,
		`{"candidates":[{"content":{"parts":[{"functionCall":{"name":"github__list","args":{"op":"list"}}}]}}],"usageMetadata":{"promptTokenCount":40,"candidatesTokenCount":5,"totalTokenCount":45}}`,
	)

	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	require.Len(t, ev.ToolCalls, 1)
	assert.Equal(t, map[string]any{"op": "list"}, ev.ToolCalls[0].Args)

	require.Len(t, ev.AdditionalMessages, 2)
	assert.Equal(t, "model", ev.AdditionalMessages[0]["role"])
	parts := ev.AdditionalMessages[1]["parts"].([]any)
	fr := parts[0].(map[string]any)["functionResponse"].(map[string]any)
	assert.Equal(t, "github__list", fr["name"])
}

func TestGeminiCumulativeUsageNotDoubleCounted(t *testing.T) {
	a, err := NewGeminiAdapter(testContext(&fakeCaller{}))
	require.NoError(t, err)

	feedEvents(t, a,
		`{"candidates":[{"content":{"parts":[{"text":"Hi"}]}}],"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":2,"totalTokenCount":12}}`,
		`{"candidates":[{"content":{"parts":[{"text":" there"}]}}],"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15}}`,
	)
	events, err := a.Finalize(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 15, events[0].Usage.TotalTokens)
	assert.Equal(t, "Hi there", events[0].Content)
}

func TestBuildPayloadShapes(t *testing.T) {
	tools := []CallableTool{{
		PluginName: "github", Operation: "list",
		Description: "List recent activity",
		Parameters:  map[string]any{"type": "object"},
	}}
	chatCtx := &ChatContext{Messages: []Message{
		{Role: RoleSystem, Content: "Be helpful."},
		{Role: RoleUser, Content: "hi"},
	}}
	temp := 0.2
	opts := Options{Model: "m1", Temperature: &temp, MaxTokens: 1000}

	t.Run("anthropic lifts system prompt", func(t *testing.T) {
		a, err := NewAnthropicAdapter(testContext(&fakeCaller{}))
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, tools, opts)
		require.NoError(t, err)
		assert.Equal(t, "Be helpful.", payload["system"])
		messages := payload["messages"].([]any)
		require.Len(t, messages, 1)
		wire := payload["tools"].([]any)[0].(map[string]any)
		assert.Equal(t, "github__list", wire["name"])
		assert.NotNil(t, wire["input_schema"])
	})

	t.Run("completions keeps system in messages", func(t *testing.T) {
		a, err := NewCompletionsAdapter(testContext(&fakeCaller{}))
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, tools, opts)
		require.NoError(t, err)
		messages := payload["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, true, payload["stream"])
		assert.Equal(t, 0.2, payload["temperature"])
	})

	t.Run("gemini uses contents and systemInstruction", func(t *testing.T) {
		a, err := NewGeminiAdapter(testContext(&fakeCaller{}))
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, tools, opts)
		require.NoError(t, err)
		assert.NotNil(t, payload["systemInstruction"])
		contents := payload["contents"].([]any)
		require.Len(t, contents, 1)
		gen := payload["generationConfig"].(map[string]any)
		assert.Equal(t, 1000, gen["maxOutputTokens"])
	})
}

func TestAdapterHeaders(t *testing.T) {
	pctx := testContext(&fakeCaller{})

	a, err := NewAnthropicAdapter(pctx)
	require.NoError(t, err)
	headers := a.Headers()
	assert.Equal(t, "sk-test", headers["x-api-key"])
	assert.Equal(t, "2023-06-01", headers["anthropic-version"])

	g, err := NewGeminiAdapter(pctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", g.Headers()["x-goog-api-key"])

	o, err := NewOpenAIAdapter(pctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-test", o.Headers()["Authorization"])
}

func TestBuildPayloadNativeAttachments(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "scan.pdf"), []byte("%PDF-1.4 data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "chart.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))

	chatCtx := &ChatContext{Messages: []Message{{
		Role: RoleUser, Content: "summarize",
		Attachments: []Attachment{
			{Path: "scan.pdf", FileName: "scan.pdf", MimeType: "application/pdf", ExtractedText: "extracted pdf text"},
			{Path: "chart.png", FileName: "chart.png", MimeType: "image/png"},
		},
	}}}

	t.Run("openai builds input parts", func(t *testing.T) {
		pctx := testContext(&fakeCaller{})
		pctx.AttachmentRoot = root
		a, err := NewOpenAIAdapter(pctx)
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, nil, Options{Model: "m1"})
		require.NoError(t, err)

		input := payload["input"].([]any)
		require.Len(t, input, 1)
		parts := input[0].(map[string]any)["content"].([]any)
		require.Len(t, parts, 3)
		text := parts[0].(map[string]any)
		assert.Equal(t, "input_text", text["type"])
		assert.Equal(t, "summarize", text["text"])
		file := parts[1].(map[string]any)
		assert.Equal(t, "input_file", file["type"])
		assert.Equal(t, "scan.pdf", file["filename"])
		assert.Contains(t, file["file_data"], "data:application/pdf;base64,")
		image := parts[2].(map[string]any)
		assert.Equal(t, "input_image", image["type"])
		assert.Contains(t, image["image_url"], "data:image/png;base64,")
	})

	t.Run("anthropic builds content blocks", func(t *testing.T) {
		pctx := testContext(&fakeCaller{})
		pctx.AttachmentRoot = root
		a, err := NewAnthropicAdapter(pctx)
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, nil, Options{Model: "m1"})
		require.NoError(t, err)

		messages := payload["messages"].([]any)
		require.Len(t, messages, 1)
		blocks := messages[0].(map[string]any)["content"].([]any)
		require.Len(t, blocks, 3)
		doc := blocks[0].(map[string]any)
		assert.Equal(t, "document", doc["type"])
		source := doc["source"].(map[string]any)
		assert.Equal(t, "base64", source["type"])
		assert.Equal(t, "application/pdf", source["media_type"])
		assert.Equal(t, "image", blocks[1].(map[string]any)["type"])
		text := blocks[2].(map[string]any)
		assert.Equal(t, "text", text["type"])
		assert.Equal(t, "summarize", text["text"])
	})

	t.Run("unresolvable attachment falls back to extracted text", func(t *testing.T) {
		a, err := NewOpenAIAdapter(testContext(&fakeCaller{}))
		require.NoError(t, err)
		payload, err := a.BuildPayload(chatCtx, nil, Options{Model: "m1"})
		require.NoError(t, err)

		input := payload["input"].([]any)
		content := input[0].(map[string]any)["content"].(string)
		assert.Contains(t, content, "extracted pdf text")
	})
}

func TestOpenStreamReadsSSE(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: delta\n")
		fmt.Fprint(w, "data: {\"a\":1}\n\n")
		fmt.Fprint(w, "data: {\"a\":2}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	chunks, errs := OpenStream(context.Background(), srv.URL, nil, map[string]any{"x": 1})
	var got []string
	for c := range chunks {
		got = append(got, string(c))
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []string{`{"a":1}`, `{"a":2}`}, got)
}

func TestOpenStreamNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"rate limited"}`)
	}))
	defer srv.Close()

	chunks, errs := OpenStream(context.Background(), srv.URL, nil, nil)
	for range chunks {
	}
	err := <-errs
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestResolveAttachmentGuard(t *testing.T) {
	root := t.TempDir()
	b := &base{pctx: &Context{AttachmentRoot: root}}

	_, err := b.resolveAttachment(Attachment{Path: "../../../etc/passwd"})
	assert.Error(t, err)

	_, err = b.resolveAttachment(Attachment{Path: "missing.pdf"})
	assert.Error(t, err, "file must exist")
}
