package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
	"github.com/shu-assistant/shu/pkg/provider"
)

// scriptedAdapter replays a fixed sequence of per-cycle outcomes.
type scriptedAdapter struct {
	cycles   []scriptedCycle
	current  int
	payloads []map[string]any
	chatCtx  *provider.ChatContext
}

type scriptedCycle struct {
	deltas   []*provider.Event
	finalize []*provider.Event
}

func (s *scriptedAdapter) Info() provider.Info {
	return provider.Info{Name: "scripted", APIBaseURL: "http://scripted", ChatEndpoint: "/chat"}
}
func (s *scriptedAdapter) Capabilities() provider.Capabilities {
	return provider.Capabilities{Streaming: true, Tools: true}
}
func (s *scriptedAdapter) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer x"}
}
func (s *scriptedAdapter) ParameterMapping() map[string]string   { return nil }
func (s *scriptedAdapter) SupportsNativeDocuments() bool         { return false }

func (s *scriptedAdapter) BuildPayload(chatCtx *provider.ChatContext, tools []provider.CallableTool, opts provider.Options) (map[string]any, error) {
	s.chatCtx = chatCtx
	payload := map[string]any{"cycle": s.current, "tools": len(tools), "native": len(chatCtx.Native)}
	s.payloads = append(s.payloads, payload)
	return payload, nil
}

func (s *scriptedAdapter) HandleEvent(chunk []byte) (*provider.Event, error) {
	// The fake stream delivers one chunk per scripted delta, addressed by
	// chunk content "d<i>".
	var idx int
	fmt.Sscanf(string(chunk), "d%d", &idx)
	return s.cycles[s.current].deltas[idx], nil
}

func (s *scriptedAdapter) Finalize(ctx context.Context) ([]*provider.Event, error) {
	out := s.cycles[s.current].finalize
	s.current++
	return out, nil
}

func (s *scriptedAdapter) HandleCompletion(ctx context.Context, body []byte) ([]*provider.Event, error) {
	return nil, nil
}

func newScriptedOrchestrator(t *testing.T, adapter *scriptedAdapter) *Orchestrator {
	t.Helper()
	reg := provider.NewRegistry(nil)
	reg.Register("scripted", func(pctx *provider.Context) (provider.Adapter, error) {
		return adapter, nil
	})
	o := New(reg)
	o.openStream = func(ctx context.Context, url string, headers map[string]string, payload map[string]any) (<-chan []byte, <-chan error) {
		chunks := make(chan []byte, 16)
		errs := make(chan error, 1)
		cycle := payload["cycle"].(int)
		for i := range adapter.cycles[cycle].deltas {
			chunks <- []byte(fmt.Sprintf("d%d", i))
		}
		close(chunks)
		close(errs)
		return chunks, errs
	}
	return o
}

func turnRequest() TurnRequest {
	return TurnRequest{
		AdapterName: "scripted",
		ProviderCtx: &provider.Context{Provider: provider.ProviderConfig{Model: "m1"}},
		ChatContext: &provider.ChatContext{Messages: []provider.Message{{Role: provider.RoleUser, Content: "hi"}}},
		Tools:       []provider.CallableTool{{PluginName: "github", Operation: "list"}},
		Options:     provider.Options{Model: "m1"},
	}
}

func TestRunTurnPlainFinal(t *testing.T) {
	adapter := &scriptedAdapter{cycles: []scriptedCycle{{
		deltas: []*provider.Event{
			{Type: provider.EventContentDelta, Content: "Hello "},
			{Type: provider.EventContentDelta, Content: "world"},
		},
		finalize: []*provider.Event{{
			Type: provider.EventFinalMessage, Content: "Hello world",
			Usage: &provider.Usage{TotalTokens: 10},
		}},
	}}}
	o := newScriptedOrchestrator(t, adapter)

	var forwarded []string
	turn, err := o.RunTurn(context.Background(), turnRequest(), func(ev *provider.Event) error {
		if ev.Type == provider.EventContentDelta {
			forwarded = append(forwarded, ev.Content)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", turn.Content)
	assert.Equal(t, []string{"Hello ", "world"}, forwarded)
	assert.Equal(t, 10, turn.Usage.TotalTokens)
	assert.False(t, turn.Truncated)
	assert.Equal(t, 0, turn.ToolCycles)
}

func TestRunTurnToolCallRoundTrip(t *testing.T) {
	roundTrip := []map[string]any{
		{"type": "function_call", "call_id": "c1"},
		{"type": "function_call_output", "call_id": "c1"},
	}
	adapter := &scriptedAdapter{cycles: []scriptedCycle{
		{
			finalize: []*provider.Event{{
				Type:               provider.EventFunctionCall,
				ToolCalls:          []provider.ToolCall{{ID: "c1", PluginName: "github", Operation: "list"}},
				AdditionalMessages: roundTrip,
			}},
		},
		{
			deltas: []*provider.Event{{Type: provider.EventContentDelta, Content: "Done."}},
			finalize: []*provider.Event{{
				Type: provider.EventFinalMessage, Content: "Done.",
				Usage: &provider.Usage{TotalTokens: 42},
			}},
		},
	}}
	o := newScriptedOrchestrator(t, adapter)

	req := turnRequest()
	turn, err := o.RunTurn(context.Background(), req, func(*provider.Event) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "Done.", turn.Content)
	assert.Equal(t, 1, turn.ToolCycles)

	// Round-trip messages were appended before the second cycle's payload.
	require.Len(t, adapter.payloads, 2)
	assert.Equal(t, 0, adapter.payloads[0]["native"])
	assert.Equal(t, 2, adapter.payloads[1]["native"])
}

func TestRunTurnClientDisconnect(t *testing.T) {
	adapter := &scriptedAdapter{cycles: []scriptedCycle{{
		deltas: []*provider.Event{
			{Type: provider.EventContentDelta, Content: "partial "},
			{Type: provider.EventContentDelta, Content: "answer"},
		},
		finalize: []*provider.Event{{Type: provider.EventFinalMessage, Content: "never seen"}},
	}}}
	o := newScriptedOrchestrator(t, adapter)

	calls := 0
	turn, err := o.RunTurn(context.Background(), turnRequest(), func(*provider.Event) error {
		calls++
		if calls == 2 {
			return errors.New("connection reset")
		}
		return nil
	})
	require.ErrorIs(t, err, ErrClientDisconnected)
	require.NotNil(t, turn)
	assert.True(t, turn.Truncated)
	assert.Equal(t, "partial answer", turn.Content)
}

func TestRunTurnProviderError(t *testing.T) {
	streamErr := errors.New("provider stream failed: overloaded")
	adapter := &scriptedAdapter{cycles: []scriptedCycle{{
		deltas: []*provider.Event{{Type: provider.EventError, Err: streamErr}},
	}}}
	o := newScriptedOrchestrator(t, adapter)

	_, err := o.RunTurn(context.Background(), turnRequest(), func(*provider.Event) error { return nil })
	require.ErrorIs(t, err, streamErr)
}

func TestRunTurnToolCallCeiling(t *testing.T) {
	loop := scriptedCycle{finalize: []*provider.Event{{
		Type:               provider.EventFunctionCall,
		ToolCalls:          []provider.ToolCall{{ID: "c", PluginName: "p", Operation: "o"}},
		AdditionalMessages: []map[string]any{{"type": "function_call"}},
	}}}
	adapter := &scriptedAdapter{cycles: []scriptedCycle{loop, loop, loop, loop}}
	o := newScriptedOrchestrator(t, adapter)

	req := turnRequest()
	req.MaxToolCalls = 2
	_, err := o.RunTurn(context.Background(), req, func(*provider.Event) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ceiling")

	// Tools were withheld on the cycle after the ceiling was hit.
	last := adapter.payloads[len(adapter.payloads)-1]
	assert.Equal(t, 0, last["tools"])
}

type stubPlugin struct{ schema map[string]any }

func (p *stubPlugin) Name() string                 { return "stub" }
func (p *stubPlugin) Version() string              { return "1.0.0" }
func (p *stubPlugin) Schema() map[string]any       { return p.schema }
func (p *stubPlugin) OutputSchema() map[string]any { return nil }
func (p *stubPlugin) Execute(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	return plugin.OK(nil), nil
}

func TestAssembleTools(t *testing.T) {
	schema := map[string]any{
		"type":        "object",
		"description": "GitHub activity",
		"properties": map[string]any{
			"op":    map[string]any{"type": "string", "enum": []any{"list", "digest"}},
			"limit": map[string]any{"type": "integer"},
		},
		"required": []any{"op"},
	}
	loaded := []*plugin.Loaded{{
		Plugin: &stubPlugin{schema: schema},
		Manifest: &plugin.Manifest{
			Name:            "github",
			ChatCallableOps: []string{"list"},
		},
	}}

	tools := AssembleTools(loaded)
	require.Len(t, tools, 1)
	tool := tools[0]
	assert.Equal(t, "github__list", tool.WireName())
	assert.Contains(t, tool.Description, "GitHub activity")

	props := tool.Parameters["properties"].(map[string]any)
	opSchema := props["op"].(map[string]any)
	assert.Equal(t, []any{"list"}, opSchema["enum"])

	// Original schema is untouched.
	origOp := schema["properties"].(map[string]any)["op"].(map[string]any)
	assert.Equal(t, []any{"list", "digest"}, origOp["enum"])
}

func TestAssembleToolsDefaultsToAllOps(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op": map[string]any{"type": "string", "enum": []any{"a", "b"}},
		},
	}
	loaded := []*plugin.Loaded{{
		Plugin:   &stubPlugin{schema: schema},
		Manifest: &plugin.Manifest{Name: "p"},
	}}
	tools := AssembleTools(loaded)
	require.Len(t, tools, 2)
	assert.Equal(t, "p__a", tools[0].WireName())
	assert.Equal(t, "p__b", tools[1].WireName())
}
