// Package orchestrator drives one user turn to a final assistant message,
// potentially through many interleaved LLM-stream and plugin-execution
// rounds. One goroutine reads provider chunks; tool calls execute through
// the adapter's executor binding between stream cycles.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shu-assistant/shu/pkg/provider"
)

// DefaultMaxToolCalls is the backstop against adapter bugs: the loop never
// runs more tool-call cycles than this unless configured higher.
const DefaultMaxToolCalls = 10

// ErrClientDisconnected marks a turn abandoned by the consumer; buffered
// content is still persisted with the truncated flag.
var ErrClientDisconnected = errors.New("client disconnected")

// Sink receives forwarded stream events. Returning an error abandons the
// turn (client disconnect semantics).
type Sink func(*provider.Event) error

// Turn is the completed outcome of one orchestrated user turn.
type Turn struct {
	Content   string
	Usage     *provider.Usage
	Truncated bool
	// ToolCycles is the number of tool-call rounds the turn used.
	ToolCycles int
}

// TurnRequest describes one user turn.
type TurnRequest struct {
	AdapterName  string
	ProviderCtx  *provider.Context
	ChatContext  *provider.ChatContext
	Tools        []provider.CallableTool
	Options      provider.Options
	MaxToolCalls int
}

// Orchestrator runs streaming turns against registered provider adapters.
type Orchestrator struct {
	registry *provider.Registry
	log      *slog.Logger

	// openStream is swappable for tests.
	openStream func(ctx context.Context, url string, headers map[string]string, payload map[string]any) (<-chan []byte, <-chan error)
}

// New creates an orchestrator.
func New(registry *provider.Registry) *Orchestrator {
	return &Orchestrator{
		registry:   registry,
		log:        slog.With("component", "orchestrator"),
		openStream: provider.OpenStream,
	}
}

// RunTurn streams one turn to completion. Content and reasoning deltas are
// forwarded to sink as they arrive; the returned Turn carries the final
// content and summed usage. A sink error abandons downstream work and
// returns the partial turn with Truncated set.
func (o *Orchestrator) RunTurn(ctx context.Context, req TurnRequest, sink Sink) (*Turn, error) {
	adapter, err := o.registry.Get(req.AdapterName, req.ProviderCtx)
	if err != nil {
		return nil, err
	}

	maxCalls := req.MaxToolCalls
	if maxCalls <= 0 {
		maxCalls = DefaultMaxToolCalls
	}
	if req.Options.MaxToolCalls > 0 && req.Options.MaxToolCalls < maxCalls {
		maxCalls = req.Options.MaxToolCalls
	}

	model := req.Options.Model
	if model == "" {
		model = req.ProviderCtx.Provider.Model
		req.Options.Model = model
	}
	endpoint := chatURL(adapter, model)
	headers := adapter.Headers()

	var content strings.Builder
	tools := req.Tools
	turn := &Turn{}
	forcedFinal := false

	for cycle := 0; ; cycle++ {
		payload, err := adapter.BuildPayload(req.ChatContext, tools, req.Options)
		if err != nil {
			return nil, fmt.Errorf("shaping provider payload: %w", err)
		}

		streamErr := o.pump(ctx, adapter, endpoint, headers, payload, sink, &content)
		if streamErr != nil {
			if errors.Is(streamErr, ErrClientDisconnected) {
				turn.Content = content.String()
				turn.Truncated = true
				return turn, ErrClientDisconnected
			}
			return nil, streamErr
		}

		events, err := adapter.Finalize(ctx)
		if err != nil {
			return nil, fmt.Errorf("finalizing provider stream: %w", err)
		}

		var functionCall *provider.Event
		for _, ev := range events {
			switch ev.Type {
			case provider.EventFunctionCall:
				functionCall = ev
			case provider.EventFinalMessage:
				turn.Content = ev.Content
				turn.Usage = ev.Usage
				turn.ToolCycles = cycle
				if err := sink(ev); err != nil {
					turn.Truncated = true
					return turn, ErrClientDisconnected
				}
				return turn, nil
			case provider.EventError:
				return nil, ev.Err
			}
		}

		if functionCall == nil {
			// Neither a tool call nor a final message: the stream ended
			// without a terminal event. Treat accumulated content as final.
			turn.Content = content.String()
			turn.ToolCycles = cycle
			return turn, nil
		}

		if forcedFinal {
			return nil, fmt.Errorf("provider kept emitting tool calls past the %d-cycle ceiling", maxCalls)
		}
		if cycle+1 >= maxCalls {
			o.log.Warn("Tool-call ceiling reached, forcing final answer",
				"cycles", cycle+1, "max", maxCalls)
			// Withhold tools so the provider must answer.
			tools = nil
			forcedFinal = true
		}

		req.ChatContext.Append(functionCall.AdditionalMessages)
	}
}

// pump reads one provider stream to exhaustion, forwarding content,
// reasoning, and error events to sink in arrival order.
func (o *Orchestrator) pump(ctx context.Context, adapter provider.Adapter, url string, headers map[string]string, payload map[string]any, sink Sink, content *strings.Builder) error {
	chunks, errs := o.openStream(ctx, url, headers, payload)
	for chunk := range chunks {
		ev, err := adapter.HandleEvent(chunk)
		if err != nil {
			o.log.Warn("Dropping unparseable stream chunk", "error", err)
			continue
		}
		if ev == nil {
			continue
		}
		switch ev.Type {
		case provider.EventContentDelta:
			content.WriteString(ev.Content)
		case provider.EventError:
			// Drain remaining chunks so the reader goroutine exits.
			for range chunks {
			}
			<-errs
			if sinkErr := sink(ev); sinkErr != nil {
				return ErrClientDisconnected
			}
			return ev.Err
		}
		if err := sink(ev); err != nil {
			return ErrClientDisconnected
		}
	}
	return <-errs
}

// chatURL assembles the chat endpoint, substituting the model for adapters
// whose endpoint path embeds it.
func chatURL(a provider.Adapter, model string) string {
	info := a.Info()
	endpoint := info.ChatEndpoint
	if strings.Contains(endpoint, "%s") {
		endpoint = fmt.Sprintf(endpoint, model)
	}
	return info.APIBaseURL + endpoint
}
