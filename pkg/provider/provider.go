// Package provider normalizes heterogeneous LLM provider APIs behind one
// streaming contract: payload shaping, streamed event parsing, tool-call
// aggregation across chunks, usage accounting, and tool-result round-tripping
// with each provider's native id semantics.
package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Event types emitted by every adapter.
const (
	EventContentDelta   = "content_delta"
	EventReasoningDelta = "reasoning_delta"
	EventFunctionCall   = "function_call"
	EventFinalMessage   = "final_message"
	EventError          = "error"
)

// ToolCall is one normalized tool invocation parsed from a provider stream.
// The provider-native tool name <plugin>__<op> has already been split.
type ToolCall struct {
	ID         string
	PluginName string
	Operation  string
	Args       map[string]any
}

// Usage is per-call token accounting, accumulated across tool-call cycles.
type Usage struct {
	InputTokens     int `json:"input_tokens"`
	OutputTokens    int `json:"output_tokens"`
	CachedTokens    int `json:"cached_tokens,omitempty"`
	ReasoningTokens int `json:"reasoning_tokens,omitempty"`
	TotalTokens     int `json:"total_tokens"`
}

func (u *Usage) add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CachedTokens += other.CachedTokens
	u.ReasoningTokens += other.ReasoningTokens
	u.TotalTokens += other.TotalTokens
}

// Event is one normalized provider stream event.
type Event struct {
	Type    string
	Content string

	// ToolCalls is set on function_call events.
	ToolCalls []ToolCall

	// AdditionalMessages are the provider-native messages that must be
	// appended to the next turn to satisfy the provider's tool round-trip
	// invariants: the assistant tool-call message(s), then one tool-result
	// message per call with the native id fields.
	AdditionalMessages []map[string]any

	// Usage is set on final_message events: totals summed across cycles.
	Usage *Usage

	// Err is set on error events.
	Err error
}

// Capabilities describes what a provider supports.
type Capabilities struct {
	Streaming bool `json:"streaming"`
	Tools     bool `json:"tools"`
	Vision    bool `json:"vision"`
}

// Info identifies a provider API.
type Info struct {
	Name           string
	APIBaseURL     string
	ChatEndpoint   string
	ModelsEndpoint string
}

// Options are the generic request parameters mapped per provider.
type Options struct {
	Model        string
	Temperature  *float64
	TopP         *float64
	MaxTokens    int
	MaxToolCalls int
	Reasoning    string
	Extra        map[string]any
}

// Adapter is the per-provider contract. One instance serves one request; the
// tool-call accumulator inside is not shared.
type Adapter interface {
	Info() Info
	Capabilities() Capabilities
	// Headers returns the request headers the provider requires: the header
	// carrying the decrypted API key plus any API version pins.
	Headers() map[string]string
	// ParameterMapping maps generic parameter names to provider payload keys.
	ParameterMapping() map[string]string
	SupportsNativeDocuments() bool

	// BuildPayload shapes the outbound request body: messages, tools, model,
	// streaming flag, and mapped parameters.
	BuildPayload(chatCtx *ChatContext, tools []CallableTool, opts Options) (map[string]any, error)

	// HandleEvent parses one streamed chunk. Returns nil when the chunk only
	// feeds an internal accumulator.
	HandleEvent(chunk []byte) (*Event, error)

	// Finalize flushes the tool-call accumulator at end of stream, executing
	// each accumulated call and composing the provider-native round-trip
	// messages. Returns no events when the stream carried no tool calls.
	Finalize(ctx context.Context) ([]*Event, error)

	// HandleCompletion parses a non-streaming response body.
	HandleCompletion(ctx context.Context, body []byte) ([]*Event, error)
}

// Context carries the per-request collaborators an adapter needs.
type Context struct {
	// Caller executes tool calls through the executor pipeline.
	Caller PluginCaller
	// UserID owns the conversation; every tool call runs as this user.
	UserID    string
	UserEmail string
	// KnowledgeBaseIDs scope host.kb for every tool call in this request.
	KnowledgeBaseIDs []string
	// Provider is the persisted provider row.
	Provider ProviderConfig
	// AttachmentRoot is the storage directory attachments must resolve into.
	AttachmentRoot string
}

// ProviderConfig is the persisted provider configuration consumed by
// adapters. APIKey has already been decrypted by the registry.
type ProviderConfig struct {
	Name    string
	BaseURL string
	Model   string
	APIKey  string
}

// Factory constructs a fresh adapter per request.
type Factory func(pctx *Context) (Adapter, error)

// Registry is the process-global adapter registry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	secrets   *KeyCipher
}

// NewRegistry creates an adapter registry. cipher decrypts stored API keys;
// nil means keys are stored in the clear (tests only).
func NewRegistry(cipher *KeyCipher) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		secrets:   cipher,
	}
}

// Register binds an adapter factory to a provider type name.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Names returns the registered adapter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDefaults registers the built-in adapters.
func (r *Registry) RegisterDefaults() {
	r.Register("openai", NewOpenAIAdapter)
	r.Register("completions", NewCompletionsAdapter)
	r.Register("anthropic", NewAnthropicAdapter)
	r.Register("gemini", NewGeminiAdapter)
}

// Get constructs a fresh adapter for the named provider type. When the
// stored API key is encrypted, it is decrypted here; decryption failure is a
// configuration error surfaced before any network call.
func (r *Registry) Get(name string, pctx *Context) (Adapter, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider adapter %q", name)
	}
	if r.secrets != nil && pctx.Provider.APIKey != "" {
		key, err := r.secrets.Decrypt(pctx.Provider.APIKey)
		if err != nil {
			return nil, fmt.Errorf("decrypting API key for provider %s: %w", pctx.Provider.Name, err)
		}
		pctx.Provider.APIKey = key
	}
	return f(pctx)
}
