package provider

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// base carries the state shared by every adapter: the request context, the
// tool-call accumulator, and the usage totals summed across cycles.
type base struct {
	pctx *Context

	mu sync.Mutex
	// pending maps the provider's call index to the partial call being
	// accumulated from streamed argument deltas.
	pending map[int]*partialCall
	usage   Usage
}

// partialCall is one tool call mid-accumulation.
type partialCall struct {
	id       string
	name     string
	argsJSON strings.Builder
	// args holds already-complete arguments (providers that deliver the
	// whole call in one chunk).
	args map[string]any
}

func newBase(pctx *Context) base {
	return base{pctx: pctx, pending: map[int]*partialCall{}}
}

func (b *base) addUsage(u Usage) {
	b.mu.Lock()
	b.usage.add(u)
	b.mu.Unlock()
}

func (b *base) totalUsage() *Usage {
	b.mu.Lock()
	defer b.mu.Unlock()
	u := b.usage
	return &u
}

// upsertCall returns the partial call at index, creating it on first sight.
func (b *base) upsertCall(index int) *partialCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	pc, ok := b.pending[index]
	if !ok {
		pc = &partialCall{}
		b.pending[index] = pc
	}
	return pc
}

// drainCalls flushes the accumulator into normalized tool calls, in provider
// emission order. The accumulator is reset for the next cycle.
func (b *base) drainCalls() []ToolCall {
	b.mu.Lock()
	pending := b.pending
	b.pending = map[int]*partialCall{}
	b.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	indexes := make([]int, 0, len(pending))
	for i := range pending {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	calls := make([]ToolCall, 0, len(pending))
	for _, i := range indexes {
		pc := pending[i]
		pluginName, op, ok := SplitToolName(pc.name)
		if !ok {
			continue
		}
		args := pc.args
		if args == nil {
			args = map[string]any{}
			if raw := pc.argsJSON.String(); raw != "" {
				// Malformed argument JSON degrades to empty args; the plugin's
				// input validation reports the real problem.
				_ = json.Unmarshal([]byte(raw), &args)
			}
		}
		calls = append(calls, ToolCall{
			ID:         pc.id,
			PluginName: pluginName,
			Operation:  op,
			Args:       args,
		})
	}
	return calls
}

// hasPending reports whether the accumulator holds unfinished calls.
func (b *base) hasPending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending) > 0
}

// streamClient is the HTTP client used for provider calls. Streaming
// responses have no overall deadline; cancellation comes from ctx.
var streamClient = &http.Client{Timeout: 0}

// OpenStream POSTs payload to url with SSE accept headers and returns a
// channel of data-line payloads in arrival order, plus an error channel.
// The data channel closes at end of stream.
func OpenStream(ctx context.Context, url string, headers map[string]string, payload map[string]any) (<-chan []byte, <-chan error) {
	chunks := make(chan []byte, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		body, err := json.Marshal(payload)
		if err != nil {
			errs <- fmt.Errorf("marshaling provider payload: %w", err)
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			errs <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := streamClient.Do(req)
		if err != nil {
			errs <- fmt.Errorf("provider request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
			errs <- fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(data))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 64<<10), 4<<20)
		for scanner.Scan() {
			line := scanner.Bytes()
			if !bytes.HasPrefix(line, []byte("data:")) {
				continue
			}
			data := bytes.TrimSpace(line[len("data:"):])
			if len(data) == 0 || bytes.Equal(data, []byte("[DONE]")) {
				continue
			}
			out := make([]byte, len(data))
			copy(out, data)
			select {
			case chunks <- out:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("reading provider stream: %w", err)
		}
	}()

	return chunks, errs
}

// Complete POSTs payload and returns the full response body for
// non-streaming providers.
func Complete(ctx context.Context, url string, headers map[string]string, payload map[string]any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}

// intField reads a numeric field out of decoded JSON.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func mapField(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func sliceField(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}
