// Package executor is the policy chokepoint every plugin call routes
// through: quota, rate limits, concurrency caps, schema validation, auth
// derivation, host construction, timeout enforcement, structured error
// mapping, and the output size cap.
package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// Reserved param keys. __host injects trusted host context; __schedule_id
// threads the feed schedule. Both are stripped before validation and before
// the plugin sees params.
const (
	ParamHost       = "__host"
	ParamScheduleID = "__schedule_id"
)

// Resolver supplies enabled plugins by name. Satisfied by plugin.Registry.
type Resolver interface {
	Resolve(ctx context.Context, name string) (*plugin.Loaded, error)
}

// Config holds the executor's global policy defaults. Per-plugin limits from
// the definition row override these.
type Config struct {
	OutputMaxBytes        int
	ExecTimeout           time.Duration
	RateLimitUserRequests int
	RateLimitUserPeriod   time.Duration
	QuotaDailyDefault     int
	QuotaMonthlyDefault   int
}

// DefaultConfig returns the built-in policy defaults.
func DefaultConfig() Config {
	return Config{
		OutputMaxBytes:        256 << 10, // 256 KiB
		ExecTimeout:           2 * time.Minute,
		RateLimitUserRequests: 30,
		RateLimitUserPeriod:   time.Minute,
		QuotaDailyDefault:     500,
		QuotaMonthlyDefault:   5000,
	}
}

// Request is one plugin invocation.
type Request struct {
	PluginName string
	UserID     string
	UserEmail  string
	AgentKey   string
	Params     map[string]any

	// Limits are the per-plugin limits from the definition row, merged over
	// the executor defaults. Nil means defaults only.
	Limits *plugin.Limits

	// ProviderIdentities maps provider key to the user's stored subjects.
	ProviderIdentities map[string][]string

	// FeedAuth carries feed-stored auth settings ("mode", "subject") for
	// op-auth resolution precedence.
	FeedAuth map[string]string
}

// Executor runs plugin calls under the full policy protocol.
type Executor struct {
	resolver Resolver
	limits   limiter.Limiter
	builder  *host.Builder
	cfg      Config
	log      *slog.Logger
}

// New creates an executor.
func New(resolver Resolver, limits limiter.Limiter, builder *host.Builder, cfg Config) *Executor {
	if limits == nil {
		limits = limiter.Noop{}
	}
	return &Executor{
		resolver: resolver,
		limits:   limits,
		builder:  builder,
		cfg:      cfg,
		log:      slog.With("component", "executor"),
	}
}

// Execute runs one plugin call. Policy denials and input validation
// failures return a *PolicyError; every other outcome, including plugin
// panics-as-errors, timeouts, and output violations, is materialized into
// the returned plugin.Result.
func (e *Executor) Execute(ctx context.Context, req Request) (*plugin.Result, error) {
	start := time.Now()
	result, err := e.execute(ctx, req)

	outcome := "error"
	if err != nil {
		outcome = "denied"
	} else if result != nil {
		outcome = result.Status
	}
	e.log.Info("Plugin execution finished",
		"plugin", req.PluginName,
		"user_id", req.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
		"outcome", outcome)
	return result, err
}

func (e *Executor) execute(ctx context.Context, req Request) (*plugin.Result, error) {
	loaded, err := e.resolver.Resolve(ctx, req.PluginName)
	if err != nil {
		return plugin.Err(err.Error(), plugin.CodePluginExecuteError), nil
	}
	if loaded == nil {
		return plugin.Err(
			fmt.Sprintf("plugin %q not found or not enabled", req.PluginName),
			"plugin_not_found"), nil
	}
	m := loaded.Manifest

	// 1. Reserve the host overlay. The __host key is the only channel for
	// trusted context; plugins never see it.
	params := req.Params
	if params == nil {
		params = map[string]any{}
	}
	var hostCtx *host.Context
	if raw, ok := params[ParamHost].(map[string]any); ok {
		delete(params, ParamHost)
		hostCtx = host.ParseContext(raw)
	} else {
		delete(params, ParamHost)
		hostCtx = host.NewContext()
	}
	scheduleID, _ := params[ParamScheduleID].(string)
	delete(params, ParamScheduleID)

	// 2. Effective limits.
	eff := e.resolveLimits(req.Limits)
	key := fmt.Sprintf("%s:%s:%s", m.Name, m.Version, req.UserID)

	// 3. Quota, daily then monthly.
	if d, err := e.limits.CheckQuota(ctx, key, eff.quotaDaily, limiter.QuotaDaily); err != nil {
		return nil, err
	} else if !d.Allowed {
		return nil, denied(CodeQuotaExceeded, "daily quota exceeded", d, map[string]any{
			"period":   "daily",
			"reset_in": int(d.RetryAfter.Seconds()),
		})
	}
	if d, err := e.limits.CheckQuota(ctx, key, eff.quotaMonthly, limiter.QuotaMonthly); err != nil {
		return nil, err
	} else if !d.Allowed {
		// The daily check above already counted this request; give it back.
		if rerr := e.limits.RefundQuota(ctx, key, limiter.QuotaDaily); rerr != nil {
			e.log.Warn("Failed to refund daily quota", "key", key, "error", rerr)
		}
		return nil, denied(CodeQuotaExceeded, "monthly quota exceeded", d, map[string]any{
			"period":   "monthly",
			"reset_in": int(d.RetryAfter.Seconds()),
		})
	}

	// 4. Per-user rate.
	if d, err := e.limits.AllowUser(ctx, key, eff.userRequests, eff.userPeriod); err != nil {
		return nil, err
	} else if !d.Allowed {
		return nil, denied(CodeRateLimited, "rate limit exceeded", d, map[string]any{
			"retry_after": int(d.RetryAfter.Seconds()),
		})
	}

	// 5. Provider-level rate.
	if eff.providerName != "" && eff.providerRPM > 0 {
		d, err := e.limits.AllowProviderWindow(ctx, eff.providerName, eff.providerRPM, eff.providerWindow)
		if err != nil {
			return nil, err
		}
		if !d.Allowed {
			return nil, denied(CodeProviderRateLimited, "provider rate limit exceeded", d, map[string]any{
				"provider":    eff.providerName,
				"retry_after": int(d.RetryAfter.Seconds()),
			})
		}
	}

	// 6. Provider concurrency. Released on every exit path below.
	release := limiter.ReleaseFunc(func() {})
	if eff.providerName != "" && eff.providerConcurrency > 0 {
		rel, ok, err := e.limits.AcquireProvider(ctx, eff.providerName, eff.providerConcurrency)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, denied(CodeProviderConcurrencyLimited, "provider concurrency limit reached",
				limiter.Decision{Limit: eff.providerConcurrency}, map[string]any{
					"provider": eff.providerName,
				})
		}
		release = rel
	}
	defer release()

	// 7. Input validation.
	if err := validateAgainstSchema(loaded.Plugin.Schema(), params); err != nil {
		return nil, invalid(err.Error())
	}

	// 8. Op-scoped auth derivation. Backfill only; UI-provided host-context
	// values win.
	op, _ := params["op"].(string)
	if resolved, err := ResolveOpAuth(m, op, params, req.FeedAuth); err == nil && resolved != nil {
		section := hostCtx.EnsureAuth(resolved.Provider)
		if len(section.Scopes) == 0 {
			section.Scopes = resolved.Scopes
		}
		if section.Mode == "" {
			section.Mode = resolved.Mode
		}
		if section.Subject == "" {
			section.Subject = resolved.Subject
		}
	}

	// 9. Thread the schedule id, non-overwriting.
	if hostCtx.ScheduleID == "" {
		hostCtx.ScheduleID = scheduleID
	}

	// 10. Build the host.
	h := e.builder.Build(m.Name, req.UserID, req.UserEmail, m.Capabilities, hostCtx)

	// 11. Execute under the wall-clock timeout.
	result := e.run(ctx, loaded.Plugin, params, h)

	// Output schema applies to successful data only.
	if result.IsSuccess() {
		if schema := loaded.Plugin.OutputSchema(); schema != nil {
			if err := validateAgainstSchema(schema, result.Data); err != nil {
				result = plugin.Err(
					fmt.Sprintf("plugin output failed schema validation: %v", err),
					plugin.CodeOutputValidation)
			}
		}
	}

	// Output byte cap, orthogonal to schema validation.
	if capped := CapOutput(result, e.cfg.OutputMaxBytes); capped != nil {
		result = capped
	}
	return result, nil
}

// run invokes the plugin with the configured timeout. The deadline firing
// yields a timeout result; parent cancellation propagates as a result too so
// the executor never leaks a raw error.
func (e *Executor) run(ctx context.Context, p plugin.Plugin, params map[string]any, h *host.Host) *plugin.Result {
	execCtx := ctx
	cancel := context.CancelFunc(func() {})
	if e.cfg.ExecTimeout > 0 {
		execCtx, cancel = context.WithTimeout(ctx, e.cfg.ExecTimeout)
	}
	defer cancel()

	type outcome struct {
		result *plugin.Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				e.log.Error("Plugin panicked", "panic", rec, "stack", string(debug.Stack()))
				done <- outcome{err: fmt.Errorf("plugin panicked: %v", rec)}
			}
		}()
		res, err := p.Execute(execCtx, params, h)
		done <- outcome{res, err}
	}()

	select {
	case <-execCtx.Done():
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return plugin.Timeout(fmt.Sprintf("plugin execution exceeded %s", e.cfg.ExecTimeout))
		}
		return plugin.Err("plugin execution cancelled", plugin.CodePluginExecuteError)
	case out := <-done:
		return e.mapOutcome(out.result, out.err)
	}
}

// mapOutcome converts plugin return values and errors into a Result.
func (e *Executor) mapOutcome(result *plugin.Result, err error) *plugin.Result {
	if err == nil {
		if result == nil {
			return plugin.Err("plugin returned no result", plugin.CodePluginExecuteError)
		}
		return result
	}

	var reqErr *host.RequestError
	if errors.As(err, &reqErr) {
		return plugin.ErrWithDetails(
			fmt.Sprintf("Provider HTTP error (%d)", reqErr.StatusCode),
			plugin.CodeProviderError,
			map[string]any{
				"status_code":      reqErr.StatusCode,
				"url":              reqErr.URL,
				"provider_message": extractProviderMessage(reqErr.Body),
			})
	}
	return plugin.Err(err.Error(), plugin.CodePluginExecuteError)
}

// CapOutput enforces the serialized-size ceiling on a result. Returns the
// replacement error result when the cap is exceeded, nil when within bounds.
// The feed runner applies the same cap for defense in depth.
func CapOutput(result *plugin.Result, maxBytes int) *plugin.Result {
	if result == nil || maxBytes <= 0 {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return plugin.Err(fmt.Sprintf("result not serializable: %v", err), plugin.CodePluginExecuteError)
	}
	if len(data) <= maxBytes {
		return nil
	}
	return plugin.ErrWithDetails("output exceeds max bytes", plugin.CodeOutputTooLarge, map[string]any{
		"size_bytes": len(data),
		"max_bytes":  maxBytes,
	})
}

// extractProviderMessage pulls a human-readable message from a provider
// error body: error_description, then error (string or {message}), then
// message.
func extractProviderMessage(body string) string {
	if body == "" {
		return ""
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return ""
	}
	if s, ok := parsed["error_description"].(string); ok && s != "" {
		return s
	}
	switch v := parsed["error"].(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if s, ok := v["message"].(string); ok && s != "" {
			return s
		}
	}
	if s, ok := parsed["message"].(string); ok && s != "" {
		return s
	}
	return ""
}
