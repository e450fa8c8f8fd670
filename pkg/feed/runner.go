package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// SubscriptionGate answers whether a user's subscription tier permits
// running a plugin. Nil gate means no gating.
type SubscriptionGate interface {
	// Gated reports whether the user has any subscription restriction.
	Gated(ctx context.Context, userID string) (bool, error)
	// Allows reports whether the user's subscription covers the plugin.
	Allows(ctx context.Context, userID, pluginName string) (bool, error)
}

// Outcome is the terminal state of one execution run, computed by the
// runner and applied to the row by the caller's transaction.
type Outcome struct {
	Status       pluginexecution.Status
	Result       map[string]any
	ErrorCode    string
	ErrorMessage string

	// FeedID is set when the execution belongs to a feed.
	FeedID string
	// DisableFeed marks the feed for auto-disable (unresolvable plugin).
	DisableFeed bool
}

func (o *Outcome) errorString() string {
	if o.ErrorCode == "" && o.ErrorMessage == "" {
		return ""
	}
	if o.ErrorCode == "" {
		return o.ErrorMessage
	}
	return fmt.Sprintf("%s: %s", o.ErrorCode, o.ErrorMessage)
}

func failed(code, message string) *Outcome {
	return &Outcome{Status: pluginexecution.StatusFailed, ErrorCode: code, ErrorMessage: message}
}

// Runner advances one PluginExecution row through preflight, execution, and
// result normalization. It never commits; Apply takes the caller's
// transaction so record, feed cursor, and one-shot clears land atomically.
type Runner struct {
	client   *ent.Client
	registry *plugin.Registry
	exec     *executor.Executor
	tokens   host.TokenSource
	secrets  host.SecretsStore
	subs     SubscriptionGate

	outputMaxBytes int
	oneShotParams  []string
	log            *slog.Logger
}

// NewRunner creates a feed runner. tokens, secrets, and subs may be nil;
// the corresponding preflight checks are skipped (the host fails closed).
func NewRunner(client *ent.Client, registry *plugin.Registry, exec *executor.Executor, tokens host.TokenSource, secrets host.SecretsStore, subs SubscriptionGate, outputMaxBytes int, oneShotParams []string) *Runner {
	return &Runner{
		client:         client,
		registry:       registry,
		exec:           exec,
		tokens:         tokens,
		secrets:        secrets,
		subs:           subs,
		outputMaxBytes: outputMaxBytes,
		oneShotParams:  oneShotParams,
		log:            slog.With("component", "feed_runner"),
	}
}

// Run executes one RUNNING row end to end and returns the terminal outcome.
// Preflight failures become FAILED outcomes with a structured error code.
// Executor policy denials propagate as errors so the caller can apply its
// own retry policy.
func (r *Runner) Run(ctx context.Context, row *ent.PluginExecution) (*Outcome, error) {
	log := r.log.With("execution_id", row.ID, "plugin", row.PluginName, "user_id", row.UserID)

	// 1. Load the feed, if any. A disabled feed fails preflight.
	var feed *ent.PluginFeed
	if row.ScheduleID != nil {
		var err error
		feed, err = r.client.PluginFeed.Get(ctx, *row.ScheduleID)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("loading feed %s: %w", *row.ScheduleID, err)
		}
		if feed != nil && !feed.Enabled {
			return failed(CodeScheduleDisabled, "feed is disabled"), nil
		}
	}

	out := &Outcome{}
	if feed != nil {
		out.FeedID = feed.ID
	}

	// 2. Resolve the plugin. Unresolvable plugins auto-disable the feed so
	// the scheduler stops producing doomed executions.
	loaded, err := r.registry.Resolve(ctx, row.PluginName)
	if err != nil {
		return nil, fmt.Errorf("resolving plugin %s: %w", row.PluginName, err)
	}
	if loaded == nil {
		out.Status = pluginexecution.StatusFailed
		out.ErrorCode = CodePluginNotFound
		out.ErrorMessage = fmt.Sprintf("plugin %s not found or disabled", row.PluginName)
		out.DisableFeed = feed != nil
		return out, nil
	}
	m := loaded.Manifest

	params := cloneParams(row.Params)
	op := r.resolveOp(m, params)

	// 3. Per-plugin limits from the definition row.
	var limits *plugin.Limits
	if def, err := r.registry.Definition(ctx, row.PluginName); err == nil && def != nil {
		limits = plugin.LimitsFromMap(def.Limits)
	} else if err != nil {
		log.Warn("Failed to load plugin definition limits", "error", err)
	}

	// 4. Provider identities for the owning user.
	identities := r.providerIdentities(ctx, row.UserID, m)

	// 5. Auth preflight. Fails fast on checks the executor would only
	// discover after paying the execution cost.
	feedAuth := feedAuthParams(feed)
	if outcome := r.authPreflight(ctx, m, op, params, feedAuth, row.UserID, row.PluginName); outcome != nil {
		outcome.FeedID = out.FeedID
		return outcome, nil
	}

	// 6. Secrets preflight.
	if missing := r.missingSecrets(ctx, m, row.UserID); len(missing) > 0 {
		o := failed(CodeMissingSecrets, fmt.Sprintf("missing required secrets: %v", missing))
		o.FeedID = out.FeedID
		return o, nil
	}

	// 7. Thread the schedule id.
	if row.ScheduleID != nil {
		params[executor.ParamScheduleID] = *row.ScheduleID
	}

	// 8. Execute.
	req := executor.Request{
		PluginName:         row.PluginName,
		UserID:             row.UserID,
		Params:             params,
		Limits:             limits,
		ProviderIdentities: identities,
		FeedAuth:           feedAuth,
	}
	if row.AgentKey != nil {
		req.AgentKey = *row.AgentKey
	}
	result, err := r.exec.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	// 9. Normalize and re-apply the output cap.
	if capped := executor.CapOutput(result, r.outputMaxBytes); capped != nil {
		result = capped
	}
	out.Result = resultToMap(result)

	switch {
	case result.IsSuccess():
		out.Status = pluginexecution.StatusCompleted
	default:
		out.Status = pluginexecution.StatusFailed
		if result.Error != nil {
			out.ErrorCode = result.Error.Code
			out.ErrorMessage = result.Error.Message
		} else {
			out.ErrorMessage = "plugin returned non-success status " + result.Status
		}
	}
	return out, nil
}

// Apply writes the outcome to the execution row and, for COMPLETED feed
// runs, advances last_run_at and clears one-shot params in the same
// transaction. The caller commits.
func (r *Runner) Apply(ctx context.Context, tx *ent.Tx, row *ent.PluginExecution, out *Outcome) error {
	update := tx.PluginExecution.UpdateOneID(row.ID).
		SetStatus(out.Status).
		SetCompletedAt(time.Now())
	if out.Result != nil {
		update = update.SetResult(out.Result)
	}
	if msg := out.errorString(); msg != "" {
		update = update.SetError(msg)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating execution %s: %w", row.ID, err)
	}

	if out.FeedID == "" {
		return nil
	}

	if out.DisableFeed {
		if err := tx.PluginFeed.UpdateOneID(out.FeedID).SetEnabled(false).Exec(ctx); err != nil {
			return fmt.Errorf("disabling feed %s: %w", out.FeedID, err)
		}
		r.log.Warn("Feed auto-disabled", "feed_id", out.FeedID, "reason", out.ErrorCode)
		return nil
	}

	if out.Status != pluginexecution.StatusCompleted {
		return nil
	}

	feed, err := tx.PluginFeed.Get(ctx, out.FeedID)
	if err != nil {
		return fmt.Errorf("reloading feed %s: %w", out.FeedID, err)
	}
	params := cloneParams(feed.Params)
	cleared := false
	for _, key := range r.oneShotParams {
		if _, ok := params[key]; ok {
			delete(params, key)
			cleared = true
		}
	}
	update2 := tx.PluginFeed.UpdateOneID(out.FeedID).SetLastRunAt(time.Now())
	if cleared {
		update2 = update2.SetParams(params)
	}
	if err := update2.Exec(ctx); err != nil {
		return fmt.Errorf("advancing feed %s: %w", out.FeedID, err)
	}
	return nil
}

// resolveOp reads params.op, falling back to the manifest's default feed op
// (injected so the executor and plugin see it).
func (r *Runner) resolveOp(m *plugin.Manifest, params map[string]any) string {
	op, _ := params["op"].(string)
	if op == "" && m.DefaultFeedOp != "" {
		op = m.DefaultFeedOp
		params["op"] = op
	}
	return op
}

// authPreflight resolves op auth the same way the executor does and applies
// the per-mode checks. Returns a FAILED outcome on a definitive denial;
// resolution errors default to allow, the host checks fail closed.
func (r *Runner) authPreflight(ctx context.Context, m *plugin.Manifest, op string, params map[string]any, feedAuth map[string]string, userID, pluginName string) *Outcome {
	resolved, err := executor.ResolveOpAuth(m, op, params, feedAuth)
	if err != nil {
		var ambiguous *executor.AmbiguousAuthError
		if errors.As(err, &ambiguous) {
			return failed(CodeIdentityRequired, ambiguous.Error())
		}
		r.log.Warn("Auth preflight resolution failed, allowing", "plugin", pluginName, "error", err)
		return nil
	}
	if resolved == nil || r.tokens == nil {
		return nil
	}

	switch resolved.Mode {
	case plugin.AuthModeUser:
		if r.subs != nil {
			gated, err := r.subs.Gated(ctx, userID)
			if err != nil {
				r.log.Warn("Subscription gate check failed, allowing", "user_id", userID, "error", err)
			} else if gated {
				ok, err := r.subs.Allows(ctx, userID, pluginName)
				if err != nil {
					r.log.Warn("Subscription check failed, allowing", "user_id", userID, "error", err)
				} else if !ok {
					return failed(CodeSubscriptionRequired, fmt.Sprintf("subscription does not cover plugin %s", pluginName))
				}
			}
		}
		if _, err := r.tokens.UserToken(ctx, userID, resolved.Provider, resolved.Scopes); err != nil {
			return failed(CodeIdentityRequired, fmt.Sprintf("no usable %s identity: %v", resolved.Provider, err))
		}

	case plugin.AuthModeDomainDelegate:
		if resolved.Subject == "" {
			return failed(CodeIdentityRequired, "domain_delegate requires a subject")
		}
		status, err := r.tokens.DelegationCheck(ctx, resolved.Provider, resolved.Subject, resolved.Scopes)
		if err != nil || status != host.DelegationReady {
			return failed(CodeIdentityRequired, fmt.Sprintf("delegation for %s not ready", resolved.Subject))
		}

	case plugin.AuthModeServiceAccount:
		if _, err := r.tokens.ServiceAccountToken(ctx, resolved.Provider, resolved.Subject, resolved.Scopes); err != nil {
			return failed(CodeIdentityRequired, fmt.Sprintf("service account token for %s unavailable: %v", resolved.Provider, err))
		}
	}
	return nil
}

// missingSecrets returns the manifest-declared secrets absent from the
// store. Lookup errors default to allow.
func (r *Runner) missingSecrets(ctx context.Context, m *plugin.Manifest, userID string) []string {
	if r.secrets == nil || len(m.RequiredSecrets) == 0 {
		return nil
	}
	var missing []string
	for _, key := range m.RequiredSecrets {
		_, ok, err := r.secrets.Lookup(ctx, m.Name, userID, key)
		if err != nil {
			r.log.Warn("Secret lookup failed during preflight, allowing", "plugin", m.Name, "key", key, "error", err)
			continue
		}
		if !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// providerIdentities lists the user's stored subjects per provider the
// manifest declares.
func (r *Runner) providerIdentities(ctx context.Context, userID string, m *plugin.Manifest) map[string][]string {
	if r.tokens == nil || len(m.RequiredIdentities) == 0 {
		return nil
	}
	identities := make(map[string][]string, len(m.RequiredIdentities))
	for _, req := range m.RequiredIdentities {
		subjects, err := r.tokens.Identities(ctx, userID, req.Provider)
		if err != nil {
			r.log.Warn("Failed to list provider identities", "user_id", userID, "provider", req.Provider, "error", err)
			continue
		}
		identities[req.Provider] = subjects
	}
	return identities
}

// feedAuthParams extracts the feed-stored auth settings consumed by op-auth
// resolution precedence.
func feedAuthParams(feed *ent.PluginFeed) map[string]string {
	if feed == nil {
		return nil
	}
	auth := make(map[string]string, 2)
	if mode, ok := feed.Params["auth_mode"].(string); ok && mode != "" {
		auth["mode"] = mode
	}
	if subject, ok := feed.Params["auth_subject"].(string); ok && subject != "" {
		auth["subject"] = subject
	}
	if len(auth) == 0 {
		return nil
	}
	return auth
}

func cloneParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// resultToMap flattens a plugin result into the JSON object stored on the
// execution row.
func resultToMap(result *plugin.Result) map[string]any {
	if result == nil {
		return nil
	}
	out := map[string]any{"status": result.Status}
	if result.Data != nil {
		out["data"] = result.Data
	}
	if result.Error != nil {
		errObj := map[string]any{"code": result.Error.Code, "message": result.Error.Message}
		if result.Error.Details != nil {
			errObj["details"] = result.Error.Details
		}
		out["error"] = errObj
	}
	if len(result.Warnings) > 0 {
		out["warnings"] = result.Warnings
	}
	if len(result.Citations) > 0 {
		out["citations"] = result.Citations
	}
	return out
}
