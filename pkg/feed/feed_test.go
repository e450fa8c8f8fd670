package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
)

func testDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFeedConfig() *Config {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	return &cfg
}

func TestWorkerPollInterval(t *testing.T) {
	w := NewWorker("test-worker", "test-pod", nil, testFeedConfig(), nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testFeedConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", nil, testFeedConfig(), nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentExecutionID)
	assert.Equal(t, 0, h.ExecutionsProcessed)

	w.setStatus(WorkerStatusWorking, "exec-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "exec-abc", h.CurrentExecutionID)
}

func TestOutcomeErrorString(t *testing.T) {
	assert.Equal(t, "", (&Outcome{}).errorString())
	assert.Equal(t, "boom", (&Outcome{ErrorMessage: "boom"}).errorString())
	assert.Equal(t, "plugin_not_found: no such plugin",
		(&Outcome{ErrorCode: CodePluginNotFound, ErrorMessage: "no such plugin"}).errorString())
}

func TestFailedOutcome(t *testing.T) {
	out := failed(CodeScheduleDisabled, "feed is disabled")
	assert.Equal(t, pluginexecution.StatusFailed, out.Status)
	assert.Equal(t, CodeScheduleDisabled, out.ErrorCode)
}

func TestResolveOpDefaultFeedOp(t *testing.T) {
	r := &Runner{}
	m := &plugin.Manifest{DefaultFeedOp: "sync"}

	params := map[string]any{"kb_id": "kb-1"}
	op := r.resolveOp(m, params)
	assert.Equal(t, "sync", op)
	assert.Equal(t, "sync", params["op"], "default op is injected so the plugin sees it")

	params = map[string]any{"op": "digest"}
	op = r.resolveOp(m, params)
	assert.Equal(t, "digest", op)
	assert.Equal(t, "digest", params["op"])
}

func TestResultToMap(t *testing.T) {
	assert.Nil(t, resultToMap(nil))

	m := resultToMap(plugin.OK(map[string]any{"items": 3}))
	assert.Equal(t, "success", m["status"])
	assert.Equal(t, map[string]any{"items": 3}, m["data"])
	assert.NotContains(t, m, "error")

	m = resultToMap(plugin.ErrWithDetails("too big", plugin.CodeOutputTooLarge, map[string]any{"size_bytes": 9000}))
	assert.Equal(t, "error", m["status"])
	errObj := m["error"].(map[string]any)
	assert.Equal(t, plugin.CodeOutputTooLarge, errObj["code"])
	assert.Equal(t, map[string]any{"size_bytes": 9000}, errObj["details"])
}

// fakeTokens scripts the per-mode auth outcomes.
type fakeTokens struct {
	userTokenErr  error
	delegation    string
	delegationErr error
	serviceErr    error
	identities    map[string][]string
}

func (f *fakeTokens) UserToken(ctx context.Context, userID, provider string, scopes []string) (string, error) {
	return "tok", f.userTokenErr
}
func (f *fakeTokens) DelegationCheck(ctx context.Context, provider, subject string, scopes []string) (string, error) {
	return f.delegation, f.delegationErr
}
func (f *fakeTokens) ServiceAccountToken(ctx context.Context, provider, subject string, scopes []string) (string, error) {
	return "tok", f.serviceErr
}
func (f *fakeTokens) Identities(ctx context.Context, userID, provider string) ([]string, error) {
	return f.identities[provider], nil
}

type fakeGate struct {
	gated  bool
	allows bool
}

func (f *fakeGate) Gated(ctx context.Context, userID string) (bool, error)  { return f.gated, nil }
func (f *fakeGate) Allows(ctx context.Context, userID, p string) (bool, error) {
	return f.allows, nil
}

func authManifest(mode string) *plugin.Manifest {
	return &plugin.Manifest{
		Name: "gmail",
		OpAuth: map[string]plugin.OpAuth{
			"sync": {Provider: "google", Mode: mode, Scopes: []string{"mail.read"}},
		},
	}
}

func TestAuthPreflight(t *testing.T) {
	ctx := context.Background()

	t.Run("user mode token obtainable", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("user"), "sync", map[string]any{}, nil, "u1", "gmail")
		assert.Nil(t, out)
	})

	t.Run("user mode token unobtainable", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{userTokenErr: errors.New("no identity")}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("user"), "sync", map[string]any{}, nil, "u1", "gmail")
		require.NotNil(t, out)
		assert.Equal(t, CodeIdentityRequired, out.ErrorCode)
	})

	t.Run("subscription gate denies", func(t *testing.T) {
		r := &Runner{
			tokens: &fakeTokens{},
			subs:   &fakeGate{gated: true, allows: false},
			log:    testDiscardLogger(),
		}
		out := r.authPreflight(ctx, authManifest("user"), "sync", map[string]any{}, nil, "u1", "gmail")
		require.NotNil(t, out)
		assert.Equal(t, CodeSubscriptionRequired, out.ErrorCode)
	})

	t.Run("subscription gate allows", func(t *testing.T) {
		r := &Runner{
			tokens: &fakeTokens{},
			subs:   &fakeGate{gated: true, allows: true},
			log:    testDiscardLogger(),
		}
		out := r.authPreflight(ctx, authManifest("user"), "sync", map[string]any{}, nil, "u1", "gmail")
		assert.Nil(t, out)
	})

	t.Run("domain delegate without subject", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("domain_delegate"), "sync", map[string]any{}, nil, "u1", "gmail")
		require.NotNil(t, out)
		assert.Equal(t, CodeIdentityRequired, out.ErrorCode)
	})

	t.Run("domain delegate not ready", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{delegation: "pending_admin"}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("domain_delegate"), "sync",
			map[string]any{"auth_subject": "alice@example.com"}, nil, "u1", "gmail")
		require.NotNil(t, out)
		assert.Equal(t, CodeIdentityRequired, out.ErrorCode)
	})

	t.Run("domain delegate ready", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{delegation: host.DelegationReady}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("domain_delegate"), "sync",
			map[string]any{"auth_subject": "alice@example.com"}, nil, "u1", "gmail")
		assert.Nil(t, out)
	})

	t.Run("feed-stored subject satisfies delegate mode", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{delegation: host.DelegationReady}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("domain_delegate"), "sync", map[string]any{},
			map[string]string{"subject": "bob@example.com"}, "u1", "gmail")
		assert.Nil(t, out)
	})

	t.Run("service account mint fails", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{serviceErr: errors.New("key revoked")}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, authManifest("service_account"), "sync", map[string]any{}, nil, "u1", "gmail")
		require.NotNil(t, out)
		assert.Equal(t, CodeIdentityRequired, out.ErrorCode)
	})

	t.Run("op without auth declaration skips preflight", func(t *testing.T) {
		r := &Runner{tokens: &fakeTokens{userTokenErr: errors.New("would fail")}, log: testDiscardLogger()}
		out := r.authPreflight(ctx, &plugin.Manifest{Name: "clock"}, "now", map[string]any{}, nil, "u1", "clock")
		assert.Nil(t, out)
	})
}

type mapSecrets struct{ values map[string]string }

func (m *mapSecrets) Lookup(ctx context.Context, pluginName, userID, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func TestMissingSecrets(t *testing.T) {
	r := &Runner{
		secrets: &mapSecrets{values: map[string]string{"api_key": "x"}},
		log:     testDiscardLogger(),
	}
	m := &plugin.Manifest{Name: "github", RequiredSecrets: []string{"api_key", "webhook_secret"}}
	missing := r.missingSecrets(context.Background(), m, "u1")
	assert.Equal(t, []string{"webhook_secret"}, missing)

	m.RequiredSecrets = []string{"api_key"}
	assert.Empty(t, r.missingSecrets(context.Background(), m, "u1"))
}

func TestProviderIdentities(t *testing.T) {
	r := &Runner{
		tokens: &fakeTokens{identities: map[string][]string{"google": {"a@x.com", "b@x.com"}}},
		log:    testDiscardLogger(),
	}
	m := &plugin.Manifest{
		Name:               "gdrive",
		RequiredIdentities: []plugin.RequiredIdentity{{Provider: "google"}},
	}
	ids := r.providerIdentities(context.Background(), "u1", m)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ids["google"])

	assert.Nil(t, r.providerIdentities(context.Background(), "u1", &plugin.Manifest{}))
}

func TestFeedAuthParams(t *testing.T) {
	assert.Nil(t, feedAuthParams(nil))
}

func TestDefaultConfigOneShotParams(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"reset_cursor"}, cfg.OneShotParams)
}
