package executor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/plugin"
)

type fakePlugin struct {
	name      string
	schema    map[string]any
	outSchema map[string]any
	execute   func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error)
}

func (f *fakePlugin) Name() string                 { return f.name }
func (f *fakePlugin) Version() string              { return "1.0.0" }
func (f *fakePlugin) Schema() map[string]any       { return f.schema }
func (f *fakePlugin) OutputSchema() map[string]any { return f.outSchema }
func (f *fakePlugin) Execute(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	return f.execute(ctx, params, h)
}

type fakeResolver struct {
	loaded map[string]*plugin.Loaded
}

func (f *fakeResolver) Resolve(ctx context.Context, name string) (*plugin.Loaded, error) {
	return f.loaded[name], nil
}

func opSchema(ops ...string) map[string]any {
	enum := make([]any, len(ops))
	for i, op := range ops {
		enum[i] = op
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op": map[string]any{"type": "string", "enum": enum},
		},
		"required": []any{"op"},
	}
}

func newTestExecutor(t *testing.T, p *fakePlugin, m *plugin.Manifest, cfg Config) *Executor {
	t.Helper()
	if m == nil {
		m = &plugin.Manifest{Name: p.name, Version: "1.0.0", Capabilities: []string{"log"}}
	}
	resolver := &fakeResolver{loaded: map[string]*plugin.Loaded{
		p.name: {Plugin: p, Manifest: m},
	}}
	builder := host.NewBuilder(host.Deps{})
	return New(resolver, limiter.NewLocalLimiter(), builder, cfg)
}

func TestExecuteSuccess(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(map[string]any{"items": []any{}}), nil
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github",
		UserID:     "u1",
		Params:     map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusSuccess, result.Status)
}

func TestExecutePluginNotFound(t *testing.T) {
	e := New(&fakeResolver{loaded: map[string]*plugin.Loaded{}},
		limiter.NewLocalLimiter(), host.NewBuilder(host.Deps{}), DefaultConfig())

	result, err := e.Execute(context.Background(), Request{PluginName: "missing", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusError, result.Status)
	assert.Equal(t, "plugin_not_found", result.Error.Code)
}

func TestExecuteHostOverlayStripped(t *testing.T) {
	var seenParams map[string]any
	var seenKBs []string
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			seenParams = params
			kbCap, err := h.KB()
			if err != nil {
				return nil, err
			}
			seenKBs = kbCap.KnowledgeBaseIDs()
			return plugin.OK(nil), nil
		},
	}
	m := &plugin.Manifest{Name: "github", Version: "1.0.0", Capabilities: []string{"kb"}}
	e := newTestExecutor(t, p, m, DefaultConfig())

	_, err := e.Execute(context.Background(), Request{
		PluginName: "github",
		UserID:     "u1",
		Params: map[string]any{
			"op": "list",
			"__host": map[string]any{
				"kb": map[string]any{"knowledge_base_ids": []any{"kb-1"}},
			},
			"__schedule_id": "feed-7",
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, seenParams, "__host")
	assert.NotContains(t, seenParams, "__schedule_id")
	assert.Equal(t, []string{"kb-1"}, seenKBs)
}

func TestExecuteInputValidation(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			t.Fatal("plugin must not run on invalid input")
			return nil, nil
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())

	_, err := e.Execute(context.Background(), Request{
		PluginName: "github",
		UserID:     "u1",
		Params:     map[string]any{},
	})
	require.Error(t, err)
	polErr, ok := err.(*PolicyError)
	require.True(t, ok)
	assert.Equal(t, 422, polErr.Status)
	assert.Equal(t, CodeValidationError, polErr.Code)
}

func TestExecuteQuotaExceeded(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(nil), nil
		},
	}
	cfg := DefaultConfig()
	cfg.QuotaDailyDefault = 1
	e := newTestExecutor(t, p, nil, cfg)

	req := Request{PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"}}
	_, err := e.Execute(context.Background(), req)
	require.NoError(t, err)

	req.Params = map[string]any{"op": "list"}
	_, err = e.Execute(context.Background(), req)
	require.Error(t, err)
	polErr, ok := err.(*PolicyError)
	require.True(t, ok)
	assert.Equal(t, 429, polErr.Status)
	assert.Equal(t, CodeQuotaExceeded, polErr.Code)
	assert.Equal(t, "daily", polErr.Details["period"])

	headers := polErr.Headers()
	assert.Contains(t, headers, "Retry-After")
	assert.Contains(t, headers, "RateLimit-Limit")
}

func TestExecutePluginPanicContained(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			var m map[string]int
			m["boom"] = 1
			return nil, nil
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusError, result.Status)
	assert.Equal(t, plugin.CodePluginExecuteError, result.Error.Code)
	assert.Contains(t, result.Error.Message, "panicked")
}

func TestExecuteMonthlyDenialRefundsDaily(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(nil), nil
		},
	}
	cfg := DefaultConfig()
	cfg.QuotaDailyDefault = 2
	cfg.QuotaMonthlyDefault = 1
	e := newTestExecutor(t, p, nil, cfg)

	_, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)

	// Every further request is a monthly denial. Without the daily refund the
	// second denial would burn the remaining daily budget and the third would
	// report the daily period instead.
	for i := 0; i < 3; i++ {
		_, err = e.Execute(context.Background(), Request{
			PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
		})
		require.Error(t, err)
		polErr, ok := err.(*PolicyError)
		require.True(t, ok)
		assert.Equal(t, CodeQuotaExceeded, polErr.Code)
		assert.Equal(t, "monthly", polErr.Details["period"])
	}
}

func TestExecuteUserRateLimited(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(nil), nil
		},
	}
	cfg := DefaultConfig()
	cfg.RateLimitUserRequests = 2
	cfg.RateLimitUserPeriod = time.Minute
	e := newTestExecutor(t, p, nil, cfg)

	for i := 0; i < 2; i++ {
		_, err := e.Execute(context.Background(), Request{
			PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
		})
		require.NoError(t, err)
	}
	_, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.Error(t, err)
	polErr := err.(*PolicyError)
	assert.Equal(t, CodeRateLimited, polErr.Code)
}

func TestExecuteProviderConcurrencyReleased(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(nil), nil
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())
	limits := &plugin.Limits{ProviderName: "github-api", ProviderConcurrency: 1}

	// Sequential calls must all succeed: each release frees the single slot.
	for i := 0; i < 3; i++ {
		result, err := e.Execute(context.Background(), Request{
			PluginName: "github", UserID: "u1",
			Params: map[string]any{"op": "list"},
			Limits: limits,
		})
		require.NoError(t, err)
		assert.Equal(t, plugin.StatusSuccess, result.Status)
	}
}

func TestExecuteTimeout(t *testing.T) {
	p := &fakePlugin{
		name:   "slow",
		schema: opSchema("run"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	cfg := DefaultConfig()
	cfg.ExecTimeout = 20 * time.Millisecond
	e := newTestExecutor(t, p, nil, cfg)

	result, err := e.Execute(context.Background(), Request{
		PluginName: "slow", UserID: "u1", Params: map[string]any{"op": "run"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusTimeout, result.Status)
	assert.Equal(t, plugin.CodeTimeout, result.Error.Code)
}

func TestExecuteProviderErrorMapping(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return nil, &host.RequestError{
				StatusCode: 503,
				URL:        "https://api.github.com/x",
				Body:       `{"message":"upstream down"}`,
				Category:   host.CategoryServerError,
			}
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusError, result.Status)
	assert.Equal(t, plugin.CodeProviderError, result.Error.Code)
	assert.Equal(t, "Provider HTTP error (503)", result.Error.Message)
	assert.Equal(t, 503, result.Error.Details["status_code"])
	assert.Equal(t, "upstream down", result.Error.Details["provider_message"])
}

func TestExecuteCapabilityDenialMapsToExecuteError(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			_, err := h.HTTP()
			return nil, err
		},
	}
	m := &plugin.Manifest{Name: "github", Version: "1.0.0", Capabilities: []string{"log", "kb"}}
	e := newTestExecutor(t, p, m, DefaultConfig())

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.CodePluginExecuteError, result.Error.Code)
	assert.Contains(t, result.Error.Message, "http")
}

func TestExecuteOutputValidation(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		outSchema: map[string]any{
			"type":     "object",
			"required": []any{"items"},
		},
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(map[string]any{"wrong": true}), nil
		},
	}
	e := newTestExecutor(t, p, nil, DefaultConfig())

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusError, result.Status)
	assert.Equal(t, plugin.CodeOutputValidation, result.Error.Code)
}

func TestExecuteOutputCap(t *testing.T) {
	p := &fakePlugin{
		name:   "github",
		schema: opSchema("list"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			return plugin.OK(map[string]any{"blob": strings.Repeat("x", 4096)}), nil
		},
	}
	cfg := DefaultConfig()
	cfg.OutputMaxBytes = 1024
	e := newTestExecutor(t, p, nil, cfg)

	result, err := e.Execute(context.Background(), Request{
		PluginName: "github", UserID: "u1", Params: map[string]any{"op": "list"},
	})
	require.NoError(t, err)
	assert.Equal(t, plugin.StatusError, result.Status)
	assert.Equal(t, plugin.CodeOutputTooLarge, result.Error.Code)
	assert.Equal(t, "output exceeds max bytes", result.Error.Message)
}

func TestExecuteOpAuthBackfill(t *testing.T) {
	var seenMode, seenSubject string
	var seenScopes []string
	p := &fakePlugin{
		name:   "gmail",
		schema: opSchema("digest"),
		execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
			auth, err := h.Auth()
			if err != nil {
				return nil, err
			}
			section := auth.Section("google")
			if section != nil {
				seenMode, seenSubject, seenScopes = section.Mode, section.Subject, section.Scopes
			}
			return plugin.OK(nil), nil
		},
	}
	m := &plugin.Manifest{
		Name: "gmail", Version: "1.0.0", Capabilities: []string{"auth"},
		OpAuth: map[string]plugin.OpAuth{
			"digest": {Provider: "google", Mode: "user", Scopes: []string{"gmail.readonly"}},
		},
	}
	e := newTestExecutor(t, p, m, DefaultConfig())

	_, err := e.Execute(context.Background(), Request{
		PluginName: "gmail", UserID: "u1",
		Params: map[string]any{"op": "digest"},
	})
	require.NoError(t, err)
	assert.Equal(t, "user", seenMode)
	assert.Empty(t, seenSubject)
	assert.Equal(t, []string{"gmail.readonly"}, seenScopes)
}

func TestResolveOpAuthPrecedence(t *testing.T) {
	m := &plugin.Manifest{
		Name: "gmail",
		OpAuth: map[string]plugin.OpAuth{
			"digest": {Provider: "google", Mode: "user", Scopes: []string{"gmail.readonly"}},
		},
	}

	t.Run("manifest default", func(t *testing.T) {
		resolved, err := ResolveOpAuth(m, "digest", nil, nil)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, "user", resolved.Mode)
	})

	t.Run("feed overrides manifest", func(t *testing.T) {
		resolved, err := ResolveOpAuth(m, "digest", nil, map[string]string{
			"mode": "domain_delegate", "subject": "ops@corp.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "domain_delegate", resolved.Mode)
		assert.Equal(t, "ops@corp.com", resolved.Subject)
	})

	t.Run("explicit params override feed", func(t *testing.T) {
		resolved, err := ResolveOpAuth(m, "digest",
			map[string]any{"auth_mode": "service_account", "auth_subject": "bot@corp.com"},
			map[string]string{"mode": "domain_delegate", "subject": "ops@corp.com"})
		require.NoError(t, err)
		assert.Equal(t, "service_account", resolved.Mode)
		assert.Equal(t, "bot@corp.com", resolved.Subject)
	})

	t.Run("delegate without subject is ambiguous", func(t *testing.T) {
		_, err := ResolveOpAuth(m, "digest", nil, map[string]string{"mode": "domain_delegate"})
		require.Error(t, err)
		var ambiguous *AmbiguousAuthError
		assert.ErrorAs(t, err, &ambiguous)
	})

	t.Run("op without auth declaration", func(t *testing.T) {
		resolved, err := ResolveOpAuth(m, "other", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}

func TestValidateAgainstSchemaFallback(t *testing.T) {
	// A schema that fails to compile degrades to the required-keys check.
	schema := map[string]any{
		"type":     "object",
		"required": []any{"op"},
		"properties": map[string]any{
			"op": map[string]any{"type": "not-a-real-type"},
		},
	}
	err := validateAgainstSchema(schema, map[string]any{"op": "list"})
	assert.NoError(t, err)
	err = validateAgainstSchema(schema, map[string]any{})
	assert.Error(t, err)
}
