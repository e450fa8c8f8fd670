package githubdigest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
)

type mapSecrets map[string]string

func (m mapSecrets) Lookup(_ context.Context, _, _, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func newTestHost(t *testing.T, secrets host.SecretsStore, caps []string) *host.Host {
	t.Helper()
	builder := host.NewBuilder(host.Deps{Secrets: secrets})
	return builder.Build(Name, "user-1", "", caps, host.NewContext())
}

func TestSchemaDeclaresOpEnum(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"digest", "repo_activity"}, plugin.OpEnum(p.Schema()))
}

func TestExecuteUnknownOp(t *testing.T) {
	h := newTestHost(t, mapSecrets{}, []string{host.CapLog})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{"op": "nope"}, h)
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, "invalid_params", result.Error.Code)
}

func TestDigestRequiresRepos(t *testing.T) {
	h := newTestHost(t, mapSecrets{"github_token": "tok"},
		[]string{host.CapLog, host.CapSecrets, host.CapAuth, host.CapCursor})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{"op": "digest"}, h)
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, "invalid_params", result.Error.Code)
}

func TestTokenFallsBackToSecret(t *testing.T) {
	h := newTestHost(t, mapSecrets{"github_token": "ghp_test"},
		[]string{host.CapSecrets, host.CapAuth})

	p := &Plugin{}
	token, result := p.token(context.Background(), h)
	require.Nil(t, result)
	assert.Equal(t, "ghp_test", token)
}

func TestTokenMissingEverywhere(t *testing.T) {
	h := newTestHost(t, mapSecrets{}, []string{host.CapSecrets, host.CapAuth})

	p := &Plugin{}
	_, result := p.token(context.Background(), h)
	require.NotNil(t, result)
	require.NotNil(t, result.Error)
	assert.Equal(t, "missing_secrets", result.Error.Code)
}

func TestSummarizeEvent(t *testing.T) {
	out := summarizeEvent(map[string]any{
		"id":         "123",
		"type":       "PullRequestEvent",
		"created_at": "2026-08-20T10:00:00Z",
		"actor":      map[string]any{"login": "octocat", "id": float64(1)},
		"payload":    map[string]any{"action": "opened", "number": float64(7)},
	})

	assert.Equal(t, "123", out["id"])
	assert.Equal(t, "PullRequestEvent", out["type"])
	assert.Equal(t, "octocat", out["actor"])
	assert.Equal(t, "opened", out["action"])
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a/b", "c/d"}, stringSlice([]any{"a/b", "", "c/d", 7}))
	assert.Nil(t, stringSlice("a/b"))
	assert.Nil(t, stringSlice(nil))
}
