package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/provider"
)

func TestScopesCover(t *testing.T) {
	assert.True(t, scopesCover([]string{"a", "b", "c"}, []string{"a", "c"}))
	assert.True(t, scopesCover([]string{"a"}, nil))
	assert.False(t, scopesCover([]string{"a"}, []string{"a", "b"}))
	assert.False(t, scopesCover(nil, []string{"a"}))
}

func TestUsageMap(t *testing.T) {
	m := usageMap(&provider.Usage{InputTokens: 12, OutputTokens: 30, TotalTokens: 42})
	require.NotNil(t, m)
	assert.Equal(t, float64(12), m["input_tokens"])
	assert.Equal(t, float64(42), m["total_tokens"])
}

func writeSecretsFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SecretsFileName), []byte(content), 0o600))
	return dir
}

func TestFileSecretsStoreLookup(t *testing.T) {
	t.Setenv("SHU_TEST_GH_TOKEN", "env-token")
	dir := writeSecretsFile(t, `
plugins:
  github_digest:
    github_token: "{{.SHU_TEST_GH_TOKEN}}"
users:
  user-1:
    github_digest:
      github_token: personal-token
`)
	store, err := NewFileSecretsStore(dir)
	require.NoError(t, err)

	ctx := context.Background()

	val, ok, err := store.Lookup(ctx, "github_digest", "", "github_token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "env-token", val)

	val, ok, err = store.Lookup(ctx, "github_digest", "user-1", "github_token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "personal-token", val)

	// A user without an override has no user-scoped value; the host
	// capability falls back to the plugin-global lookup itself.
	_, ok, err = store.Lookup(ctx, "github_digest", "user-2", "github_token")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Lookup(ctx, "github_digest", "", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSecretsStoreMissingFile(t *testing.T) {
	store, err := NewFileSecretsStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Lookup(context.Background(), "any", "", "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCursorStore(t *testing.T) {
	store := NewMemoryCursorStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "github_digest", "user-1", "events:o/r", "evt-99"))

	val, ok, err := store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "evt-99", val)

	// Scope isolation across users.
	_, ok, err = store.Get(ctx, "github_digest", "user-2", "events:o/r")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "github_digest", "user-1", "events:o/r"))
	_, ok, err = store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCursorStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := NewRedisCursorStore(rdb)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "github_digest", "user-1", "events:o/r", "evt-42"))

	val, ok, err := store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "evt-42", val)

	require.NoError(t, store.Delete(ctx, "github_digest", "user-1", "events:o/r"))
	_, ok, err = store.Get(ctx, "github_digest", "user-1", "events:o/r")
	require.NoError(t, err)
	assert.False(t, ok)
}
