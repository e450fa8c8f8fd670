package feed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/plugindefinition"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/plugin"
	testdb "github.com/shu-assistant/shu/test/database"
)

// clockPlugin is a minimal feed-runnable plugin with a scriptable op.
type clockPlugin struct {
	execute func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error)
}

func (p *clockPlugin) Name() string    { return "clock" }
func (p *clockPlugin) Version() string { return "1.0.0" }
func (p *clockPlugin) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op": map[string]any{"type": "string", "enum": []any{"now"}},
		},
		"required": []any{"op"},
	}
}
func (p *clockPlugin) OutputSchema() map[string]any { return nil }
func (p *clockPlugin) Execute(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	return p.execute(ctx, params, h)
}

func writeClockManifest(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "clock")
	require.NoError(t, os.Mkdir(dir, 0o755))
	manifest := `name: clock
version: 1.0.0
entry: "clock:Clock"
capabilities: ["log"]
default_feed_op: now
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, plugin.ManifestFileName), []byte(manifest), 0o644))
	return root
}

// newLifecycleRunner wires a real registry, executor, and runner against the
// test database, with the clock plugin loaded and enabled.
func newLifecycleRunner(t *testing.T, client *ent.Client, p *clockPlugin, outputMaxBytes int) *Runner {
	t.Helper()
	ctx := context.Background()

	registry := plugin.NewRegistry(client, writeClockManifest(t))
	registry.RegisterFactory("clock:Clock", func() (plugin.Plugin, error) { return p, nil })
	require.NoError(t, registry.Load())
	require.NoError(t, registry.Sync(ctx))
	_, err := client.PluginDefinition.Update().
		Where(plugindefinition.NameEQ("clock")).
		SetEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	exec := executor.New(registry, limiter.NewLocalLimiter(), host.NewBuilder(host.Deps{}), executor.DefaultConfig())
	return NewRunner(client, registry, exec, nil, nil, nil, outputMaxBytes, []string{"reset_cursor"})
}

func createFeedRow(t *testing.T, client *ent.Client, params map[string]any) *ent.PluginFeed {
	t.Helper()
	feed, err := client.PluginFeed.Create().
		SetID(uuid.New().String()).
		SetUserID("u1").
		SetPluginName("clock").
		SetSchedule("@every 5m").
		SetParams(params).
		Save(context.Background())
	require.NoError(t, err)
	return feed
}

func createExecutionRow(t *testing.T, client *ent.Client, feedID string) *ent.PluginExecution {
	t.Helper()
	row, err := client.PluginExecution.Create().
		SetID(uuid.New().String()).
		SetUserID("u1").
		SetPluginName("clock").
		SetScheduleID(feedID).
		SetParams(map[string]any{"op": "now"}).
		SetStatus(pluginexecution.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func applyOutcome(t *testing.T, client *ent.Client, r *Runner, row *ent.PluginExecution, out *Outcome) {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, r.Apply(ctx, tx, row, out))
	require.NoError(t, tx.Commit())
}

func TestRunnerLifecycleCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := &clockPlugin{execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
		return plugin.OK(map[string]any{"epoch": 1700000000}), nil
	}}
	r := newLifecycleRunner(t, client.Client, p, 256<<10)

	feed := createFeedRow(t, client.Client, map[string]any{"op": "now", "reset_cursor": true})
	row := createExecutionRow(t, client.Client, feed.ID)

	out, err := r.Run(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, pluginexecution.StatusCompleted, out.Status)
	assert.Equal(t, feed.ID, out.FeedID)
	assert.Equal(t, "success", out.Result["status"])
	assert.False(t, out.DisableFeed)

	applyOutcome(t, client.Client, r, row, out)

	updated, err := client.PluginExecution.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, pluginexecution.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "success", updated.Result["status"])
	assert.Nil(t, updated.Error)

	// One-shot params are cleared and the feed cursor advances.
	reloaded, err := client.PluginFeed.Get(ctx, feed.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastRunAt)
	assert.NotContains(t, reloaded.Params, "reset_cursor")
	assert.Equal(t, "now", reloaded.Params["op"])
}

func TestRunnerLifecycleOutputTooLarge(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := &clockPlugin{execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
		return plugin.OK(map[string]any{"blob": strings.Repeat("x", 4096)}), nil
	}}
	r := newLifecycleRunner(t, client.Client, p, 512)

	feed := createFeedRow(t, client.Client, map[string]any{"op": "now"})
	row := createExecutionRow(t, client.Client, feed.ID)

	out, err := r.Run(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, pluginexecution.StatusFailed, out.Status)
	assert.Equal(t, plugin.CodeOutputTooLarge, out.ErrorCode)

	applyOutcome(t, client.Client, r, row, out)

	updated, err := client.PluginExecution.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, pluginexecution.StatusFailed, updated.Status)
	require.NotNil(t, updated.Error)
	assert.Contains(t, *updated.Error, plugin.CodeOutputTooLarge)

	// Failed runs never advance the feed.
	reloaded, err := client.PluginFeed.Get(ctx, feed.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LastRunAt)
}

func TestRunnerLifecycleDisabledFeed(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := &clockPlugin{execute: func(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
		t.Fatal("plugin must not run for a disabled feed")
		return nil, nil
	}}
	r := newLifecycleRunner(t, client.Client, p, 256<<10)

	feed := createFeedRow(t, client.Client, map[string]any{"op": "now"})
	_, err := client.PluginFeed.UpdateOneID(feed.ID).SetEnabled(false).Save(ctx)
	require.NoError(t, err)
	row := createExecutionRow(t, client.Client, feed.ID)

	out, err := r.Run(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, pluginexecution.StatusFailed, out.Status)
	assert.Equal(t, CodeScheduleDisabled, out.ErrorCode)
}
