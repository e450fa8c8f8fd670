package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	dir := writeConfig(t, `
policy:
  enable_rate_limiting: true
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.Equal(t, "./pkg/plugins", cfg.Plugins.Root)
	assert.Equal(t, 256<<10, cfg.Plugins.OutputMaxBytes)
	assert.Equal(t, 2*time.Minute, cfg.Plugins.ExecTimeout)
	assert.Equal(t, 30, cfg.Policy.RateLimitUserRequests)
	assert.Equal(t, time.Minute, cfg.Policy.RateLimitUserPeriod)
	assert.Equal(t, 500, cfg.Policy.QuotaDailyRequests)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 4, cfg.Feeds.WorkerCount)
	assert.Equal(t, []string{"reset_cursor"}, cfg.Feeds.OneShotParams)
	assert.Equal(t, 10, cfg.Chat.MaxToolCalls)
	assert.Equal(t, 90, cfg.Retention.ExecutionRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitializeOverrides(t *testing.T) {
	dir := writeConfig(t, `
system:
  listen_addr: ":9999"
  attachment_root: /srv/attachments
plugins:
  root: /opt/shu/plugins
  exec_timeout: 90s
  output_max_bytes: 131072
policy:
  enable_rate_limiting: false
  rate_limit_user_requests: 10
feeds:
  worker_count: 8
  one_shot_params: ["reset_cursor", "full_rescan"]
chat:
  max_tool_calls: 5
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.System.ListenAddr)
	assert.Equal(t, "/srv/attachments", cfg.System.AttachmentRoot)
	assert.Equal(t, "/opt/shu/plugins", cfg.Plugins.Root)
	assert.Equal(t, 90*time.Second, cfg.Plugins.ExecTimeout)
	assert.Equal(t, 131072, cfg.Plugins.OutputMaxBytes)
	assert.False(t, cfg.Policy.EnableRateLimiting)
	assert.Equal(t, 10, cfg.Policy.RateLimitUserRequests)
	// Unset policy keys keep their defaults.
	assert.Equal(t, 5000, cfg.Policy.QuotaMonthlyRequests)
	assert.Equal(t, 8, cfg.Feeds.WorkerCount)
	assert.Equal(t, []string{"reset_cursor", "full_rescan"}, cfg.Feeds.OneShotParams)
	assert.Equal(t, 5, cfg.Chat.MaxToolCalls)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("SHU_TEST_PLUGINS_ROOT", "/env/plugins")
	dir := writeConfig(t, `
plugins:
  root: "{{.SHU_TEST_PLUGINS_ROOT}}"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "/env/plugins", cfg.Plugins.Root)
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "plugins: [broken")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidateRejectsBrokenValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "zero output cap",
			yaml:    "plugins:\n  output_max_bytes: -1\n",
			wantErr: "output_max_bytes",
		},
		{
			name:    "jitter exceeds poll interval",
			yaml:    "feeds:\n  poll_interval: 1s\n  poll_interval_jitter: 2s\n",
			wantErr: "poll_interval_jitter",
		},
		{
			name:    "orphan threshold below heartbeat",
			yaml:    "feeds:\n  heartbeat_interval: 1m\n  orphan_threshold: 30s\n",
			wantErr: "orphan_threshold",
		},
		{
			name:    "zero tool-call ceiling",
			yaml:    "chat:\n  max_tool_calls: -3\n",
			wantErr: "max_tool_calls",
		},
		{
			name:    "negative retention",
			yaml:    "retention:\n  execution_retention_days: -1\n",
			wantErr: "execution_retention_days",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
