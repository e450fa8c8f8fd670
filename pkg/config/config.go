// Package config loads and validates the shu.yaml configuration file.
package config

import (
	"os"
	"time"
)

// Config is the fully resolved application configuration.
type Config struct {
	configDir string

	System    *SystemConfig    `yaml:"system"`
	Plugins   *PluginsConfig   `yaml:"plugins"`
	Policy    *PolicyConfig    `yaml:"policy"`
	Redis     *RedisConfig     `yaml:"redis"`
	Search    *SearchConfig    `yaml:"search"`
	Feeds     *FeedsConfig     `yaml:"feeds"`
	Chat      *ChatConfig      `yaml:"chat"`
	Retention *RetentionConfig `yaml:"retention"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string { return c.configDir }

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// AttachmentRoot is the directory chat attachments must resolve into.
	AttachmentRoot string `yaml:"attachment_root"`

	// EncryptionKeyEnv names the env var holding the key-cipher secret used
	// to encrypt provider API keys and identity tokens at rest.
	EncryptionKeyEnv string `yaml:"encryption_key_env"`
}

// EncryptionKey reads the configured encryption secret from the environment.
func (s *SystemConfig) EncryptionKey() string {
	return os.Getenv(s.EncryptionKeyEnv)
}

// PluginsConfig controls plugin discovery and execution.
type PluginsConfig struct {
	// Root is the plugins directory scanned for manifests.
	Root string `yaml:"root"`

	// ExecTimeout is the per-call wall-clock budget.
	ExecTimeout time.Duration `yaml:"exec_timeout"`

	// OutputMaxBytes caps the serialized size of any plugin result.
	OutputMaxBytes int `yaml:"output_max_bytes"`
}

// PolicyConfig holds the global rate-limit and quota defaults. Per-plugin
// limits from the definition row override these.
type PolicyConfig struct {
	// EnableRateLimiting selects the Redis-backed limiter; false falls back
	// to the in-process limiter.
	EnableRateLimiting bool `yaml:"enable_rate_limiting"`

	RateLimitUserRequests int           `yaml:"rate_limit_user_requests"`
	RateLimitUserPeriod   time.Duration `yaml:"rate_limit_user_period"`
	QuotaDailyRequests    int           `yaml:"quota_daily_requests"`
	QuotaMonthlyRequests  int           `yaml:"quota_monthly_requests"`
}

// RedisConfig holds the Redis connection for the distributed limiter.
type RedisConfig struct {
	Addr        string `yaml:"addr"`
	PasswordEnv string `yaml:"password_env"`
	DB          int    `yaml:"db"`
}

// Password reads the Redis password from the environment.
func (r *RedisConfig) Password() string {
	if r.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(r.PasswordEnv)
}

// SearchConfig holds the knowledge-base search service connection.
type SearchConfig struct {
	// GRPCAddr is the kb-search service endpoint.
	GRPCAddr string `yaml:"grpc_addr"`

	// Timeout bounds each search RPC.
	Timeout time.Duration `yaml:"timeout"`
}

// FeedsConfig contains scheduler and worker pool configuration for
// scheduled plugin executions.
type FeedsConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentExecutions is the global limit of concurrent executions
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// PollInterval is the base interval for checking pending executions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ExecutionTimeout is the maximum time one execution can run.
	ExecutionTimeout time.Duration `yaml:"execution_timeout"`

	// HeartbeatInterval is how often a worker refreshes the heartbeat on
	// its claimed execution.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned executions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an execution can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// ReloadInterval is how often the scheduler reconciles cron entries
	// against the feed table.
	ReloadInterval time.Duration `yaml:"reload_interval"`

	// OneShotParams are feed param keys cleared after a COMPLETED run.
	OneShotParams []string `yaml:"one_shot_params"`
}

// RetentionConfig controls how long terminal execution records are kept.
type RetentionConfig struct {
	// ExecutionRetentionDays is how many days COMPLETED and FAILED
	// execution rows are kept before deletion.
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ChatConfig controls the orchestration loop.
type ChatConfig struct {
	// MaxToolCalls is the per-turn ceiling on tool-call cycles.
	MaxToolCalls int `yaml:"max_tool_calls"`
}
