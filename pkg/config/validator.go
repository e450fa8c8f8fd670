package config

import "fmt"

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.System.ListenAddr == "" {
		return NewValidationError("system", "system", "listen_addr", ErrMissingRequiredField)
	}
	if cfg.Plugins.Root == "" {
		return NewValidationError("plugins", "plugins", "root", ErrMissingRequiredField)
	}
	if cfg.Plugins.OutputMaxBytes <= 0 {
		return NewValidationError("plugins", "plugins", "output_max_bytes",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Plugins.ExecTimeout <= 0 {
		return NewValidationError("plugins", "plugins", "exec_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Policy.RateLimitUserPeriod <= 0 {
		return NewValidationError("policy", "policy", "rate_limit_user_period",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Policy.EnableRateLimiting && cfg.Redis.Addr == "" {
		return NewValidationError("redis", "redis", "addr",
			fmt.Errorf("%w: required when rate limiting is enabled", ErrMissingRequiredField))
	}
	if cfg.Feeds.WorkerCount <= 0 {
		return NewValidationError("feeds", "feeds", "worker_count",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Feeds.PollInterval <= cfg.Feeds.PollIntervalJitter {
		return NewValidationError("feeds", "feeds", "poll_interval_jitter",
			fmt.Errorf("%w: jitter must be smaller than the poll interval", ErrInvalidValue))
	}
	if cfg.Feeds.OrphanThreshold <= cfg.Feeds.HeartbeatInterval {
		return NewValidationError("feeds", "feeds", "orphan_threshold",
			fmt.Errorf("%w: must exceed the heartbeat interval", ErrInvalidValue))
	}
	if cfg.Retention.ExecutionRetentionDays <= 0 {
		return NewValidationError("retention", "retention", "execution_retention_days",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Chat.MaxToolCalls <= 0 {
		return NewValidationError("chat", "chat", "max_tool_calls",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
