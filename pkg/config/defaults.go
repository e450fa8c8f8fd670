package config

import "time"

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		ListenAddr:       ":8080",
		AttachmentRoot:   "./attachments",
		EncryptionKeyEnv: "SHU_ENCRYPTION_KEY",
	}
}

// DefaultPluginsConfig returns the built-in plugin defaults.
func DefaultPluginsConfig() *PluginsConfig {
	return &PluginsConfig{
		Root:           "./pkg/plugins",
		ExecTimeout:    2 * time.Minute,
		OutputMaxBytes: 256 << 10, // 256 KiB
	}
}

// DefaultPolicyConfig returns the built-in policy defaults.
func DefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		EnableRateLimiting:    true,
		RateLimitUserRequests: 30,
		RateLimitUserPeriod:   time.Minute,
		QuotaDailyRequests:    500,
		QuotaMonthlyRequests:  5000,
	}
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:        "localhost:6379",
		PasswordEnv: "REDIS_PASSWORD",
	}
}

// DefaultSearchConfig returns the built-in KB search defaults.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		GRPCAddr: "localhost:9090",
		Timeout:  10 * time.Second,
	}
}

// DefaultFeedsConfig returns the built-in feed runtime defaults.
func DefaultFeedsConfig() *FeedsConfig {
	return &FeedsConfig{
		WorkerCount:             4,
		MaxConcurrentExecutions: 16,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ExecutionTimeout:        5 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         3 * time.Minute,
		ReloadInterval:          time.Minute,
		OneShotParams:           []string{"reset_cursor"},
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ExecutionRetentionDays: 90,
		CleanupInterval:        6 * time.Hour,
	}
}

// DefaultChatConfig returns the built-in chat defaults.
func DefaultChatConfig() *ChatConfig {
	return &ChatConfig{
		MaxToolCalls: 10,
	}
}
