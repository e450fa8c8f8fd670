package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the configuration file looked up in the config directory.
const ConfigFileName = "shu.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load shu.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-defined values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen_addr", cfg.System.ListenAddr,
		"plugins_root", cfg.Plugins.Root,
		"rate_limiting", cfg.Policy.EnableRateLimiting,
		"feed_workers", cfg.Feeds.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	var fileCfg Config
	if err := loadYAML(configDir, ConfigFileName, &fileCfg); err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	// Start with defaults, then merge user config on top so unset keys keep
	// their built-in values.
	cfg := &Config{
		configDir: configDir,
		System:    DefaultSystemConfig(),
		Plugins:   DefaultPluginsConfig(),
		Policy:    DefaultPolicyConfig(),
		Redis:     DefaultRedisConfig(),
		Search:    DefaultSearchConfig(),
		Feeds:     DefaultFeedsConfig(),
		Chat:      DefaultChatConfig(),
		Retention: DefaultRetentionConfig(),
	}

	sections := []struct {
		dst any
		src any
	}{
		{cfg.System, fileCfg.System},
		{cfg.Plugins, fileCfg.Plugins},
		{cfg.Policy, fileCfg.Policy},
		{cfg.Redis, fileCfg.Redis},
		{cfg.Search, fileCfg.Search},
		{cfg.Feeds, fileCfg.Feeds},
		{cfg.Chat, fileCfg.Chat},
		{cfg.Retention, fileCfg.Retention},
	}
	for _, s := range sections {
		if isNil(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration section: %w", err)
		}
	}

	// Booleans are indistinguishable from their zero value under mergo, so
	// enable_rate_limiting is taken from the file verbatim when the policy
	// section is present.
	if fileCfg.Policy != nil {
		cfg.Policy.EnableRateLimiting = fileCfg.Policy.EnableRateLimiting
	}

	return cfg, nil
}

func isNil(v any) bool {
	switch t := v.(type) {
	case *SystemConfig:
		return t == nil
	case *PluginsConfig:
		return t == nil
	case *PolicyConfig:
		return t == nil
	case *RedisConfig:
		return t == nil
	case *SearchConfig:
		return t == nil
	case *FeedsConfig:
		return t == nil
	case *ChatConfig:
		return t == nil
	case *RetentionConfig:
		return t == nil
	}
	return v == nil
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, allowing the YAML parser to handle the content.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}
