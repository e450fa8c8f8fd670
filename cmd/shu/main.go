// Shu assistant core server — plugin execution, scheduled feeds, and
// orchestrated chat turns behind one HTTP surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/shu-assistant/shu/pkg/api"
	"github.com/shu-assistant/shu/pkg/cleanup"
	"github.com/shu-assistant/shu/pkg/config"
	"github.com/shu-assistant/shu/pkg/database"
	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/feed"
	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/orchestrator"
	"github.com/shu-assistant/shu/pkg/plugin"
	"github.com/shu-assistant/shu/pkg/plugins/githubdigest"
	"github.com/shu-assistant/shu/pkg/plugins/kbsearch"
	"github.com/shu-assistant/shu/pkg/provider"
	"github.com/shu-assistant/shu/pkg/search"
	"github.com/shu-assistant/shu/pkg/services"
	"github.com/shu-assistant/shu/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for this pod's executions.
	if err := feed.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Redis-backed infrastructure. When rate limiting is disabled no
	// limiter is enforced; cursors fall back to process memory without Redis.
	var (
		lim     limiter.Limiter = limiter.Noop{}
		cursors host.CursorStore
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password(),
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		cursors = services.NewRedisCursorStore(rdb)
		if cfg.Policy.EnableRateLimiting {
			lim = limiter.NewRedisLimiter(rdb)
		}
		slog.Info("Redis connected", "addr", cfg.Redis.Addr)
	} else {
		cursors = services.NewMemoryCursorStore()
		if cfg.Policy.EnableRateLimiting {
			lim = limiter.NewLocalLimiter()
			slog.Warn("Rate limiting is process-local: no Redis configured")
		}
	}

	// 5. Key cipher for credentials and provider API keys.
	var cipher *provider.KeyCipher
	if key := cfg.System.EncryptionKey(); key != "" {
		cipher, err = provider.NewKeyCipher(key)
		if err != nil {
			slog.Error("Failed to initialize key cipher", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("No encryption key configured; stored credentials are not encrypted")
	}

	// 6. External collaborators and domain services.
	secretsStore, err := services.NewFileSecretsStore(*configDir)
	if err != nil {
		slog.Error("Failed to load secrets", "error", err)
		os.Exit(1)
	}
	identities := services.NewIdentityService(dbClient.Client, cipher)
	conversations := services.NewConversationService(dbClient.Client)

	// grpc.NewClient dials lazily; the first search RPC connects.
	searchClient, err := search.NewClient(cfg.Search.GRPCAddr, cfg.Search.Timeout)
	if err != nil {
		slog.Error("Failed to initialize KB search client", "addr", cfg.Search.GRPCAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = searchClient.Close() }()
	slog.Info("KB search client initialized", "addr", cfg.Search.GRPCAddr)

	// 7. Host capability builder.
	builder := host.NewBuilder(host.Deps{
		Secrets:  secretsStore,
		Tokens:   identities,
		Cursors:  cursors,
		Searcher: searchClient,
		Access:   searchClient,
		HTTP:     host.DefaultHTTPConfig(),
	})

	// 8. Plugin registry: register compiled-in factories, discover manifests,
	// reconcile definition rows.
	registry := plugin.NewRegistry(dbClient.Client, cfg.Plugins.Root)
	registry.RegisterFactory("kbsearch:Plugin", kbsearch.New)
	registry.RegisterFactory("githubdigest:Plugin", githubdigest.New)
	if err := registry.Load(); err != nil {
		slog.Error("Failed to load plugins", "root", cfg.Plugins.Root, "error", err)
		os.Exit(1)
	}
	if err := registry.Sync(ctx); err != nil {
		slog.Error("Failed to sync plugin definitions", "error", err)
		os.Exit(1)
	}

	// 9. Executor: the policy chokepoint for every plugin call.
	exec := executor.New(registry, lim, builder, executor.Config{
		OutputMaxBytes:        cfg.Plugins.OutputMaxBytes,
		ExecTimeout:           cfg.Plugins.ExecTimeout,
		RateLimitUserRequests: cfg.Policy.RateLimitUserRequests,
		RateLimitUserPeriod:   cfg.Policy.RateLimitUserPeriod,
		QuotaDailyDefault:     cfg.Policy.QuotaDailyRequests,
		QuotaMonthlyDefault:   cfg.Policy.QuotaMonthlyRequests,
	})

	// 10. Provider adapters and the chat orchestrator.
	providers := provider.NewRegistry(cipher)
	providers.RegisterDefaults()
	orch := orchestrator.New(providers)

	// 11. Feed runtime: runner, worker pool, scheduler.
	feedCfg := feedConfig(cfg.Feeds)
	runner := feed.NewRunner(dbClient.Client, registry, exec, identities, secretsStore,
		nil, cfg.Plugins.OutputMaxBytes, cfg.Feeds.OneShotParams)
	pool := feed.NewWorkerPool(podID, dbClient.Client, &feedCfg, runner)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start feed worker pool", "error", err)
		os.Exit(1)
	}
	scheduler := feed.NewScheduler(dbClient.Client, cfg.Feeds.ReloadInterval)
	if err := scheduler.Start(ctx); err != nil {
		slog.Error("Failed to start feed scheduler", "error", err)
		os.Exit(1)
	}

	// 12. Execution history retention.
	retention := cleanup.NewService(cfg.Retention, dbClient.Client)
	retention.Start(ctx)

	// 13. HTTP server.
	server := api.NewServer(api.Options{
		DB:             dbClient,
		Registry:       registry,
		Executor:       exec,
		Orchestrator:   orch,
		Pool:           pool,
		Conversations:  conversations,
		Identities:     identities,
		AttachmentRoot: cfg.System.AttachmentRoot,
		MaxToolCalls:   cfg.Chat.MaxToolCalls,
	})
	httpServer := &http.Server{
		Addr:    cfg.System.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.System.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Shu started successfully",
		"version", version.Full(),
		"pod_id", podID,
		"feed_workers", cfg.Feeds.WorkerCount,
		"plugins_root", cfg.Plugins.Root)

	// 14. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 15. Graceful shutdown: scheduler first so no new executions enqueue,
	// then the workers, then the HTTP server.
	scheduler.Stop()
	slog.Info("Feed scheduler stopped")
	retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Feed worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete executions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// feedConfig converts the loaded feeds section into the runtime config.
func feedConfig(c *config.FeedsConfig) feed.Config {
	return feed.Config{
		WorkerCount:             c.WorkerCount,
		MaxConcurrentExecutions: c.MaxConcurrentExecutions,
		PollInterval:            c.PollInterval,
		PollIntervalJitter:      c.PollIntervalJitter,
		ExecutionTimeout:        c.ExecutionTimeout,
		HeartbeatInterval:       c.HeartbeatInterval,
		OrphanDetectionInterval: c.OrphanDetectionInterval,
		OrphanThreshold:         c.OrphanThreshold,
		ReloadInterval:          c.ReloadInterval,
		OneShotParams:           c.OneShotParams,
	}
}
