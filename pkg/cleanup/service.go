// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/pkg/config"
)

// Service periodically enforces retention on execution history: COMPLETED
// and FAILED rows older than the retention window are deleted. Deletion is
// idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldExecutions(ctx)
}

func (s *Service) deleteOldExecutions(_ context.Context) {
	count, err := s.DeleteOldExecutions(context.Background(), s.config.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: execution cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old executions", "count", count)
	}
}

// DeleteOldExecutions removes terminal execution rows whose created_at is
// older than retentionDays. Returns the number of rows deleted.
func (s *Service) DeleteOldExecutions(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.client.PluginExecution.Delete().
		Where(
			pluginexecution.StatusIn(
				pluginexecution.StatusCompleted,
				pluginexecution.StatusFailed,
			),
			pluginexecution.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}
