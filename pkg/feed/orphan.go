package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned executions. Every pod
// runs this independently; the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds RUNNING executions with stale heartbeats and
// marks them FAILED. The scheduler produces a fresh execution at the next
// due tick, so recovery is a retry, not a resume.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.PluginExecution.Query().
		Where(
			pluginexecution.StatusEQ(pluginexecution.StatusRunning),
			pluginexecution.LastHeartbeatAtNotNil(),
			pluginexecution.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned executions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned executions", "count", len(orphans))

	recovered := 0
	for _, row := range orphans {
		if err := p.recoverOrphanedExecution(ctx, row); err != nil {
			slog.Error("Failed to recover orphaned execution", "execution_id", row.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedExecution marks a single orphaned execution FAILED.
func (p *WorkerPool) recoverOrphanedExecution(ctx context.Context, row *ent.PluginExecution) error {
	lastHeartbeat := "unknown"
	if row.LastHeartbeatAt != nil {
		lastHeartbeat = row.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if row.PodID != nil {
		podID = *row.PodID
	}

	err := row.Update().
		SetStatus(pluginexecution.StatusFailed).
		SetCompletedAt(time.Now()).
		SetError(fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark execution as failed: %w", err)
	}

	slog.Warn("Orphaned execution marked as failed",
		"execution_id", row.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of executions owned by
// this pod that were running when the pod previously crashed. Called once
// during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.PluginExecution.Query().
		Where(
			pluginexecution.StatusEQ(pluginexecution.StatusRunning),
			pluginexecution.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))

	now := time.Now()
	for _, row := range orphans {
		err := row.Update().
			SetStatus(pluginexecution.StatusFailed).
			SetCompletedAt(now).
			SetError(fmt.Sprintf("orphaned: pod %s restarted while execution was in progress", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan", "execution_id", row.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "execution_id", row.ID)
	}

	return nil
}
