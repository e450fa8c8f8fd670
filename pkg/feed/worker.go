package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker polls for pending executions, claims them, and drives each one
// through the runner.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *Config
	runner   *Runner
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                  sync.RWMutex
	status              WorkerStatus
	currentExecutionID  string
	executionsProcessed int
	lastActivity        time.Time
}

// NewWorker creates a feed worker.
func NewWorker(id, podID string, client *ent.Client, cfg *Config, runner *Runner) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runner:       runner,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// execution. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              string(w.status),
		CurrentExecutionID:  w.currentExecutionID,
		ExecutionsProcessed: w.executionsProcessed,
		LastActivity:        w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Feed worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Feed worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, feed worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoExecutionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing execution", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an execution, and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.PluginExecution.Query().
		Where(pluginexecution.StatusEQ(pluginexecution.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active executions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentExecutions {
		return ErrAtCapacity
	}

	row, err := w.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("execution_id", row.ID, "plugin", row.PluginName, "worker_id", w.id)
	log.Info("Execution claimed")

	w.setStatus(WorkerStatusWorking, row.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	execCtx, cancelExec := context.WithTimeout(ctx, w.config.ExecutionTimeout)
	defer cancelExec()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(execCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, row.ID)

	outcome, runErr := w.runner.Run(execCtx, row)
	cancelHeartbeat()

	if runErr != nil {
		// Policy denials and infrastructure errors land as FAILED rows; the
		// scheduler produces a fresh execution on the next due tick.
		outcome = failed("", runErr.Error())
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			outcome = failed("timeout", fmt.Sprintf("execution timed out after %v", w.config.ExecutionTimeout))
		}
		if row.ScheduleID != nil {
			outcome.FeedID = *row.ScheduleID
		}
	}

	// Terminal update uses a background context: the execution context may
	// already be cancelled.
	if err := w.applyOutcome(context.Background(), row, outcome); err != nil {
		log.Error("Failed to apply execution outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.executionsProcessed++
	w.mu.Unlock()

	log.Info("Execution processing complete", "status", outcome.Status)
	return nil
}

// claimNext atomically claims the oldest pending execution using
// FOR UPDATE SKIP LOCKED, so at most one worker ever runs a given row.
func (w *Worker) claimNext(ctx context.Context) (*ent.PluginExecution, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.PluginExecution.Query().
		Where(pluginexecution.StatusEQ(pluginexecution.StatusPending)).
		Order(ent.Asc(pluginexecution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoExecutionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending execution: %w", err)
	}

	now := time.Now()
	row, err = row.Update().
		SetStatus(pluginexecution.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return row, nil
}

// applyOutcome writes the terminal state through the runner inside one
// transaction: record, feed last_run_at, and one-shot clears together.
func (w *Worker) applyOutcome(ctx context.Context, row *ent.PluginExecution, outcome *Outcome) error {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := w.runner.Apply(ctx, tx, row, outcome); err != nil {
		return err
	}
	return tx.Commit()
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, executionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.PluginExecution.UpdateOneID(executionID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "execution_id", executionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, executionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentExecutionID = executionID
	w.lastActivity = time.Now()
}
