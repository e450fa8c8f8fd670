// Package feed drives scheduled plugin executions: a cron-backed scheduler
// turns enabled feeds into PENDING execution rows, and a worker pool claims
// and runs them through the executor pipeline.
package feed

import (
	"errors"
	"time"
)

// Sentinel errors for worker polling.
var (
	// ErrNoExecutionsAvailable indicates no pending executions are queued.
	ErrNoExecutionsAvailable = errors.New("no executions available")

	// ErrAtCapacity indicates the global concurrent execution limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Preflight and runner error codes recorded on failed execution rows.
const (
	CodeScheduleDisabled     = "schedule_disabled"
	CodePluginNotFound       = "plugin_not_found"
	CodeIdentityRequired     = "identity_required"
	CodeMissingSecrets       = "missing_secrets"
	CodeSubscriptionRequired = "subscription_required"
)

// Config holds scheduler and worker pool settings.
type Config struct {
	WorkerCount             int
	MaxConcurrentExecutions int
	PollInterval            time.Duration
	PollIntervalJitter      time.Duration
	ExecutionTimeout        time.Duration
	HeartbeatInterval       time.Duration
	OrphanDetectionInterval time.Duration
	OrphanThreshold         time.Duration
	ReloadInterval          time.Duration

	// OneShotParams are feed param keys cleared after the first COMPLETED
	// run. Closed set, configurable rather than hard-coded.
	OneShotParams []string
}

// DefaultConfig returns the built-in feed runtime defaults.
func DefaultConfig() Config {
	return Config{
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

// PoolHealth contains health information for the worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveExecutions int            `json:"active_executions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                  string    `json:"id"`
	Status              string    `json:"status"` // "idle" or "working"
	CurrentExecutionID  string    `json:"current_execution_id,omitempty"`
	ExecutionsProcessed int       `json:"executions_processed"`
	LastActivity        time.Time `json:"last_activity"`
}
