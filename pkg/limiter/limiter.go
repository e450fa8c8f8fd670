// Package limiter provides the rate, quota, and concurrency counters the
// executor consults before running a plugin. A Redis-backed implementation
// coordinates limits across processes; a process-local implementation serves
// single-node deployments and tests.
package limiter

import (
	"context"
	"time"
)

// Decision is the outcome of a limit check.
type Decision struct {
	Allowed bool
	// Limit is the configured ceiling the check was made against.
	Limit int
	// Remaining is how many requests are left in the current window.
	Remaining int
	// RetryAfter is how long the caller should wait before retrying.
	// Zero when Allowed.
	RetryAfter time.Duration
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// ReleaseFunc returns a concurrency slot. Safe to call more than once.
type ReleaseFunc func()

// Limiter is the policy counter surface.
type Limiter interface {
	// AllowUser enforces a per-user request rate: limit requests per period.
	// The key identifies the (user, plugin) pair.
	AllowUser(ctx context.Context, key string, limit int, period time.Duration) (Decision, error)

	// CheckQuota enforces a calendar-window quota (daily or monthly). The
	// bucket rolls over at UTC boundaries.
	CheckQuota(ctx context.Context, key string, limit int, window QuotaWindow) (Decision, error)

	// RefundQuota returns one request to the current quota bucket. Used when
	// a later policy check denies a request that CheckQuota already counted.
	RefundQuota(ctx context.Context, key string, window QuotaWindow) error

	// AllowProviderWindow enforces a shared fixed-window limit across all
	// users of an upstream provider.
	AllowProviderWindow(ctx context.Context, provider string, limit int, window time.Duration) (Decision, error)

	// AcquireProvider takes one concurrency slot for provider, bounded by
	// max. The returned release must be called when the execution finishes;
	// slots also expire on their own so a crashed worker cannot wedge the
	// provider permanently.
	AcquireProvider(ctx context.Context, provider string, max int) (ReleaseFunc, bool, error)
}

// QuotaWindow selects the calendar bucket for CheckQuota.
type QuotaWindow string

const (
	QuotaDaily   QuotaWindow = "daily"
	QuotaMonthly QuotaWindow = "monthly"
)

// slotTTL bounds how long an unreleased concurrency slot survives.
const slotTTL = 30 * time.Second

// bucketKey returns the calendar bucket suffix and its expiry moment.
func bucketKey(now time.Time, window QuotaWindow) (string, time.Time) {
	now = now.UTC()
	if window == QuotaMonthly {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return now.Format("200601"), start.AddDate(0, 1, 0)
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return now.Format("20060102"), start.AddDate(0, 0, 1)
}

// Noop is a Limiter that allows everything. Used when rate limiting is
// disabled by configuration.
type Noop struct{}

func (Noop) AllowUser(ctx context.Context, key string, limit int, period time.Duration) (Decision, error) {
	return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
}

func (Noop) CheckQuota(ctx context.Context, key string, limit int, window QuotaWindow) (Decision, error) {
	return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
}

func (Noop) RefundQuota(ctx context.Context, key string, window QuotaWindow) error {
	return nil
}

func (Noop) AllowProviderWindow(ctx context.Context, provider string, limit int, window time.Duration) (Decision, error) {
	return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
}

func (Noop) AcquireProvider(ctx context.Context, provider string, max int) (ReleaseFunc, bool, error) {
	return func() {}, true, nil
}
