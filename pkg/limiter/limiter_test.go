package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisLimiter(rdb), mr
}

func TestRedisLimiterUserRate(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	now := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)
	l.nowFn = func() time.Time { return now }
	mr.SetTime(now)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		d, err := l.AllowUser(ctx, "u1:github", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3-i-1, d.Remaining)
	}

	d, err := l.AllowUser(ctx, "u1:github", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	// Denied requests do not consume budget: the window resets cleanly.
	now = now.Add(time.Minute)
	mr.SetTime(now)
	d, err = l.AllowUser(ctx, "u1:github", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisLimiterQuotaDailyRollover(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }
	mr.SetTime(now)

	ctx := context.Background()
	d, err := l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Minute, d.RetryAfter)

	// Next UTC day, fresh bucket.
	now = now.Add(2 * time.Minute)
	mr.SetTime(now)
	d, err = l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisLimiterQuotaMonthlyIndependentOfDaily(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }
	mr.SetTime(now)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		d, err := l.CheckQuota(ctx, "u1:github", 2, QuotaMonthly)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	d, err := l.CheckQuota(ctx, "u1:github", 2, QuotaMonthly)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), d.ResetAt)

	// Daily counter for the same key is untouched.
	d, err = l.CheckQuota(ctx, "u1:github", 2, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisLimiterProviderWindow(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }
	mr.SetTime(now)

	ctx := context.Background()
	// Shared across users: same provider key regardless of caller.
	d, err := l.AllowProviderWindow(ctx, "github-api", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.AllowProviderWindow(ctx, "github-api", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.AllowProviderWindow(ctx, "github-api", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestRedisLimiterQuotaRefund(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }
	mr.SetTime(now)

	ctx := context.Background()
	d, err := l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	// The refund re-opens the bucket within the same window.
	require.NoError(t, l.RefundQuota(ctx, "u1:github", QuotaDaily))
	d, err = l.CheckQuota(ctx, "u1:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Refunding an empty bucket never goes negative.
	require.NoError(t, l.RefundQuota(ctx, "u2:github", QuotaDaily))
	require.NoError(t, l.RefundQuota(ctx, "u2:github", QuotaDaily))
	d, err = l.CheckQuota(ctx, "u2:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.CheckQuota(ctx, "u2:github", 1, QuotaDaily)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestRedisLimiterConcurrency(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	ctx := context.Background()

	rel1, ok, err := l.AcquireProvider(ctx, "github-api", 2)
	require.NoError(t, err)
	require.True(t, ok)
	rel2, ok, err := l.AcquireProvider(ctx, "github-api", 2)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.AcquireProvider(ctx, "github-api", 2)
	require.NoError(t, err)
	assert.False(t, ok, "third slot must be denied")

	rel1()
	rel1() // double release is a no-op
	_, ok, err = l.AcquireProvider(ctx, "github-api", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	rel2()

	// A crashed holder self-heals through the TTL.
	_, ok, err = l.AcquireProvider(ctx, "other-api", 1)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = l.AcquireProvider(ctx, "other-api", 1)
	require.NoError(t, err)
	require.False(t, ok)
	mr.FastForward(slotTTL + time.Second)
	_, ok, err = l.AcquireProvider(ctx, "other-api", 1)
	require.NoError(t, err)
	assert.True(t, ok, "slot must be reclaimable after TTL expiry")
}

func TestRedisLimiterZeroLimitDisables(t *testing.T) {
	l, _ := newTestRedisLimiter(t)
	ctx := context.Background()

	d, err := l.AllowUser(ctx, "u1", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = l.CheckQuota(ctx, "u1", 0, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	rel, ok, err := l.AcquireProvider(ctx, "p", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	rel()
}

func TestLocalLimiterUserRate(t *testing.T) {
	l := NewLocalLimiter()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		d, err := l.AllowUser(ctx, "u1:github", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	d, err := l.AllowUser(ctx, "u1:github", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))

	// Tokens refill over time.
	now = now.Add(time.Minute)
	d, err = l.AllowUser(ctx, "u1:github", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLocalLimiterQuotaAndWindow(t *testing.T) {
	l := NewLocalLimiter()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }

	ctx := context.Background()
	d, err := l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	now = now.Add(24 * time.Hour)
	d, err = l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = l.AllowProviderWindow(ctx, "p", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.AllowProviderWindow(ctx, "p", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestLocalLimiterQuotaRefund(t *testing.T) {
	l := NewLocalLimiter()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }

	ctx := context.Background()
	d, err := l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	require.NoError(t, l.RefundQuota(ctx, "u1", QuotaDaily))
	d, err = l.CheckQuota(ctx, "u1", 1, QuotaDaily)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLocalLimiterConcurrencyTTL(t *testing.T) {
	l := NewLocalLimiter()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.nowFn = func() time.Time { return now }

	ctx := context.Background()
	_, ok, err := l.AcquireProvider(ctx, "p", 1)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = l.AcquireProvider(ctx, "p", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Unreleased slot expires.
	now = now.Add(slotTTL + time.Second)
	_, ok, err = l.AcquireProvider(ctx, "p", 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNoopAllowsEverything(t *testing.T) {
	var l Noop
	ctx := context.Background()

	d, err := l.AllowUser(ctx, "u1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	rel, ok, err := l.AcquireProvider(ctx, "p", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	rel()
}
