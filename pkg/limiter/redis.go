package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter coordinates limits across processes through shared counters.
// Fixed windows are implemented as INCR with a window-scoped key and an
// expiry; concurrency slots are a counter with a short TTL refreshed on each
// acquire so a crashed holder self-heals.
type RedisLimiter struct {
	rdb   *redis.Client
	nowFn func() time.Time
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, nowFn: time.Now}
}

func (l *RedisLimiter) AllowUser(ctx context.Context, key string, limit int, period time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := l.nowFn().UTC()
	windowStart := now.Truncate(period)
	resetAt := windowStart.Add(period)
	redisKey := fmt.Sprintf("shu:rate:%s:%d", key, windowStart.Unix())
	return l.fixedWindow(ctx, redisKey, limit, now, resetAt)
}

func (l *RedisLimiter) CheckQuota(ctx context.Context, key string, limit int, window QuotaWindow) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := l.nowFn()
	bucket, resetAt := bucketKey(now, window)
	redisKey := fmt.Sprintf("shu:quota:%s:%s:%s", window, key, bucket)
	return l.fixedWindow(ctx, redisKey, limit, now.UTC(), resetAt)
}

// RefundQuota decrements the current bucket, deleting it if the TTL already
// reaped the counter and the decrement drove it negative.
func (l *RedisLimiter) RefundQuota(ctx context.Context, key string, window QuotaWindow) error {
	bucket, _ := bucketKey(l.nowFn(), window)
	redisKey := fmt.Sprintf("shu:quota:%s:%s:%s", window, key, bucket)
	v, err := l.rdb.Decr(ctx, redisKey).Result()
	if err != nil {
		return fmt.Errorf("limiter: %w", err)
	}
	if v < 0 {
		_ = l.rdb.Del(ctx, redisKey).Err()
	}
	return nil
}

func (l *RedisLimiter) AllowProviderWindow(ctx context.Context, provider string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := l.nowFn().UTC()
	windowStart := now.Truncate(window)
	resetAt := windowStart.Add(window)
	redisKey := fmt.Sprintf("shu:provider:%s:%d", provider, windowStart.Unix())
	return l.fixedWindow(ctx, redisKey, limit, now, resetAt)
}

// fixedWindow increments the window counter and compares against limit. The
// increment that crosses the limit is decremented back so denied requests do
// not consume budget.
func (l *RedisLimiter) fixedWindow(ctx context.Context, key string, limit int, now, resetAt time.Time) (Decision, error) {
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireAt(ctx, key, resetAt.Add(time.Minute))
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("limiter: %w", err)
	}

	count := int(incr.Val())
	if count > limit {
		if err := l.rdb.Decr(ctx, key).Err(); err != nil {
			return Decision{}, fmt.Errorf("limiter: %w", err)
		}
		return Decision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			RetryAfter: resetAt.Sub(now),
			ResetAt:    resetAt,
		}, nil
	}
	return Decision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count,
		ResetAt:   resetAt,
	}, nil
}

func (l *RedisLimiter) AcquireProvider(ctx context.Context, provider string, max int) (ReleaseFunc, bool, error) {
	if max <= 0 {
		return func() {}, true, nil
	}
	key := fmt.Sprintf("shu:concurrency:%s", provider)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, slotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, false, fmt.Errorf("limiter: %w", err)
	}

	if int(incr.Val()) > max {
		// Over the bound: give the slot back immediately.
		_ = l.rdb.Decr(ctx, key).Err()
		return nil, false, nil
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// Never below zero; the TTL may already have reaped the counter.
		if v, err := l.rdb.Decr(ctx, key).Result(); err == nil && v < 0 {
			_ = l.rdb.Del(ctx, key).Err()
		}
	}
	return release, true, nil
}
