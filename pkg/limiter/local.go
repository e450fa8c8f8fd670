package limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalLimiter keeps every counter in process memory. Suitable for
// single-node deployments; multi-node installs use RedisLimiter.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	windows map[string]*localWindow
	slots   map[string]*localSlots
	nowFn   func() time.Time
}

type localWindow struct {
	count   int
	resetAt time.Time
}

type localSlots struct {
	held      int
	expiresAt time.Time
}

// NewLocalLimiter creates a process-local limiter.
func NewLocalLimiter() *LocalLimiter {
	return &LocalLimiter{
		buckets: make(map[string]*rate.Limiter),
		windows: make(map[string]*localWindow),
		slots:   make(map[string]*localSlots),
		nowFn:   time.Now,
	}
}

// AllowUser uses a token bucket: limit tokens refilled over period, burst of
// limit. Smoother than a fixed window for interactive traffic.
func (l *LocalLimiter) AllowUser(ctx context.Context, key string, limit int, period time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(float64(limit)/period.Seconds()), limit)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	now := l.nowFn()
	res := bucket.ReserveN(now, 1)
	if !res.OK() {
		return Decision{Allowed: false, Limit: limit, RetryAfter: period}, nil
	}
	delay := res.DelayFrom(now)
	if delay > 0 {
		res.CancelAt(now)
		return Decision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			RetryAfter: delay,
			ResetAt:    now.Add(delay),
		}, nil
	}
	return Decision{
		Allowed:   true,
		Limit:     limit,
		Remaining: int(bucket.TokensAt(now)),
	}, nil
}

func (l *LocalLimiter) CheckQuota(ctx context.Context, key string, limit int, window QuotaWindow) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := l.nowFn()
	bucket, resetAt := bucketKey(now, window)
	return l.fixedWindow("quota:"+string(window)+":"+key+":"+bucket, limit, now, resetAt)
}

func (l *LocalLimiter) RefundQuota(ctx context.Context, key string, window QuotaWindow) error {
	bucket, _ := bucketKey(l.nowFn(), window)
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows["quota:"+string(window)+":"+key+":"+bucket]; ok && w.count > 0 {
		w.count--
	}
	return nil
}

func (l *LocalLimiter) AllowProviderWindow(ctx context.Context, provider string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := l.nowFn().UTC()
	windowStart := now.Truncate(window)
	return l.fixedWindow("provider:"+provider, limit, now, windowStart.Add(window))
}

func (l *LocalLimiter) fixedWindow(key string, limit int, now, resetAt time.Time) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) || !w.resetAt.Equal(resetAt) {
		w = &localWindow{resetAt: resetAt}
		l.windows[key] = w
	}
	if w.count >= limit {
		return Decision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			RetryAfter: resetAt.Sub(now),
			ResetAt:    resetAt,
		}, nil
	}
	w.count++
	return Decision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - w.count,
		ResetAt:   resetAt,
	}, nil
}

func (l *LocalLimiter) AcquireProvider(ctx context.Context, provider string, max int) (ReleaseFunc, bool, error) {
	if max <= 0 {
		return func() {}, true, nil
	}
	now := l.nowFn()

	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[provider]
	if !ok || now.After(s.expiresAt) {
		s = &localSlots{}
		l.slots[provider] = s
	}
	if s.held >= max {
		return nil, false, nil
	}
	s.held++
	s.expiresAt = now.Add(slotTTL)

	released := false
	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if released {
			return
		}
		released = true
		if cur, ok := l.slots[provider]; ok && cur.held > 0 {
			cur.held--
		}
	}
	return release, true, nil
}
