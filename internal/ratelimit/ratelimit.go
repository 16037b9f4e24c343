// Package ratelimit implements a fixed-window in-memory rate limiter keyed by
// (action, client identifier). State is process-local: it resets on restart
// and does not coordinate across instances.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks request timestamps per (action, identifier) key. Old
// timestamps within a key are trimmed on each check; keys themselves are
// never evicted.
type Limiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	now     func() time.Time
}

// New creates an empty Limiter.
func New() *Limiter {
	return &Limiter{
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Check records an attempt for the given action and identifier and reports
// whether it is allowed under maxAttempts per window. When denied, RetryAfter
// is the time until the oldest attempt in the window expires.
func (l *Limiter) Check(action, identifier string, window time.Duration, maxAttempts int) Result {
	key := action + ":" + identifier
	now := l.now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Drop timestamps outside the window, filtering in place.
	valid := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= maxAttempts {
		l.entries[key] = valid
		retryAfter := valid[0].Add(window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter}
	}

	valid = append(valid, now)
	l.entries[key] = valid
	return Result{Allowed: true, Remaining: maxAttempts - len(valid)}
}
