// Package admission implements per-client request admission using a
// fixed-window counter: a window admits at most N requests per client key
// and the counter resets entirely when the window elapses. The state is
// process-local; under horizontal scaling each warm instance counts on its
// own, so the true admitted rate can exceed the configured limit by the
// instance count. That approximation is intentional.
package admission

import (
	"sync"
	"time"
)

// FallbackKey is the shared bucket for requests whose client identity could
// not be determined. All anonymous traffic competes for one window. Known
// weakness, kept on purpose.
const FallbackKey = "unknown"

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter decides admit/reject per client key.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

// New creates a limiter admitting limit requests per key per window.
// A limit <= 0 disables admission control entirely.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Admit reports whether a request from key may proceed and counts it if so.
// An empty key falls back to the shared anonymous bucket.
func (l *Limiter) Admit(key string) bool {
	if l.limit <= 0 {
		return true
	}
	if key == "" {
		key = FallbackKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		l.buckets[key] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// Limit returns the configured per-window request limit.
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the configured window duration.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Prune drops buckets whose window has elapsed and returns how many were
// removed. Pruning never changes admission results: an expired bucket and a
// missing bucket behave identically in Admit.
func (l *Limiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	pruned := 0
	for key, b := range l.buckets {
		if !now.Before(b.resetAt) {
			delete(l.buckets, key)
			pruned++
		}
	}
	return pruned
}
