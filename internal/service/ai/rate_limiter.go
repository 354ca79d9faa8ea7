package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default outbound QPS limit.
const DefaultRateLimit = 10

// RateLimiter provides process-wide rate limiting for provider calls. This
// protects the upstream quota; per-client admission happens elsewhere.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter with the given QPS.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured QPS.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
