package graphql

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// GitHubRateLimit is the authenticated GraphQL quota (5000 points/hour).
	GitHubRateLimit = 5000

	// ProactiveRate is the default sustained request rate.
	ProactiveRate = 5

	// ProactiveBurst is the default number of back-to-back requests.
	ProactiveBurst = 10

	// MinBuffer is the quota kept in reserve before requests are refused.
	MinBuffer = 10

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// RateLimiter throttles requests with a token bucket and tracks the quota
// GitHub reports. It never sleeps until a reset: an exhausted quota is
// reported as a RateLimitError straight away.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetTime time.Time
	bucket    *rate.Limiter
	minBuffer int
}

// NewRateLimiter creates a limiter allowing r requests per second with the
// given burst.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		remaining: GitHubRateLimit,
		limit:     GitHubRateLimit,
		bucket:    rate.NewLimiter(r, burst),
		minBuffer: MinBuffer,
	}
}

// NewDefaultRateLimiter creates a limiter with ProactiveRate and ProactiveBurst.
func NewDefaultRateLimiter() *RateLimiter {
	return NewRateLimiter(rate.Limit(ProactiveRate), ProactiveBurst)
}

// Wait blocks until the token bucket admits a request, then checks the
// quota reported by the last response.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining < r.minBuffer && time.Now().Before(r.resetTime) {
		return &RateLimitError{
			ResetAt:   r.resetTime,
			Remaining: r.remaining,
			Limit:     r.limit,
		}
	}
	return nil
}

// UpdateFromResponse updates rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Remaining returns the current remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the rate limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the rate limit reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}

// rateLimitError describes the current state as an error.
func (r *RateLimiter) rateLimitError() *RateLimitError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &RateLimitError{
		ResetAt:   r.resetTime,
		Remaining: r.remaining,
		Limit:     r.limit,
	}
}
