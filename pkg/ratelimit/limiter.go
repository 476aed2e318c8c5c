package ratelimit

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxSources = 1000
	sourceTTL  = 5 * time.Minute
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

// Limiter keeps one token bucket per source (client IP). Idle sources fall
// out of the LRU after sourceTTL so the map never grows without bound.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing requestsPerMin per source, with a burst of
// a tenth of that (at least one).
func New(requestsPerMin int) *Limiter {
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxSources, nil, sourceTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) error {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return ErrLimitExceeded
	}
	return nil
}
