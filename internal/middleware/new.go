package middleware

import (
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
	"meme-studio/pkg/ratelimit"
)

// Middleware bundles the gin middlewares shared by all domains. A nil
// limiter or collector turns the corresponding middleware into a no-op.
type Middleware struct {
	l       log.Logger
	limiter *ratelimit.Limiter
	metrics *metrics.Collector
}

func New(l log.Logger, limiter *ratelimit.Limiter, collector *metrics.Collector) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
		metrics: collector,
	}
}
