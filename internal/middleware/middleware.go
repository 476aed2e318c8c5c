package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meme-studio/pkg/response"
)

// RateLimit rejects clients that exceed the configured request rate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if err := m.limiter.Allow(ip); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v for %s", err, ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// Metrics records request count and latency per route template.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// AccessLog writes one line per request through the service logger.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Debugf(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
