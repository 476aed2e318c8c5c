package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"meme-studio/internal/middleware"
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
	"meme-studio/pkg/ratelimit"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Metrics(), mw.AccessLog())
	r.GET("/ping/:id", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit(t *testing.T) {
	mw := middleware.New(log.NewNop(), ratelimit.New(5), nil)
	r := newEngine(mw)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), nil, nil))

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestMetrics(t *testing.T) {
	collector := metrics.NewCollector("test")
	r := newEngine(middleware.New(log.NewNop(), nil, collector))

	for _, path := range []string{"/ping/1", "/ping/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/ping/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
