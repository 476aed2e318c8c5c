package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editorUC "meme-studio/internal/editor/usecase"
	"meme-studio/internal/httpserver"
	"meme-studio/internal/meme/repository/memory"
	memeUC "meme-studio/internal/meme/usecase"
	"meme-studio/pkg/compositor"
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
)

func newServer(t *testing.T, collector *metrics.Collector, opts ...func(*httpserver.Config)) http.Handler {
	t.Helper()
	l := log.NewNop()
	store := memory.New()
	library := t.TempDir()

	c, err := compositor.New()
	require.NoError(t, err)

	mUC, err := memeUC.New(l, store, memeUC.Config{})
	require.NoError(t, err)
	eUC, err := editorUC.New(l, store, c, collector, editorUC.Config{LibraryDir: library})
	require.NoError(t, err)

	cfg := httpserver.Config{
		Logger:         l,
		Port:           8080,
		Mode:           "test",
		Environment:    "test",
		Metrics:        collector,
		MemeUseCase:    mUC,
		Store:          store,
		EditorUseCase:  eUC,
		MaxUploadBytes: 1 << 20,
		LibraryDir:     library,
		OutboxDir:      filepath.Join(library, "outbox"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(l, cfg)
	require.NoError(t, err)
	return srv.Handler()
}

func get(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = httpserver.New(nil, httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, metrics.NewCollector("test"))

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(h, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"service":"meme-studio"`, path)
	}

	w := get(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"))
}

func TestReady(t *testing.T) {
	t.Run("Reports Collaborators", func(t *testing.T) {
		w := get(newServer(t, nil), http.MethodGet, "/ready")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"status":"ready"`)
		assert.Contains(t, body, `"memes":0`)
		assert.Contains(t, body, `"library":"ok"`)
		assert.Contains(t, body, `"outbox":"missing"`)
	})

	t.Run("No Store", func(t *testing.T) {
		h := newServer(t, nil, func(cfg *httpserver.Config) { cfg.Store = nil })
		w := get(h, http.MethodGet, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"not ready"`)
		assert.NotContains(t, w.Body.String(), `"memes"`)
	})

	t.Run("Library Is A File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "library")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		h := newServer(t, nil, func(cfg *httpserver.Config) { cfg.LibraryDir = file })
		w := get(h, http.MethodGet, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"library":"unusable"`)
	})

	t.Run("Unset Directories", func(t *testing.T) {
		h := newServer(t, nil, func(cfg *httpserver.Config) {
			cfg.LibraryDir = ""
			cfg.OutboxDir = ""
		})
		w := get(h, http.MethodGet, "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"outbox":"unset"`)
	})
}

func TestMetricsDisabled(t *testing.T) {
	h := newServer(t, nil)
	assert.Equal(t, http.StatusNotFound, get(h, http.MethodGet, "/metrics").Code)
}

func TestDomainRoutes(t *testing.T) {
	h := newServer(t, nil)

	assert.Equal(t, http.StatusOK, get(h, http.MethodGet, "/api/v1/memes/table").Code)
	assert.Equal(t, http.StatusOK, get(h, http.MethodGet, "/api/v1/memes/grid").Code)
	assert.Equal(t, http.StatusNotFound, get(h, http.MethodGet, "/api/v1/memes/0").Code)
	assert.Equal(t, http.StatusOK, get(h, http.MethodGet, "/api/v1/library").Code)

	w := get(h, http.MethodPost, "/api/v1/editor/sessions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"idle"`)
}
