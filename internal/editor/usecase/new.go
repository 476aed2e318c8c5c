package usecase

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"meme-studio/internal/editor"
	"meme-studio/internal/meme/repository"
	"meme-studio/pkg/compositor"
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
)

const (
	defaultMaxSessions = 1000
	defaultSessionTTL  = 30 * time.Minute
	tracerName         = "meme-studio/internal/editor/usecase"
)

// Config tunes session handling and composition.
type Config struct {
	MaxSessions   int
	SessionTTL    time.Duration
	CameraEnabled bool
	LibraryDir    string
	MaxPixels     int64
	Style         compositor.Style
	Viewport      image.Point
}

type session struct {
	mu     sync.Mutex
	id     string
	editor *editor.Editor
	// evicted is set when the registry drops the session.
	evicted atomic.Bool
}

type implUseCase struct {
	l        log.Logger
	store    repository.Store
	composer editor.Composer
	metrics  *metrics.Collector
	tracer   trace.Tracer
	cfg      Config

	// reg orders lookups, renewals and removals on sessions.
	reg      sync.Mutex
	sessions *expirable.LRU[string, *session]
}

var _ editor.UseCase = (*implUseCase)(nil)

// New creates the editor session UseCase. collector may be nil.
func New(
	l log.Logger,
	store repository.Store,
	composer editor.Composer,
	collector *metrics.Collector,
	cfg Config,
) (*implUseCase, error) {
	if store == nil {
		return nil, fmt.Errorf("editor/usecase: store is required")
	}
	if composer == nil {
		return nil, fmt.Errorf("editor/usecase: composer is required")
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.Style.FontSize == 0 {
		cfg.Style = compositor.DefaultStyle()
	}

	uc := &implUseCase{
		l:        l,
		store:    store,
		composer: composer,
		metrics:  collector,
		tracer:   otel.Tracer(tracerName),
		cfg:      cfg,
	}
	uc.sessions = expirable.NewLRU[string, *session](cfg.MaxSessions, uc.onEvict, cfg.SessionTTL)
	return uc, nil
}

func (uc *implUseCase) onEvict(id string, s *session) {
	s.evicted.Store(true)
	if uc.metrics != nil {
		uc.metrics.ActiveSessions.Dec()
	}
}
