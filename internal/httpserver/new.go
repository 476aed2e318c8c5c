package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meme-studio/internal/editor"
	"meme-studio/internal/meme"
	"meme-studio/internal/meme/repository"
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
	"meme-studio/pkg/ratelimit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Edge
	limiter *ratelimit.Limiter
	metrics *metrics.Collector

	// Meme domain
	memeUC meme.UseCase
	store  repository.Store

	// Editor domain
	editorUC       editor.UseCase
	maxUploadBytes int64
	libraryDir     string
	outboxDir      string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Edge, both optional
	Limiter *ratelimit.Limiter
	Metrics *metrics.Collector

	// Meme domain. Store backs /ready; without it the server reports not ready.
	MemeUseCase meme.UseCase
	Store       repository.Store

	// Editor domain
	EditorUseCase  editor.UseCase
	MaxUploadBytes int64
	LibraryDir     string
	OutboxDir      string
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		limiter:        cfg.Limiter,
		metrics:        cfg.Metrics,
		memeUC:         cfg.MemeUseCase,
		store:          cfg.Store,
		editorUC:       cfg.EditorUseCase,
		maxUploadBytes: cfg.MaxUploadBytes,
		libraryDir:     cfg.LibraryDir,
		outboxDir:      cfg.OutboxDir,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.memeUC == nil {
		return errors.New("meme usecase is required")
	}
	if srv.editorUC == nil {
		return errors.New("editor usecase is required")
	}
	return nil
}
