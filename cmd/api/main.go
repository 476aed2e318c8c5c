package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"meme-studio/config"
	_ "meme-studio/docs" // Swagger docs
	editorUC "meme-studio/internal/editor/usecase"
	"meme-studio/internal/httpserver"
	"meme-studio/internal/meme/repository/memory"
	memeUC "meme-studio/internal/meme/usecase"
	"meme-studio/pkg/compositor"
	"meme-studio/pkg/log"
	"meme-studio/pkg/metrics"
	"meme-studio/pkg/ratelimit"
)

// @title       Meme Studio API
// @description Caption a picture with top and bottom text, share it, and browse the memes you sent.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meme Studio...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Compositor and caption style
	comp, err := compositor.New()
	if err != nil {
		logger.Error(ctx, "Failed to initialize compositor: ", err)
		return
	}
	if cfg.Caption.FontPath != "" {
		if err := comp.RegisterFontFile(cfg.Caption.FontFamily, cfg.Caption.FontPath); err != nil {
			logger.Warnf(ctx, "Caption font %q not loaded, using fallback face: %v", cfg.Caption.FontPath, err)
		} else {
			logger.Infof(ctx, "Caption font %q registered as %s", cfg.Caption.FontPath, cfg.Caption.FontFamily)
		}
	}

	style := compositor.DefaultStyle()
	style.FontFamily = cfg.Caption.FontFamily
	style.FontSize = cfg.Caption.FontSize
	style.MinFontSize = cfg.Caption.MinFontSize
	style.StrokeWidth = cfg.Caption.StrokeWidth

	// 4. Store: one per process, shared by the editor and the browsing views
	store := memory.New()

	// 5. Edge: metrics and rate limiting (optional)
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
	}
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(cfg.RateLimit.RequestsPerMin)
	}

	// 6. Use cases
	memeUseCase, err := memeUC.New(logger, store, memeUC.Config{
		ThumbnailSize:  cfg.Thumbnail.Size,
		ImageCacheSize: cfg.Thumbnail.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize meme usecase: ", err)
		return
	}

	editorUseCase, err := editorUC.New(logger, store, comp, collector, editorUC.Config{
		MaxSessions:   cfg.Editor.MaxSessions,
		SessionTTL:    cfg.Editor.SessionTTL,
		CameraEnabled: cfg.Editor.CameraEnabled,
		LibraryDir:    cfg.Library.Dir,
		MaxPixels:     cfg.HTTPServer.MaxUploadPixels,
		Style:         style,
		Viewport:      image.Pt(cfg.Editor.ViewportWidth, cfg.Editor.ViewportHeight),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize editor usecase: ", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Limiter:        limiter,
		Metrics:        collector,
		MemeUseCase:    memeUseCase,
		Store:          store,
		EditorUseCase:  editorUseCase,
		MaxUploadBytes: int64(cfg.HTTPServer.MaxUploadMB) << 20,
		LibraryDir:     cfg.Library.Dir,
		OutboxDir:      cfg.Share.OutboxDir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
