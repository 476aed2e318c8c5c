// scripts/compose-meme/main.go
//
// Composes one meme from a photo library picture without running the API,
// and drops the result into the share outbox.
//
// Usage:
//   go run scripts/compose-meme/main.go -name cat.png -top "ONE DOES NOT" -bottom "SIMPLY"

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"meme-studio/config"
	"meme-studio/internal/editor"
	"meme-studio/internal/editor/acquire"
	"meme-studio/internal/editor/share"
	"meme-studio/internal/meme/repository/memory"
	"meme-studio/pkg/compositor"
	"meme-studio/pkg/log"
)

func main() {
	name := flag.String("name", "", "library picture file name")
	top := flag.String("top", "", "top caption")
	bottom := flag.String("bottom", "", "bottom caption")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	comp, err := compositor.New()
	if err != nil {
		logger.Fatalf(ctx, "compositor: %v", err)
	}
	if cfg.Caption.FontPath != "" {
		if err := comp.RegisterFontFile(cfg.Caption.FontFamily, cfg.Caption.FontPath); err != nil {
			logger.Warnf(ctx, "font %q not loaded: %v", cfg.Caption.FontPath, err)
		}
	}

	style := compositor.DefaultStyle()
	style.FontFamily = cfg.Caption.FontFamily
	style.FontSize = cfg.Caption.FontSize
	style.MinFontSize = cfg.Caption.MinFontSize
	style.StrokeWidth = cfg.Caption.StrokeWidth

	store := memory.New()
	e := editor.New(store, comp, editor.Options{
		Style:    style,
		Viewport: image.Pt(cfg.Editor.ViewportWidth, cfg.Editor.ViewportHeight),
	})

	// Tag 1 is the photo library.
	if _, err := e.Acquire(ctx, 1, acquire.Library{Dir: cfg.Library.Dir, Name: *name, MaxPixels: cfg.HTTPServer.MaxUploadPixels}); err != nil {
		logger.Fatalf(ctx, "acquire %q from %s: %v", *name, cfg.Library.Dir, err)
	}
	for field, text := range map[editor.Field]string{editor.FieldTop: *top, editor.FieldBottom: *bottom} {
		if err := e.Focus(field); err != nil {
			logger.Fatalf(ctx, "focus %s: %v", field, err)
		}
		if err := e.SetCaption(field, text); err != nil {
			logger.Fatalf(ctx, "caption %s: %v", field, err)
		}
	}

	outbox := share.Outbox{Dir: cfg.Share.OutboxDir}
	var path string
	sharer := editor.SharerFunc(func(ctx context.Context, img image.Image) (editor.ShareResult, error) {
		p, err := outbox.Write(ctx, img)
		if err != nil {
			return editor.ShareResult{}, err
		}
		path = p
		return editor.ShareResult{Completed: true}, nil
	})

	out, err := e.Share(ctx, sharer)
	if err != nil {
		logger.Fatalf(ctx, "share: %v", err)
	}

	logger.Infof(ctx, "meme %s saved (index %d) -> %s", out.Meme.ID(), out.Index, path)
}
