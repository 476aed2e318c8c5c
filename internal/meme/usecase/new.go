package usecase

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"meme-studio/internal/meme"
	"meme-studio/internal/meme/repository"
	"meme-studio/pkg/log"
)

const (
	defaultThumbnailSize  = 120
	defaultImageCacheSize = 256
)

// Config tunes the image endpoints.
type Config struct {
	ThumbnailSize  int
	ImageCacheSize int
}

type cacheKey struct {
	id      string
	variant meme.Variant
}

// implUseCase is the private implementation of meme.UseCase.
type implUseCase struct {
	l         log.Logger
	store     repository.Store
	images    *lru.Cache[cacheKey, []byte]
	thumbSize int
}

var _ meme.UseCase = (*implUseCase)(nil)

// New creates the browsing UseCase over store.
func New(l log.Logger, store repository.Store, cfg Config) (*implUseCase, error) {
	if store == nil {
		return nil, fmt.Errorf("meme/usecase: store is required")
	}
	if cfg.ThumbnailSize <= 0 {
		cfg.ThumbnailSize = defaultThumbnailSize
	}
	if cfg.ImageCacheSize <= 0 {
		cfg.ImageCacheSize = defaultImageCacheSize
	}

	images, err := lru.New[cacheKey, []byte](cfg.ImageCacheSize)
	if err != nil {
		return nil, fmt.Errorf("meme/usecase: %w", err)
	}

	return &implUseCase{
		l:         l,
		store:     store,
		images:    images,
		thumbSize: cfg.ThumbnailSize,
	}, nil
}
