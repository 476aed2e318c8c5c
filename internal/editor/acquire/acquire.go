// Package acquire provides the image sources an editor can pull from.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"meme-studio/internal/editor"
	"meme-studio/pkg/imaging"
)

// Upload acquires an image from bytes sent by a client. No bytes means the
// picker was dismissed. Pictures above MaxPixels are refused before decoding.
type Upload struct {
	Data      []byte
	MaxPixels int64
}

func (u Upload) Acquire(ctx context.Context, src editor.Source) (image.Image, error) {
	if len(u.Data) == 0 {
		return nil, editor.ErrAcquisitionCancelled
	}
	img, _, err := imaging.DecodeBytesLimit(u.Data, u.MaxPixels)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Library acquires a named image from the photo library directory. Names
// must be bare file names.
type Library struct {
	Dir       string
	Name      string
	MaxPixels int64
}

func (l Library) Acquire(ctx context.Context, src editor.Source) (image.Image, error) {
	if src != editor.SourceLibrary {
		return nil, editor.ErrSourceUnavailable
	}
	if l.Name == "" {
		return nil, editor.ErrAcquisitionCancelled
	}
	if l.Dir == "" {
		return nil, editor.ErrSourceUnavailable
	}
	if filepath.Base(l.Name) != l.Name || strings.HasPrefix(l.Name, ".") {
		return nil, fmt.Errorf("acquire.Library: %w", ErrInvalidName)
	}

	f, err := os.Open(filepath.Join(l.Dir, l.Name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("acquire.Library: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("acquire.Library: %w", err)
	}
	defer f.Close()

	img, _, err := imaging.DecodeLimit(f, l.MaxPixels)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Gate routes an acquisition to the collaborator of its source and refuses
// capture when no camera is available.
type Gate struct {
	CameraEnabled bool
	Capture       editor.Acquirer
	Library       editor.Acquirer
}

func (g Gate) Acquire(ctx context.Context, src editor.Source) (image.Image, error) {
	next := g.Library
	if src == editor.SourceCapture {
		if !g.CameraEnabled {
			return nil, editor.ErrSourceUnavailable
		}
		next = g.Capture
	}
	if next == nil {
		return nil, editor.ErrSourceUnavailable
	}
	return next.Acquire(ctx, src)
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// List returns the sorted names of the images in dir. A missing directory
// is an empty library.
func List(dir string) ([]string, error) {
	if dir == "" {
		return []string{}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("acquire.List: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
