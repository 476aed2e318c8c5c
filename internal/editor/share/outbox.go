// Package share provides share surfaces for composed memes.
package share

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"meme-studio/internal/editor"
	"meme-studio/pkg/imaging"
)

// Outbox shares a meme by dropping it as a PNG into Dir. Writing the file
// completes the share.
type Outbox struct {
	Dir string
}

// Share writes img to a new file in the outbox. An unset Dir or a done
// context counts as a dismissed share.
func (o Outbox) Share(ctx context.Context, img image.Image) (editor.ShareResult, error) {
	if _, err := o.Write(ctx, img); err != nil {
		return editor.ShareResult{}, err
	}
	return editor.ShareResult{Completed: true}, nil
}

// Write encodes img and stores it under a fresh uuid name. It returns the
// path of the written file.
func (o Outbox) Write(ctx context.Context, img image.Image) (string, error) {
	if o.Dir == "" {
		return "", editor.ErrShareCancelled
	}
	if err := ctx.Err(); err != nil {
		return "", editor.ErrShareCancelled
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("share.Outbox: %w", err)
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return "", fmt.Errorf("share.Outbox: %w", err)
	}

	path := filepath.Join(o.Dir, uuid.NewString()+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("share.Outbox: %w", err)
	}
	return path, nil
}
