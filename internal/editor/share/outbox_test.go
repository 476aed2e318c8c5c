package share_test

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meme-studio/internal/editor"
	"meme-studio/internal/editor/share"
	"meme-studio/pkg/imaging"
)

func TestOutbox(t *testing.T) {
	img := imaging.Solid(12, 7, color.RGBA{R: 255, A: 255})

	t.Run("Writes PNG", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "outbox")
		o := share.Outbox{Dir: dir}

		res, err := o.Share(context.Background(), img)
		require.NoError(t, err)
		assert.True(t, res.Completed)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)
		got, format, err := imaging.DecodeBytes(data)
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, image.Rect(0, 0, 12, 7), got.Bounds())
	})

	t.Run("Unique Names", func(t *testing.T) {
		o := share.Outbox{Dir: t.TempDir()}
		a, err := o.Write(context.Background(), img)
		require.NoError(t, err)
		b, err := o.Write(context.Background(), img)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("No Dir Is Cancelled", func(t *testing.T) {
		_, err := share.Outbox{}.Share(context.Background(), img)
		assert.ErrorIs(t, err, editor.ErrShareCancelled)
	})

	t.Run("Done Context Is Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := share.Outbox{Dir: t.TempDir()}.Share(ctx, img)
		assert.ErrorIs(t, err, editor.ErrShareCancelled)
	})
}
