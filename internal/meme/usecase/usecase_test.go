package usecase

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meme-studio/internal/meme"
	"meme-studio/internal/meme/repository/memory"
	"meme-studio/pkg/imaging"
	"meme-studio/pkg/log"
)

func seed(t *testing.T, tops ...string) (*implUseCase, []meme.Meme) {
	t.Helper()
	store := memory.New()
	var memes []meme.Meme
	for i, top := range tops {
		original := imaging.Solid(40+i, 20, color.RGBA{G: 200, A: 255})
		memed := imaging.Solid(40+i, 20, color.RGBA{R: 200, A: 255})
		m := meme.NewMeme(top, "bottom", original, memed)
		store.Append(m)
		memes = append(memes, m)
	}

	uc, err := New(log.NewNop(), store, Config{ThumbnailSize: 8, ImageCacheSize: 4})
	require.NoError(t, err)
	return uc, memes
}

func TestNew(t *testing.T) {
	_, err := New(log.NewNop(), nil, Config{})
	assert.Error(t, err)

	uc, err := New(log.NewNop(), memory.New(), Config{})
	require.NoError(t, err)
	assert.Equal(t, defaultThumbnailSize, uc.thumbSize)
}

func TestTable(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store", func(t *testing.T) {
		uc, _ := seed(t)
		out, err := uc.Table(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, out.Total)
		assert.Empty(t, out.Rows)
	})

	t.Run("Insertion Order", func(t *testing.T) {
		uc, memes := seed(t, "one", "two", "three")
		out, err := uc.Table(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, out.Total)
		for i, row := range out.Rows {
			assert.Equal(t, i, row.Index)
			assert.Equal(t, memes[i].ID(), row.Meme.ID())
		}
	})

	t.Run("Reflects Later Appends", func(t *testing.T) {
		uc, _ := seed(t, "one")
		uc.store.Append(meme.NewMeme("late", "", imaging.Solid(1, 1, color.White), imaging.Solid(1, 1, color.White)))

		out, err := uc.Table(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, out.Total)
		assert.Equal(t, "late", out.Rows[1].Meme.TopText())
	})
}

func TestGrid(t *testing.T) {
	ctx := context.Background()
	uc, _ := seed(t, "a", "b")

	t.Run("Defaults", func(t *testing.T) {
		out, err := uc.Grid(ctx, meme.GridInput{})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Columns)
		assert.Equal(t, 3.0, out.Spacing)
		assert.InDelta(t, (375.0-6.0)/3.0, out.ItemSize, 1e-9)
		assert.Len(t, out.Cells, 2)
	})

	t.Run("Custom", func(t *testing.T) {
		spacing := 8.0
		out, err := uc.Grid(ctx, meme.GridInput{Width: 1000, Columns: 4, Spacing: &spacing})
		require.NoError(t, err)
		assert.InDelta(t, (1000.0-24.0)/4.0, out.ItemSize, 1e-9)
	})

	t.Run("Gapless", func(t *testing.T) {
		spacing := 0.0
		out, err := uc.Grid(ctx, meme.GridInput{Width: 300, Columns: 3, Spacing: &spacing})
		require.NoError(t, err)
		assert.Equal(t, 0.0, out.Spacing)
		assert.InDelta(t, 100.0, out.ItemSize, 1e-9)
	})

	t.Run("Too Narrow", func(t *testing.T) {
		spacing := 5.0
		_, err := uc.Grid(ctx, meme.GridInput{Width: 10, Columns: 3, Spacing: &spacing})
		assert.ErrorIs(t, err, meme.ErrInvalidGrid)
	})

	t.Run("Not Finite", func(t *testing.T) {
		inf := math.Inf(1)
		nan := math.NaN()
		for _, in := range []meme.GridInput{
			{Width: inf},
			{Width: nan},
			{Spacing: &inf},
			{Spacing: &nan},
		} {
			_, err := uc.Grid(ctx, in)
			assert.ErrorIs(t, err, meme.ErrInvalidGrid)
		}
	})

	t.Run("Negative Columns", func(t *testing.T) {
		_, err := uc.Grid(ctx, meme.GridInput{Columns: -1})
		assert.ErrorIs(t, err, meme.ErrInvalidGrid)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	uc, memes := seed(t, "a", "b")

	out, err := uc.Detail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Entry.Index)
	assert.Equal(t, memes[1].ID(), out.Entry.Meme.ID())

	for _, idx := range []int{-1, 2, 100} {
		_, err := uc.Detail(ctx, idx)
		assert.ErrorIs(t, err, meme.ErrMemeNotFound, "index %d", idx)
	}
}

func TestImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Variants", func(t *testing.T) {
		uc, memes := seed(t, "a")

		cases := []struct {
			variant meme.Variant
			want    image.Image
		}{
			{meme.VariantMemed, memes[0].MemedImage()},
			{"", memes[0].MemedImage()},
			{meme.VariantOriginal, memes[0].OriginalImage()},
		}
		for _, tc := range cases {
			out, err := uc.Image(ctx, meme.ImageInput{Index: 0, Variant: tc.variant})
			require.NoError(t, err)
			assert.Equal(t, "image/png", out.ContentType)

			img, _, err := imaging.DecodeBytes(out.Data)
			require.NoError(t, err)
			assert.Equal(t, tc.want.Bounds(), img.Bounds())
			assert.Equal(t, tc.want.At(0, 0), color.RGBAModel.Convert(img.At(0, 0)))
		}
	})

	t.Run("Thumbnail Size", func(t *testing.T) {
		uc, _ := seed(t, "a")
		out, err := uc.Image(ctx, meme.ImageInput{Index: 0, Variant: meme.VariantThumbnail})
		require.NoError(t, err)

		img, _, err := imaging.DecodeBytes(out.Data)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	})

	t.Run("Cached", func(t *testing.T) {
		uc, _ := seed(t, "a")
		first, err := uc.Image(ctx, meme.ImageInput{Index: 0})
		require.NoError(t, err)
		second, err := uc.Image(ctx, meme.ImageInput{Index: 0, Variant: meme.VariantMemed})
		require.NoError(t, err)

		assert.Equal(t, 1, uc.images.Len())
		assert.Equal(t, first.Data, second.Data)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc, _ := seed(t)
		_, err := uc.Image(ctx, meme.ImageInput{Index: 0})
		assert.ErrorIs(t, err, meme.ErrMemeNotFound)
	})

	t.Run("Invalid Variant", func(t *testing.T) {
		uc, _ := seed(t, "a")
		_, err := uc.Image(ctx, meme.ImageInput{Index: 0, Variant: "poster"})
		assert.ErrorIs(t, err, meme.ErrInvalidVariant)
	})
}
