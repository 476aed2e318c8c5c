package compositor_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"meme-studio/pkg/compositor"
	"meme-studio/pkg/imaging"
)

var gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

func newCompositor(t *testing.T) *compositor.Compositor {
	t.Helper()
	c, err := compositor.New()
	require.NoError(t, err)
	return c
}

// countColor counts pixels in r that exactly match want.
func countColor(img *image.RGBA, r image.Rectangle, want color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestCompose(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	t.Run("No Background", func(t *testing.T) {
		c := newCompositor(t)
		_, err := c.Compose(compositor.Layout{Top: "LOL", Style: compositor.DefaultStyle()})
		assert.ErrorIs(t, err, compositor.ErrNoBackground)
	})

	t.Run("Invalid Font Size", func(t *testing.T) {
		c := newCompositor(t)
		style := compositor.DefaultStyle()
		style.FontSize = 0
		_, err := c.Compose(compositor.Layout{Background: imaging.Solid(10, 10, gray), Style: style})
		assert.ErrorIs(t, err, compositor.ErrInvalidLayout)
	})

	t.Run("Captions Only", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(300, 300, gray)

		out, err := c.Compose(compositor.Layout{Background: bg, Top: "", Bottom: "", Style: compositor.DefaultStyle()})
		require.NoError(t, err)
		assert.Equal(t, 300*300, countColor(out, out.Bounds(), gray))
	})

	t.Run("Top Caption Anchored Top Centre", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(300, 300, gray)

		out, err := c.Compose(compositor.Layout{Background: bg, Top: "LOL", Style: compositor.DefaultStyle()})
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 300, 300), out.Bounds())

		topBand := image.Rect(0, 0, 300, 100)
		bottomBand := image.Rect(0, 200, 300, 300)

		assert.Greater(t, countColor(out, topBand, white), 0, "fill drawn")
		assert.Greater(t, countColor(out, topBand, black), 0, "outline drawn")
		assert.Equal(t, 300*100, countColor(out, bottomBand, gray), "no bottom caption")

		// Centred: the left and right margins of the top band stay untouched.
		assert.Equal(t, 90*100, countColor(out, image.Rect(0, 0, 90, 100), gray))
		assert.Equal(t, 90*100, countColor(out, image.Rect(210, 0, 300, 100), gray))
	})

	t.Run("Bottom Caption Anchored Bottom", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(300, 300, gray)

		out, err := c.Compose(compositor.Layout{Background: bg, Bottom: "WIN", Style: compositor.DefaultStyle()})
		require.NoError(t, err)

		assert.Equal(t, 300*100, countColor(out, image.Rect(0, 0, 300, 100), gray))
		assert.Greater(t, countColor(out, image.Rect(0, 200, 300, 300), white), 0)
	})

	t.Run("Deterministic", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(240, 180, gray)
		layout := compositor.Layout{Background: bg, Top: "ONE DOES NOT", Bottom: "SIMPLY", Style: compositor.DefaultStyle()}

		a, err := c.Compose(layout)
		require.NoError(t, err)
		b, err := c.Compose(layout)
		require.NoError(t, err)

		other := newCompositor(t)
		d, err := other.Compose(layout)
		require.NoError(t, err)

		assert.Equal(t, a.Pix, b.Pix)
		assert.Equal(t, a.Pix, d.Pix)
	})

	t.Run("Background Not Mutated", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(120, 120, gray)
		before := append([]byte(nil), bg.Pix...)

		_, err := c.Compose(compositor.Layout{Background: bg, Top: "TOP", Bottom: "BOTTOM", Style: compositor.DefaultStyle()})
		require.NoError(t, err)
		assert.Equal(t, before, bg.Pix)
	})

	t.Run("Viewport Letterbox", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(200, 100, gray)

		out, err := c.Compose(compositor.Layout{Background: bg, Style: compositor.DefaultStyle(), Viewport: image.Pt(100, 100)})
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

		// Aspect fit puts the 2:1 picture in the middle band.
		assert.Equal(t, black, out.RGBAAt(50, 5))
		assert.InDelta(t, gray.R, out.RGBAAt(50, 50).R, 1)
		assert.InDelta(t, gray.G, out.RGBAAt(50, 50).G, 1)
		assert.Equal(t, black, out.RGBAAt(50, 95))
	})

	t.Run("Long Caption Shrinks Inside Insets", func(t *testing.T) {
		c := newCompositor(t)
		bg := imaging.Solid(200, 200, gray)

		out, err := c.Compose(compositor.Layout{Background: bg, Top: "WHEN THE", Style: compositor.DefaultStyle()})
		require.NoError(t, err)

		// Inset is max(8, 200/20) = 10; the stroke may reach one pixel past it.
		assert.Equal(t, 6*200, countColor(out, image.Rect(0, 0, 6, 200), gray), "left margin untouched")
		assert.Equal(t, 6*200, countColor(out, image.Rect(194, 0, 200, 200), gray), "right margin untouched")
		assert.Greater(t, countColor(out, out.Bounds(), white), 0)
	})

	t.Run("Outline Only", func(t *testing.T) {
		c := newCompositor(t)
		style := compositor.DefaultStyle()
		style.StrokeWidth = 3

		out, err := c.Compose(compositor.Layout{Background: imaging.Solid(300, 300, gray), Top: "LOL", Style: style})
		require.NoError(t, err)
		assert.Equal(t, 0, countColor(out, out.Bounds(), white))
		assert.Greater(t, countColor(out, out.Bounds(), black), 0)
	})
}

func TestRegisterFont(t *testing.T) {
	t.Run("Invalid Data", func(t *testing.T) {
		c := newCompositor(t)
		err := c.RegisterFont("Impact", []byte("not a font"))
		assert.ErrorIs(t, err, compositor.ErrInvalidFont)
		assert.False(t, c.HasFont("Impact"))
	})

	t.Run("Registered Family Changes Output", func(t *testing.T) {
		c := newCompositor(t)
		layout := compositor.Layout{Background: imaging.Solid(300, 120, gray), Top: "LOL", Style: compositor.DefaultStyle()}

		before, err := c.Compose(layout)
		require.NoError(t, err)

		require.NoError(t, c.RegisterFont("impact", goregular.TTF))
		assert.True(t, c.HasFont("Impact"))

		after, err := c.Compose(layout)
		require.NoError(t, err)
		assert.NotEqual(t, before.Pix, after.Pix)
	})

	t.Run("Missing File", func(t *testing.T) {
		c := newCompositor(t)
		assert.Error(t, c.RegisterFontFile("Impact", "/nonexistent/impact.ttf"))
	})
}
