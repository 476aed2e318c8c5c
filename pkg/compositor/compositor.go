// Package compositor flattens a background image and two caption layers
// into a single raster. It is a pure function over a described layout: no
// rendering surface or UI state is involved, so identical layouts always
// produce identical pixels.
package compositor

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"meme-studio/pkg/imaging"
)

const (
	faceCacheSize = 32
	minInset      = 8
	fontStep      = 2
)

// Layout describes one composition. A zero Viewport means the background's
// natural size.
type Layout struct {
	Background image.Image
	Top        string
	Bottom     string
	Style      Style
	Viewport   image.Point
}

// Compositor renders layouts. Faces are not safe for concurrent use, so
// Compose calls are serialized.
type Compositor struct {
	mu       sync.Mutex
	fonts    map[string]*opentype.Font
	fallback *opentype.Font
	faces    *lru.Cache[faceKey, font.Face]
}

// New creates a Compositor with no registered fonts; every family resolves
// to Go Bold until RegisterFont is called.
func New() (*Compositor, error) {
	fallback, err := parseFallback()
	if err != nil {
		return nil, fmt.Errorf("compositor.New: %w", err)
	}
	faces, err := lru.New[faceKey, font.Face](faceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("compositor.New: %w", err)
	}
	return &Compositor{
		fonts:    make(map[string]*opentype.Font),
		fallback: fallback,
		faces:    faces,
	}, nil
}

// Compose draws the background and the captions and returns the flattened image.
func (c *Compositor) Compose(l Layout) (*image.RGBA, error) {
	if l.Background == nil || l.Background.Bounds().Empty() {
		return nil, ErrNoBackground
	}
	if l.Style.FontSize <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive", ErrInvalidLayout)
	}

	dst := c.drawBackground(l)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.drawCaption(dst, l.Top, anchorTop, l.Style); err != nil {
		return nil, err
	}
	if err := c.drawCaption(dst, l.Bottom, anchorBottom, l.Style); err != nil {
		return nil, err
	}
	return dst, nil
}

func (c *Compositor) drawBackground(l Layout) *image.RGBA {
	bg := l.Background
	natural := bg.Bounds().Size()
	vp := l.Viewport
	if vp.X <= 0 || vp.Y <= 0 {
		vp = natural
	}

	dst := image.NewRGBA(image.Rect(0, 0, vp.X, vp.Y))
	if vp == natural {
		draw.Draw(dst, dst.Bounds(), bg, bg.Bounds().Min, draw.Src)
		return dst
	}

	backdrop := l.Style.Backdrop
	if backdrop == nil {
		backdrop = color.Black
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, imaging.FitRect(bg.Bounds(), dst.Bounds()), bg, bg.Bounds(), draw.Over, nil)
	return dst
}

type anchor int

const (
	anchorTop anchor = iota
	anchorBottom
)

func (c *Compositor) drawCaption(dst *image.RGBA, text string, a anchor, s Style) error {
	if text == "" {
		return nil
	}

	bounds := dst.Bounds()
	inset := max(minInset, bounds.Dy()/20)
	maxWidth := bounds.Dx() - 2*inset

	face, size, width, err := c.fit(text, s, maxWidth)
	if err != nil {
		return err
	}

	var x int
	switch s.Alignment {
	case AlignLeft:
		x = inset
	case AlignRight:
		x = bounds.Dx() - inset - width
	default:
		x = (bounds.Dx() - width) / 2
	}

	m := face.Metrics()
	var y int
	if a == anchorTop {
		y = inset + m.Ascent.Ceil()
	} else {
		y = bounds.Dy() - inset - m.Descent.Ceil()
	}

	fillMask := image.NewAlpha(bounds)
	drawText(fillMask, face, text, x, y)

	r := s.strokeRadius(size)
	if r == 0 {
		draw.DrawMask(dst, bounds, image.NewUniform(s.FillColor), image.Point{}, fillMask, bounds.Min, draw.Over)
		return nil
	}

	strokeMask := image.NewAlpha(bounds)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			drawText(strokeMask, face, text, x+dx, y+dy)
		}
	}

	if s.outlineOnly() {
		subtractMask(strokeMask, fillMask)
		draw.DrawMask(dst, bounds, image.NewUniform(s.StrokeColor), image.Point{}, strokeMask, bounds.Min, draw.Over)
		return nil
	}

	draw.DrawMask(dst, bounds, image.NewUniform(s.StrokeColor), image.Point{}, strokeMask, bounds.Min, draw.Over)
	draw.DrawMask(dst, bounds, image.NewUniform(s.FillColor), image.Point{}, fillMask, bounds.Min, draw.Over)
	return nil
}

// fit shrinks the font in fontStep increments until text fits maxWidth or the
// minimum size is reached.
func (c *Compositor) fit(text string, s Style, maxWidth int) (font.Face, float64, int, error) {
	size := s.FontSize
	for {
		face, err := c.face(s.FontFamily, size)
		if err != nil {
			return nil, 0, 0, err
		}
		width := font.MeasureString(face, text).Ceil()
		next := size - fontStep
		if width <= maxWidth || next < s.minSize() {
			return face, size, width, nil
		}
		size = next
	}
}

func drawText(dst draw.Image, face font.Face, text string, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// subtractMask removes the fill coverage from the stroke coverage, leaving
// a hollow outline.
func subtractMask(stroke, fill *image.Alpha) {
	for i := range stroke.Pix {
		s := uint32(stroke.Pix[i])
		f := uint32(fill.Pix[i])
		stroke.Pix[i] = uint8(s * (255 - f) / 255)
	}
}
