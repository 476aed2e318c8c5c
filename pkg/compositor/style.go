package compositor

import (
	"image/color"
	"math"
)

// Alignment positions a caption horizontally inside the viewport.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// Style is the text rendering configuration applied to both captions.
// StrokeWidth follows the attributed-string convention: a percentage of the
// font size, where a negative value draws the outline and the fill on top
// and a positive value draws the outline only.
type Style struct {
	Alignment   Alignment
	StrokeColor color.Color
	FillColor   color.Color
	Backdrop    color.Color
	StrokeWidth float64
	FontFamily  string
	FontSize    float64
	MinFontSize float64
}

const (
	DefaultFontFamily  = "Impact"
	DefaultFontSize    = 40
	DefaultMinFontSize = 12
	DefaultStrokeWidth = -3.0
)

// DefaultStyle returns the classic meme caption look: white Impact with a
// black outline, centred.
func DefaultStyle() Style {
	return Style{
		Alignment:   AlignCenter,
		StrokeColor: color.Black,
		FillColor:   color.White,
		Backdrop:    color.Black,
		StrokeWidth: DefaultStrokeWidth,
		FontFamily:  DefaultFontFamily,
		FontSize:    DefaultFontSize,
		MinFontSize: DefaultMinFontSize,
	}
}

// strokeRadius is the outline thickness in pixels for the given font size.
func (s Style) strokeRadius(size float64) int {
	if s.StrokeWidth == 0 {
		return 0
	}
	r := int(math.Round(math.Abs(s.StrokeWidth) / 100 * size))
	return max(r, 1)
}

func (s Style) outlineOnly() bool {
	return s.StrokeWidth > 0
}

func (s Style) minSize() float64 {
	if s.MinFontSize <= 0 || s.MinFontSize > s.FontSize {
		return s.FontSize
	}
	return s.MinFontSize
}
