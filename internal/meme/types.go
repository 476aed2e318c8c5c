package meme

import (
	"image"
	"time"

	"github.com/google/uuid"
)

// --- Meme Domain Model ---

// Meme pairs an original picture with its captioned, flattened derivative.
// Fields are unexported so a Meme cannot change after construction; the
// store hands out copies of the value.
type Meme struct {
	id            string
	topText       string
	bottomText    string
	originalImage image.Image
	memedImage    image.Image
	createdAt     time.Time
}

// NewMeme builds a Meme with a fresh id. Empty captions mean "no caption".
func NewMeme(topText, bottomText string, originalImage, memedImage image.Image) Meme {
	return Meme{
		id:            uuid.NewString(),
		topText:       topText,
		bottomText:    bottomText,
		originalImage: originalImage,
		memedImage:    memedImage,
		createdAt:     time.Now(),
	}
}

func (m Meme) ID() string                 { return m.id }
func (m Meme) TopText() string            { return m.topText }
func (m Meme) BottomText() string         { return m.bottomText }
func (m Meme) OriginalImage() image.Image { return m.originalImage }
func (m Meme) MemedImage() image.Image    { return m.memedImage }
func (m Meme) CreatedAt() time.Time       { return m.createdAt }

// Variant selects which picture of a Meme to serve.
type Variant string

const (
	VariantMemed     Variant = "memed"
	VariantOriginal  Variant = "original"
	VariantThumbnail Variant = "thumbnail"
)

// ParseVariant maps a query value to a Variant; empty means memed.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantMemed:
		return VariantMemed, nil
	case VariantOriginal:
		return VariantOriginal, nil
	case VariantThumbnail:
		return VariantThumbnail, nil
	default:
		return "", ErrInvalidVariant
	}
}

// --- UseCase Inputs ---

// GridInput describes the grid container. A zero Width or Columns and a nil
// Spacing take the defaults of a three-column phone-width layout.
type GridInput struct {
	Width   float64
	Columns int
	Spacing *float64
}

type ImageInput struct {
	Index   int
	Variant Variant
}

// --- UseCase Outputs ---

// Entry is a Meme together with its position in the store.
type Entry struct {
	Index int
	Meme  Meme
}

type TableOutput struct {
	Rows  []Entry
	Total int
}

type GridOutput struct {
	Cells    []Entry
	Columns  int
	Spacing  float64
	ItemSize float64
	Total    int
}

type DetailOutput struct {
	Entry Entry
}

type ImageOutput struct {
	Data        []byte
	ContentType string
}
