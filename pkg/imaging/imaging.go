// Package imaging decodes uploaded pictures, encodes PNG output and derives
// thumbnails for the browsing views.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrEmptyImage       = errors.New("image has no pixels")
	ErrImageTooLarge    = errors.New("image dimensions exceed the pixel limit")
)

// Decode reads one image in any registered format (png, jpeg, gif, bmp,
// tiff, webp) and returns it together with the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedImage
		}
		return nil, "", fmt.Errorf("imaging.Decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, "", ErrEmptyImage
	}
	return img, format, nil
}

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(data []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeLimit is Decode for seekable input that refuses images with more than
// maxPixels pixels before their raster is allocated. maxPixels <= 0 disables
// the check.
func DecodeLimit(r io.ReadSeeker, maxPixels int64) (image.Image, string, error) {
	if maxPixels > 0 {
		start, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, "", fmt.Errorf("imaging.DecodeLimit: %w", err)
		}
		cfg, _, err := image.DecodeConfig(r)
		if err != nil {
			if errors.Is(err, image.ErrFormat) {
				return nil, "", ErrUnsupportedImage
			}
			return nil, "", fmt.Errorf("imaging.DecodeLimit: %w", err)
		}
		if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
			return nil, "", fmt.Errorf("imaging.DecodeLimit: %dx%d: %w", cfg.Width, cfg.Height, ErrImageTooLarge)
		}
		if _, err := r.Seek(start, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("imaging.DecodeLimit: %w", err)
		}
	}
	return Decode(r)
}

// DecodeBytesLimit is DecodeLimit over an in-memory buffer.
func DecodeBytesLimit(data []byte, maxPixels int64) (image.Image, string, error) {
	return DecodeLimit(bytes.NewReader(data), maxPixels)
}

// EncodePNG encodes img as PNG with default compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imaging.EncodePNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ToRGBA copies img into a new RGBA whose bounds start at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Thumbnail scales img to a size x size square, filling the square and
// cropping the overflow around the centre (aspect fill).
func Thumbnail(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	src := img.Bounds()
	if src.Empty() || size <= 0 {
		return dst
	}

	// Crop the largest centred square, then scale it.
	side := min(src.Dx(), src.Dy())
	x0 := src.Min.X + (src.Dx()-side)/2
	y0 := src.Min.Y + (src.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
	return dst
}

// FitRect returns the largest rectangle with the aspect ratio of src that
// fits into bounds, centred in it (aspect fit).
func FitRect(src image.Rectangle, bounds image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	bw, bh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 || bw == 0 || bh == 0 {
		return image.Rectangle{}
	}

	w, h := bw, sh*bw/sw
	if h > bh {
		w, h = sw*bh/sh, bh
	}
	x := bounds.Min.X + (bw-w)/2
	y := bounds.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
