package compositor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

type faceKey struct {
	family string
	size   float64
}

// RegisterFont parses TTF/OTF data and makes it available under family.
// Family names are case-insensitive.
func (c *Compositor) RegisterFont(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFont, family, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fonts[normalizeFamily(family)] = f
	// Faces of a replaced font must not be served from cache.
	c.faces.Purge()
	return nil
}

// RegisterFontFile reads a font file from disk and registers it.
func (c *Compositor) RegisterFontFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("compositor.RegisterFontFile: %w", err)
	}
	return c.RegisterFont(family, data)
}

// HasFont reports whether family resolves to a registered font rather than
// the Go Bold fallback.
func (c *Compositor) HasFont(family string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.fonts[normalizeFamily(family)]
	return ok
}

// face must be called with c.mu held.
func (c *Compositor) face(family string, size float64) (font.Face, error) {
	key := faceKey{family: normalizeFamily(family), size: size}
	if f, ok := c.faces.Get(key); ok {
		return f, nil
	}

	f, ok := c.fonts[key.family]
	if !ok {
		f = c.fallback
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("compositor.face %s@%.0f: %w", family, size, err)
	}
	c.faces.Add(key, face)
	return face, nil
}

func parseFallback() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
