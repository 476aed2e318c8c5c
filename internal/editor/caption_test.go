package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meme-studio/internal/editor"
)

func TestCaptionFocus(t *testing.T) {
	t.Run("Untouched Placeholder Clears", func(t *testing.T) {
		c := editor.NewCaption("TOP")
		assert.Equal(t, "TOP", c.Text)

		c.Focus()
		assert.Equal(t, "", c.Text)
	})

	t.Run("User Text Survives Refocus", func(t *testing.T) {
		c := editor.NewCaption("TOP")
		c.Focus()
		c.Set("hello")

		c.Focus()
		c.Focus()
		assert.Equal(t, "hello", c.Text)
	})

	t.Run("Changed Before Focus Is Not Cleared", func(t *testing.T) {
		c := editor.NewCaption("BOTTOM")
		c.Set("BOTTOM TEXT")

		c.Focus()
		assert.Equal(t, "BOTTOM TEXT", c.Text)
	})

	t.Run("Literal Placeholder Text Is Cleared", func(t *testing.T) {
		c := editor.NewCaption("TOP")
		c.Set("TOP")

		c.Focus()
		assert.Equal(t, "", c.Text)
	})

	t.Run("Other Field Sentinel Is Kept", func(t *testing.T) {
		c := editor.NewCaption("TOP")
		c.Set("BOTTOM")

		c.Focus()
		assert.Equal(t, "BOTTOM", c.Text)
	})

	t.Run("Reset Does Not Restore Placeholder", func(t *testing.T) {
		c := editor.NewCaption("TOP")
		c.Reset()
		assert.Equal(t, "", c.Text)

		c.Focus()
		assert.Equal(t, "", c.Text)
	})
}
