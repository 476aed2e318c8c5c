package editor

// Caption is one caption input. It starts out showing its placeholder and
// clears itself the first time it gains focus, as long as the user has not
// replaced the placeholder. Text that happens to equal the placeholder is
// indistinguishable from it and is cleared too.
type Caption struct {
	Text        string
	Placeholder string
}

// NewCaption returns a Caption pre-populated with placeholder.
func NewCaption(placeholder string) Caption {
	return Caption{Text: placeholder, Placeholder: placeholder}
}

// Focus clears the text when it still equals the placeholder.
func (c *Caption) Focus() {
	if c.Placeholder != "" && c.Text == c.Placeholder {
		c.Text = ""
	}
}

// Set replaces the text.
func (c *Caption) Set(text string) {
	c.Text = text
}

// Reset empties the text. The placeholder is not restored.
func (c *Caption) Reset() {
	c.Text = ""
}
