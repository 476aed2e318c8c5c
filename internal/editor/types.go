package editor

import (
	"image"

	"meme-studio/internal/meme"
)

// State is the position of an Editor in its workflow.
type State int

const (
	StateIdle State = iota
	StateImageSelected
	StateComposed
	StateShared
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateImageSelected:
		return "image_selected"
	case StateComposed:
		return "composed"
	case StateShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Source is where an image is acquired from.
type Source int

const (
	SourceCapture Source = iota
	SourceLibrary
)

func (s Source) String() string {
	if s == SourceCapture {
		return "capture"
	}
	return "library"
}

// Field names one of the two caption inputs.
type Field string

const (
	FieldTop    Field = "top"
	FieldBottom Field = "bottom"
)

// ParseField validates a caption field name.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTop, FieldBottom:
		return Field(s), nil
	default:
		return "", ErrInvalidField
	}
}

const (
	DefaultTopPlaceholder    = "TOP"
	DefaultBottomPlaceholder = "BOTTOM"
)

// ShareResult is what a share surface reports once it closes.
type ShareResult struct {
	Completed bool
}

// ShareOutcome is the result of completing a share.
type ShareOutcome struct {
	Saved bool
	Index int
	Meme  meme.Meme
}

// Snapshot is a read-only view of an Editor.
type Snapshot struct {
	State      State
	TopText    string
	BottomText string
	Image      image.Image
}

// SessionOutput describes one editor session as seen by clients.
type SessionOutput struct {
	ID          string
	State       State
	TopText     string
	BottomText  string
	HasImage    bool
	ImageWidth  int
	ImageHeight int
}

// AcquireInput selects an image for a session. Data carries uploaded bytes;
// LibraryName names a file in the photo library instead.
type AcquireInput struct {
	SessionID   string
	Tag         int
	Data        []byte
	LibraryName string
}

type AcquireOutput struct {
	Session SessionOutput
	Source  Source
}

type CaptionInput struct {
	SessionID string
	Field     Field
	Text      string
}

// ShareOutput is the flattened meme handed to the share surface.
type ShareOutput struct {
	Session     SessionOutput
	Data        []byte
	ContentType string
}

type CompleteInput struct {
	SessionID string
	Accepted  bool
}

type CompleteOutput struct {
	Session SessionOutput
	Saved   bool
	Index   int
	MemeID  string
}
