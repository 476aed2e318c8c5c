// Package editor holds the meme editor workflow: caption inputs, the image
// source selector and the state machine that goes from an empty editor to a
// saved meme. An Editor is not safe for concurrent use; callers serialize
// access to it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"image"

	"meme-studio/internal/meme"
	"meme-studio/internal/meme/repository"
	"meme-studio/pkg/compositor"
	"meme-studio/pkg/imaging"
)

// Options configures an Editor. Zero values take the defaults.
type Options struct {
	Style             compositor.Style
	Viewport          image.Point
	TopPlaceholder    string
	BottomPlaceholder string
}

// Editor is one meme editing workflow. Memes are appended to the injected
// store only after a share surface reports completion.
type Editor struct {
	store    repository.Store
	composer Composer
	style    compositor.Style
	viewport image.Point

	state   State
	top     Caption
	bottom  Caption
	image   image.Image
	pending *meme.Meme
}

// New creates an Editor in the Idle state with placeholder captions.
func New(store repository.Store, composer Composer, opts Options) *Editor {
	if opts.Style.FontSize == 0 {
		opts.Style = compositor.DefaultStyle()
	}
	if opts.TopPlaceholder == "" {
		opts.TopPlaceholder = DefaultTopPlaceholder
	}
	if opts.BottomPlaceholder == "" {
		opts.BottomPlaceholder = DefaultBottomPlaceholder
	}

	return &Editor{
		store:    store,
		composer: composer,
		style:    opts.Style,
		viewport: opts.Viewport,
		state:    StateIdle,
		top:      NewCaption(opts.TopPlaceholder),
		bottom:   NewCaption(opts.BottomPlaceholder),
	}
}

// State returns the current workflow state.
func (e *Editor) State() State { return e.state }

// Snapshot returns the visible editor contents.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		State:      e.state,
		TopText:    e.top.Text,
		BottomText: e.bottom.Text,
		Image:      e.image,
	}
}

// Acquire asks acq for an image from the source that tag selects. On
// success the image replaces any previous one and the editor moves to
// ImageSelected. A cancelled or failed acquisition leaves the editor as it was.
func (e *Editor) Acquire(ctx context.Context, tag int, acq Acquirer) (Source, error) {
	src := SelectSource(tag)

	switch e.state {
	case StateComposed:
		return src, ErrShareInProgress
	case StateShared:
		return src, ErrEditorClosed
	}

	img, err := acq.Acquire(ctx, src)
	if err != nil {
		return src, err
	}
	if img == nil || img.Bounds().Empty() {
		return src, ErrAcquisitionCancelled
	}

	e.image = img
	e.state = StateImageSelected
	return src, nil
}

// SetCaption replaces the text of field.
func (e *Editor) SetCaption(field Field, text string) error {
	c, err := e.caption(field)
	if err != nil {
		return err
	}
	c.Set(text)
	return nil
}

// Focus gives field input focus, clearing an untouched placeholder.
func (e *Editor) Focus(field Field) error {
	c, err := e.caption(field)
	if err != nil {
		return err
	}
	c.Focus()
	return nil
}

func (e *Editor) caption(field Field) (*Caption, error) {
	switch e.state {
	case StateComposed:
		return nil, ErrShareInProgress
	case StateShared:
		return nil, ErrEditorClosed
	}

	switch field {
	case FieldTop:
		return &e.top, nil
	case FieldBottom:
		return &e.bottom, nil
	default:
		return nil, ErrInvalidField
	}
}

// RequestShare flattens the current image and captions and holds the
// resulting meme until the share surface reports back. Without an image it
// returns ErrNoImageSelected and nothing changes.
func (e *Editor) RequestShare() (image.Image, error) {
	switch e.state {
	case StateComposed:
		return nil, ErrShareInProgress
	case StateShared:
		return nil, ErrEditorClosed
	}
	if e.image == nil {
		return nil, ErrNoImageSelected
	}

	memed, err := e.composer.Compose(compositor.Layout{
		Background: e.image,
		Top:        e.top.Text,
		Bottom:     e.bottom.Text,
		Style:      e.style,
		Viewport:   e.viewport,
	})
	if err != nil {
		return nil, fmt.Errorf("editor.RequestShare: %w", err)
	}

	m := meme.NewMeme(e.top.Text, e.bottom.Text, e.image, memed)
	e.pending = &m
	e.state = StateComposed
	// The share surface gets its own copy; the pending meme stays as composed.
	return imaging.ToRGBA(memed), nil
}

// CompleteShare records the share surface's verdict. An accepted share
// appends the pending meme to the store and closes the editor; a rejected
// one returns to ImageSelected without saving.
func (e *Editor) CompleteShare(accepted bool) (ShareOutcome, error) {
	if e.state != StateComposed || e.pending == nil {
		return ShareOutcome{}, ErrNoPendingShare
	}

	m := *e.pending
	e.pending = nil

	if !accepted {
		e.state = StateImageSelected
		return ShareOutcome{}, nil
	}

	idx := e.store.Append(m)
	e.state = StateShared
	return ShareOutcome{Saved: true, Index: idx, Meme: m}, nil
}

// CancelShare drops the pending meme after the share surface was dismissed.
func (e *Editor) CancelShare() error {
	if e.state != StateComposed {
		return ErrNoPendingShare
	}
	e.pending = nil
	e.state = StateImageSelected
	return nil
}

// Cancel empties both captions, drops the image and any pending share and
// returns to Idle. The store is never touched.
func (e *Editor) Cancel() {
	e.top.Reset()
	e.bottom.Reset()
	e.image = nil
	e.pending = nil
	e.state = StateIdle
}

// Share runs a whole share round trip against sharer: compose, present,
// then save or discard depending on the result. A cancelled or failing
// share surface leaves the store untouched.
func (e *Editor) Share(ctx context.Context, sharer Sharer) (ShareOutcome, error) {
	img, err := e.RequestShare()
	if err != nil {
		return ShareOutcome{}, err
	}

	res, err := sharer.Share(ctx, img)
	if err != nil {
		if cancelErr := e.CancelShare(); cancelErr != nil {
			return ShareOutcome{}, errors.Join(err, cancelErr)
		}
		return ShareOutcome{}, err
	}

	return e.CompleteShare(res.Completed)
}
