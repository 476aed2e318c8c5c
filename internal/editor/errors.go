package editor

import "errors"

var (
	// ErrNoImageSelected aborts a share request made before any image was
	// acquired. Callers treat it as a silent no-op.
	ErrNoImageSelected      = errors.New("no image selected")
	ErrAcquisitionCancelled = errors.New("image acquisition cancelled")
	ErrShareCancelled       = errors.New("share cancelled")

	ErrSourceUnavailable = errors.New("image source unavailable")
	ErrShareInProgress   = errors.New("share in progress")
	ErrNoPendingShare    = errors.New("no pending share")
	ErrEditorClosed      = errors.New("editor closed")
	ErrInvalidField      = errors.New("invalid caption field")
	ErrSessionNotFound   = errors.New("editor session not found")
)
