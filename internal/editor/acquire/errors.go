package acquire

import "errors"

var (
	ErrInvalidName = errors.New("invalid library image name")
	ErrNotFound    = errors.New("library image not found")
)
