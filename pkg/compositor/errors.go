package compositor

import "errors"

var (
	ErrNoBackground  = errors.New("compositor: background image is required")
	ErrInvalidFont   = errors.New("compositor: invalid font data")
	ErrInvalidLayout = errors.New("compositor: invalid layout")
)
