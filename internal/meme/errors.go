package meme

import "errors"

var (
	ErrMemeNotFound   = errors.New("meme not found")
	ErrInvalidVariant = errors.New("invalid image variant")
	ErrInvalidGrid    = errors.New("invalid grid layout")
)
