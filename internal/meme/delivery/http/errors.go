package http

import (
	"errors"
	"net/http"

	"meme-studio/internal/meme"
	pkgErrors "meme-studio/pkg/errors"
)

var errInvalidIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "index must be a non-negative integer")

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors come back as nil and are reported as internal errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, meme.ErrMemeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "meme not found")
	case errors.Is(err, meme.ErrInvalidVariant):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "variant must be one of memed, original, thumbnail")
	case errors.Is(err, meme.ErrInvalidGrid):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "grid width too small for columns and spacing")
	default:
		return nil
	}
}
