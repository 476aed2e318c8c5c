package http

import (
	"errors"
	"net/http"

	"meme-studio/internal/editor"
	"meme-studio/internal/editor/acquire"
	pkgErrors "meme-studio/pkg/errors"
	"meme-studio/pkg/imaging"
)

var (
	errMissingSessionID = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errUploadTooLarge   = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image upload too large")
	errImageTooLarge    = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image dimensions too large")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors come back as nil and are reported as internal errors.
func (h *handler) mapError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, editor.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "editor session not found")
	case errors.Is(err, editor.ErrInvalidField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "field must be top or bottom")
	case errors.Is(err, editor.ErrShareInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, "a share is waiting for completion")
	case errors.Is(err, editor.ErrNoPendingShare):
		return pkgErrors.NewHTTPError(http.StatusConflict, "no share is waiting for completion")
	case errors.Is(err, editor.ErrEditorClosed):
		return pkgErrors.NewHTTPError(http.StatusConflict, "meme already shared, open a new session")
	case errors.Is(err, editor.ErrSourceUnavailable):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "image source unavailable")
	case errors.Is(err, acquire.ErrInvalidName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "name must be a plain file name")
	case errors.Is(err, acquire.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "library image not found")
	case errors.Is(err, imaging.ErrUnsupportedImage), errors.Is(err, imaging.ErrEmptyImage):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported image")
	case errors.Is(err, imaging.ErrImageTooLarge):
		return errImageTooLarge
	case errors.As(err, &tooLarge):
		return errUploadTooLarge
	default:
		return nil
	}
}

// silent reports errors that end a request without a body: the user backed
// out, or asked to share before picking an image.
func silent(err error) bool {
	return errors.Is(err, editor.ErrNoImageSelected) || errors.Is(err, editor.ErrAcquisitionCancelled)
}
