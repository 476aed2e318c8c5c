package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"meme-studio/internal/editor"
)

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingSessionID
	}
	return id, nil
}

// processAcquireReq reads the multipart acquisition form. The image part is
// optional: a library pick may name a file instead, and a form with neither
// is a dismissed picker.
func (h *handler) processAcquireReq(c *gin.Context) (editor.AcquireInput, error) {
	id, err := h.processSessionID(c)
	if err != nil {
		return editor.AcquireInput{}, err
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var req acquireReq
	if err := c.ShouldBind(&req); err != nil {
		return editor.AcquireInput{}, err
	}

	input := editor.AcquireInput{SessionID: id, Tag: req.Tag, LibraryName: req.Name}

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return input, nil
	case err != nil:
		return editor.AcquireInput{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return editor.AcquireInput{}, err
	}
	defer f.Close()

	input.Data, err = io.ReadAll(f)
	if err != nil {
		return editor.AcquireInput{}, err
	}
	return input, nil
}

func (h *handler) processCaptionReq(c *gin.Context) (editor.CaptionInput, error) {
	id, err := h.processSessionID(c)
	if err != nil {
		return editor.CaptionInput{}, err
	}
	field, err := editor.ParseField(c.Param("field"))
	if err != nil {
		return editor.CaptionInput{}, h.mapError(err)
	}

	var req captionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return editor.CaptionInput{}, err
	}
	return editor.CaptionInput{SessionID: id, Field: field, Text: req.Text}, nil
}

func (h *handler) processFocusReq(c *gin.Context) (string, editor.Field, error) {
	id, err := h.processSessionID(c)
	if err != nil {
		return "", "", err
	}
	field, err := editor.ParseField(c.Param("field"))
	if err != nil {
		return "", "", h.mapError(err)
	}
	return id, field, nil
}

func (h *handler) processCompleteReq(c *gin.Context) (editor.CompleteInput, error) {
	id, err := h.processSessionID(c)
	if err != nil {
		return editor.CompleteInput{}, err
	}

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return editor.CompleteInput{}, err
	}
	return editor.CompleteInput{SessionID: id, Accepted: *req.Accepted}, nil
}
