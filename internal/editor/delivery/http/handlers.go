package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/pkg/response"
)

// Create godoc
// @Summary     Open an editor session
// @Description Starts an empty editor with placeholder captions.
// @Tags        Editor
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/editor/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Create(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Get godoc
// @Summary     Editor session state
// @Tags        Editor
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/editor/sessions/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Close godoc
// @Summary     Close an editor session
// @Description Discards the session. Unshared work is lost.
// @Tags        Editor
// @Param       id path string true "Session ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/editor/sessions/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Close(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	response.NoContent(c)
}

// Acquire godoc
// @Summary     Pick the meme picture
// @Description Tag 0 selects the camera, any other tag the photo library. Send the picture as the image part, or name a library file. A form with neither counts as a dismissed picker and returns 204.
// @Tags        Editor
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path     string true  "Session ID"
// @Param       tag   formData int    false "Source tag (0 = camera)"
// @Param       name  formData string false "Library file name"
// @Param       image formData file   false "Picture"
// @Success     200 {object} acquireResp
// @Success     204 "Acquisition cancelled"
// @Failure     413 {object} response.Resp "Upload or image dimensions too large"
// @Failure     415 {object} response.Resp "Unsupported image"
// @Failure     422 {object} response.Resp "Source unavailable"
// @Router      /api/v1/editor/sessions/{id}/image [POST]
func (h *handler) Acquire(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAcquireReq(c)
	if err != nil {
		if mapped := h.mapError(err); mapped != nil {
			err = mapped
		}
		response.Error(c, err)
		return
	}

	output, err := h.uc.Acquire(ctx, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newAcquireResp(output))
}

// SetCaption godoc
// @Summary     Set a caption
// @Tags        Editor
// @Accept      json
// @Produce     json
// @Param       id    path string     true "Session ID"
// @Param       field path string     true "top or bottom"
// @Param       body  body captionReq true "Caption text"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/editor/sessions/{id}/captions/{field} [PUT]
func (h *handler) SetCaption(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCaptionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetCaption(ctx, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Focus godoc
// @Summary     Focus a caption
// @Description Clears the caption if it still shows its placeholder.
// @Tags        Editor
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       field path string true "top or bottom"
// @Success     200 {object} sessionResp
// @Router      /api/v1/editor/sessions/{id}/captions/{field}/focus [POST]
func (h *handler) Focus(c *gin.Context) {
	ctx := c.Request.Context()

	id, field, err := h.processFocusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Focus(ctx, id, field)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// RequestShare godoc
// @Summary     Compose and share
// @Description Flattens picture and captions into a PNG for the share surface. Nothing is saved until the share is completed. Without a picture the request is a no-op and returns 204.
// @Tags        Editor
// @Produce     png
// @Param       id path string true "Session ID"
// @Success     200
// @Success     204 "No image selected"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/editor/sessions/{id}/share [POST]
func (h *handler) RequestShare(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RequestShare(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("X-Editor-State", output.Session.State.String())
	response.PNG(c, output.Data)
}

// CompleteShare godoc
// @Summary     Complete a share
// @Description Saves the meme when the share surface reports it as completed; otherwise the editor returns to editing.
// @Tags        Editor
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body completeReq true "Share result"
// @Success     200 {object} completeResp
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/editor/sessions/{id}/share/complete [POST]
func (h *handler) CompleteShare(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CompleteShare(ctx, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// CancelShare godoc
// @Summary     Cancel a share
// @Description The share surface was dismissed. Nothing is saved.
// @Tags        Editor
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/editor/sessions/{id}/share/cancel [POST]
func (h *handler) CancelShare(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CancelShare(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Cancel godoc
// @Summary     Reset the editor
// @Description Clears both captions and the picture and returns to idle.
// @Tags        Editor
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Router      /api/v1/editor/sessions/{id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Library godoc
// @Summary     Photo library
// @Description Lists the picture names that can be acquired by name.
// @Tags        Editor
// @Produce     json
// @Success     200 {object} libraryResp
// @Router      /api/v1/library [GET]
func (h *handler) Library(c *gin.Context) {
	ctx := c.Request.Context()

	names, err := h.uc.Library(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, libraryResp{Names: names})
}

func (h *handler) fail(c *gin.Context, err error) {
	if silent(err) {
		response.NoContent(c)
		return
	}
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "internal.editor.delivery.http: unhandled error: %v", err)
	response.InternalError(c, err)
}
