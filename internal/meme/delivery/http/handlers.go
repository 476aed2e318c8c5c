package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/pkg/response"
)

// Table godoc
// @Summary     Table view
// @Description Lists every sent meme as a row, in the order they were saved.
// @Tags        Memes
// @Produce     json
// @Success     200 {object} tableResp
// @Router      /api/v1/memes/table [GET]
func (h *handler) Table(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Table(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Table: %v", err)
		h.fail(c, err)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// Grid godoc
// @Summary     Grid view
// @Description Lists every sent meme as a square cell sized for the given container.
// @Tags        Memes
// @Produce     json
// @Param       width   query number false "Container width (default: 375)"
// @Param       columns query int    false "Cells per row (default: 3)"
// @Param       spacing query number false "Gap between cells (default: 3)"
// @Success     200 {object} gridResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/memes/grid [GET]
func (h *handler) Grid(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGridReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Grid(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Grid: %v", err)
		h.fail(c, err)
		return
	}

	response.OK(c, h.newGridResp(output))
}

// Detail godoc
// @Summary     Meme detail
// @Description Returns a single meme by its position in the store.
// @Tags        Memes
// @Produce     json
// @Param       index path int true "Meme index"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memes/{index} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, index)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Image godoc
// @Summary     Meme picture
// @Description Returns the flattened meme, the original picture, or a square thumbnail as PNG.
// @Tags        Memes
// @Produce     png
// @Param       index   path  int    true  "Meme index"
// @Param       variant query string false "memed (default), original or thumbnail"
// @Success     200
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memes/{index}/image [GET]
func (h *handler) Image(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Image(ctx, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.PNG(c, output.Data)
}

func (h *handler) fail(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "internal.meme.delivery.http: unhandled error: %v", err)
	response.InternalError(c, err)
}
