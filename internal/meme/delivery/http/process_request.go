package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meme-studio/internal/meme"
)

// processGridReq binds the grid query parameters.
func (h *handler) processGridReq(c *gin.Context) (gridReq, error) {
	var req gridReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIndex parses the :index path parameter.
func (h *handler) processIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errInvalidIndex
	}
	return index, nil
}

// processImageReq parses the :index path parameter and the variant query.
func (h *handler) processImageReq(c *gin.Context) (meme.ImageInput, error) {
	index, err := h.processIndex(c)
	if err != nil {
		return meme.ImageInput{}, err
	}
	variant, err := meme.ParseVariant(c.Query("variant"))
	if err != nil {
		return meme.ImageInput{}, h.mapError(err)
	}
	return meme.ImageInput{Index: index, Variant: variant}, nil
}
