package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/internal/middleware"
)

// RegisterRoutes maps the browsing views onto rg. All routes are read-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	memes := rg.Group("/memes", mw.RateLimit())
	{
		memes.GET("/table", h.Table)
		memes.GET("/grid", h.Grid)
		memes.GET("/:index", h.Detail)
		memes.GET("/:index/image", h.Image)
	}
}
