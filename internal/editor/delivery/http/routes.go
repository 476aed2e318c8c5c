package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/internal/middleware"
)

// RegisterRoutes maps the editor session endpoints and the photo library
// listing onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/library", mw.RateLimit(), h.Library)

	sessions := rg.Group("/editor/sessions", mw.RateLimit())
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Close)
		sessions.POST("/:id/image", h.Acquire)
		sessions.PUT("/:id/captions/:field", h.SetCaption)
		sessions.POST("/:id/captions/:field/focus", h.Focus)
		sessions.POST("/:id/share", h.RequestShare)
		sessions.POST("/:id/share/complete", h.CompleteShare)
		sessions.POST("/:id/share/cancel", h.CancelShare)
		sessions.POST("/:id/cancel", h.Cancel)
	}
}
