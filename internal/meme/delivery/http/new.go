package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/internal/meme"
	"meme-studio/pkg/log"
)

// Handler is the public interface for the meme browsing HTTP delivery layer.
type Handler interface {
	Table(c *gin.Context)
	Grid(c *gin.Context)
	Detail(c *gin.Context)
	Image(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      meme.UseCase
	baseURL string
}

// New creates a new HTTP handler for the meme browsing views. baseURL is the
// path prefix the routes are mounted under; it is used to build image links.
func New(l log.Logger, uc meme.UseCase, baseURL string) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		baseURL: baseURL,
	}
}
