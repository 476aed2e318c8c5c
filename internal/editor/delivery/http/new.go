package http

import (
	"github.com/gin-gonic/gin"

	"meme-studio/internal/editor"
	"meme-studio/pkg/log"
)

// Handler is the public interface for the editor session HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Close(c *gin.Context)
	Acquire(c *gin.Context)
	SetCaption(c *gin.Context)
	Focus(c *gin.Context)
	RequestShare(c *gin.Context)
	CompleteShare(c *gin.Context)
	CancelShare(c *gin.Context)
	Cancel(c *gin.Context)
	Library(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             editor.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for editor sessions. Uploads larger than
// maxUploadBytes are rejected.
func New(l log.Logger, uc editor.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
