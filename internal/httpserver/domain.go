package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	editorHTTP "meme-studio/internal/editor/delivery/http"
	memeHTTP "meme-studio/internal/meme/delivery/http"
	"meme-studio/internal/middleware"
)

const memesPath = "/api/v1/memes"

// setupMemeDomain registers the read-only browsing views.
func (srv HTTPServer) setupMemeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := memeHTTP.New(srv.l, srv.memeUC, memesPath)

	// Routes: /api/v1/memes/...
	memeHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Meme domain registered")
	return nil
}

// setupEditorDomain registers editor sessions and the photo library listing.
func (srv HTTPServer) setupEditorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := editorHTTP.New(srv.l, srv.editorUC, srv.maxUploadBytes)

	// Routes: /api/v1/editor/sessions/..., /api/v1/library
	editorHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Editor domain registered")
	return nil
}
