package httpserver

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gin-gonic/gin"

	"meme-studio/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "meme-studio"
)

// Directory states reported by /ready. A missing directory is fine: an
// absent library lists no images and the outbox is created on first write.
const (
	dirOK       = "ok"
	dirMissing  = "missing"
	dirUnset    = "unset"
	dirUnusable = "unusable"
)

type statusResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type readyResp struct {
	statusResp
	Memes   *int   `json:"memes,omitempty"`
	Library string `json:"library"`
	Outbox  string `json:"outbox"`
}

func newStatusResp(status string) statusResp {
	return statusResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newStatusResp("healthy"))
}

// readyCheck reports the meme store and the library and outbox directories.
// It answers 503 while the store is missing or a directory is unusable.
// @Summary Readiness Check
// @Description Report the meme count and collaborator directories
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A collaborator is missing or unusable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	out := readyResp{
		statusResp: newStatusResp("ready"),
		Library:    dirState(srv.libraryDir),
		Outbox:     dirState(srv.outboxDir),
	}
	if srv.store != nil {
		n := srv.store.Count()
		out.Memes = &n
	}

	if srv.store == nil || out.Library == dirUnusable || out.Outbox == dirUnusable {
		out.Status = "not ready"
		response.ServiceUnavailable(c, out)
		return
	}
	response.OK(c, out)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newStatusResp("alive"))
}

func dirState(path string) string {
	if path == "" {
		return dirUnset
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return dirMissing
	case err != nil, !info.IsDir():
		return dirUnusable
	}
	return dirOK
}
