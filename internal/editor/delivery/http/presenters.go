package http

import (
	"meme-studio/internal/editor"
)

// --- Request DTOs ---

type acquireReq struct {
	Tag  int    `form:"tag"`
	Name string `form:"name" binding:"omitempty,max=255"`
}

type captionReq struct {
	Text string `json:"text" binding:"max=500"`
}

type completeReq struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

// --- Response DTOs ---

type sessionResp struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	TopText     string `json:"top_text"`
	BottomText  string `json:"bottom_text"`
	HasImage    bool   `json:"has_image"`
	ImageWidth  int    `json:"image_width,omitempty"`
	ImageHeight int    `json:"image_height,omitempty"`
}

func (h *handler) newSessionResp(out editor.SessionOutput) sessionResp {
	return sessionResp{
		ID:          out.ID,
		State:       out.State.String(),
		TopText:     out.TopText,
		BottomText:  out.BottomText,
		HasImage:    out.HasImage,
		ImageWidth:  out.ImageWidth,
		ImageHeight: out.ImageHeight,
	}
}

type acquireResp struct {
	Session sessionResp `json:"session"`
	Source  string      `json:"source"`
}

func (h *handler) newAcquireResp(out editor.AcquireOutput) acquireResp {
	return acquireResp{
		Session: h.newSessionResp(out.Session),
		Source:  out.Source.String(),
	}
}

type completeResp struct {
	Session sessionResp `json:"session"`
	Saved   bool        `json:"saved"`
	Index   *int        `json:"index,omitempty"`
	MemeID  string      `json:"meme_id,omitempty"`
}

func (h *handler) newCompleteResp(out editor.CompleteOutput) completeResp {
	resp := completeResp{
		Session: h.newSessionResp(out.Session),
		Saved:   out.Saved,
		MemeID:  out.MemeID,
	}
	if out.Saved {
		index := out.Index
		resp.Index = &index
	}
	return resp
}

type libraryResp struct {
	Names []string `json:"names"`
}
