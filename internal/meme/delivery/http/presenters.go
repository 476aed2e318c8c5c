package http

import (
	"fmt"

	"meme-studio/internal/meme"
	"meme-studio/pkg/response"
)

// --- Request DTOs ---

// gridReq leaves Spacing nil when the query omits it, so spacing=0 asks for
// a gapless grid instead of the default.
type gridReq struct {
	Width   float64  `form:"width"   binding:"omitempty,gt=0,lte=10000"`
	Columns int      `form:"columns" binding:"omitempty,min=1,max=12"`
	Spacing *float64 `form:"spacing" binding:"omitempty,gte=0,lte=1000"`
}

func (r gridReq) toInput() meme.GridInput {
	return meme.GridInput{
		Width:   r.Width,
		Columns: r.Columns,
		Spacing: r.Spacing,
	}
}

// --- Response DTOs ---

type memeResp struct {
	Index        int               `json:"index"`
	ID           string            `json:"id"`
	TopText      string            `json:"top_text"`
	BottomText   string            `json:"bottom_text"`
	CreatedAt    response.DateTime `json:"created_at"`
	ImageURL     string            `json:"image_url"`
	ThumbnailURL string            `json:"thumbnail_url"`
}

func (h *handler) newMemeResp(e meme.Entry) memeResp {
	return memeResp{
		Index:        e.Index,
		ID:           e.Meme.ID(),
		TopText:      e.Meme.TopText(),
		BottomText:   e.Meme.BottomText(),
		CreatedAt:    response.DateTime(e.Meme.CreatedAt()),
		ImageURL:     fmt.Sprintf("%s/%d/image", h.baseURL, e.Index),
		ThumbnailURL: fmt.Sprintf("%s/%d/image?variant=%s", h.baseURL, e.Index, meme.VariantThumbnail),
	}
}

type tableResp struct {
	Rows  []memeResp `json:"rows"`
	Total int        `json:"total"`
}

func (h *handler) newTableResp(out meme.TableOutput) tableResp {
	rows := make([]memeResp, len(out.Rows))
	for i, e := range out.Rows {
		rows[i] = h.newMemeResp(e)
	}
	return tableResp{Rows: rows, Total: out.Total}
}

type gridResp struct {
	Cells    []memeResp `json:"cells"`
	Columns  int        `json:"columns"`
	Spacing  float64    `json:"spacing"`
	ItemSize float64    `json:"item_size"`
	Total    int        `json:"total"`
}

func (h *handler) newGridResp(out meme.GridOutput) gridResp {
	cells := make([]memeResp, len(out.Cells))
	for i, e := range out.Cells {
		cells[i] = h.newMemeResp(e)
	}
	return gridResp{
		Cells:    cells,
		Columns:  out.Columns,
		Spacing:  out.Spacing,
		ItemSize: out.ItemSize,
		Total:    out.Total,
	}
}

type detailResp struct {
	Meme memeResp `json:"meme"`
}

func (h *handler) newDetailResp(out meme.DetailOutput) detailResp {
	return detailResp{Meme: h.newMemeResp(out.Entry)}
}
