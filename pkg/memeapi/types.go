package memeapi

import (
	"encoding/json"
	"time"
)

// envelope mirrors pkg/response.Resp on the wire.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// Meme is one saved meme as listed by the browsing views.
type Meme struct {
	Index        int       `json:"index"`
	ID           string    `json:"id"`
	TopText      string    `json:"top_text"`
	BottomText   string    `json:"bottom_text"`
	CreatedAt    time.Time `json:"created_at"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

type Table struct {
	Rows  []Meme `json:"rows"`
	Total int    `json:"total"`
}

type GridRequest struct {
	Width   float64
	Columns int
	Spacing float64
}

type Grid struct {
	Cells    []Meme  `json:"cells"`
	Columns  int     `json:"columns"`
	Spacing  float64 `json:"spacing"`
	ItemSize float64 `json:"item_size"`
	Total    int     `json:"total"`
}

type detail struct {
	Meme Meme `json:"meme"`
}
