// Package memeapi is a small client for the meme browsing endpoints.
package memeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned for indexes outside the store.
var ErrNotFound = errors.New("meme not found")

// Client is the meme-studio HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client for the API served at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Table fetches the table view.
func (c *Client) Table(ctx context.Context) (Table, error) {
	var out Table
	err := c.get(ctx, "/api/v1/memes/table", nil, &out)
	return out, err
}

// Grid fetches the grid view laid out for req.
func (c *Client) Grid(ctx context.Context, req GridRequest) (Grid, error) {
	q := url.Values{}
	if req.Width > 0 {
		q.Set("width", strconv.FormatFloat(req.Width, 'f', -1, 64))
	}
	if req.Columns > 0 {
		q.Set("columns", strconv.Itoa(req.Columns))
	}
	if req.Spacing > 0 {
		q.Set("spacing", strconv.FormatFloat(req.Spacing, 'f', -1, 64))
	}

	var out Grid
	err := c.get(ctx, "/api/v1/memes/grid", q, &out)
	return out, err
}

// Detail fetches a single meme by index.
func (c *Client) Detail(ctx context.Context, index int) (Meme, error) {
	var out detail
	if err := c.get(ctx, fmt.Sprintf("/api/v1/memes/%d", index), nil, &out); err != nil {
		return Meme{}, err
	}
	return out.Meme, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call meme API: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("meme API error: %d", resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("meme API error: %d %s", resp.StatusCode, env.Message)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
