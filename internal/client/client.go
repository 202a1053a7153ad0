// Package client is a typed HTTP client for the podsummary API. The
// web UI consumes the backend exclusively through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/collymonsterr/podsummary/internal/model"
)

// GenericFailure is shown when the server gave no usable detail.
const GenericFailure = "An error occurred while processing your request"

// APIError is any non-2xx response. Message prefers the server's detail
// field and falls back to a generic string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// HealthResponse is the body of GET /api/.
type HealthResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Health probes GET /api/.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/", nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches GET /api/history, newest first.
func (c *Client) History(ctx context.Context) ([]model.Transcript, error) {
	var out []model.Transcript
	if err := c.do(ctx, http.MethodGet, "/api/history", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summarize posts a video URL to /api/summarize.
func (c *Client) Summarize(ctx context.Context, youtubeURL string) (*model.SummarizeResponse, error) {
	var out model.SummarizeResponse
	body := model.SummarizeRequest{YoutubeURL: youtubeURL}
	if err := c.do(ctx, http.MethodPost, "/api/summarize", body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTranscript removes one history entry, authenticated by adminKey.
func (c *Client) DeleteTranscript(ctx context.Context, id, adminKey string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/transcript/"+id, nil, adminKey, nil)
}

// ChannelVideos posts a channel URL to /api/channel-videos.
func (c *Client) ChannelVideos(ctx context.Context, channelURL string) (*model.ChannelVideosResponse, error) {
	var out model.ChannelVideosResponse
	body := model.ChannelVideosRequest{ChannelURL: channelURL}
	if err := c.do(ctx, http.MethodPost, "/api/channel-videos", body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one request/response cycle. A non-2xx status is decoded into
// an *APIError; out may be nil for calls with no interesting body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, adminKey string, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if adminKey != "" {
		req.Header.Set("admin-key", adminKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorDetail(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the server's error message from a failure body.
func errorDetail(raw []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
		Error  struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Error.Message != "" {
			return parsed.Error.Message
		}
	}
	return GenericFailure
}
