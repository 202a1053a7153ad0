// Package transcript fetches video transcripts through SearchAPI.io.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBase = "https://www.searchapi.io/api/v1/youtube-transcript"

// ErrNoTranscript is returned when the provider has no transcript for
// the video (private, music-only, captions disabled).
var ErrNoTranscript = fmt.Errorf("no transcript found for this video")

// StatusError carries a non-200 provider response so handlers can
// propagate the upstream status and detail.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to get transcript: status %d: %s", e.StatusCode, e.Body)
}

type segment struct {
	Text string `json:"text"`
}

type apiResponse struct {
	Transcript []segment `json:"transcript"`
}

// Client fetches English transcripts for a video ID.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{base: defaultBase, apiKey: apiKey, http: &http.Client{}}
}

// NewClientWithBase is used by tests to point at a local server.
func NewClientWithBase(base, apiKey string) *Client {
	return &Client{base: base, apiKey: apiKey, http: &http.Client{}}
}

// Fetch returns the full transcript text, segments joined with spaces.
func (c *Client) Fetch(ctx context.Context, videoID string) (string, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("video_id", videoID)
	q.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcript request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return "", fmt.Errorf("read transcript response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode transcript response: %w", err)
	}
	if parsed.Transcript == nil {
		return "", ErrNoTranscript
	}

	texts := make([]string, 0, len(parsed.Transcript))
	for _, s := range parsed.Transcript {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " "), nil
}
