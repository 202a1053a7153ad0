package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultOEmbedBase = "https://www.youtube.com/oembed"

// Metadata is the subset of the oEmbed response we display.
type Metadata struct {
	Title        string `json:"title"`
	Channel      string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// OEmbedClient fetches video title/channel/thumbnail from YouTube's
// oEmbed endpoint. No API key required.
type OEmbedClient struct {
	base string
	http *http.Client
}

func NewOEmbedClient() *OEmbedClient {
	return &OEmbedClient{base: defaultOEmbedBase, http: &http.Client{}}
}

// NewOEmbedClientWithBase is used by tests to point at a local server.
func NewOEmbedClientWithBase(base string) *OEmbedClient {
	return &OEmbedClient{base: base, http: &http.Client{}}
}

// Lookup fetches metadata for a watch URL. Callers treat failures as
// non-fatal: a summary without a title is still a summary.
func (c *OEmbedClient) Lookup(ctx context.Context, watchURL string) (*Metadata, error) {
	u := c.base + "?url=" + url.QueryEscape(watchURL) + "&format=json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed lookup failed: status %d", resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode oembed response: %w", err)
	}
	return &meta, nil
}
