package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// embeddedChannelIDRe finds the channel ID inside the page's embedded
// player config when no og:url meta tag is present.
var embeddedChannelIDRe = regexp.MustCompile(`"channelId":"(UC[0-9A-Za-z_-]{22})"`)

// ChannelInfo is what a page resolve yields: the canonical ID plus the
// display name shown in listings.
type ChannelInfo struct {
	ID   string
	Name string
}

// Resolver turns handle/custom/user channel URLs into channel IDs by
// fetching the channel page and reading its meta tags.
type Resolver struct {
	http      *http.Client
	userAgent string
}

func NewResolver() *Resolver {
	return &Resolver{
		http:      &http.Client{},
		userAgent: "Mozilla/5.0 (compatible; podsummary/1.0)",
	}
}

// Resolve returns channel ID and name for any supported channel URL.
// /channel/UC... URLs short-circuit without a fetch (the name is then
// resolved later from the feed itself).
func (r *Resolver) Resolve(ctx context.Context, channelURL string) (*ChannelInfo, error) {
	if id, ok := ParseChannelID(channelURL); ok {
		return &ChannelInfo{ID: id}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, channelURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build channel page request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch channel page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch channel page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read channel page: %w", err)
	}

	return ParseChannelPage(body)
}

// ParseChannelPage extracts the channel ID and name from channel page HTML.
// Split out from Resolve so it can be tested against fixture HTML.
func ParseChannelPage(body []byte) (*ChannelInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse channel page: %w", err)
	}

	info := &ChannelInfo{}

	if href, ok := doc.Find(`meta[property="og:url"]`).Attr("content"); ok {
		if id, found := ParseChannelID(href); found {
			info.ID = id
		}
	}
	if info.ID == "" {
		if m := embeddedChannelIDRe.FindSubmatch(body); m != nil {
			info.ID = string(m[1])
		}
	}
	if name, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		info.Name = name
	}

	if info.ID == "" {
		return nil, fmt.Errorf("no channel ID found on page")
	}
	return info, nil
}
