package view

import (
	"context"
	"net/url"
)

const msgNoChannelURL = "No channel URL provided"

// ChannelView lists a channel's recent uploads. The channel URL comes
// from the route query; a missing one is a terminal error for the view,
// and the listing is fetched exactly once per mount.
type ChannelView struct {
	backend Backend

	ChannelURL string
	Videos     Async[[]ChannelVideo]
	Name       string

	loaded bool
}

// ChannelVideo is one row of the listing with its action links.
type ChannelVideo struct {
	Position  int
	Title     string
	Thumbnail string
	WatchURL  string
	// SummarizeURL deep-links back to the home view with the video
	// pre-filled and auto-submitted.
	SummarizeURL string
}

func NewChannelView(backend Backend, query url.Values) *ChannelView {
	v := &ChannelView{backend: backend, ChannelURL: query.Get("url")}
	if v.ChannelURL == "" {
		v.Videos.fail(msgNoChannelURL)
		v.loaded = true
	}
	return v
}

// Load fetches the listing. Calling it again is a no-op, so remounting
// logic upstream cannot double-fetch.
func (v *ChannelView) Load(ctx context.Context) {
	if v.loaded {
		return
	}
	v.loaded = true

	v.Videos.start()
	resp, err := v.backend.ChannelVideos(ctx, v.ChannelURL)
	if err != nil {
		v.Videos.fail(messageOf(err))
		return
	}
	v.Name = resp.ChannelName
	rows := make([]ChannelVideo, 0, len(resp.Videos))
	for _, item := range resp.Videos {
		rows = append(rows, ChannelVideo{
			Position:     item.Position,
			Title:        item.Title,
			Thumbnail:    item.Thumbnail,
			WatchURL:     item.Link,
			SummarizeURL: "/?video=" + url.QueryEscape(item.Link),
		})
	}
	v.Videos.succeed(rows)
}

// Empty reports a successful lookup that found no uploads.
func (v *ChannelView) Empty() bool {
	return v.Videos.Phase == PhaseSuccess && len(v.Videos.Value) == 0
}
