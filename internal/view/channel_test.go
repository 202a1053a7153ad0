package view

import (
	"context"
	"net/url"
	"testing"

	"github.com/collymonsterr/podsummary/internal/client"
	"github.com/collymonsterr/podsummary/internal/model"
)

func TestChannelViewMissingURLIsTerminalError(t *testing.T) {
	backend := &fakeBackend{}
	v := NewChannelView(backend, url.Values{})

	v.Load(context.Background())

	if backend.channelCalls != 0 {
		t.Fatal("lookup performed without a channel URL")
	}
	if v.Videos.Phase != PhaseError || v.Videos.Err == "" {
		t.Fatalf("videos = %+v, want terminal error", v.Videos)
	}
}

func TestChannelViewLoadsOncePerMount(t *testing.T) {
	backend := &fakeBackend{
		channels: &model.ChannelVideosResponse{
			ChannelName: "Some Channel",
			Videos: []model.ChannelVideo{
				{Position: 1, Title: "First", Link: "https://www.youtube.com/watch?v=abc123def45", Thumbnail: "https://i.ytimg.com/a.jpg"},
				{Position: 2, Title: "Second", Link: "https://www.youtube.com/watch?v=def456ghi78"},
			},
		},
	}
	v := NewChannelView(backend, url.Values{"url": {"https://www.youtube.com/@somechannel"}})

	v.Load(context.Background())
	v.Load(context.Background())

	if backend.channelCalls != 1 {
		t.Fatalf("lookup calls = %d, want 1", backend.channelCalls)
	}
	if backend.lastChannel != "https://www.youtube.com/@somechannel" {
		t.Fatalf("lookup url = %q", backend.lastChannel)
	}
	if v.Name != "Some Channel" {
		t.Fatalf("name = %q", v.Name)
	}
	if len(v.Videos.Value) != 2 || v.Videos.Value[0].Position != 1 {
		t.Fatalf("videos = %+v", v.Videos.Value)
	}
}

func TestChannelViewSummarizeLinkDeepLinksHome(t *testing.T) {
	backend := &fakeBackend{
		channels: &model.ChannelVideosResponse{
			ChannelName: "c",
			Videos: []model.ChannelVideo{
				{Position: 1, Title: "v", Link: "https://www.youtube.com/watch?v=abc123def45"},
			},
		},
	}
	v := NewChannelView(backend, url.Values{"url": {"https://www.youtube.com/@c"}})
	v.Load(context.Background())

	got := v.Videos.Value[0].SummarizeURL
	want := "/?video=" + url.QueryEscape("https://www.youtube.com/watch?v=abc123def45")
	if got != want {
		t.Fatalf("summarize link = %q, want %q", got, want)
	}
}

func TestChannelViewEmptyFeed(t *testing.T) {
	backend := &fakeBackend{
		channels: &model.ChannelVideosResponse{ChannelName: "quiet", Videos: []model.ChannelVideo{}},
	}
	v := NewChannelView(backend, url.Values{"url": {"https://www.youtube.com/@quiet"}})
	v.Load(context.Background())

	if !v.Empty() {
		t.Fatalf("Empty() = false, videos = %+v", v.Videos)
	}
}

func TestChannelViewLookupFailure(t *testing.T) {
	backend := &fakeBackend{
		channelsErr: &client.APIError{Status: 502, Message: "Could not fetch channel videos"},
	}
	v := NewChannelView(backend, url.Values{"url": {"https://www.youtube.com/@gone"}})
	v.Load(context.Background())

	if v.Videos.Phase != PhaseError || v.Videos.Err != "Could not fetch channel videos" {
		t.Fatalf("videos = %+v", v.Videos)
	}
}

func TestRouterKnownPaths(t *testing.T) {
	r := NewRouter(&fakeBackend{}, newTestSession(t))
	if !r.Known(RouteHome) || !r.Known(RouteChannel) {
		t.Fatal("expected both app routes to be known")
	}
	if r.Known("/settings") {
		t.Fatal("unknown path accepted")
	}
	if r.Home() == nil {
		t.Fatal("nil home view")
	}
	if r.Channel(url.Values{"url": {"x"}}) == nil {
		t.Fatal("nil channel view")
	}
}
