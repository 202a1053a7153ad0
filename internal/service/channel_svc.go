package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mmcdole/gofeed"

	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/youtube"
)

// ChannelResolver turns a channel URL into a channel ID and name.
type ChannelResolver interface {
	Resolve(ctx context.Context, channelURL string) (*youtube.ChannelInfo, error)
}

// FeedParser fetches and parses an uploads feed. *gofeed.Parser satisfies it.
type FeedParser interface {
	ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error)
}

// ChannelService lists a channel's recent uploads: resolve the URL to a
// channel ID, then read the public uploads feed. Cache-aside via Redis.
type ChannelService struct {
	resolver ChannelResolver
	feeds    FeedParser
	cache    *CacheService
}

func NewChannelService(resolver ChannelResolver, feeds FeedParser, cache *CacheService) *ChannelService {
	return &ChannelService{resolver: resolver, feeds: feeds, cache: cache}
}

// ListVideos returns the channel name and its uploads in feed order.
// An empty feed yields an empty (non-nil) videos slice, not an error.
func (s *ChannelService) ListVideos(ctx context.Context, channelURL string) (*model.ChannelVideosResponse, error) {
	info, err := s.resolver.Resolve(ctx, channelURL)
	if err != nil {
		return nil, fmt.Errorf("resolve channel: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.GetChannelVideos(ctx, info.ID)
		if err != nil {
			log.Printf("cache: channel videos get error: %v", err)
		} else if cached != nil {
			var resp model.ChannelVideosResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	feed, err := s.feeds.ParseURLWithContext(youtube.FeedURL(info.ID), ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch uploads feed: %w", err)
	}

	resp := BuildChannelResponse(info, feed)

	if s.cache != nil {
		if err := s.cache.SetChannelVideos(ctx, info.ID, resp); err != nil {
			log.Printf("cache: channel videos set error: %v", err)
		}
	}

	return resp, nil
}

// BuildChannelResponse maps a parsed uploads feed to the API response.
// The resolver's name wins over the feed title when both are present.
func BuildChannelResponse(info *youtube.ChannelInfo, feed *gofeed.Feed) *model.ChannelVideosResponse {
	name := info.Name
	if name == "" && feed != nil {
		name = feed.Title
	}

	videos := []model.ChannelVideo{}
	if feed != nil {
		for i, item := range feed.Items {
			videos = append(videos, model.ChannelVideo{
				Position:  i + 1,
				Title:     item.Title,
				Link:      item.Link,
				Thumbnail: itemThumbnail(item),
				Channel:   model.ChannelRef{Name: name},
			})
		}
	}

	return &model.ChannelVideosResponse{
		ChannelName: name,
		Videos:      videos,
	}
}

// itemThumbnail digs the thumbnail URL out of the media:group extension
// YouTube feeds carry; falls back to the item image when present.
func itemThumbnail(item *gofeed.Item) string {
	if groups, ok := item.Extensions["media"]["group"]; ok {
		for _, g := range groups {
			for _, thumb := range g.Children["thumbnail"] {
				if url := thumb.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}
	if item.Image != nil {
		return item.Image.URL
	}
	return ""
}
