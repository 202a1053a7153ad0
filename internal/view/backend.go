package view

import (
	"context"

	"github.com/collymonsterr/podsummary/internal/client"
	"github.com/collymonsterr/podsummary/internal/model"
)

// Backend is what the views need from the API. *client.Client satisfies
// it; tests substitute fakes.
type Backend interface {
	Health(ctx context.Context) (*client.HealthResponse, error)
	History(ctx context.Context) ([]model.Transcript, error)
	Summarize(ctx context.Context, youtubeURL string) (*model.SummarizeResponse, error)
	DeleteTranscript(ctx context.Context, id, adminKey string) error
	ChannelVideos(ctx context.Context, channelURL string) (*model.ChannelVideosResponse, error)
}

var _ Backend = (*client.Client)(nil)
