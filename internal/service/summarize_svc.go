package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/summarizer"
	"github.com/collymonsterr/podsummary/internal/youtube"
)

// ErrInvalidVideoURL marks summarize inputs no video ID could be
// extracted from; handlers map it to 400.
var ErrInvalidVideoURL = errors.New("could not extract video ID from URL")

// TranscriptFetcher fetches the raw transcript for a video ID.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// Summarizer produces a summary for transcript text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// MetadataLookup fetches display metadata for a watch URL.
type MetadataLookup interface {
	Lookup(ctx context.Context, watchURL string) (*youtube.Metadata, error)
}

// TranscriptStore is the persistence surface the pipeline needs.
type TranscriptStore interface {
	FindByVideoID(ctx context.Context, videoID string) (*model.Transcript, error)
	Insert(ctx context.Context, t *model.Transcript) error
}

// SummarizeService runs the summarize pipeline: extract the video ID,
// serve stored results as cached, otherwise fetch transcript, summarize,
// look up metadata, and persist.
type SummarizeService struct {
	store       TranscriptStore
	transcripts TranscriptFetcher
	summaries   Summarizer
	metadata    MetadataLookup
	cache       *CacheService
}

func NewSummarizeService(store TranscriptStore, transcripts TranscriptFetcher, summaries Summarizer, metadata MetadataLookup, cache *CacheService) *SummarizeService {
	return &SummarizeService{
		store:       store,
		transcripts: transcripts,
		summaries:   summaries,
		metadata:    metadata,
		cache:       cache,
	}
}

// Summarize handles one summarize request.
func (s *SummarizeService) Summarize(ctx context.Context, youtubeURL string) (*model.SummarizeResponse, error) {
	videoID, err := youtube.ExtractVideoID(youtubeURL)
	if err != nil {
		return nil, ErrInvalidVideoURL
	}

	// Redis first: repeated requests for a hot video skip the DB.
	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, videoID)
		if err != nil {
			log.Printf("cache: summary get error: %v", err)
		} else if cached != nil {
			var resp model.SummarizeResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				resp.IsCached = true
				return &resp, nil
			}
		}
	}

	// Stored result counts as cached regardless of how old it is.
	existing, err := s.store.FindByVideoID(ctx, videoID)
	if err == nil {
		resp := model.ResponseFromTranscript(existing, true)
		s.cacheResponse(ctx, videoID, resp)
		return resp, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("lookup stored transcript: %w", err)
	}

	text, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summaries.Summarize(ctx, text)
	if err != nil {
		// The transcript is still worth storing and showing.
		log.Printf("summarize: generation failed for %s: %v", videoID, err)
		summary = summarizer.FallbackSummary
	}

	row := &model.Transcript{
		VideoID:    videoID,
		URL:        youtubeURL,
		Transcript: text,
		Summary:    summary,
	}

	// Metadata failures are non-fatal; fields stay empty.
	if meta, err := s.metadata.Lookup(ctx, youtube.WatchURL(videoID)); err != nil {
		log.Printf("summarize: metadata lookup failed for %s: %v", videoID, err)
	} else {
		row.Title = meta.Title
		row.Channel = meta.Channel
		row.ThumbnailURL = meta.ThumbnailURL
	}

	if err := s.store.Insert(ctx, row); err != nil {
		return nil, fmt.Errorf("store transcript: %w", err)
	}

	resp := model.ResponseFromTranscript(row, false)
	s.cacheResponse(ctx, videoID, resp)
	return resp, nil
}

// cacheResponse stores the response in Redis marked cached, so hits
// served from Redis report is_cached true.
func (s *SummarizeService) cacheResponse(ctx context.Context, videoID string, resp *model.SummarizeResponse) {
	if s.cache == nil {
		return
	}
	cached := *resp
	cached.IsCached = true
	if err := s.cache.SetSummary(ctx, videoID, &cached); err != nil {
		log.Printf("cache: summary set error: %v", err)
	}
}
