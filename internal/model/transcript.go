package model

import "time"

// Transcript is a stored record of a previously summarized video.
type Transcript struct {
	ID           string    `json:"id"`
	VideoID      string    `json:"video_id"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Channel      string    `json:"channel"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Transcript   string    `json:"transcript"`
	Summary      string    `json:"summary"`
	Timestamp    time.Time `json:"timestamp"`
}

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	YoutubeURL string `json:"youtube_url"`
}

// SummarizeResponse is the API response for a summarize call.
// IsCached reports whether the result was served from storage
// instead of being freshly computed.
type SummarizeResponse struct {
	Transcript   string `json:"transcript"`
	Summary      string `json:"summary"`
	IsCached     bool   `json:"is_cached"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoID      string `json:"video_id"`
	URL          string `json:"url"`
}

// ResponseFromTranscript builds a summarize response from a stored row.
func ResponseFromTranscript(t *Transcript, cached bool) *SummarizeResponse {
	return &SummarizeResponse{
		Transcript:   t.Transcript,
		Summary:      t.Summary,
		IsCached:     cached,
		Title:        t.Title,
		Channel:      t.Channel,
		ThumbnailURL: t.ThumbnailURL,
		VideoID:      t.VideoID,
		URL:          t.URL,
	}
}
