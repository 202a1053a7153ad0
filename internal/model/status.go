package model

import "time"

// StatusCheck is a client-reported liveness ping stored for diagnostics.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the body of POST /api/status.
type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}

// StatsResponse aggregates what the service has summarized so far.
type StatsResponse struct {
	TotalSummaries   int        `json:"total_summaries"`
	DistinctChannels int        `json:"distinct_channels"`
	OldestEntry      *time.Time `json:"oldest_entry,omitempty"`
	NewestEntry      *time.Time `json:"newest_entry,omitempty"`
}
