package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collymonsterr/podsummary/internal/model"
)

type TranscriptRepo struct {
	pool *pgxpool.Pool
}

func NewTranscriptRepo(pool *pgxpool.Pool) *TranscriptRepo {
	return &TranscriptRepo{pool: pool}
}

const transcriptColumns = `id, video_id, url, title, channel, thumbnail_url, transcript, summary, timestamp`

// FindByVideoID returns the stored transcript for a video, or
// pgx.ErrNoRows when the video has not been summarized yet.
func (r *TranscriptRepo) FindByVideoID(ctx context.Context, videoID string) (*model.Transcript, error) {
	query := `
		SELECT ` + transcriptColumns + `
		FROM transcripts
		WHERE video_id = $1`

	var t model.Transcript
	err := r.pool.QueryRow(ctx, query, videoID).Scan(
		&t.ID, &t.VideoID, &t.URL, &t.Title, &t.Channel, &t.ThumbnailURL,
		&t.Transcript, &t.Summary, &t.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert stores a freshly summarized transcript and returns the row
// with its generated ID and timestamp filled in.
func (r *TranscriptRepo) Insert(ctx context.Context, t *model.Transcript) error {
	t.ID = uuid.NewString()
	t.Timestamp = time.Now().UTC()

	query := `
		INSERT INTO transcripts (id, video_id, url, title, channel, thumbnail_url, transcript, summary, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.VideoID, t.URL, t.Title, t.Channel, t.ThumbnailURL,
		t.Transcript, t.Summary, t.Timestamp,
	)
	return err
}

// ListRecent returns stored transcripts newest first, capped at limit.
func (r *TranscriptRepo) ListRecent(ctx context.Context, limit int) ([]model.Transcript, error) {
	query := `
		SELECT ` + transcriptColumns + `
		FROM transcripts
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transcript
	for rows.Next() {
		var t model.Transcript
		err := rows.Scan(
			&t.ID, &t.VideoID, &t.URL, &t.Title, &t.Channel, &t.ThumbnailURL,
			&t.Transcript, &t.Summary, &t.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteByID removes one stored transcript and returns its video ID so
// callers can invalidate caches. Returns pgx.ErrNoRows when the id does
// not exist so handlers can answer 404.
func (r *TranscriptRepo) DeleteByID(ctx context.Context, id string) (string, error) {
	var videoID string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM transcripts WHERE id = $1 RETURNING video_id`, id,
	).Scan(&videoID)
	if err != nil {
		return "", err
	}
	return videoID, nil
}

// PruneOlderThanNewest deletes everything beyond the newest keep rows.
// Returns the number of rows removed.
func (r *TranscriptRepo) PruneOlderThanNewest(ctx context.Context, keep int) (int, error) {
	query := `
		DELETE FROM transcripts
		WHERE id NOT IN (
			SELECT id FROM transcripts
			ORDER BY timestamp DESC
			LIMIT $1
		)`

	tag, err := r.pool.Exec(ctx, query, keep)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// GetStats aggregates totals over the stored transcripts.
func (r *TranscriptRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(DISTINCT channel) FILTER (WHERE channel <> ''),
		       MIN(timestamp),
		       MAX(timestamp)
		FROM transcripts`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalSummaries, &stats.DistinctChannels,
		&stats.OldestEntry, &stats.NewestEntry,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
