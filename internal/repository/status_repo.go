package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collymonsterr/podsummary/internal/model"
)

type StatusRepo struct {
	pool *pgxpool.Pool
}

func NewStatusRepo(pool *pgxpool.Pool) *StatusRepo {
	return &StatusRepo{pool: pool}
}

// Insert stores a client status check and returns the stored row.
func (r *StatusRepo) Insert(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return check, nil
}

// List returns stored status checks, capped at limit.
func (r *StatusRepo) List(ctx context.Context, limit int) ([]model.StatusCheck, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StatusCheck
	for rows.Next() {
		var s model.StatusCheck
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
