package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collymonsterr/podsummary/internal/middleware"
)

// Options controls pool sizing and the startup retry loop. Zero values
// fall back to defaults sized for a single API instance.
type Options struct {
	URL      string
	MaxConns int
	Retries  int
	Backoff  time.Duration
}

const (
	defaultMaxConns = 10
	defaultRetries  = 5
	defaultBackoff  = 2 * time.Second
)

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = defaultMaxConns
	}
	if o.Retries <= 0 {
		o.Retries = defaultRetries
	}
	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}
	return o
}

// buildConfig derives the pgx pool config from Options. MinConns scales
// off MaxConns so a single env knob sizes the whole pool.
func buildConfig(o Options) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = int32(o.MaxConns)
	cfg.MinConns = int32(o.MaxConns / 4)
	if cfg.MinConns < 1 {
		cfg.MinConns = 1
	}
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute
	return cfg, nil
}

// NewPool connects with a capped number of attempts and a doubling
// backoff, so the service can come up before postgres does.
func NewPool(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	opts = opts.withDefaults()
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	var lastErr error
	delay := opts.Backoff
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				middleware.Logger.Info().
					Int32("max_conns", cfg.MaxConns).
					Msg("database connected")
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}

		lastErr = err
		middleware.Logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", opts.Retries).
			Msg("database connection failed")
		if attempt < opts.Retries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", opts.Retries, lastErr)
}
