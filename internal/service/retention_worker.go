package service

import (
	"context"
	"log"
	"time"
)

// Pruner is the slice of the repository the worker needs.
type Pruner interface {
	PruneOlderThanNewest(ctx context.Context, keep int) (int, error)
}

// RetentionWorker is a periodic background job that caps the stored
// history at a maximum row count, dropping the oldest entries.
type RetentionWorker struct {
	repo     Pruner
	keep     int
	interval time.Duration
	stopCh   chan struct{}
}

// NewRetentionWorker creates a worker that ticks every interval.
func NewRetentionWorker(repo Pruner, keep int, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{
		repo:     repo,
		keep:     keep,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic pruning loop. It runs one tick immediately,
// then every interval.
func (w *RetentionWorker) Start(ctx context.Context) {
	if w.keep <= 0 {
		log.Println("retention-worker: disabled (no retention cap)")
		return
	}

	log.Printf("retention-worker: starting (keep=%d interval=%s)", w.keep, w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("retention-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("retention-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RetentionWorker) Stop() {
	close(w.stopCh)
}

func (w *RetentionWorker) tick(ctx context.Context) {
	start := time.Now()

	pruned, err := w.repo.PruneOlderThanNewest(ctx, w.keep)
	if err != nil {
		log.Printf("retention-worker: error: %v", err)
		return
	}

	if pruned > 0 {
		log.Printf("retention-worker: tick complete — %d entries pruned (%s)",
			pruned, time.Since(start).Round(time.Millisecond))
	}
}
