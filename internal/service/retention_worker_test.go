package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakePruner struct {
	keeps []int
	err   error
}

func (f *fakePruner) PruneOlderThanNewest(_ context.Context, keep int) (int, error) {
	f.keeps = append(f.keeps, keep)
	return 2, f.err
}

func TestRetentionWorker_TickPrunes(t *testing.T) {
	pruner := &fakePruner{}
	w := NewRetentionWorker(pruner, 500, time.Hour)

	w.tick(context.Background())

	if len(pruner.keeps) != 1 || pruner.keeps[0] != 500 {
		t.Errorf("prune calls = %v, want one call with keep=500", pruner.keeps)
	}
}

func TestRetentionWorker_DisabledWithoutCap(t *testing.T) {
	pruner := &fakePruner{}
	w := NewRetentionWorker(pruner, 0, time.Millisecond)

	// Start must return immediately when the cap is unset.
	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return for disabled worker")
	}
	if len(pruner.keeps) != 0 {
		t.Errorf("disabled worker pruned: %v", pruner.keeps)
	}
}

func TestRetentionWorker_TickSurvivesError(t *testing.T) {
	pruner := &fakePruner{err: errors.New("db down")}
	w := NewRetentionWorker(pruner, 10, time.Hour)

	// Must not panic; next tick should still call through.
	w.tick(context.Background())
	w.tick(context.Background())

	if len(pruner.keeps) != 2 {
		t.Errorf("prune calls = %d, want 2", len(pruner.keeps))
	}
}
