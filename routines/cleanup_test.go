package routines

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingDeleter struct {
	calls atomic.Int32
}

func (d *countingDeleter) DeleteExpired(time.Time) (int, error) {
	d.calls.Add(1)
	return 0, nil
}

func TestStartCleanupRoutine_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	deleter := &countingDeleter{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		StartCleanupRoutine(ctx, deleter, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for deleter.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 cleanup runs, got %d", deleter.calls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup routine did not stop after cancel")
	}
}
