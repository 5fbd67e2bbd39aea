package routines

import (
	"context"
	"log"
	"time"
)

// ExpiredDeleter is implemented by operations.SubmissionStore.
type ExpiredDeleter interface {
	DeleteExpired(now time.Time) (int, error)
}

// StartCleanupRoutine runs one cleanup immediately and then every interval
// until ctx is done.
func StartCleanupRoutine(ctx context.Context, store ExpiredDeleter, interval time.Duration) {
	cleanupRoutine(store)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanupRoutine(store)
		}
	}
}

func cleanupRoutine(store ExpiredDeleter) {
	n, err := store.DeleteExpired(time.Now())
	if err != nil {
		log.Printf("Cleanup failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Cleanup removed %d expired submissions", n)
	}
}
