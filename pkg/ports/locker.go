package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker defines the interface for cross-worker mutual exclusion.
// It lets the Session Manager serialize Run/Resume calls on one sequence even
// when callers live in different processes.
type DistributedLocker interface {
	// Lock attempts to acquire a lock for the given key (e.g., session ID).
	// It blocks until the lock is acquired or the context is canceled.
	// The lock expires after ttl if never released.
	// Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
