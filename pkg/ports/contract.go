package ports

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSequenceStoreContract runs a suite of tests to verify that a SequenceStore
// implementation adheres to the defined interface contract.
func RunSequenceStoreContract(t *testing.T, store SequenceStore) {
	ctx := context.Background()
	id := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		seq := &stubSequence{id: id, node: "start"}
		require.NoError(t, store.Save(ctx, id, seq), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, id, loaded.RunID())
		assert.Equal(t, "start", loaded.CurrentNodeID())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, &stubSequence{id: id}))
		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		_ = store.Save(ctx, id1, &stubSequence{id: id1})
		_ = store.Save(ctx, id2, &stubSequence{id: id2})
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

// RunLockerContract verifies that a DistributedLocker provides mutual exclusion.
func RunLockerContract(t *testing.T, locker DistributedLocker) {
	ctx := context.Background()

	t.Run("Lock and Unlock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "contract-key", time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))

		// Re-acquire after release
		unlock, err = locker.Lock(ctx, "contract-key", time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))
	})

	t.Run("Blocks While Held", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "contract-held", 5*time.Second)
		require.NoError(t, err)
		defer func() { _ = unlock(ctx) }()

		waitCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(waitCtx, "contract-held", time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Mutual Exclusion", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			overlap bool
		)
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := locker.Lock(ctx, "contract-mutex", 5*time.Second)
				if err != nil {
					return
				}
				mu.Lock()
				inside++
				if inside > 1 {
					overlap = true
				}
				mu.Unlock()

				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				_ = unlock(ctx)
			}()
		}
		wg.Wait()
		assert.False(t, overlap, "two holders were inside the critical section at once")
	})
}

type stubSequence struct {
	id   string
	node string
}

func (s *stubSequence) RunID() string { return s.id }

func (s *stubSequence) Run(context.Context) (Outcome, error) {
	return Outcome{RunID: s.id, Status: domain.StatusCompleted}, nil
}

func (s *stubSequence) Resume(context.Context, any) (Outcome, error) {
	return Outcome{}, domain.ErrResumeWithoutSuspension
}

func (s *stubSequence) Status() domain.Status { return domain.StatusRunning }
func (s *stubSequence) CurrentNodeID() string  { return s.node }
func (s *stubSequence) History() []string      { return nil }
