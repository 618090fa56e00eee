package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

// DefaultLockTTL bounds how long a distributed lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Snapshot is a point-in-time view of a sequence.
type Snapshot struct {
	ID      string        `json:"id"`
	Status  domain.Status `json:"status"`
	NodeID  string        `json:"node_id,omitempty"`
	History []string      `json:"history"`
}

// Manager orchestrates access to live sequences, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.SequenceStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	evict   bool
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the expiry of distributed locks.
func WithLockTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.lockTTL = d
		}
	}
}

// WithEvictOnFinish removes sequences from the store once they complete or fail.
func WithEvictOnFinish() Option {
	return func(m *Manager) {
		m.evict = true
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new Manager over the given store.
func NewManager(store ports.SequenceStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// Register stores seq under its run ID and returns that ID.
func (m *Manager) Register(ctx context.Context, seq ports.Sequence) (string, error) {
	id := seq.RunID()
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		_, err := m.store.Load(ctx, id)
		switch {
		case err == nil:
			return fmt.Errorf("sequence %q already registered", id)
		case !errors.Is(err, domain.ErrSessionNotFound):
			return fmt.Errorf("failed to check sequence existence: %w", err)
		}
		return m.store.Save(ctx, id, seq)
	})
	if err != nil {
		return "", err
	}
	m.logger.DebugContext(ctx, "sequence registered", "run_id", id)
	return id, nil
}

// Run starts the sequence registered under id.
func (m *Manager) Run(ctx context.Context, id string) (ports.Outcome, error) {
	return m.drive(ctx, id, func(ctx context.Context, seq ports.Sequence) (ports.Outcome, error) {
		return seq.Run(ctx)
	})
}

// Resume continues the sequence registered under id with input.
func (m *Manager) Resume(ctx context.Context, id string, input any) (ports.Outcome, error) {
	return m.drive(ctx, id, func(ctx context.Context, seq ports.Sequence) (ports.Outcome, error) {
		return seq.Resume(ctx, input)
	})
}

func (m *Manager) drive(ctx context.Context, id string, step func(context.Context, ports.Sequence) (ports.Outcome, error)) (ports.Outcome, error) {
	var out ports.Outcome
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		seq, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}

		var stepErr error
		out, stepErr = step(ctx, seq)

		if m.evict && seq.Status().Terminal() {
			if err := m.store.Delete(ctx, id); err != nil {
				m.logger.WarnContext(ctx, "failed to evict finished sequence", "run_id", id, "err", err)
			}
		}
		return stepErr
	})
	return out, err
}

// Get returns a snapshot of the sequence registered under id.
func (m *Manager) Get(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		seq, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}
		snap = Snapshot{
			ID:      id,
			Status:  seq.Status(),
			NodeID:  seq.CurrentNodeID(),
			History: seq.History(),
		}
		return nil
	})
	return snap, err
}

// Delete removes the sequence from the store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Delete(ctx, id)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying sequence store.
func (m *Manager) Store() ports.SequenceStore {
	return m.store
}

// WithLock executes a function while holding the lock for the sequence.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"run_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
