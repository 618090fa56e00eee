package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

// Store implements ports.SequenceStore in memory.
// Safe for concurrent use. Sequences are stored by reference: callers
// serialize access to each sequence themselves (see session.Manager).
type Store struct {
	data map[string]ports.Sequence
	mu   sync.RWMutex
}

var _ ports.SequenceStore = (*Store)(nil)

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]ports.Sequence),
	}
}

// Save registers the sequence under id.
func (s *Store) Save(_ context.Context, id string, seq ports.Sequence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = seq
	return nil
}

// Load retrieves the sequence registered under id.
func (s *Store) Load(_ context.Context, id string) (ports.Sequence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.data[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return seq, nil
}

// Delete removes the sequence. Deleting an unknown id is not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the registered ids, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}
