package ports

import (
	"context"
)

// SequenceStore keeps live sequences addressable by ID.
// It is an in-process registry: sequences hold executable nodes and are not
// serialized, so nothing survives a restart.
type SequenceStore interface {
	// Save registers (or replaces) the sequence under the given ID.
	Save(ctx context.Context, id string, seq Sequence) error

	// Load retrieves the sequence for a given ID.
	// Returns domain.ErrSessionNotFound if the ID is unknown.
	Load(ctx context.Context, id string) (Sequence, error)

	// Delete removes the sequence for a given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all registered sequences.
	List(ctx context.Context) ([]string, error)
}
