package session

import (
	"context"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

// Handle is a ports.Sequence view of a managed sequence: every call goes
// through the Manager and so holds the sequence's locks.
// Read accessors return zero values when the sequence is gone.
type Handle struct {
	m  *Manager
	id string
}

var _ ports.Sequence = (*Handle)(nil)

// Handle returns a locked view of the sequence registered under id.
func (m *Manager) Handle(id string) *Handle {
	return &Handle{m: m, id: id}
}

func (h *Handle) RunID() string { return h.id }

func (h *Handle) Run(ctx context.Context) (ports.Outcome, error) {
	return h.m.Run(ctx, h.id)
}

func (h *Handle) Resume(ctx context.Context, input any) (ports.Outcome, error) {
	return h.m.Resume(ctx, h.id, input)
}

func (h *Handle) Status() domain.Status {
	return h.snapshot().Status
}

func (h *Handle) CurrentNodeID() string {
	return h.snapshot().NodeID
}

func (h *Handle) History() []string {
	return h.snapshot().History
}

func (h *Handle) snapshot() Snapshot {
	snap, err := h.m.Get(context.Background(), h.id)
	if err != nil {
		h.m.logger.Debug("snapshot unavailable", "run_id", h.id, "err", err)
	}
	return snap
}
