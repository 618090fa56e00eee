package observability

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Entry is one recorded lifecycle event.
type Entry struct {
	Timestamp time.Time        `json:"timestamp"`
	Type      domain.EventType `json:"type"`
	RunID     string           `json:"run_id"`
	NodeID    string           `json:"node_id,omitempty"`
	Status    string           `json:"status,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Recorder keeps the most recent lifecycle events in memory.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
}

// NewRecorder creates a recorder holding at most capacity events.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 256
	}
	return &Recorder{entries: make([]Entry, capacity)}
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

// Entries returns the recorded events, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}

// ByRun returns the recorded events of one run, oldest first.
func (r *Recorder) ByRun(runID string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.RunID == runID {
			out = append(out, e)
		}
	}
	return out
}

// Hooks returns lifecycle hooks feeding the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			r.add(Entry{Timestamp: e.Timestamp, Type: e.Type, RunID: e.RunID, NodeID: e.NodeID})
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			entry := Entry{Timestamp: e.Timestamp, Type: e.Type, RunID: e.RunID, NodeID: e.NodeID}
			if e.Err != nil {
				entry.Error = e.Err.Error()
			} else {
				entry.Status = string(e.Response.Status)
			}
			r.add(entry)
		},
		OnSuspend: func(_ context.Context, e *domain.SequenceEvent) {
			r.add(sequenceEntry(e))
		},
		OnFinish: func(_ context.Context, e *domain.SequenceEvent) {
			r.add(sequenceEntry(e))
		},
	}
}

func sequenceEntry(e *domain.SequenceEvent) Entry {
	entry := Entry{Timestamp: e.Timestamp, Type: e.Type, RunID: e.RunID, NodeID: e.NodeID, Status: string(e.Status)}
	if e.Err != nil {
		entry.Error = e.Err.Error()
	}
	return entry
}
