package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventSuspend   EventType = "suspend"
	EventFinish    EventType = "finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// NodeEvent represents entry into or exit from a node.
// On leave, Response and Duration describe the execution; Err is set on failure.
type NodeEvent struct {
	EventBase
	NodeID   string        `json:"node_id"`
	NodeKind Kind          `json:"node_kind"`
	Response *Response     `json:"response,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// SequenceEvent represents a suspension or the end of a sequence.
type SequenceEvent struct {
	EventBase
	NodeID string `json:"node_id,omitempty"`
	Status Status `json:"status"`
	Steps  int    `json:"steps"`
	Err    error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
	OnSuspend   func(context.Context, *SequenceEvent)
	OnFinish    func(context.Context, *SequenceEvent)
}

// CombineHooks fans every callback out to each of the given hooks, in order.
func CombineHooks(all ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *NodeEvent) {
			for _, h := range all {
				if h.OnNodeEnter != nil {
					h.OnNodeEnter(ctx, e)
				}
			}
		},
		OnNodeLeave: func(ctx context.Context, e *NodeEvent) {
			for _, h := range all {
				if h.OnNodeLeave != nil {
					h.OnNodeLeave(ctx, e)
				}
			}
		},
		OnSuspend: func(ctx context.Context, e *SequenceEvent) {
			for _, h := range all {
				if h.OnSuspend != nil {
					h.OnSuspend(ctx, e)
				}
			}
		},
		OnFinish: func(ctx context.Context, e *SequenceEvent) {
			for _, h := range all {
				if h.OnFinish != nil {
					h.OnFinish(ctx, e)
				}
			}
		},
	}
}
