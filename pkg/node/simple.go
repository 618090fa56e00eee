package node

import (
	"context"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Action is the unit of work performed by a Simple node.
// The returned value becomes the response payload.
type Action func(ctx context.Context, input any) (any, error)

// Simple runs an optional action and always continues to its single successor.
type Simple struct {
	id     string
	next   string
	action Action
}

// NewSimple creates a Simple node. An empty next marks the node as terminal.
func NewSimple(id, next string, action Action) *Simple {
	return &Simple{id: id, next: next, action: action}
}

func (n *Simple) ID() string { return n.id }

func (n *Simple) Kind() domain.Kind { return domain.KindSimple }

// Next returns the configured successor, or "" for a terminal node.
func (n *Simple) Next() string { return n.next }

func (n *Simple) Successors() []string {
	if n.next == "" {
		return nil
	}
	return []string{n.next}
}

// Execute runs the action, if any, and reports completion.
func (n *Simple) Execute(ctx context.Context, input any) (domain.Response, error) {
	if n.action == nil {
		return domain.Complete(nil), nil
	}
	out, err := n.action(ctx, input)
	if err != nil {
		return domain.Response{}, err
	}
	return domain.Complete(out), nil
}
