package domain

import "context"

// Node represents one executable step in the graph.
//
// Execute performs the node's unit of work and reports what should happen next.
// The input is nil on a normal visit and carries the caller-supplied value when
// the sequence is resumed after the node asked for input.
type Node interface {
	// ID returns the stable identifier of the node, unique within a graph.
	ID() string

	// Execute runs the node. It must return a well-formed Response or an error.
	Execute(ctx context.Context, input any) (Response, error)

	// Successors lists every node ID this node may hand control to.
	// An empty list marks a terminal node.
	Successors() []string
}

// Kind labels the node variant for presentation and introspection.
type Kind string

const (
	// KindSimple runs an action and always continues to its single successor.
	KindSimple Kind = "simple"
	// KindDecision picks one successor out of a candidate list.
	KindDecision Kind = "decision"
	// KindInput halts until the caller supplies input.
	KindInput Kind = "input"
)

// Kinded is implemented by nodes that can report their variant.
type Kinded interface {
	Kind() Kind
}

// KindOf returns the Kind of a node, or KindSimple if it does not report one.
func KindOf(n Node) Kind {
	if k, ok := n.(Kinded); ok {
		return k.Kind()
	}
	return KindSimple
}
