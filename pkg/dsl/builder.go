package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/graph"
)

// Builder manages the graph construction.
type Builder struct {
	entry  string
	nodes  map[string]*NodeBuilder
	order  []string
	custom map[string]domain.Node
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes:  make(map[string]*NodeBuilder),
		custom: make(map[string]domain.Node),
	}
}

// Entry sets the node the graph starts from.
// Without it, Build uses domain.DefaultEntryNodeID.
func (b *Builder) Entry(id string) *Builder {
	b.entry = id
	return b
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{id: id, kind: domain.KindSimple}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Use adds a node implemented outside this package.
func (b *Builder) Use(n domain.Node) *Builder {
	if n == nil {
		return b
	}
	if _, ok := b.custom[n.ID()]; !ok {
		if _, ok := b.nodes[n.ID()]; !ok {
			b.order = append(b.order, n.ID())
		}
	}
	b.custom[n.ID()] = n
	return b
}

// Build validates the nodes and compiles them into an immutable graph.
func (b *Builder) Build() (*graph.Graph, error) {
	entry := b.entry
	if entry == "" {
		entry = domain.DefaultEntryNodeID
	}

	var errs []error
	nodes := make([]domain.Node, 0, len(b.order))
	for _, id := range b.order {
		nb, declared := b.nodes[id]
		custom, used := b.custom[id]
		switch {
		case declared && used:
			errs = append(errs, &domain.GraphError{NodeID: id, Reason: "declared twice"})
		case used:
			nodes = append(nodes, custom)
		default:
			n, err := nb.Build()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			nodes = append(nodes, n)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	g, err := graph.New(entry, nodes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return g, nil
}

// MustBuild is like Build but panics on error. Intended for tests and examples.
func (b *Builder) MustBuild() *graph.Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
