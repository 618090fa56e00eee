package graph

import (
	"slices"
	"sort"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Graph is an immutable, validated set of nodes with a designated entry.
// It is safe to share between any number of concurrently running sequences.
type Graph struct {
	entry string
	nodes map[string]domain.Node
	order []string // insertion order, for stable introspection
}

// New validates the nodes and builds a graph starting at entry.
// It returns a *domain.GraphError (matching domain.ErrInvalidGraph) when an ID is
// empty or duplicated, the entry is missing, a successor or candidate does not
// exist, or a decision node has no candidates.
func New(entry string, nodes ...domain.Node) (*Graph, error) {
	g := &Graph{
		entry: entry,
		nodes: make(map[string]domain.Node, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}

	for _, n := range nodes {
		if n == nil {
			return nil, &domain.GraphError{Reason: "nil node"}
		}
		id := n.ID()
		if id == "" {
			return nil, &domain.GraphError{Reason: "node with empty id"}
		}
		if _, dup := g.nodes[id]; dup {
			return nil, &domain.GraphError{NodeID: id, Reason: "duplicate node id"}
		}
		g.nodes[id] = n
		g.order = append(g.order, id)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) validate() error {
	if g.entry == "" {
		return &domain.GraphError{Reason: "no entry node"}
	}
	if _, ok := g.nodes[g.entry]; !ok {
		return &domain.GraphError{Ref: g.entry, Reason: "entry node " + quote(g.entry) + " not found"}
	}

	for _, id := range g.order {
		n := g.nodes[id]
		succ := n.Successors()
		if domain.KindOf(n) == domain.KindDecision && len(succ) == 0 {
			return &domain.GraphError{NodeID: id, Reason: "decision node has no candidates"}
		}
		seen := make(map[string]bool, len(succ))
		for _, ref := range succ {
			if _, ok := g.nodes[ref]; !ok {
				return &domain.GraphError{NodeID: id, Ref: ref, Reason: "unknown successor"}
			}
			if seen[ref] {
				return &domain.GraphError{NodeID: id, Ref: ref, Reason: "duplicate successor"}
			}
			seen[ref] = true
		}
	}
	return nil
}

// Entry returns the ID of the start node.
func (g *Graph) Entry() string { return g.entry }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (domain.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the nodes in the order they were added.
func (g *Graph) Nodes() []domain.Node {
	out := make([]domain.Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// IDs returns all node IDs sorted alphabetically.
func (g *Graph) IDs() []string {
	ids := slices.Clone(g.order)
	sort.Strings(ids)
	return ids
}

func quote(s string) string { return `"` + s + `"` }
