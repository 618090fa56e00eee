package graph

import "sort"

// Reachable returns the IDs reachable from the entry, in breadth-first order.
func (g *Graph) Reachable() []string {
	visited := map[string]bool{g.entry: true}
	queue := []string{g.entry}
	var order []string

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		n := g.nodes[id]
		for _, next := range n.Successors() {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return order
}

// Unreachable returns the IDs that cannot be reached from the entry, sorted.
func (g *Graph) Unreachable() []string {
	reach := make(map[string]bool, len(g.nodes))
	for _, id := range g.Reachable() {
		reach[id] = true
	}

	var out []string
	for id := range g.nodes {
		if !reach[id] {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Terminals returns the IDs of nodes without successors, sorted.
func (g *Graph) Terminals() []string {
	var out []string
	for id, n := range g.nodes {
		if len(n.Successors()) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
