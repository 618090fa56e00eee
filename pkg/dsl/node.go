package dsl

import (
	"slices"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/node"
)

// NodeBuilder provides a fluent API for configuring a node.
// The last kind-setting call (Do, Ask, Decide) wins.
type NodeBuilder struct {
	id         string
	kind       domain.Kind
	next       string
	action     node.Action
	prompt     string
	validate   node.Validator
	candidates []string
	strategy   domain.DecisionStrategy
}

// Do configures the action run by a simple node.
func (n *NodeBuilder) Do(action node.Action) *NodeBuilder {
	n.kind = domain.KindSimple
	n.action = action
	return n
}

// Ask turns the node into an input node showing prompt.
func (n *NodeBuilder) Ask(prompt string) *NodeBuilder {
	n.kind = domain.KindInput
	n.prompt = prompt
	return n
}

// Validate sets the validator of an input node.
func (n *NodeBuilder) Validate(fn node.Validator) *NodeBuilder {
	n.validate = fn
	return n
}

// Decide turns the node into a decision node choosing among candidates with s.
func (n *NodeBuilder) Decide(s domain.DecisionStrategy, candidates ...string) *NodeBuilder {
	n.kind = domain.KindDecision
	n.strategy = s
	n.candidates = slices.Clone(candidates)
	return n
}

// Go sets the successor of a simple or input node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.next = target
	return n
}

// Terminal marks the node as the end of the flow.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.next = ""
	return n
}

// Build returns the configured node.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() (domain.Node, error) {
	switch n.kind {
	case domain.KindDecision:
		if n.next != "" {
			return nil, &domain.GraphError{NodeID: n.id, Ref: n.next, Reason: "decision node cannot use Go"}
		}
		if n.strategy == nil {
			return nil, &domain.GraphError{NodeID: n.id, Reason: "decision node without strategy"}
		}
		return node.NewDecision(n.id, n.candidates, n.strategy), nil
	case domain.KindInput:
		return node.NewInput(n.id, n.next, n.prompt, n.validate), nil
	default:
		return node.NewSimple(n.id, n.next, n.action), nil
	}
}
