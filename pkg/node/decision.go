package node

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Decision selects one successor from an ordered candidate list using an
// injected strategy. It never advances by itself: it reports the choice and
// lets the driver confirm it.
type Decision struct {
	id         string
	candidates []string
	strategy   domain.DecisionStrategy
}

// NewDecision creates a Decision node. The candidate slice is copied.
func NewDecision(id string, candidates []string, strategy domain.DecisionStrategy) *Decision {
	return &Decision{
		id:         id,
		candidates: slices.Clone(candidates),
		strategy:   strategy,
	}
}

func (n *Decision) ID() string { return n.id }

func (n *Decision) Kind() domain.Kind { return domain.KindDecision }

// Successors returns a copy of the candidate list.
func (n *Decision) Successors() []string { return slices.Clone(n.candidates) }

// Strategy returns the injected decision strategy.
func (n *Decision) Strategy() domain.DecisionStrategy { return n.strategy }

func (n *Decision) Execute(ctx context.Context, _ any) (domain.Response, error) {
	if len(n.candidates) == 0 {
		return domain.Response{}, domain.ErrEmptyCandidates
	}
	if n.strategy == nil {
		return domain.Response{}, fmt.Errorf("decision %q has no strategy", n.id)
	}

	chosen, err := n.strategy.Choose(ctx, n.Successors())
	if err != nil {
		return domain.Response{}, fmt.Errorf("strategy failed: %w", err)
	}
	if !slices.Contains(n.candidates, chosen) {
		return domain.Response{}, fmt.Errorf("%w: %q", domain.ErrInvalidChoice, chosen)
	}
	return domain.DecisionRequired(chosen), nil
}
