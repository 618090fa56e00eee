package domain

import "context"

// DecisionStrategy selects exactly one member of a non-empty candidate list.
// Implementations may be deterministic or not; the engine is agnostic.
type DecisionStrategy interface {
	Choose(ctx context.Context, candidates []string) (string, error)
}

// StrategyFunc adapts a plain function to DecisionStrategy.
type StrategyFunc func(ctx context.Context, candidates []string) (string, error)

// Choose calls f.
func (f StrategyFunc) Choose(ctx context.Context, candidates []string) (string, error) {
	return f(ctx, candidates)
}
