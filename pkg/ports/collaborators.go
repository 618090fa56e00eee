package ports

import "context"

// ResourceProvider resolves a configuration value by key, typically walking a
// caller-owned hierarchy. The engine does not implement hierarchy lookup; the
// port exists so strategies and actions can depend on it; strategy.FactsFrom
// reads rule facts through it.
type ResourceProvider interface {
	Resolve(ctx context.Context, key string) (value any, ok bool, err error)
}

// RuleEvaluator decides a boolean rule against a set of facts.
type RuleEvaluator interface {
	Evaluate(ctx context.Context, facts map[string]any) (bool, error)
}

// RuleFunc adapts a function to RuleEvaluator.
type RuleFunc func(ctx context.Context, facts map[string]any) (bool, error)

// Evaluate calls f.
func (f RuleFunc) Evaluate(ctx context.Context, facts map[string]any) (bool, error) {
	return f(ctx, facts)
}

// ProviderFunc adapts a function to ResourceProvider.
type ProviderFunc func(ctx context.Context, key string) (any, bool, error)

// Resolve calls f.
func (f ProviderFunc) Resolve(ctx context.Context, key string) (any, bool, error) {
	return f(ctx, key)
}
