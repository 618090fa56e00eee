package strategy

import (
	"context"
	"fmt"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

// FactsFunc supplies the facts a rule is evaluated against.
type FactsFunc func(ctx context.Context) (map[string]any, error)

// FactsFrom gathers facts by resolving keys through a ResourceProvider.
// Keys the provider does not know are left out of the facts.
func FactsFrom(p ports.ResourceProvider, keys ...string) FactsFunc {
	return func(ctx context.Context) (map[string]any, error) {
		facts := make(map[string]any, len(keys))
		for _, key := range keys {
			v, ok, err := p.Resolve(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", key, err)
			}
			if ok {
				facts[key] = v
			}
		}
		return facts, nil
	}
}

// Rule chooses the first candidate, in candidate order, whose evaluator holds.
// Candidates without a bound evaluator are skipped; Fallback, when set and a
// candidate, is used if nothing matches.
type Rule struct {
	Rules    map[string]ports.RuleEvaluator
	Facts    FactsFunc
	Fallback string
}

// NewRule binds candidates to evaluators.
func NewRule(facts FactsFunc, rules map[string]ports.RuleEvaluator) *Rule {
	return &Rule{Rules: rules, Facts: facts}
}

func (s *Rule) Choose(ctx context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrEmptyCandidates
	}

	var facts map[string]any
	if s.Facts != nil {
		var err error
		if facts, err = s.Facts(ctx); err != nil {
			return "", fmt.Errorf("failed to gather facts: %w", err)
		}
	}

	for _, c := range candidates {
		eval, ok := s.Rules[c]
		if !ok {
			continue
		}
		matched, err := eval.Evaluate(ctx, facts)
		if err != nil {
			return "", fmt.Errorf("rule for %q: %w", c, err)
		}
		if matched {
			return c, nil
		}
	}

	if s.Fallback != "" {
		for _, c := range candidates {
			if c == s.Fallback {
				return c, nil
			}
		}
	}
	return "", domain.ErrNoRuleMatched
}
