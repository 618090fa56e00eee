package strategy_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every strategy must return a member of the candidate set it was given.
func TestStrategies_ChoiceIsMember(t *testing.T) {
	ctx := context.Background()
	sets := [][]string{
		{"only"},
		{"a", "b"},
		{"node3", "node4", "node5"},
		{"x", "y", "z", "w", "v", "u", "t"},
	}

	strategies := map[string]func(c []string) domain.DecisionStrategy{
		"fixed":       func(c []string) domain.DecisionStrategy { return strategy.NewFixed(c[len(c)-1]) },
		"index":       func(c []string) domain.DecisionStrategy { return strategy.NewIndex(len(c) / 2) },
		"round_robin": func(c []string) domain.DecisionStrategy { return strategy.NewRoundRobin() },
		"random":      func(c []string) domain.DecisionStrategy { return strategy.NewRandom() },
		"seeded":      func(c []string) domain.DecisionStrategy { return strategy.NewSeededRandom(42) },
		"rule": func(c []string) domain.DecisionStrategy {
			return strategy.NewRule(nil, map[string]ports.RuleEvaluator{
				c[0]: ports.RuleFunc(func(ctx context.Context, facts map[string]any) (bool, error) { return true, nil }),
			})
		},
	}

	for name, build := range strategies {
		for _, set := range sets {
			t.Run(fmt.Sprintf("%s/%d", name, len(set)), func(t *testing.T) {
				s := build(set)
				for range 50 {
					got, err := s.Choose(ctx, set)
					require.NoError(t, err)
					assert.Contains(t, set, got)
				}
			})
		}
	}
}

func TestStrategies_EmptyCandidates(t *testing.T) {
	ctx := context.Background()
	for _, s := range []domain.DecisionStrategy{
		strategy.NewFixed("a"),
		strategy.NewIndex(0),
		strategy.NewRoundRobin(),
		strategy.NewRandom(),
		strategy.NewRule(nil, nil),
	} {
		_, err := s.Choose(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCandidates)
	}
}

func TestFixed_NotACandidate(t *testing.T) {
	_, err := strategy.NewFixed("ghost").Choose(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)
}

func TestIndex_OutOfRange(t *testing.T) {
	_, err := strategy.NewIndex(3).Choose(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)
}

func TestRoundRobin_Cycles(t *testing.T) {
	s := strategy.NewRoundRobin()
	c := []string{"a", "b", "c"}
	var got []string
	for range 5 {
		v, err := s.Choose(context.Background(), c)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b"}, got)
}

func TestSeededRandom_Reproducible(t *testing.T) {
	c := []string{"a", "b", "c", "d"}
	run := func() []string {
		s := strategy.NewSeededRandom(7)
		var out []string
		for range 20 {
			v, _ := s.Choose(context.Background(), c)
			out = append(out, v)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestRule(t *testing.T) {
	ctx := context.Background()
	facts := func(ctx context.Context) (map[string]any, error) {
		return map[string]any{"age": 20, "grant_type": "password"}, nil
	}
	adult := ports.RuleFunc(func(ctx context.Context, f map[string]any) (bool, error) {
		return f["age"].(int) >= 18, nil
	})
	minor := ports.RuleFunc(func(ctx context.Context, f map[string]any) (bool, error) {
		return f["age"].(int) < 18, nil
	})

	t.Run("first match in candidate order", func(t *testing.T) {
		s := strategy.NewRule(facts, map[string]ports.RuleEvaluator{"kids": minor, "adults": adult})
		got, err := s.Choose(ctx, []string{"kids", "adults"})
		require.NoError(t, err)
		assert.Equal(t, "adults", got)
	})

	t.Run("fallback", func(t *testing.T) {
		s := strategy.NewRule(facts, map[string]ports.RuleEvaluator{"kids": minor})
		s.Fallback = "default"
		got, err := s.Choose(ctx, []string{"kids", "default"})
		require.NoError(t, err)
		assert.Equal(t, "default", got)
	})

	t.Run("no match", func(t *testing.T) {
		s := strategy.NewRule(facts, map[string]ports.RuleEvaluator{"kids": minor})
		_, err := s.Choose(ctx, []string{"kids", "other"})
		assert.ErrorIs(t, err, domain.ErrNoRuleMatched)
	})

	t.Run("facts error", func(t *testing.T) {
		boom := errors.New("facts unavailable")
		s := strategy.NewRule(func(ctx context.Context) (map[string]any, error) { return nil, boom }, nil)
		_, err := s.Choose(ctx, []string{"a"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestFactsFrom_ResourceProvider(t *testing.T) {
	ctx := context.Background()
	settings := map[string]any{"region": "eu", "tier": "gold"}
	provider := ports.ProviderFunc(func(_ context.Context, key string) (any, bool, error) {
		v, ok := settings[key]
		return v, ok, nil
	})

	facts, err := strategy.FactsFrom(provider, "region", "missing")(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"region": "eu"}, facts)

	inEU := ports.RuleFunc(func(_ context.Context, f map[string]any) (bool, error) {
		return f["region"] == "eu", nil
	})
	s := strategy.NewRule(strategy.FactsFrom(provider, "region"), map[string]ports.RuleEvaluator{"eu_route": inEU})
	got, err := s.Choose(ctx, []string{"eu_route", "us_route"})
	require.NoError(t, err)
	assert.Equal(t, "eu_route", got)

	failing := ports.ProviderFunc(func(context.Context, string) (any, bool, error) {
		return nil, false, errors.New("lookup down")
	})
	_, err = strategy.NewRule(strategy.FactsFrom(failing, "region"), nil).Choose(ctx, []string{"a"})
	assert.ErrorContains(t, err, `resolve "region": lookup down`)
}
