package node_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	ctx := context.Background()

	t.Run("no action completes", func(t *testing.T) {
		n := node.NewSimple("a", "b", nil)
		resp, err := n.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusComplete, resp.Status)
		assert.Equal(t, []string{"b"}, n.Successors())
		assert.Equal(t, domain.KindSimple, domain.KindOf(n))
	})

	t.Run("terminal", func(t *testing.T) {
		n := node.NewSimple("end", "", nil)
		assert.Empty(t, n.Successors())
		assert.Equal(t, "", n.Next())
	})

	t.Run("action payload", func(t *testing.T) {
		n := node.NewSimple("a", "", func(ctx context.Context, input any) (any, error) {
			return "done", nil
		})
		resp, err := n.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "done", resp.Payload)
	})

	t.Run("action error", func(t *testing.T) {
		boom := errors.New("boom")
		n := node.NewSimple("a", "", func(ctx context.Context, input any) (any, error) {
			return nil, boom
		})
		_, err := n.Execute(ctx, nil)
		assert.ErrorIs(t, err, boom)
	})
}

func TestDecision(t *testing.T) {
	ctx := context.Background()
	pick := func(id string) domain.DecisionStrategy {
		return domain.StrategyFunc(func(ctx context.Context, c []string) (string, error) {
			return id, nil
		})
	}

	t.Run("reports choice", func(t *testing.T) {
		n := node.NewDecision("d", []string{"x", "y"}, pick("y"))
		resp, err := n.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDecisionRequired, resp.Status)
		assert.Equal(t, "y", resp.Chosen)
		assert.Equal(t, domain.KindDecision, domain.KindOf(n))
	})

	t.Run("rejects foreign choice", func(t *testing.T) {
		n := node.NewDecision("d", []string{"x", "y"}, pick("z"))
		_, err := n.Execute(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidChoice)
	})

	t.Run("empty candidates", func(t *testing.T) {
		n := node.NewDecision("d", nil, pick("x"))
		_, err := n.Execute(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCandidates)
	})

	t.Run("candidates are copied", func(t *testing.T) {
		candidates := []string{"x", "y"}
		n := node.NewDecision("d", candidates, pick("x"))
		candidates[0] = "mutated"
		got := n.Successors()
		got[1] = "mutated"
		assert.Equal(t, []string{"x", "y"}, n.Successors())
	})
}

func TestInput(t *testing.T) {
	ctx := context.Background()
	n := node.NewInput("ask", "next", "Your name?", func(input any) error {
		if s, _ := input.(string); s == "bad" {
			return errors.New("not allowed")
		}
		return nil
	})

	resp, err := n.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInputRequired, resp.Status)
	assert.Equal(t, node.Prompt{NodeID: "ask", Text: "Your name?"}, resp.Payload)

	resp, err = n.Execute(ctx, "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInputRequired, resp.Status)

	resp, err = n.Execute(ctx, "bad")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInputRequired, resp.Status)
	assert.Equal(t, "not allowed", resp.Payload.(node.Prompt).Problem)

	resp, err = n.Execute(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusComplete, resp.Status)
	assert.Equal(t, "Ada", resp.Payload)
	assert.Equal(t, domain.KindInput, domain.KindOf(n))
}
