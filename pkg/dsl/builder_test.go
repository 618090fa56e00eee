package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/node"
	"github.com/aretw0/stepwise/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New()

	b.Add("start").
		Do(func(ctx context.Context, input any) (any, error) { return "hello", nil }).
		Go("ask_name")

	b.Add("ask_name").
		Ask("What is your name?").
		Go("route")

	b.Add("route").
		Decide(strategy.NewFixed("long"), "short", "long")

	b.Add("short").Terminal()
	b.Add("long")

	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "start", g.Entry())
	assert.Equal(t, 5, g.Len())

	start, ok := g.Node("start")
	require.True(t, ok)
	assert.Equal(t, domain.KindSimple, domain.KindOf(start))
	assert.Equal(t, []string{"ask_name"}, start.Successors())

	resp, err := start.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Complete("hello"), resp)

	ask, _ := g.Node("ask_name")
	assert.Equal(t, domain.KindInput, domain.KindOf(ask))
	assert.Equal(t, "What is your name?", ask.(*node.Input).Prompt())

	route, _ := g.Node("route")
	assert.Equal(t, domain.KindDecision, domain.KindOf(route))
	assert.Equal(t, []string{"short", "long"}, route.Successors())

	resp, err = route.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "long", resp.Chosen)
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("start")
	assert.Same(t, first, b.Add("start"))
}

func TestBuilder_Entry(t *testing.T) {
	b := New().Entry("begin")
	b.Add("begin").Go("end")
	b.Add("end")

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "begin", g.Entry())
}

func TestBuilder_MissingDefaultEntry(t *testing.T) {
	b := New()
	b.Add("begin")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidGraph)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{
			name: "unknown successor",
			build: func(b *Builder) {
				b.Add("start").Go("ghost")
			},
		},
		{
			name: "decision without strategy",
			build: func(b *Builder) {
				b.Add("start").Decide(nil, "a")
				b.Add("a")
			},
		},
		{
			name: "decision with Go",
			build: func(b *Builder) {
				b.Add("start").Decide(strategy.NewIndex(0), "a").Go("a")
				b.Add("a")
			},
		},
		{
			name: "decision without candidates",
			build: func(b *Builder) {
				b.Add("start").Decide(strategy.NewIndex(0))
			},
		},
		{
			name: "custom node clashes with declared node",
			build: func(b *Builder) {
				b.Add("start")
				b.Use(node.NewSimple("start", "", nil))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			_, err := b.Build()
			require.Error(t, err)

			var gerr *domain.GraphError
			assert.True(t, errors.As(err, &gerr), "expected a GraphError, got %v", err)
		})
	}
}

func TestBuilder_UseCustomNode(t *testing.T) {
	b := New()
	b.Add("start").Go("custom")
	b.Use(node.NewSimple("custom", "", nil))

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "custom"}, nodeIDs(g.Nodes()))
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { New().MustBuild() })
}

func nodeIDs(nodes []domain.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}
