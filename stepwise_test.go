package stepwise_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/dsl"
	"github.com/aretw0/stepwise/pkg/graph"
	"github.com/aretw0/stepwise/pkg/runner"
	"github.com/aretw0/stepwise/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario builds node1 -> node2 -> decision1 -> {node3 -> node6 | node4 | node5}.
func scenario(t *testing.T, s domain.DecisionStrategy) *graph.Graph {
	t.Helper()
	b := dsl.New().Entry("node1")
	b.Add("node1").Go("node2")
	b.Add("node2").Go("decision1")
	b.Add("decision1").Decide(s, "node3", "node4", "node5")
	b.Add("node3").Go("node6")
	b.Add("node4")
	b.Add("node5")
	b.Add("node6")
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestNew_NilGraph(t *testing.T) {
	_, err := stepwise.New(nil)
	assert.Error(t, err)
}

func TestEngine_Start(t *testing.T) {
	var finished int
	eng, err := stepwise.New(scenario(t, strategy.NewFixed("node4")),
		stepwise.WithLifecycleHooks(domain.LifecycleHooks{
			OnFinish: func(context.Context, *domain.SequenceEvent) { finished++ },
		}),
	)
	require.NoError(t, err)

	for range 2 {
		seq := eng.Start()
		out, err := seq.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, out.Status)
		assert.Equal(t, []string{"node1", "node2", "decision1", "node4"}, seq.History())
	}
	assert.Equal(t, 2, finished)
}

func TestEngine_Confirmation(t *testing.T) {
	eng, err := stepwise.New(scenario(t, strategy.NewFixed("node4")), stepwise.WithConfirmation(stepwise.ConfirmAll))
	require.NoError(t, err)

	out, err := eng.Drive(context.Background(), runner.NewScriptedHandler("node5"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	assert.Equal(t, 4, out.Steps)
}

func TestEngine_MaxSteps(t *testing.T) {
	b := dsl.New()
	b.Add("start").Go("loop")
	b.Add("loop").Go("start")

	eng, err := stepwise.New(b.MustBuild(), stepwise.WithMaxSteps(5))
	require.NoError(t, err)

	out, err := eng.Start().Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrStepLimitExceeded)
	assert.Equal(t, domain.StatusFailed, out.Status)
}

func TestEngine_Sessions(t *testing.T) {
	b := dsl.New()
	b.Add("start").Ask("Name?")
	eng, err := stepwise.New(b.MustBuild())
	require.NoError(t, err)

	ctx := context.Background()
	id, err := eng.StartSession(ctx)
	require.NoError(t, err)

	out, err := eng.Sessions().Run(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuspendedInput, out.Status)

	out, err = eng.Sessions().Resume(ctx, id, "Ada")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	assert.Equal(t, "Ada", out.Payload)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entry: start
nodes:
  - id: start
    do: noop
    next: end
  - id: end
`), 0o600))

	eng, err := stepwise.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, eng.Graph().Len())

	_, err = stepwise.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
