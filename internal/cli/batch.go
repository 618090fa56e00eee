package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/internal/presentation/tui"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/runner"
	"github.com/muesli/termenv"
)

// RunBatch drives opts.Runs independent sequences over the engine's shared
// graph, at most opts.Parallel at a time, answering each from opts.Inputs.
// One status line per run is printed in run order.
func RunBatch(ctx context.Context, engine *stepwise.Engine, opts RunOptions) error {
	opts.defaults()

	seqs := make([]ports.Sequence, opts.Runs)
	for i := range seqs {
		seq, err := startSequence(ctx, engine, opts)
		if err != nil {
			return fmt.Errorf("failed to start run %d: %w", i+1, err)
		}
		seqs[i] = seq
	}

	handlerFor := func(int) runner.IOHandler {
		return runner.NewScriptedHandler(opts.Inputs...)
	}
	results, err := runner.RunBatch(ctx, seqs, handlerFor, opts.Parallel, runner.WithLogger(opts.Logger))

	profile := termenv.Ascii
	if !opts.Headless {
		profile = termenv.EnvColorProfile()
	}

	failed := 0
	for _, res := range results {
		if res.RunID == "" {
			continue
		}
		line := tui.StatusLine(profile, res.Outcome.Status, res.Outcome.NodeID, res.Outcome.Steps)
		switch {
		case res.Err == nil:
			fmt.Fprintf(opts.Out, "run %d %s: %s\n", res.Index+1, res.RunID, line)
		case isInterrupted(res.Err):
			fmt.Fprintf(opts.Out, "run %d %s: %s (%v)\n", res.Index+1, res.RunID, line, res.Err)
		default:
			failed++
			fmt.Fprintf(opts.Out, "run %d %s: %s: %v\n", res.Index+1, res.RunID, line, res.Err)
		}
	}

	if err != nil {
		return handleExecutionError(err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(results))
	}
	return nil
}
