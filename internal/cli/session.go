package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/internal/presentation/tui"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/runner"
)

// RunSession drives one sequence of engine to the end through the terminal,
// JSON lines, or the scripted inputs of opts.
func RunSession(ctx context.Context, engine *stepwise.Engine, opts RunOptions) error {
	opts.defaults()
	quiet := opts.JSON || opts.Headless

	if !quiet {
		tui.PrintBanner(opts.Out)
	}

	seq, err := startSequence(ctx, engine, opts)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	logger := opts.Logger.With("run_id", seq.RunID())
	logger.Debug("session started", "node_id", seq.CurrentNodeID())

	r := runner.NewRunner(createRunnerOptions(opts)...)
	out, runErr := r.Run(ctx, seq)

	if ctx.Err() != nil && runErr == nil {
		runErr = ctx.Err()
	}
	logCompletion(opts.Out, out, runErr, quiet, signalOf(ctx))
	return handleExecutionError(runErr)
}

// startSequence registers the sequence with the engine's session manager
// when a distributed lock is configured, so every step runs under it.
func startSequence(ctx context.Context, engine *stepwise.Engine, opts RunOptions) (ports.Sequence, error) {
	if opts.Config.RedisAddr == "" {
		return engine.Start(), nil
	}
	id, err := engine.StartSession(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Sessions().Handle(id), nil
}

// createRunnerOptions prepares the functional options for the Runner.
// The runner banner is always off: the CLI prints its own.
func createRunnerOptions(opts RunOptions) []runner.Option {
	runnerOpts := []runner.Option{
		runner.WithLogger(opts.Logger),
		runner.WithHeadless(true),
	}

	in := opts.In
	if len(opts.Inputs) > 0 {
		in = strings.NewReader(strings.Join(opts.Inputs, "\n") + "\n")
	}

	switch {
	case opts.JSON:
		runnerOpts = append(runnerOpts, runner.WithInputHandler(runner.NewJSONHandler(in, opts.Out)))
	case opts.Headless:
		runnerOpts = append(runnerOpts, runner.WithIO(in, opts.Out))
	default:
		runnerOpts = append(runnerOpts,
			runner.WithIO(in, opts.Out),
			runner.WithRenderer(tui.NewRenderer()),
		)
	}
	return runnerOpts
}
