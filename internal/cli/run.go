package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/stepwise/internal/config"
	"github.com/aretw0/stepwise/internal/logging"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	GraphPath string
	Config    config.Config
	Headless  bool
	JSON      bool
	// Inputs answers suspensions in order instead of reading In.
	Inputs []string
	// Runs > 1 drives that many independent sequences concurrently, each
	// answered from Inputs.
	Runs     int
	Parallel int

	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Runs <= 0 {
		o.Runs = 1
	}
}

// Execute handles the run command, dispatching to a single session or a batch.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	if opts.GraphPath == "" {
		return errors.New("no graph file given")
	}
	if opts.Runs > 1 && opts.JSON {
		return fmt.Errorf("--json and --runs cannot be used together")
	}

	obs, err := startObservability(opts.Config.MetricsAddr, opts.Logger)
	if err != nil {
		return err
	}
	defer obs.Close()

	engine, cleanup, err := createEngine(ctx, opts, obs.Hooks())
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.Runs > 1 {
		return RunBatch(ctx, engine, opts)
	}
	return RunSession(ctx, engine, opts)
}
