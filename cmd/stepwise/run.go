package main

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/stepwise/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>",
	Short: "Run a graph interactively or headless",
	Long: `Starts a sequence on the graph entry and drives it to the end. Suspensions
are answered from the terminal, from --input answers, or from JSON lines with
--json. Without a terminal on stdin the run is headless.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		opts := cli.RunOptions{
			GraphPath: args[0],
			Config:    cfg,
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
			Logger:    logger,
		}
		opts.Headless, _ = flags.GetBool("headless")
		opts.JSON, _ = flags.GetBool("json")
		opts.Inputs, _ = flags.GetStringArray("input")
		opts.Runs, _ = flags.GetInt("runs")
		opts.Parallel, _ = flags.GetInt("parallel")

		if flags.Changed("max-steps") {
			opts.Config.MaxSteps, _ = flags.GetInt("max-steps")
		}
		if flags.Changed("confirm") {
			opts.Config.ConfirmDecisions, _ = flags.GetBool("confirm")
		}
		if flags.Changed("metrics-addr") {
			opts.Config.MetricsAddr, _ = flags.GetString("metrics-addr")
		}
		if flags.Changed("redis-addr") {
			opts.Config.RedisAddr, _ = flags.GetString("redis-addr")
		}
		if err := opts.Config.Validate(); err != nil {
			return err
		}

		if !opts.Headless && !isTerminal(opts.In) {
			opts.Headless = true
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		sigCtx := cli.NewSignalContext(parent)
		defer sigCtx.Cancel()

		return cli.Execute(sigCtx, opts)
	},
}

// isTerminal reports whether the stream the run reads from is a terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, plain prompts)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().StringArray("input", nil, "Answer for the next suspension (repeatable)")
	runCmd.Flags().Int("runs", 1, "Number of independent sequences to drive concurrently")
	runCmd.Flags().Int("parallel", 0, "Maximum sequences running at once with --runs (0 = all)")
	runCmd.Flags().Int("max-steps", 0, "Fail a sequence after this many node executions (0 = unlimited)")
	runCmd.Flags().Bool("confirm", false, "Suspend on every decision for confirmation")
	runCmd.Flags().String("metrics-addr", "", "Serve /metrics, /healthz and /events on this address")
	runCmd.Flags().String("redis-addr", "", "Guard each step with a Redis lock at this address")
}
