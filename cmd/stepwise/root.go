package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/stepwise/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stepwise",
	Short: "Stepwise drives node graphs one step at a time",
	Long: `Stepwise runs graphs of simple, decision, and input nodes described in YAML.
Sequences suspend when a node needs input or a decision needs confirming,
and resume with the answer.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
}

// loadConfig reads the config file and the environment, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		loaded.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := loaded.Logger()
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}
