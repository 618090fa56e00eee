package main

import (
	"github.com/aretw0/stepwise/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.yaml>",
	Short: "Check the graph for consistency",
	Long: `Loads the graph, reporting dangling successors, duplicate ids, and unknown
actions as errors and nodes unreachable from the entry as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		return cli.Validate(cmd.OutOrStdout(), args[0], strict)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat unreachable nodes as errors")
}
