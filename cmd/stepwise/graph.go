package main

import (
	"github.com/aretw0/stepwise/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <graph.yaml>",
	Short: "Export the graph as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) of the graph. With --trace, one
headless run is driven with the --input answers and the visited and current
nodes are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace, _ := cmd.Flags().GetBool("trace")
		inputs, _ := cmd.Flags().GetStringArray("input")
		return cli.RenderGraph(cmd.Context(), cmd.OutOrStdout(), cli.GraphOptions{
			Path:   args[0],
			Trace:  trace || len(inputs) > 0,
			Inputs: inputs,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("trace", false, "Overlay the path of a headless run")
	graphCmd.Flags().StringArray("input", nil, "Answer for the traced run (repeatable)")
}
