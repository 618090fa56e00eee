package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/stepwise"
	presentation "github.com/aretw0/stepwise/internal/presentation/graph"
	"github.com/aretw0/stepwise/pkg/adapters/yamlgraph"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/runner"
)

// ErrUnreachableNodes is returned by Validate in strict mode when some node
// cannot be reached from the entry.
var ErrUnreachableNodes = errors.New("graph has unreachable nodes")

// Validate loads the graph at path and reports its shape to w. Unreachable
// nodes are warnings unless strict is set.
func Validate(w io.Writer, path string, strict bool) error {
	g, err := yamlgraph.LoadFile(path, registry.NewDefault(io.Discard))
	if err != nil {
		return err
	}

	unreachable := g.Unreachable()
	for _, id := range unreachable {
		fmt.Fprintf(w, "warning: node %q is unreachable from %q\n", id, g.Entry())
	}
	if strict && len(unreachable) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnreachableNodes, len(unreachable), g.Len())
	}

	fmt.Fprintf(w, "Graph is valid: %d nodes, entry %q, terminals %v\n", g.Len(), g.Entry(), g.Terminals())
	return nil
}

// GraphOptions configures the graph command.
type GraphOptions struct {
	Path string
	// Trace drives one headless run with Inputs and overlays the visited and
	// current nodes on the diagram.
	Trace  bool
	Inputs []string
}

// RenderGraph writes the Mermaid diagram of the graph at opts.Path to w.
func RenderGraph(ctx context.Context, w io.Writer, opts GraphOptions) error {
	engine, err := stepwise.Load(opts.Path, registry.NewDefault(io.Discard))
	if err != nil {
		return err
	}

	var overlay *presentation.Overlay
	if opts.Trace {
		seq := engine.Start()
		r := runner.NewRunner(runner.WithHeadless(true), runner.WithInputHandler(runner.NewScriptedHandler(opts.Inputs...)))
		out, runErr := r.Run(ctx, seq)
		if runErr != nil && !isInterrupted(runErr) {
			fmt.Fprintf(w, "%%%% run failed at %s: %v\n", out.NodeID, runErr)
		}
		overlay = &presentation.Overlay{
			VisitedNodes: seq.History(),
			CurrentNode:  seq.CurrentNodeID(),
		}
	}

	fmt.Fprint(w, presentation.GenerateMermaid(engine.Graph(), overlay))
	return nil
}
