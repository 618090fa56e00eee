package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepwise/pkg/domain"
	stepgraph "github.com/aretw0/stepwise/pkg/graph"
)

// Overlay contains run state to visualize on the graph.
type Overlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart for g.
// Shapes follow the node kind:
// - Entry: ((Circle))
// - Decision: {Rhombus}
// - Input: [/Parallelogram/]
// - Default: [Rectangle]
// Decision edges are dotted and labelled with the candidate position.
// Overlay styles (visited/current) are applied when overlay is not nil.
func GenerateMermaid(g *stepgraph.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range g.Nodes() {
		safeID := sanitizeMermaidID(n.ID())
		kind := domain.KindOf(n)

		opener, closer := "[", "]"
		switch {
		case n.ID() == g.Entry():
			opener, closer = "((", "))"
		case kind == domain.KindDecision:
			opener, closer = "{", "}"
		case kind == domain.KindInput:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(n.ID()), closer)

		for i, to := range n.Successors() {
			safeTo := sanitizeMermaidID(to)
			if kind == domain.KindDecision {
				fmt.Fprintf(&sb, "    %s -. \"%d\" .-> %s\n", safeID, i+1, safeTo)
				continue
			}
			fmt.Fprintf(&sb, "    %s --> %s\n", safeID, safeTo)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] || id == overlay.CurrentNode {
				continue
			}
			seen[safeID] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

var mermaidIDReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")

func sanitizeMermaidID(id string) string {
	return mermaidIDReplacer.Replace(id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
