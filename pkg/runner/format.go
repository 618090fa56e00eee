package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/node"
	"github.com/aretw0/stepwise/pkg/ports"
)

// promptText extracts what to show for an input suspension.
func promptText(out ports.Outcome) (text, problem string) {
	switch p := out.Payload.(type) {
	case node.Prompt:
		return p.Text, p.Problem
	case string:
		return p, ""
	case nil:
		return fmt.Sprintf("Input required by %s", out.NodeID), ""
	default:
		return fmt.Sprint(p), ""
	}
}

// decisionText describes a pending decision.
func decisionText(out ports.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Decision at %s: proceed to %s?", out.NodeID, out.Proposal)
	if len(out.Candidates) > 1 {
		fmt.Fprintf(&b, " (enter to accept, or one of: %s)", strings.Join(out.Candidates, ", "))
	}
	return b.String()
}

// summaryText describes a finished sequence.
func summaryText(out ports.Outcome) string {
	switch out.Status {
	case domain.StatusCompleted:
		return fmt.Sprintf("Completed in %d steps.", out.Steps)
	case domain.StatusFailed:
		return fmt.Sprintf("Failed at %s after %d steps.", out.NodeID, out.Steps)
	default:
		return string(out.Status)
	}
}
