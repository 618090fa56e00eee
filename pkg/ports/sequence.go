package ports

import (
	"context"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Outcome is the result of a Run or Resume call.
type Outcome struct {
	RunID  string        `json:"run_id"`
	Status domain.Status `json:"status"`
	// NodeID is the current node: the suspended node, the failed node, or "" when complete.
	NodeID string `json:"node_id,omitempty"`
	// Payload is the last response payload (e.g. a prompt when suspended for input).
	Payload any `json:"payload,omitempty"`
	// Proposal and Candidates are set when suspended for a decision.
	Proposal   string   `json:"proposal,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Steps      int      `json:"steps"`
}

// Sequence is the driver surface used by sessions and runners.
// Implementations are not safe for concurrent use.
type Sequence interface {
	RunID() string
	Run(ctx context.Context) (Outcome, error)
	Resume(ctx context.Context, input any) (Outcome, error)
	Status() domain.Status
	CurrentNodeID() string
	History() []string
}
