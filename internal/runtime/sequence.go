package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/graph"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/google/uuid"
)

// Sequence walks a graph from its entry node until completion, failure or
// suspension. It owns only its position and status, never the graph.
//
// A Sequence is not safe for concurrent use: callers must serialize Run and
// Resume (see the session package). Once completed or failed it cannot be
// reused; start a new one instead.
type Sequence struct {
	graph *graph.Graph
	runID string

	current string // "" once the end is reached
	status  domain.Status
	started bool
	steps   int
	history []string

	payload    any
	proposal   string
	candidates []string
	failedNode string
	err        error

	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	confirm  ConfirmFunc
	maxSteps int
}

var _ ports.Sequence = (*Sequence)(nil)

// Start creates a sequence positioned on the graph's entry node.
// Nothing executes until Run is called.
func Start(g *graph.Graph, opts ...Option) *Sequence {
	s := &Sequence{
		graph:   g,
		runID:   uuid.NewString(),
		current: g.Entry(),
		status:  domain.StatusRunning,
		history: []string{g.Entry()},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("run_id", s.runID)
	return s
}

// Run executes nodes from the entry until the sequence completes, fails or suspends.
func (s *Sequence) Run(ctx context.Context) (ports.Outcome, error) {
	if s.status.Terminal() {
		return s.outcome(), domain.ErrSequenceFinished
	}
	if s.started {
		return s.outcome(), domain.ErrAlreadyStarted
	}
	s.started = true
	s.logger.DebugContext(ctx, "sequence started", "entry", s.current)
	return s.loop(ctx, nil)
}

// Resume continues a suspended sequence.
//
// When waiting for input, the current node is executed again with input.
// When waiting for a decision, input is the confirmed node ID: nil or "" accepts
// the proposal, any other candidate overrides it. An invalid choice returns
// domain.ErrInvalidChoice and leaves the sequence suspended.
func (s *Sequence) Resume(ctx context.Context, input any) (ports.Outcome, error) {
	if s.status.Terminal() {
		return s.outcome(), domain.ErrSequenceFinished
	}

	switch s.status {
	case domain.StatusSuspendedInput:
		s.status = domain.StatusRunning
		s.logger.DebugContext(ctx, "resuming with input", "node_id", s.current)
		return s.loop(ctx, input)

	case domain.StatusSuspendedDecision:
		target, err := s.confirmedChoice(input)
		if err != nil {
			return s.outcome(), err
		}
		s.logger.DebugContext(ctx, "decision confirmed", "node_id", s.current, "chosen", target)
		s.status = domain.StatusRunning
		s.proposal, s.candidates = "", nil
		s.advance(target)
		return s.loop(ctx, nil)

	default:
		return s.outcome(), domain.ErrResumeWithoutSuspension
	}
}

// loop is the control loop shared by Run and Resume. input is handed to the
// first node executed only.
func (s *Sequence) loop(ctx context.Context, input any) (ports.Outcome, error) {
	for {
		if s.current == "" {
			return s.finish(ctx)
		}
		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			return s.fail(ctx, s.current, domain.ErrStepLimitExceeded)
		}

		n, ok := s.graph.Node(s.current)
		if !ok {
			return s.fail(ctx, s.current, &domain.GraphError{Ref: s.current, Reason: "node vanished from graph"})
		}

		resp, err := s.execute(ctx, n, input)
		input = nil
		if err != nil {
			return s.fail(ctx, n.ID(), err)
		}
		s.payload = resp.Payload

		switch resp.Status {
		case domain.StatusComplete:
			s.advance(first(n.Successors()))

		case domain.StatusDecisionRequired:
			candidates := n.Successors()
			if !slices.Contains(candidates, resp.Chosen) {
				return s.fail(ctx, n.ID(), fmt.Errorf("%w: %q", domain.ErrInvalidChoice, resp.Chosen))
			}
			if s.confirm != nil && s.confirm(n.ID(), resp.Chosen) {
				s.proposal, s.candidates = resp.Chosen, candidates
				return s.suspend(ctx, domain.StatusSuspendedDecision)
			}
			s.advance(resp.Chosen)

		case domain.StatusInputRequired:
			return s.suspend(ctx, domain.StatusSuspendedInput)
		}
	}
}

func (s *Sequence) advance(next string) {
	s.current = next
	if next != "" {
		s.history = append(s.history, next)
	}
}

func (s *Sequence) suspend(ctx context.Context, status domain.Status) (ports.Outcome, error) {
	s.status = status
	s.logger.DebugContext(ctx, "sequence suspended", "node_id", s.current, "status", status)
	s.emitSequence(ctx, domain.EventSuspend, nil)
	return s.outcome(), nil
}

func (s *Sequence) finish(ctx context.Context) (ports.Outcome, error) {
	s.status = domain.StatusCompleted
	s.logger.DebugContext(ctx, "sequence completed", "steps", s.steps)
	s.emitSequence(ctx, domain.EventFinish, nil)
	return s.outcome(), nil
}

func (s *Sequence) fail(ctx context.Context, nodeID string, cause error) (ports.Outcome, error) {
	err := &domain.NodeExecutionError{NodeID: nodeID, Err: cause}
	s.status = domain.StatusFailed
	s.failedNode = nodeID
	s.err = err
	s.logger.WarnContext(ctx, "sequence failed", "node_id", nodeID, "err", cause)
	s.emitSequence(ctx, domain.EventFinish, err)
	return s.outcome(), err
}

func (s *Sequence) confirmedChoice(input any) (string, error) {
	switch v := input.(type) {
	case nil:
		return s.proposal, nil
	case string:
		if v == "" {
			return s.proposal, nil
		}
		if slices.Contains(s.candidates, v) {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q (candidates: %v)", domain.ErrInvalidChoice, v, s.candidates)
	default:
		return "", fmt.Errorf("%w: unsupported confirmation of type %T", domain.ErrInvalidChoice, input)
	}
}

func (s *Sequence) outcome() ports.Outcome {
	out := ports.Outcome{
		RunID:   s.runID,
		Status:  s.status,
		NodeID:  s.current,
		Payload: s.payload,
		Steps:   s.steps,
	}
	if s.status == domain.StatusSuspendedDecision {
		out.Proposal = s.proposal
		out.Candidates = slices.Clone(s.candidates)
	}
	return out
}

// RunID returns the identifier generated for this run.
func (s *Sequence) RunID() string { return s.runID }

// Status returns the lifecycle state.
func (s *Sequence) Status() domain.Status { return s.status }

// CurrentNodeID returns the node the sequence is on, or "" once completed.
func (s *Sequence) CurrentNodeID() string { return s.current }

// History returns the visited node IDs in order.
func (s *Sequence) History() []string { return slices.Clone(s.history) }

// Steps returns the number of node executions so far.
func (s *Sequence) Steps() int { return s.steps }

// FailedNodeID returns the node that failed, if any.
func (s *Sequence) FailedNodeID() string { return s.failedNode }

// Err returns the error that failed the sequence, if any.
func (s *Sequence) Err() error { return s.err }

// Proposal returns the pending decision while suspended for confirmation.
func (s *Sequence) Proposal() (string, []string) {
	return s.proposal, slices.Clone(s.candidates)
}

func first(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
