package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph is returned when a graph references a missing node or is otherwise malformed.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrSequenceFinished is returned by Run or Resume on a completed or failed sequence.
	ErrSequenceFinished = errors.New("sequence already finished")

	// ErrResumeWithoutSuspension is returned by Resume when the sequence is not suspended.
	ErrResumeWithoutSuspension = errors.New("resume called on a sequence that is not suspended")

	// ErrAlreadyStarted is returned by Run once the sequence has left its initial state.
	ErrAlreadyStarted = errors.New("sequence already started, use Resume")

	// ErrInvalidChoice is returned when a chosen successor is not one of the candidates.
	ErrInvalidChoice = errors.New("choice is not a candidate")

	// ErrEmptyCandidates is returned when a decision has nothing to choose from.
	ErrEmptyCandidates = errors.New("empty candidate set")

	// ErrNoRuleMatched is returned by rule-driven strategies when no candidate qualifies.
	ErrNoRuleMatched = errors.New("no rule matched")

	// ErrStepLimitExceeded is returned when a sequence runs more steps than allowed.
	ErrStepLimitExceeded = errors.New("step limit exceeded")

	// ErrSessionNotFound is returned when a session ID cannot be found in the store.
	ErrSessionNotFound = errors.New("session not found")
)

// GraphError describes a structural problem found while building a graph.
type GraphError struct {
	NodeID string // Node holding the bad reference (may be empty)
	Ref    string // Offending reference, if any
	Reason string
}

func (e *GraphError) Error() string {
	switch {
	case e.NodeID != "" && e.Ref != "":
		return fmt.Sprintf("invalid graph: node %q: %s %q", e.NodeID, e.Reason, e.Ref)
	case e.NodeID != "":
		return fmt.Sprintf("invalid graph: node %q: %s", e.NodeID, e.Reason)
	default:
		return "invalid graph: " + e.Reason
	}
}

// Unwrap allows errors.Is(err, ErrInvalidGraph).
func (e *GraphError) Unwrap() error {
	return ErrInvalidGraph
}

// NodeExecutionError is returned when a node fails during a run.
type NodeExecutionError struct {
	NodeID string
	Err    error
}

func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node %q failed: %v", e.NodeID, e.Err)
}

func (e *NodeExecutionError) Unwrap() error {
	return e.Err
}
