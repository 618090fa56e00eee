package strategy

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Fixed always chooses the candidate with the given node ID.
type Fixed struct {
	NodeID string
}

// NewFixed returns a strategy that always picks nodeID.
func NewFixed(nodeID string) *Fixed {
	return &Fixed{NodeID: nodeID}
}

func (s *Fixed) Choose(_ context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrEmptyCandidates
	}
	if !slices.Contains(candidates, s.NodeID) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidChoice, s.NodeID)
	}
	return s.NodeID, nil
}

// Index always chooses the candidate at position K.
type Index struct {
	K int
}

// NewIndex returns a strategy that always picks the k-th candidate.
func NewIndex(k int) *Index {
	return &Index{K: k}
}

func (s *Index) Choose(_ context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrEmptyCandidates
	}
	if s.K < 0 || s.K >= len(candidates) {
		return "", fmt.Errorf("%w: index %d out of %d candidates", domain.ErrInvalidChoice, s.K, len(candidates))
	}
	return candidates[s.K], nil
}
