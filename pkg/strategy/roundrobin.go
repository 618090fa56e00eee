package strategy

import (
	"context"
	"sync/atomic"

	"github.com/aretw0/stepwise/pkg/domain"
)

// RoundRobin cycles through the candidates on successive calls.
// The counter is shared by every sequence using the same instance.
type RoundRobin struct {
	next atomic.Uint64
}

// NewRoundRobin returns a strategy starting at the first candidate.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

func (s *RoundRobin) Choose(_ context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrEmptyCandidates
	}
	i := s.next.Add(1) - 1
	return candidates[i%uint64(len(candidates))], nil
}
