package strategy

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Random picks a candidate uniformly at random.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom uses the runtime's global source.
func NewRandom() *Random {
	return &Random{}
}

// NewSeededRandom uses a private PCG source, for reproducible runs.
func NewSeededRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *Random) Choose(_ context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrEmptyCandidates
	}
	if s.rng == nil {
		return candidates[rand.IntN(len(candidates))], nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.IntN(len(candidates))], nil
}
