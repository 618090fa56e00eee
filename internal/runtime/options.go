package runtime

import (
	"log/slog"

	"github.com/aretw0/stepwise/pkg/domain"
)

// ConfirmFunc decides whether the decision taken at nodeID must be confirmed
// by the caller before the sequence moves on.
type ConfirmFunc func(nodeID, proposed string) bool

// ConfirmAll requires confirmation for every decision.
func ConfirmAll(string, string) bool { return true }

// Option configures a Sequence.
type Option func(*Sequence)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequence) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Sequence) {
		s.hooks = hooks
	}
}

// WithConfirmation installs a confirmation gate for decisions. When the gate
// returns true the sequence suspends with StatusSuspendedDecision instead of
// following the strategy's choice immediately.
func WithConfirmation(fn ConfirmFunc) Option {
	return func(s *Sequence) {
		s.confirm = fn
	}
}

// WithMaxSteps fails the sequence once it has executed n nodes.
// Zero (the default) means unlimited.
func WithMaxSteps(n int) Option {
	return func(s *Sequence) {
		s.maxSteps = n
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(s *Sequence) {
		if id != "" {
			s.runID = id
		}
	}
}
