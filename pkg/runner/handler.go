package runner

import (
	"context"

	"github.com/aretw0/stepwise/pkg/ports"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI), JSON and scripted modes.
type IOHandler interface {
	// Output presents an outcome to the user.
	// Returns true if the outcome is a suspension that needs an answer.
	Output(ctx context.Context, out ports.Outcome) (bool, error)

	// Input reads a response from the user.
	// For decisions, an empty answer accepts the proposal.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (e.g. a rejected answer).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms prompt text before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)
