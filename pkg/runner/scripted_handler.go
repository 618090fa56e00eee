package runner

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/stepwise/pkg/ports"
)

// ScriptedHandler answers suspensions from a fixed list of inputs.
// Once the list is exhausted Input returns io.EOF.
// Outputs are recorded for inspection.
type ScriptedHandler struct {
	mu       sync.Mutex
	inputs   []string
	outcomes []ports.Outcome
	messages []string
}

// NewScriptedHandler creates a handler replaying inputs in order.
func NewScriptedHandler(inputs ...string) *ScriptedHandler {
	return &ScriptedHandler{inputs: inputs}
}

func (h *ScriptedHandler) Output(_ context.Context, out ports.Outcome) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcomes = append(h.outcomes, out)
	return out.Status.Suspended(), nil
}

func (h *ScriptedHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.inputs) == 0 {
		return "", io.EOF
	}
	next := h.inputs[0]
	h.inputs = h.inputs[1:]
	return next, nil
}

func (h *ScriptedHandler) SystemOutput(_ context.Context, msg string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	return nil
}

// Outcomes returns every outcome presented so far.
func (h *ScriptedHandler) Outcomes() []ports.Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ports.Outcome(nil), h.outcomes...)
}

// Messages returns every system message presented so far.
func (h *ScriptedHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}
