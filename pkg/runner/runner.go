package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

var (
	// ErrInputClosed is returned when the input ends while a sequence is suspended.
	ErrInputClosed = errors.New("input closed while sequence suspended")
	// ErrStopped is returned when the user asks to stop ("exit" or "quit").
	ErrStopped = errors.New("stopped by user")
)

// Runner handles the execution loop of a sequence using the provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text, JSON, scripted).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run starts seq and answers every suspension through the handler until the
// sequence completes or fails, the input ends, or the user stops.
//
// An invalid decision override is reported and asked again; an input rejected
// by a node is re-prompted by the node itself.
func (r *Runner) Run(ctx context.Context, seq ports.Sequence) (ports.Outcome, error) {
	handler := r.resolveHandler()
	logger := r.Logger.With("run_id", seq.RunID())

	out, err := seq.Run(ctx)
	for {
		if err != nil {
			if _, oerr := handler.Output(ctx, out); oerr != nil {
				logger.WarnContext(ctx, "failed to report outcome", "err", oerr)
			}
			return out, err
		}

		needsInput, oerr := handler.Output(ctx, out)
		if oerr != nil {
			return out, fmt.Errorf("output error: %w", oerr)
		}
		if !needsInput || !out.Status.Suspended() {
			return out, nil
		}

		answer, ierr := handler.Input(ctx)
		if ierr != nil {
			if errors.Is(ierr, io.EOF) {
				return out, ErrInputClosed
			}
			if ctx.Err() != nil {
				r.closeHandler(handler)
				return out, ctx.Err()
			}
			return out, fmt.Errorf("input error: %w", ierr)
		}
		if answer == "exit" || answer == "quit" {
			return out, ErrStopped
		}
		logger.DebugContext(ctx, "resuming", "node_id", out.NodeID, "status", out.Status)

		out, err = seq.Resume(ctx, answer)
		if errors.Is(err, domain.ErrInvalidChoice) && seq.Status() == domain.StatusSuspendedDecision {
			if serr := handler.SystemOutput(ctx, invalidChoiceText(out)); serr != nil {
				return out, serr
			}
			err = nil
		}
	}
}

func invalidChoiceText(out ports.Outcome) string {
	return fmt.Sprintf("not a candidate; choose one of: %s", strings.Join(out.Candidates, ", "))
}

// closeHandler releases a handler abandoned mid-read, such as the input pump
// of a TextHandler.
func (r *Runner) closeHandler(handler IOHandler) {
	c, ok := handler.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		r.Logger.Warn("failed to close input handler", "err", err)
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	th := NewTextHandler(r.Input, r.Output, WithTextHandlerRenderer(r.Renderer))
	if !r.Headless && r.Output != nil {
		fmt.Fprintln(r.Output, "--- Stepwise (Runner) ---")
	}
	// Memoize so a second Run reuses the same input pump.
	r.Handler = th
	return th
}
