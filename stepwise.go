package stepwise

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/internal/runtime"
	"github.com/aretw0/stepwise/pkg/adapters/memory"
	"github.com/aretw0/stepwise/pkg/adapters/yamlgraph"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/graph"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/runner"
	"github.com/aretw0/stepwise/pkg/session"
)

// Sequence is one run over an engine's graph.
type Sequence = runtime.Sequence

// Outcome is the result of a Run or Resume call.
type Outcome = ports.Outcome

// ConfirmFunc decides whether a decision must be confirmed by the caller.
type ConfirmFunc = runtime.ConfirmFunc

// ConfirmAll requires confirmation for every decision.
var ConfirmAll ConfirmFunc = runtime.ConfirmAll

// Engine is the high-level entry point for the Stepwise library.
// It holds a validated graph and the options applied to every sequence it starts.
type Engine struct {
	graph    *graph.Graph
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	confirm  ConfirmFunc
	maxSteps int
	sessions *session.Manager
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfirmation makes sequences suspend on decisions for which fn returns true.
func WithConfirmation(fn ConfirmFunc) Option {
	return func(e *Engine) {
		e.confirm = fn
	}
}

// WithMaxSteps fails sequences after n node executions (0 = unlimited).
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithSessionManager replaces the default in-memory session manager.
func WithSessionManager(m *session.Manager) Option {
	return func(e *Engine) {
		e.sessions = m
	}
}

// New creates an engine over g.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, errors.New("stepwise: nil graph")
	}
	e := &Engine{
		graph:  g,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sessions == nil {
		e.sessions = session.NewManager(memory.NewStore(), session.WithLogger(e.logger))
	}
	return e, nil
}

// Load creates an engine from a YAML graph file. reg resolves node actions;
// nil means the built-in actions.
func Load(path string, reg *registry.Registry, opts ...Option) (*Engine, error) {
	if reg == nil {
		reg = registry.NewDefault(nil)
	}
	g, err := yamlgraph.LoadFile(path, reg)
	if err != nil {
		return nil, err
	}
	return New(g, opts...)
}

// Graph returns the engine's graph.
func (e *Engine) Graph() *graph.Graph { return e.graph }

// Sessions returns the manager keeping sequences started with StartSession.
func (e *Engine) Sessions() *session.Manager { return e.sessions }

// Start creates a new sequence positioned on the graph entry.
// Extra options are applied after the engine's own.
func (e *Engine) Start(opts ...runtime.Option) *Sequence {
	base := []runtime.Option{
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithMaxSteps(e.maxSteps),
	}
	if e.confirm != nil {
		base = append(base, runtime.WithConfirmation(e.confirm))
	}
	return runtime.Start(e.graph, append(base, opts...)...)
}

// StartSession starts a sequence and registers it with the session manager.
// Drive it with Sessions().Run and Sessions().Resume.
func (e *Engine) StartSession(ctx context.Context) (string, error) {
	return e.sessions.Register(ctx, e.Start())
}

// Drive starts a sequence and runs it to the end with handler answering
// every suspension.
func (e *Engine) Drive(ctx context.Context, handler runner.IOHandler) (Outcome, error) {
	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithLogger(e.logger))
	return r.Run(ctx, e.Start())
}
