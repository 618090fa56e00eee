package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/aretw0/stepwise/pkg/node"
	"github.com/mitchellh/mapstructure"
)

// ActionFunc defines the signature for a named action.
// It receives the static arguments declared on the node and the input
// handed to the node, and returns the response payload or an error.
type ActionFunc func(ctx context.Context, args map[string]any, input any) (any, error)

// Registry manages the available actions.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]ActionFunc),
	}
}

// NewDefault creates a registry preloaded with the built-in actions.
// print writes to out; a nil out means os.Stdout.
func NewDefault(out io.Writer) *Registry {
	if out == nil {
		out = os.Stdout
	}
	r := NewRegistry()
	r.Register("print", Print(out))
	r.Register("noop", Noop)
	r.Register("fail", Fail)
	r.Register("echo", Echo)
	return r
}

// Register adds an action to the registry.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = fn
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Execute looks up an action by name and executes it.
// Returns an error if the action is not found.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any, input any) (any, error) {
	r.mu.RLock()
	fn, ok := r.actions[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("action not found: %s", name)
	}

	return fn(ctx, args, input)
}

// Bind resolves name now and returns a node.Action calling it with args.
// Resolving eagerly lets graph loading report unknown actions before any run.
func (r *Registry) Bind(name string, args map[string]any) (node.Action, error) {
	r.mu.RLock()
	fn, ok := r.actions[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("action not found: %s", name)
	}

	return func(ctx context.Context, input any) (any, error) {
		return fn(ctx, args, input)
	}, nil
}

// DecodeArgs decodes loosely typed node arguments into a typed struct.
// Field names match case-insensitively; weakly typed input ("3" -> 3) is accepted.
func DecodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "arg",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
