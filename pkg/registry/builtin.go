package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
)

type printArgs struct {
	Message string `arg:"message"`
}

// Print writes its message argument, or the node input when no message is
// set, followed by a newline. The written text is returned as payload.
func Print(out io.Writer) ActionFunc {
	return func(_ context.Context, args map[string]any, input any) (any, error) {
		var a printArgs
		if err := DecodeArgs(args, &a); err != nil {
			return nil, err
		}
		msg := a.Message
		if msg == "" && input != nil {
			msg = fmt.Sprint(input)
		}
		if _, err := fmt.Fprintln(out, msg); err != nil {
			return nil, err
		}
		return msg, nil
	}
}

// Noop does nothing.
func Noop(context.Context, map[string]any, any) (any, error) {
	return nil, nil
}

// Echo returns its input unchanged.
func Echo(_ context.Context, _ map[string]any, input any) (any, error) {
	return input, nil
}

// ErrActionFailed is returned by the fail action.
var ErrActionFailed = errors.New("action failed")

type failArgs struct {
	Message string `arg:"message"`
}

// Fail always errors. Useful to exercise failure paths in demos and tests.
func Fail(_ context.Context, args map[string]any, _ any) (any, error) {
	var a failArgs
	if err := DecodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Message == "" {
		return nil, ErrActionFailed
	}
	return nil, fmt.Errorf("%w: %s", ErrActionFailed, a.Message)
}
