package runner

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/aretw0/stepwise/internal/runtime"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_CloseReleasesPump(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	h := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Input(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "close is idempotent")

	// The pending read completes; the pump must drop the line and exit
	// instead of blocking on a send nobody receives.
	_, err = pw.Write([]byte("late answer\n"))
	require.NoError(t, err)

	select {
	case <-h.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("input pump still blocked after Close")
	}

	_, err = h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunner_ClosesTextHandlerOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	defer pw.Close()
	h := NewTextHandler(pr, io.Discard)

	b := dsl.New()
	b.Add("ask").Ask("Name?")
	seq := runtime.Start(b.MustBuild())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	out, err := NewRunner(WithInputHandler(h)).Run(ctx, seq)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StatusSuspendedInput, out.Status)

	select {
	case <-h.done:
	default:
		t.Fatal("handler not closed after cancellation")
	}
}
