package registry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	r.Register("double", func(ctx context.Context, args map[string]any, input any) (any, error) {
		return input.(int) * 2, nil
	})

	out, err := r.Execute(context.Background(), "double", nil, 21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	_, err = r.Execute(context.Background(), "missing", nil, nil)
	assert.EqualError(t, err, "action not found: missing")
}

func TestRegistry_Bind(t *testing.T) {
	var buf bytes.Buffer
	r := NewDefault(&buf)

	action, err := r.Bind("print", map[string]any{"message": "hello"})
	require.NoError(t, err)

	out, err := action(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "hello\n", buf.String())

	_, err = r.Bind("missing", nil)
	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	r := NewDefault(&buf)

	assert.Equal(t, []string{"echo", "fail", "noop", "print"}, r.Names())

	t.Run("print falls back to input", func(t *testing.T) {
		buf.Reset()
		out, err := r.Execute(ctx, "print", nil, 7)
		require.NoError(t, err)
		assert.Equal(t, "7", out)
		assert.Equal(t, "7\n", buf.String())
	})

	t.Run("print rejects unknown args", func(t *testing.T) {
		_, err := r.Execute(ctx, "print", map[string]any{"mesage": "typo"}, nil)
		assert.ErrorContains(t, err, "invalid arguments")
	})

	t.Run("noop", func(t *testing.T) {
		out, err := r.Execute(ctx, "noop", nil, "x")
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("echo", func(t *testing.T) {
		out, err := r.Execute(ctx, "echo", nil, "x")
		require.NoError(t, err)
		assert.Equal(t, "x", out)
	})

	t.Run("fail", func(t *testing.T) {
		_, err := r.Execute(ctx, "fail", nil, nil)
		assert.ErrorIs(t, err, ErrActionFailed)

		_, err = r.Execute(ctx, "fail", map[string]any{"message": "disk full"}, nil)
		assert.ErrorIs(t, err, ErrActionFailed)
		assert.EqualError(t, err, "action failed: disk full")
	})
}

func TestDecodeArgs_WeakTyping(t *testing.T) {
	var v struct {
		Count int  `arg:"count"`
		Loud  bool `arg:"loud"`
	}
	require.NoError(t, DecodeArgs(map[string]any{"count": "3", "loud": 1}, &v))
	assert.Equal(t, 3, v.Count)
	assert.True(t, v.Loud)
}
