package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestResponse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		resp    domain.Response
		wantErr bool
	}{
		{"complete", domain.Complete(nil), false},
		{"input", domain.InputRequired("name?"), false},
		{"decision", domain.DecisionRequired("b"), false},
		{"zero value", domain.Response{}, true},
		{"unknown status", domain.Response{Status: "paused"}, true},
		{"decision without choice", domain.Response{Status: domain.StatusDecisionRequired}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, domain.StatusCompleted.Terminal())
	assert.True(t, domain.StatusFailed.Terminal())
	assert.False(t, domain.StatusRunning.Terminal())
	assert.True(t, domain.StatusSuspendedInput.Suspended())
	assert.True(t, domain.StatusSuspendedDecision.Suspended())
	assert.False(t, domain.StatusCompleted.Suspended())
}

func TestErrors_Unwrap(t *testing.T) {
	gerr := &domain.GraphError{NodeID: "a", Ref: "ghost", Reason: "unknown successor"}
	assert.ErrorIs(t, gerr, domain.ErrInvalidGraph)
	assert.Equal(t, `invalid graph: node "a": unknown successor "ghost"`, gerr.Error())

	cause := errors.New("boom")
	nerr := &domain.NodeExecutionError{NodeID: "a", Err: cause}
	assert.ErrorIs(t, nerr, cause)

	var target *domain.NodeExecutionError
	assert.True(t, errors.As(error(nerr), &target))
	assert.Equal(t, "a", target.NodeID)
}

func TestCombineHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) { calls = append(calls, "a:"+e.NodeID) },
	}
	b := domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) { calls = append(calls, "b:"+e.NodeID) },
		OnFinish:    func(ctx context.Context, e *domain.SequenceEvent) { calls = append(calls, "b:finish") },
	}

	hooks := domain.CombineHooks(a, b)
	hooks.OnNodeEnter(context.Background(), &domain.NodeEvent{NodeID: "n1"})
	hooks.OnSuspend(context.Background(), &domain.SequenceEvent{})
	hooks.OnFinish(context.Background(), &domain.SequenceEvent{})

	assert.Equal(t, []string{"a:n1", "b:n1", "b:finish"}, calls)
}
