package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
)

// execute runs one node, validates its response and fires the enter/leave hooks.
func (s *Sequence) execute(ctx context.Context, n domain.Node, input any) (domain.Response, error) {
	s.steps++
	s.emitNode(ctx, domain.EventNodeEnter, n, nil, 0, nil)
	s.logger.DebugContext(ctx, "executing node", "node_id", n.ID(), "step", s.steps, "has_input", input != nil)

	start := time.Now()
	resp, err := n.Execute(ctx, input)
	if err == nil {
		if verr := resp.Validate(); verr != nil {
			err = fmt.Errorf("malformed response: %w", verr)
		}
	}
	elapsed := time.Since(start)

	if err != nil {
		s.emitNode(ctx, domain.EventNodeLeave, n, nil, elapsed, err)
		return domain.Response{}, err
	}
	s.emitNode(ctx, domain.EventNodeLeave, n, &resp, elapsed, nil)
	return resp, nil
}

func (s *Sequence) emitNode(ctx context.Context, typ domain.EventType, n domain.Node, resp *domain.Response, d time.Duration, err error) {
	var hook func(context.Context, *domain.NodeEvent)
	switch typ {
	case domain.EventNodeEnter:
		hook = s.hooks.OnNodeEnter
	case domain.EventNodeLeave:
		hook = s.hooks.OnNodeLeave
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ, RunID: s.runID},
		NodeID:    n.ID(),
		NodeKind:  domain.KindOf(n),
		Response:  resp,
		Duration:  d,
		Err:       err,
	})
}

func (s *Sequence) emitSequence(ctx context.Context, typ domain.EventType, err error) {
	hook := s.hooks.OnFinish
	if typ == domain.EventSuspend {
		hook = s.hooks.OnSuspend
	}
	if hook == nil {
		return
	}
	nodeID := s.current
	if s.failedNode != "" {
		nodeID = s.failedNode
	}
	hook(ctx, &domain.SequenceEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ, RunID: s.runID},
		NodeID:    nodeID,
		Status:    s.status,
		Steps:     s.steps,
		Err:       err,
	})
}
