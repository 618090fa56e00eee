package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/stepwise/pkg/domain"
)

// LoggingHooks returns lifecycle hooks writing one structured record per event.
// Node events log at debug, suspensions and completions at info, failures at error.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "node_enter",
				"run_id", e.RunID,
				"node_id", e.NodeID,
				"kind", e.NodeKind,
			)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			attrs := []any{
				"run_id", e.RunID,
				"node_id", e.NodeID,
				"duration", e.Duration,
			}
			if e.Err != nil {
				attrs = append(attrs, "err", e.Err)
			} else {
				attrs = append(attrs, "status", e.Response.Status)
			}
			logger.DebugContext(ctx, "node_leave", attrs...)
		},
		OnSuspend: func(ctx context.Context, e *domain.SequenceEvent) {
			logger.InfoContext(ctx, "sequence_suspended",
				"run_id", e.RunID,
				"node_id", e.NodeID,
				"status", e.Status,
			)
		},
		OnFinish: func(ctx context.Context, e *domain.SequenceEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "sequence_failed",
					"run_id", e.RunID,
					"node_id", e.NodeID,
					"steps", e.Steps,
					"err", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "sequence_completed",
				"run_id", e.RunID,
				"steps", e.Steps,
			)
		},
	}
}
