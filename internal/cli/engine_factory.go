package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/adapters/memory"
	"github.com/aretw0/stepwise/pkg/adapters/redis"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/session"
)

// createEngine loads the graph and configures the engine the way the CLI
// settings ask. The returned cleanup releases the Redis connection, if any.
func createEngine(ctx context.Context, opts RunOptions, hooks domain.LifecycleHooks) (*stepwise.Engine, func(), error) {
	cfg := opts.Config
	engineOpts := []stepwise.Option{
		stepwise.WithLogger(opts.Logger),
		stepwise.WithLifecycleHooks(hooks),
		stepwise.WithMaxSteps(cfg.MaxSteps),
	}
	if cfg.ConfirmDecisions {
		engineOpts = append(engineOpts, stepwise.WithConfirmation(stepwise.ConfirmAll))
	}

	cleanup := func() {}
	if cfg.RedisAddr != "" {
		locker := redis.New(cfg.RedisAddr)
		if err := locker.Ping(ctx); err != nil {
			_ = locker.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		cleanup = func() {
			if err := locker.Close(); err != nil {
				opts.Logger.Warn("failed to close redis client", "err", err)
			}
		}
		manager := session.NewManager(memory.NewStore(),
			session.WithLocker(locker),
			session.WithEvictOnFinish(),
			session.WithLogger(opts.Logger),
		)
		engineOpts = append(engineOpts, stepwise.WithSessionManager(manager))
	}

	engine, err := stepwise.Load(opts.GraphPath, registry.NewDefault(opts.Out), engineOpts...)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("error loading graph: %w", err)
	}
	return engine, cleanup, nil
}
