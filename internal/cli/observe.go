package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

// observer bundles the hooks of one CLI invocation and, when a metrics
// address is configured, the HTTP server exposing them.
type observer struct {
	hooks    domain.LifecycleHooks
	recorder *observability.Recorder
	server   *http.Server
	addr     string
	logger   *slog.Logger
}

// startObservability always logs lifecycle events through logger. A non-empty
// addr additionally records metrics and events and serves them over HTTP.
func startObservability(addr string, logger *slog.Logger) (*observer, error) {
	o := &observer{
		hooks:  observability.LoggingHooks(logger),
		logger: logger,
	}
	if addr == "" {
		return o, nil
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	o.recorder = observability.NewRecorder(0)
	o.hooks = domain.CombineHooks(o.hooks, metrics.Hooks(), o.recorder.Hooks())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	o.addr = ln.Addr().String()
	o.server = &http.Server{
		Handler:           observability.NewRouter(reg, o.recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := o.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("metrics server listening", "addr", o.addr)
	return o, nil
}

// Hooks returns the lifecycle hooks to install on the engine.
func (o *observer) Hooks() domain.LifecycleHooks { return o.hooks }

// Addr is the address the metrics server listens on, or "".
func (o *observer) Addr() string { return o.addr }

// Close stops the metrics server, if any.
func (o *observer) Close() {
	if o.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := o.server.Shutdown(ctx); err != nil {
		o.logger.Warn("metrics server shutdown failed", "err", err)
	}
}
