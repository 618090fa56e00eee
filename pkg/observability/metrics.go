package observability

import (
	"context"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records node and sequence activity as Prometheus series.
type Metrics struct {
	NodeExecutions    *prometheus.CounterVec
	NodeDuration      *prometheus.HistogramVec
	NodeErrors        *prometheus.CounterVec
	Suspensions       *prometheus.CounterVec
	SequencesFinished *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		NodeExecutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_node_executions_total",
				Help: "Total number of node executions by response status",
			},
			[]string{"node_id", "status"},
		),
		NodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepwise_node_duration_seconds",
				Help:    "Duration of node executions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"node_id"},
		),
		NodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_node_errors_total",
				Help: "Total number of failed node executions",
			},
			[]string{"node_id"},
		),
		Suspensions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_suspensions_total",
				Help: "Total number of sequence suspensions by kind",
			},
			[]string{"status"},
		),
		SequencesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_sequences_finished_total",
				Help: "Total number of sequences that completed or failed",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.NodeExecutions, m.NodeDuration, m.NodeErrors, m.Suspensions, m.SequencesFinished)
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			m.NodeDuration.WithLabelValues(e.NodeID).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.NodeErrors.WithLabelValues(e.NodeID).Inc()
				m.NodeExecutions.WithLabelValues(e.NodeID, "error").Inc()
				return
			}
			m.NodeExecutions.WithLabelValues(e.NodeID, string(e.Response.Status)).Inc()
		},
		OnSuspend: func(_ context.Context, e *domain.SequenceEvent) {
			m.Suspensions.WithLabelValues(string(e.Status)).Inc()
		},
		OnFinish: func(_ context.Context, e *domain.SequenceEvent) {
			m.SequencesFinished.WithLabelValues(string(e.Status)).Inc()
		},
	}
}
