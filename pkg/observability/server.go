package observability

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter exposes /metrics from gatherer, /healthz, and, when rec is not
// nil, /events (optionally filtered with ?run_id=).
// A nil gatherer means prometheus.DefaultGatherer.
func NewRouter(gatherer prometheus.Gatherer, rec *Recorder) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if rec != nil {
		r.Get("/events", func(w http.ResponseWriter, req *http.Request) {
			entries := rec.Entries()
			if runID := req.URL.Query().Get("run_id"); runID != "" {
				entries = rec.ByRun(runID)
			}
			if entries == nil {
				entries = []Entry{}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(entries)
		})
	}
	return r
}
