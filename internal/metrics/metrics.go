// Package metrics exposes prometheus counters for persistence calls and for
// errors dropped at the observer boundary. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry  *prometheus.Registry
	queries   *prometheus.CounterVec
	swallowed *prometheus.CounterVec
	moved     prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrypal_persistence_calls_total",
			Help: "Persistence calls by operation and result.",
		}, []string{"op", "result"}),
		swallowed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrypal_swallowed_errors_total",
			Help: "Errors dropped while dispatching user actions.",
		}, []string{"controller", "action"}),
		moved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pantrypal_groceries_moved_to_pantry_total",
			Help: "Checked shopping-list groceries committed to the pantry.",
		}),
	}
	reg.MustRegister(m.queries, m.swallowed, m.moved)
	return m
}

// Query records one persistence call.
func (m *Metrics) Query(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.queries.WithLabelValues(op, result).Inc()
}

func (m *Metrics) Swallowed(controller, action string) {
	if m == nil {
		return
	}
	m.swallowed.WithLabelValues(controller, action).Inc()
}

func (m *Metrics) Moved(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.moved.Add(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("metrics shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
