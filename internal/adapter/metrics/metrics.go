package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a private prometheus registry so tests can create as many
// instances as they like without duplicate-collector panics.
type Registry struct {
	registry        *prometheus.Registry
	operationsTotal *prometheus.CounterVec
	transferFailed  prometheus.Counter
}

func New() *Registry {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loanescrow_operations_total",
		Help: "Escrow operations by operation and outcome",
	}, []string{"operation", "status"})

	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "loanescrow_transfer_failures_total",
		Help: "Counterparty transfers rejected by the ledger",
	})

	r := prometheus.NewRegistry()
	r.MustRegister(ops, failed)

	return &Registry{registry: r, operationsTotal: ops, transferFailed: failed}
}

func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Registry) IncOperation(operation, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

func (m *Registry) IncTransferFailed() {
	m.transferFailed.Inc()
}
