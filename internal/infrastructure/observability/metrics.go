package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the service. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Registry owns these metrics; /metrics serves it.
	Registry *prometheus.Registry

	ledgerOps         *prometheus.CounterVec
	ledgerAmount      *prometheus.CounterVec
	draftTransitions  *prometheus.CounterVec
	externalErrors    *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics registers all metrics in a private registry, so it can be called
// more than once (tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ledgerOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recursos_ledger_operations_total",
				Help: "Ledger operations by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		ledgerAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recursos_ledger_amount_total",
				Help: "Sum of amounts appended to the ledger by transaction type.",
			},
			[]string{"type"},
		),
		draftTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recursos_draft_transitions_total",
				Help: "Recurso status transitions.",
			},
			[]string{"from", "to"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recursos_external_errors_total",
				Help: "Errors returned by external services.",
			},
			[]string{"service"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recursos_operation_duration_seconds",
				Help:    "Duration of use case operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) IncLedgerOp(operation, outcome string) {
	if m == nil {
		return
	}
	m.ledgerOps.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) AddLedgerAmount(txType string, amount float64) {
	if m == nil {
		return
	}
	m.ledgerAmount.WithLabelValues(txType).Add(amount)
}

func (m *Metrics) IncDraftTransition(from, to string) {
	if m == nil {
		return
	}
	m.draftTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncExternalError(service string) {
	if m == nil {
		return
	}
	m.externalErrors.WithLabelValues(service).Inc()
}

func (m *Metrics) ObserveDuration(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}
