package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperror "gofulfill/internal/errors"
)

// Metrics concentra o registry Prometheus do processo e os contadores de negócio.
type Metrics struct {
	Registry      *prometheus.Registry
	warehouseOps  *prometheus.CounterVec
	assignmentOps *prometheus.CounterVec
}

// NewMetrics cria um registry isolado (com coletores de runtime) e registra os contadores.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		warehouseOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofulfill",
			Subsystem: "warehouse",
			Name:      "operations_total",
			Help:      "Operações de ciclo de vida de armazéns por resultado.",
		}, []string{"operation", "outcome"}),
		assignmentOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofulfill",
			Subsystem: "fulfillment",
			Name:      "operations_total",
			Help:      "Admissões e remoções de atribuições por resultado.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(m.warehouseOps, m.assignmentOps)
	return m
}

// Handler expõe o registry no formato de exposição do Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// outcome reduz o erro à sua categoria ("success", "validation_error", "conflict", ...).
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if appErr, ok := apperror.As(err); ok {
		switch appErr.Category() {
		case "VALIDATION_ERROR":
			return "validation_error"
		case "NOT_FOUND":
			return "not_found"
		case "CONFLICT":
			return "conflict"
		case "BAD_REQUEST":
			return "bad_request"
		}
	}
	return "internal_error"
}

func (m *Metrics) recordWarehouse(operation string, err error) {
	if m == nil {
		return
	}
	m.warehouseOps.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) recordAssignment(operation string, err error) {
	if m == nil {
		return
	}
	m.assignmentOps.WithLabelValues(operation, outcome(err)).Inc()
}
