package metrics

import (
	"net/http"
	"time"

	"SignalSentinel/internal/report"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for signal evaluations.
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec // labels: signal
	EvaluationErrors   *prometheus.CounterVec // labels: stage
	EvaluationDuration prometheus.Histogram
	LastRSI            prometheus.Gauge
	LastClose          prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics registers and returns all collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalsentinel_evaluations_total",
			Help: "Completed evaluations by resulting signal",
		}, []string{"signal"}),
		EvaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalsentinel_evaluation_errors_total",
			Help: "Failed evaluations by stage",
		}, []string{"stage"}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signalsentinel_evaluation_duration_seconds",
			Help:    "Wall time of one evaluation including data fetch",
			Buckets: prometheus.DefBuckets,
		}),
		LastRSI: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signalsentinel_last_rsi",
			Help: "RSI of the latest reported bar",
		}),
		LastClose: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signalsentinel_last_close",
			Help: "Close of the latest reported bar",
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(
		m.EvaluationsTotal,
		m.EvaluationErrors,
		m.EvaluationDuration,
		m.LastRSI,
		m.LastClose,
	)
	return m
}

// ObserveSummary records a successful evaluation.
func (m *Metrics) ObserveSummary(s *report.Summary, took time.Duration) {
	m.EvaluationsTotal.WithLabelValues(s.Signal.String()).Inc()
	m.EvaluationDuration.Observe(took.Seconds())
	m.LastRSI.Set(s.RSI)
	m.LastClose.Set(s.Close)
}

// ObserveError records a failed evaluation at stage.
func (m *Metrics) ObserveError(stage string) {
	m.EvaluationErrors.WithLabelValues(stage).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
