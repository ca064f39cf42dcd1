package export

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for the translation worker.
type Metrics struct {
	runsTotal     *prometheus.CounterVec
	runDuration   prometheus.Histogram
	axiomsPerRun  prometheus.Histogram
	axiomsTotal   prometheus.Counter
	errorsByStage *prometheus.CounterVec
}

// NewMetrics creates worker metrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphol_export_runs_total",
				Help: "Total number of diagram translation runs",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "graphol_export_run_duration_seconds",
				Help:    "Duration of diagram translation runs",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
			},
		),
		axiomsPerRun: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "graphol_export_axioms_per_run",
				Help:    "Number of axioms produced by successful runs",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
		),
		axiomsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "graphol_export_axioms_total",
				Help: "Total axioms produced across all runs",
			},
		),
		errorsByStage: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphol_export_errors_total",
				Help: "Translation failures by stage",
			},
			[]string{"stage"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.runsTotal, m.runDuration, m.axiomsPerRun, m.axiomsTotal, m.errorsByStage)
	}
	return m
}

// RecordRun records the outcome of one translation run.
func (m *Metrics) RecordRun(status string, duration time.Duration, axioms int) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(duration.Seconds())
	if status == "success" {
		m.axiomsPerRun.Observe(float64(axioms))
		m.axiomsTotal.Add(float64(axioms))
	}
}

// RecordStageError counts a failure attributed to a pipeline stage.
func (m *Metrics) RecordStageError(stage string) {
	m.errorsByStage.WithLabelValues(stage).Inc()
}
