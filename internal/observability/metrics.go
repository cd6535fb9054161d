// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scenario outcome labels.
const (
	OutcomeCompleted = "completed"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Scenario metrics
	ScenarioRunsTotal *prometheus.CounterVec
	ScenarioDuration  *prometheus.HistogramVec
	ScenarioRMSE      *prometheus.GaugeVec
	ScenarioSavings   *prometheus.GaugeVec

	// Synthesis metrics
	ReadingsSynthesized    prometheus.Counter
	FailureEventsGenerated prometheus.Counter
	ReadingsLabeled        prometheus.Counter

	// Dashboard metrics
	AssessmentsTotal   *prometheus.CounterVec
	WorkOrdersIssued   prometheus.Counter
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with all collectors registered on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "cip_engine"
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Scenario metrics
		ScenarioRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "runs_total",
			Help:      "Total number of scenario runs by outcome",
		}, []string{"scenario", "outcome"}),
		ScenarioDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "duration_seconds",
			Help:      "Scenario run duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"scenario"}),
		ScenarioRMSE: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "rul_rmse_days",
			Help:      "RUL prediction RMSE of the last completed run",
		}, []string{"scenario"}),
		ScenarioSavings: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "savings_idr",
			Help:      "Estimated savings of the last completed run in IDR",
		}, []string{"scenario"}),

		// Synthesis metrics
		ReadingsSynthesized: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "synth",
			Name:      "readings_total",
			Help:      "Total number of synthetic sensor readings generated",
		}),
		FailureEventsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "synth",
			Name:      "failure_events_total",
			Help:      "Total number of synthetic failure events generated",
		}),
		ReadingsLabeled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "labeling",
			Name:      "readings_total",
			Help:      "Total number of readings that received a RUL label",
		}),

		// Dashboard metrics
		AssessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "assessments_total",
			Help:      "Total number of degradation assessments by threshold outcome",
		}, []string{"crossed"}),
		WorkOrdersIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "work_orders_total",
			Help:      "Total number of mock work orders issued",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status",
		}, []string{"route", "status"}),
		HTTPRequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RecordScenarioRun records a scenario run outcome and duration.
func (m *Metrics) RecordScenarioRun(scenario, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ScenarioRunsTotal.WithLabelValues(scenario, outcome).Inc()
	m.ScenarioDuration.WithLabelValues(scenario).Observe(d.Seconds())
}

// RecordScenarioResult updates the last-result gauges of a scenario.
func (m *Metrics) RecordScenarioResult(scenario string, rmse, savingsIDR float64) {
	if m == nil {
		return
	}
	m.ScenarioRMSE.WithLabelValues(scenario).Set(rmse)
	m.ScenarioSavings.WithLabelValues(scenario).Set(savingsIDR)
}

// RecordSynthesis records generated data volumes.
func (m *Metrics) RecordSynthesis(readings, events, labeled int) {
	if m == nil {
		return
	}
	m.ReadingsSynthesized.Add(float64(readings))
	m.FailureEventsGenerated.Add(float64(events))
	m.ReadingsLabeled.Add(float64(labeled))
}

// RecordAssessment records a dashboard degradation assessment.
func (m *Metrics) RecordAssessment(thresholdCrossed bool) {
	if m == nil {
		return
	}
	label := "false"
	if thresholdCrossed {
		label = "true"
	}
	m.AssessmentsTotal.WithLabelValues(label).Inc()
}

// RecordWorkOrder increments the work orders counter.
func (m *Metrics) RecordWorkOrder() {
	if m == nil {
		return
	}
	m.WorkOrdersIssued.Inc()
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestLatency.WithLabelValues(route).Observe(d.Seconds())
}
