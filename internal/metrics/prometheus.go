package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fairhold/fairhold/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so constructing the
// collector never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	decisions          *prometheus.CounterVec
	decisionCandidates prometheus.Histogram
	decisionLatency    prometheus.Histogram
	forcedAssignments  *prometheus.CounterVec

	batchRuns     prometheus.Counter
	batchTasks    prometheus.Histogram
	batchAssigned prometheus.Histogram
	batchLatency  prometheus.Histogram
	balanceBefore prometheus.Gauge
	balanceAfter  prometheus.Gauge

	alerts        *prometheus.CounterVec
	recoveryPlans *prometheus.CounterVec
	rebalanceRuns prometheus.Counter
	transfers     prometheus.Counter

	forecastRuns    *prometheus.CounterVec
	forecastPoints  prometheus.Histogram
	forecastLatency *prometheus.HistogramVec
	anomaliesFound  prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "fairhold" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "fairhold"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "decisions_total",
			Help:      "Total selection decisions by outcome (assigned/unassigned).",
		}, []string{"assigned"})

		p.decisionCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "decision_candidates",
			Help:      "Number of candidates considered per decision.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12},
		})

		p.decisionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "decision_latency_seconds",
			Help:      "Latency of single-task selection in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		})

		p.forcedAssignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "forced_total",
			Help:      "Total forced assignments by assignee eligibility.",
		}, []string{"eligible"})

		p.batchRuns = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Total batch assignment runs.",
		})

		p.batchTasks = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "tasks",
			Help:      "Tasks per batch run.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		})

		p.batchAssigned = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "assigned",
			Help:      "Tasks successfully placed per batch run.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		})

		p.batchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "latency_seconds",
			Help:      "Latency of batch assignment runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		})

		p.balanceBefore = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "balance_score_before",
			Help:      "Balance score before the most recent batch run.",
		})

		p.balanceAfter = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "balance_score_after",
			Help:      "Balance score after the most recent batch run.",
		})

		p.alerts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "burnout",
			Name:      "alerts_total",
			Help:      "Total overload alerts by escalation level.",
		}, []string{"type"})

		p.recoveryPlans = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "burnout",
			Name:      "recovery_plans_total",
			Help:      "Total recovery plans created by type.",
		}, []string{"type"})

		p.rebalanceRuns = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "burnout",
			Name:      "rebalance_runs_total",
			Help:      "Total auto-balance runs.",
		})

		p.transfers = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "burnout",
			Name:      "transfers_total",
			Help:      "Total task transfers proposed by auto-balance.",
		})

		p.forecastRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "forecast",
			Name:      "runs_total",
			Help:      "Total forecasting operations by kind.",
		}, []string{"op"})

		p.forecastPoints = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "forecast",
			Name:      "input_points",
			Help:      "Input series length per forecasting operation.",
			Buckets:   []float64{14, 30, 60, 90, 180, 365},
		})

		p.forecastLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "forecast",
			Name:      "latency_seconds",
			Help:      "Latency of forecasting operations in seconds by kind.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}, []string{"op"})

		p.anomaliesFound = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "forecast",
			Name:      "anomalies_total",
			Help:      "Total anomalies flagged by detection runs.",
		})

		for _, c := range []prometheus.Collector{
			p.decisions, p.decisionCandidates, p.decisionLatency, p.forcedAssignments,
			p.batchRuns, p.batchTasks, p.batchAssigned, p.batchLatency,
			p.balanceBefore, p.balanceAfter,
			p.alerts, p.recoveryPlans, p.rebalanceRuns, p.transfers,
			p.forecastRuns, p.forecastPoints, p.forecastLatency, p.anomaliesFound,
		} {
			// AlreadyRegisteredError is tolerated so shared registries work.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordDecision records one selection outcome.
func (p *PrometheusCollector) RecordDecision(assigned bool, candidates int, duration float64) {
	p.ensureRegistered()
	p.decisions.WithLabelValues(strconv.FormatBool(assigned)).Inc()
	p.decisionCandidates.Observe(float64(candidates))
	p.decisionLatency.Observe(duration)
}

// RecordForcedAssignment records an explicit caller override.
func (p *PrometheusCollector) RecordForcedAssignment(eligible bool) {
	p.ensureRegistered()
	p.forcedAssignments.WithLabelValues(strconv.FormatBool(eligible)).Inc()
}

// RecordBatchRun records one batch assignment run.
func (p *PrometheusCollector) RecordBatchRun(tasks, assigned int, duration float64) {
	p.ensureRegistered()
	p.batchRuns.Inc()
	p.batchTasks.Observe(float64(tasks))
	p.batchAssigned.Observe(float64(assigned))
	p.batchLatency.Observe(duration)
}

// RecordBalanceImprovement records the balance score before and after a batch.
func (p *PrometheusCollector) RecordBalanceImprovement(before, after float64) {
	p.ensureRegistered()
	p.balanceBefore.Set(before)
	p.balanceAfter.Set(after)
}

// RecordAlert records an emitted overload alert by escalation level.
func (p *PrometheusCollector) RecordAlert(alertType string) {
	p.ensureRegistered()
	p.alerts.WithLabelValues(alertType).Inc()
}

// RecordRecoveryPlan records a created recovery plan by type.
func (p *PrometheusCollector) RecordRecoveryPlan(planType string) {
	p.ensureRegistered()
	p.recoveryPlans.WithLabelValues(planType).Inc()
}

// RecordRebalance records an auto-balance run.
func (p *PrometheusCollector) RecordRebalance(transfers int) {
	p.ensureRegistered()
	p.rebalanceRuns.Inc()
	p.transfers.Add(float64(transfers))
}

// RecordForecastRun records one forecasting operation.
func (p *PrometheusCollector) RecordForecastRun(operation string, points int, duration float64) {
	p.ensureRegistered()
	p.forecastRuns.WithLabelValues(operation).Inc()
	p.forecastPoints.Observe(float64(points))
	p.forecastLatency.WithLabelValues(operation).Observe(duration)
}

// RecordAnomalies records the number of anomalies found in a detection run.
func (p *PrometheusCollector) RecordAnomalies(count int) {
	p.ensureRegistered()
	p.anomaliesFound.Add(float64(count))
}
