// Package metrics provides the built-in MetricsCollector implementations.
package metrics

import "github.com/fairhold/fairhold/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Used as the default collector so components never need nil checks before
// recording.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordDecision discards the measurement.
func (n *NopMetrics) RecordDecision(_ bool, _ int, _ float64) {}

// RecordForcedAssignment discards the measurement.
func (n *NopMetrics) RecordForcedAssignment(_ bool) {}

// RecordBatchRun discards the measurement.
func (n *NopMetrics) RecordBatchRun(_, _ int, _ float64) {}

// RecordBalanceImprovement discards the measurement.
func (n *NopMetrics) RecordBalanceImprovement(_, _ float64) {}

// RecordAlert discards the measurement.
func (n *NopMetrics) RecordAlert(_ string) {}

// RecordRecoveryPlan discards the measurement.
func (n *NopMetrics) RecordRecoveryPlan(_ string) {}

// RecordRebalance discards the measurement.
func (n *NopMetrics) RecordRebalance(_ int) {}

// RecordForecastRun discards the measurement.
func (n *NopMetrics) RecordForecastRun(_ string, _ int, _ float64) {}

// RecordAnomalies discards the measurement.
func (n *NopMetrics) RecordAnomalies(_ int) {}
