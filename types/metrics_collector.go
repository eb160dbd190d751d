package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine itself is synchronous, but callers may invoke it concurrently,
// so all methods must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	AssignmentMetrics
	BatchMetrics
	BurnoutMetrics
	ForecastMetrics
}

// AssignmentMetrics defines metrics for single-task selection.
type AssignmentMetrics interface {
	// RecordDecision records one selection outcome.
	//
	// Parameters:
	//   - assigned: true if a candidate was selected
	//   - candidates: Number of candidates considered
	//   - duration: Time taken in seconds
	RecordDecision(assigned bool, candidates int, duration float64)

	// RecordForcedAssignment records an explicit caller override.
	//
	// Parameters:
	//   - eligible: Whether the forced assignee was eligible
	RecordForcedAssignment(eligible bool)
}

// BatchMetrics defines metrics for batch assignment runs.
type BatchMetrics interface {
	// RecordBatchRun records one batch assignment run.
	//
	// Parameters:
	//   - tasks: Number of tasks in the batch
	//   - assigned: Number of tasks successfully placed
	//   - duration: Time taken in seconds
	RecordBatchRun(tasks, assigned int, duration float64)

	// RecordBalanceImprovement records the balance score before and after a batch.
	RecordBalanceImprovement(before, after float64)
}

// BurnoutMetrics defines metrics for workload health monitoring.
type BurnoutMetrics interface {
	// RecordAlert records an emitted overload alert by escalation level.
	RecordAlert(alertType string)

	// RecordRecoveryPlan records a created recovery plan by type.
	RecordRecoveryPlan(planType string)

	// RecordRebalance records an auto-balance run.
	//
	// Parameters:
	//   - transfers: Number of task transfers proposed
	RecordRebalance(transfers int)
}

// ForecastMetrics defines metrics for the workload forecaster.
type ForecastMetrics interface {
	// RecordForecastRun records one forecasting operation.
	//
	// Parameters:
	//   - operation: Operation kind ("pattern", "trend", "predict", "anomaly")
	//   - points: Number of input data points
	//   - duration: Time taken in seconds
	RecordForecastRun(operation string, points int, duration float64)

	// RecordAnomalies records the number of anomalies found in a detection run.
	RecordAnomalies(count int)
}
