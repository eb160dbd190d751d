package fairhold

import "github.com/fairhold/fairhold/types"

// Re-exported data model types, so most callers only import the root
// package.
type (
	// Task is a unit of household work to be distributed.
	Task = types.Task

	// Recurrence describes how often a task repeats.
	Recurrence = types.Recurrence

	// Member is a snapshot of a household member at decision time.
	Member = types.Member

	// ExclusionPeriod is a date range during which a member is unavailable.
	ExclusionPeriod = types.ExclusionPeriod

	// HistoryEntry is one line of the append-only completion log.
	HistoryEntry = types.HistoryEntry

	// ScoreWeights is the six-factor scoring profile.
	ScoreWeights = types.ScoreWeights

	// AssignmentScore is the per-candidate scoring output for one task.
	AssignmentScore = types.AssignmentScore

	// WorkloadDataPoint is one day of historical workload volume.
	WorkloadDataPoint = types.WorkloadDataPoint

	// MemberWorkloadState is the snapshot the burnout monitor evaluates.
	MemberWorkloadState = types.MemberWorkloadState

	// DayWorkload is one day of a member's rolling workload window.
	DayWorkload = types.DayWorkload

	// PendingTask is an open assignment considered for transfers.
	PendingTask = types.PendingTask

	// HealthStatus classifies a member's workload health.
	HealthStatus = types.HealthStatus

	// StressIndicator is one detected workload stress signal.
	StressIndicator = types.StressIndicator

	// OverloadAlert is an alert derived from a workload snapshot.
	OverloadAlert = types.OverloadAlert

	// SuggestedAction is one ranked relief action attached to an alert.
	SuggestedAction = types.SuggestedAction

	// RecoveryPlan is a plan to bring a member back to a sustainable load.
	RecoveryPlan = types.RecoveryPlan

	// TaskTransfer moves one task between members.
	TaskTransfer = types.TaskTransfer

	// RebalanceResult is the outcome of an auto-balance run.
	RebalanceResult = types.RebalanceResult

	// Clock abstracts the wall clock for deterministic computation.
	Clock = types.Clock

	// IDGenerator produces identifiers for ephemeral engine outputs.
	IDGenerator = types.IDGenerator

	// Logger is the structured logging interface used across the engine.
	Logger = types.Logger

	// MetricsCollector records operational metrics.
	MetricsCollector = types.MetricsCollector

	// Hooks holds optional callbacks invoked around engine decisions.
	Hooks = types.Hooks
)

// Re-exported task priorities.
const (
	PriorityHigh   = types.PriorityHigh
	PriorityNormal = types.PriorityNormal
	PriorityLow    = types.PriorityLow
)

// Re-exported recurrence values.
const (
	RecurrenceNone    = types.RecurrenceNone
	RecurrenceDaily   = types.RecurrenceDaily
	RecurrenceWeekly  = types.RecurrenceWeekly
	RecurrenceMonthly = types.RecurrenceMonthly
)

// Re-exported health statuses.
const (
	HealthHealthy     = types.HealthHealthy
	HealthElevated    = types.HealthElevated
	HealthHigh        = types.HealthHigh
	HealthCritical    = types.HealthCritical
	HealthBurnoutRisk = types.HealthBurnoutRisk
)

// DefaultScoreWeights returns the canonical scoring profile.
func DefaultScoreWeights() ScoreWeights {
	return types.DefaultScoreWeights()
}
