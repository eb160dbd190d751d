package types

import "time"

// HealthStatus classifies a member's workload health from their load
// percentage.
//
// Statuses escalate in severity:
//
//	HealthHealthy → HealthElevated → HealthHigh → HealthCritical → HealthBurnoutRisk
type HealthStatus int

const (
	// HealthHealthy is a load percentage of at most 60.
	HealthHealthy HealthStatus = iota

	// HealthElevated is a load percentage of at most 80.
	HealthElevated

	// HealthHigh is a load percentage of at most 100.
	HealthHigh

	// HealthCritical is a load percentage of at most 120.
	HealthCritical

	// HealthBurnoutRisk is a load percentage above 120 and signals the need
	// for immediate intervention.
	HealthBurnoutRisk
)

// String returns the string representation of the health status.
func (s HealthStatus) String() string {
	switch s {
	case HealthHealthy:
		return "healthy"
	case HealthElevated:
		return "elevated"
	case HealthHigh:
		return "high"
	case HealthCritical:
		return "critical"
	case HealthBurnoutRisk:
		return "burnout_risk"
	default:
		return "unknown"
	}
}

// DayWorkload is one day of a member's rolling workload window.
type DayWorkload struct {
	// Date is the calendar day.
	Date time.Time `json:"date"`

	// LoadPercent is the member's load percentage for that day.
	LoadPercent float64 `json:"loadPercent"`

	// MinutesWorked is the total minutes worked that day.
	MinutesWorked int `json:"minutesWorked"`
}

// PendingTask is a not-yet-completed task currently assigned to a member.
type PendingTask struct {
	// Task is the pending task.
	Task Task `json:"task"`

	// Reassignable indicates whether the task may be moved to another member.
	Reassignable bool `json:"reassignable"`
}

// MemberWorkloadState is the snapshot the burnout monitor evaluates.
//
// The monitor never persists or mutates the snapshot; alerts and recovery
// plans are derived values.
type MemberWorkloadState struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId"`

	// LoadPercent is the current load as a percentage of the weekly maximum.
	// May exceed 100 for overloaded members.
	LoadPercent float64 `json:"loadPercent"`

	// RecentDays is the rolling daily workload window, oldest first.
	RecentDays []DayWorkload `json:"recentDays,omitempty"`

	// DaysSinceRest is the number of days since the member last had a
	// zero-work day.
	DaysSinceRest int `json:"daysSinceRest"`

	// PendingTasks lists the member's open assignments.
	PendingTasks []PendingTask `json:"pendingTasks,omitempty"`
}

// IndicatorKind identifies a detected stress indicator.
type IndicatorKind string

const (
	// IndicatorConsecutiveOverload fires after N consecutive overloaded days.
	IndicatorConsecutiveOverload IndicatorKind = "consecutive_overload"

	// IndicatorNoRest fires when the member has gone too long without a rest day.
	IndicatorNoRest IndicatorKind = "no_rest"

	// IndicatorHighVariance fires on erratic day-to-day load swings.
	IndicatorHighVariance IndicatorKind = "high_variance"

	// IndicatorLongTasks fires on repeated very long working days.
	IndicatorLongTasks IndicatorKind = "long_tasks"
)

// StressIndicator is one independently detected workload stress signal.
type StressIndicator struct {
	// Kind identifies the indicator.
	Kind IndicatorKind `json:"kind"`

	// Severity ranges 1 (mild) to 10 (acute).
	Severity int `json:"severity"`

	// Detail is a human-readable explanation with the observed values.
	Detail string `json:"detail"`
}

// AlertType is the escalation level of an overload alert.
type AlertType string

const (
	// AlertWarning asks the household to keep an eye on the member.
	AlertWarning AlertType = "warning"

	// AlertCritical asks for workload changes this week.
	AlertCritical AlertType = "critical"

	// AlertEmergency asks for immediate intervention.
	AlertEmergency AlertType = "emergency"
)

// ActionKind identifies a suggested relief action.
type ActionKind string

const (
	// ActionRest suggests scheduling rest time.
	ActionRest ActionKind = "rest"

	// ActionRedistribute suggests moving tasks to other members.
	ActionRedistribute ActionKind = "redistribute"

	// ActionDelay suggests postponing non-urgent tasks.
	ActionDelay ActionKind = "delay"

	// ActionDelegate suggests delegating outside the household.
	ActionDelegate ActionKind = "delegate"
)

// SuggestedAction is one ranked relief action attached to an alert.
type SuggestedAction struct {
	// Kind identifies the action.
	Kind ActionKind `json:"kind"`

	// ReliefPercent is the estimated load-percentage relief the action brings.
	ReliefPercent float64 `json:"reliefPercent"`

	// Description is a human-readable explanation.
	Description string `json:"description"`
}

// OverloadAlert is an ephemeral alert derived from a workload snapshot.
//
// Alerts are never persisted by the engine; the caller's notification
// dispatcher turns them into user-facing messages.
type OverloadAlert struct {
	// ID is a generated alert identifier.
	ID string `json:"id"`

	// MemberID identifies the affected member.
	MemberID string `json:"memberId"`

	// Type is the escalation level.
	Type AlertType `json:"type"`

	// Health is the classified workload health.
	Health HealthStatus `json:"health"`

	// Indicators lists the detected stress indicators.
	Indicators []StressIndicator `json:"indicators,omitempty"`

	// Actions lists suggested relief actions, strongest first.
	Actions []SuggestedAction `json:"actions"`

	// CreatedAt is the alert creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// RecoveryType identifies the kind of recovery plan.
type RecoveryType string

const (
	// RecoveryShortBreak is a half-load breather.
	RecoveryShortBreak RecoveryType = "short_break"

	// RecoveryLightDay reduces the target load to 30% of normal.
	RecoveryLightDay RecoveryType = "light_day"

	// RecoveryDayOff removes all load for a day.
	RecoveryDayOff RecoveryType = "day_off"

	// RecoveryExtendedRest removes all load for several days.
	RecoveryExtendedRest RecoveryType = "extended_rest"
)

// TaskTransfer moves one task from an overloaded member to a recipient.
type TaskTransfer struct {
	// TaskID identifies the moved task.
	TaskID string `json:"taskId"`

	// FromMemberID is the overloaded member giving the task away.
	FromMemberID string `json:"fromMemberId"`

	// ToMemberID is the recipient.
	ToMemberID string `json:"toMemberId"`

	// EstimatedReliefPercent is the load-percentage relief for the giver.
	EstimatedReliefPercent float64 `json:"estimatedReliefPercent"`
}

// RecoveryPlan is an ephemeral plan to bring an overloaded member back to a
// sustainable load.
type RecoveryPlan struct {
	// ID is a generated plan identifier.
	ID string `json:"id"`

	// MemberID identifies the recovering member.
	MemberID string `json:"memberId"`

	// Type is the chosen recovery intensity.
	Type RecoveryType `json:"type"`

	// TargetLoadPercent is the load target during recovery, as a percentage
	// of the member's normal maximum (50/30/0/0 by escalating type).
	TargetLoadPercent float64 `json:"targetLoadPercent"`

	// DurationDays is the recommended plan length.
	DurationDays int `json:"durationDays"`

	// Reassignments lists tasks moved to teammates for day-off and
	// extended-rest plans.
	Reassignments []TaskTransfer `json:"reassignments,omitempty"`

	// PostponedTaskIDs lists pending tasks that could not be reassigned.
	PostponedTaskIDs []string `json:"postponedTaskIds,omitempty"`

	// CreatedAt is the plan creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// RebalanceResult is the outcome of an auto-balance run.
//
// A run with nothing to do is a success with an explanatory message, not an
// error.
type RebalanceResult struct {
	// Success indicates the run completed (including no-op runs).
	Success bool `json:"success"`

	// Transfers lists the proposed task moves.
	Transfers []TaskTransfer `json:"transfers,omitempty"`

	// Message explains no-op outcomes.
	Message string `json:"message,omitempty"`
}
