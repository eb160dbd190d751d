package fairhold

import "github.com/fairhold/fairhold/types"

// Re-exported sentinel errors, checkable with errors.Is.
//
// Only malformed input is an error. Legitimate empty outcomes ("no eligible
// candidate", "no rebalancing needed") are normal return values.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidTask is returned when a task violates schema constraints.
	ErrInvalidTask = types.ErrInvalidTask

	// ErrInvalidMember is returned when a member snapshot violates schema
	// constraints.
	ErrInvalidMember = types.ErrInvalidMember

	// ErrInvalidHistoryEntry is returned when a history entry violates
	// schema constraints.
	ErrInvalidHistoryEntry = types.ErrInvalidHistoryEntry

	// ErrInvalidDataPoint is returned when a workload data point violates
	// schema constraints.
	ErrInvalidDataPoint = types.ErrInvalidDataPoint

	// ErrInsufficientData is returned when a historical series is too short
	// for the requested analysis.
	ErrInsufficientData = types.ErrInsufficientData
)

// IsValidationError reports whether the error is a malformed-input error.
func IsValidationError(err error) bool {
	return types.IsValidationError(err)
}
