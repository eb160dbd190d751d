package types

import "errors"

// Sentinel errors for the Fairhold library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with field-level context using
// fmt.Errorf("%w: field ...", err).
//
// Only malformed input is an error. Legitimate empty outcomes ("no eligible
// candidate", "no rebalancing needed") are normal return values so callers
// can branch without error handling.

// Validation errors - raised on schema-constraint violations in caller input.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTask is returned when a task violates schema constraints.
	ErrInvalidTask = errors.New("invalid task")

	// ErrInvalidMember is returned when a member snapshot violates schema constraints.
	ErrInvalidMember = errors.New("invalid member")

	// ErrInvalidHistoryEntry is returned when a history entry violates schema constraints.
	ErrInvalidHistoryEntry = errors.New("invalid history entry")

	// ErrInvalidDataPoint is returned when a workload data point violates schema constraints.
	ErrInvalidDataPoint = errors.New("invalid workload data point")
)

// Forecaster errors - preconditions on the historical series.
var (
	// ErrInsufficientData is returned when a series is too short for the
	// requested analysis (pattern detection needs 14 points, monthly patterns 60).
	ErrInsufficientData = errors.New("insufficient historical data")
)

// IsValidationError reports whether the error is a malformed-input error.
//
// Validation errors are programmer/caller errors rather than business
// outcomes; callers typically surface them as bad-request conditions.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err wraps any of the validation sentinels
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	for _, sentinel := range []error{
		ErrInvalidConfig,
		ErrInvalidTask,
		ErrInvalidMember,
		ErrInvalidHistoryEntry,
		ErrInvalidDataPoint,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
