package types

import (
	"fmt"
	"time"
)

// Task priorities. Lower numbers are more urgent.
const (
	// PriorityHigh marks urgent tasks that should be placed first.
	PriorityHigh = 1

	// PriorityNormal is the default priority.
	PriorityNormal = 2

	// PriorityLow marks tasks that can wait.
	PriorityLow = 3
)

// Recurrence describes how often a task repeats.
type Recurrence string

const (
	// RecurrenceNone is a one-off task.
	RecurrenceNone Recurrence = ""

	// RecurrenceDaily repeats every day.
	RecurrenceDaily Recurrence = "daily"

	// RecurrenceWeekly repeats every week.
	RecurrenceWeekly Recurrence = "weekly"

	// RecurrenceMonthly repeats every month.
	RecurrenceMonthly Recurrence = "monthly"
)

// Task is a unit of household work to be distributed.
//
// Tasks are read-only inputs to the engine; a decision never modifies the
// task it was computed for.
type Task struct {
	// ID uniquely identifies the task.
	ID string `json:"id"`

	// Title is the human-readable task name.
	Title string `json:"title"`

	// Category is the task category key (e.g., "menage", "courses", "sante").
	// Unknown categories fall back to the default weight profile.
	Category string `json:"category"`

	// Priority is 1 (high), 2 (normal) or 3 (low).
	Priority int `json:"priority"`

	// DueDate is the optional deadline. Nil means no deadline pressure.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Recurrence describes how often the task repeats.
	Recurrence Recurrence `json:"recurrence,omitempty"`

	// IsCritical marks tasks that must not slip.
	IsCritical bool `json:"isCritical"`

	// RequiresCoordination marks tasks that involve other members or third
	// parties and therefore carry planning overhead.
	RequiresCoordination bool `json:"requiresCoordination"`

	// RequiredSkills lists skills a member should have to take this task.
	// A member qualifies with at least half of them.
	RequiredSkills []string `json:"requiredSkills,omitempty"`

	// EstimatedMinutes is the expected hands-on time.
	EstimatedMinutes int `json:"estimatedMinutes"`
}

// TypeKey returns the rotation task-type key for this task.
//
// Recurring tasks rotate per recurrence bucket ("daily", "weekly", "monthly")
// while one-off tasks share a single "one_off" bucket.
//
// Returns:
//   - string: Rotation task-type key
func (t Task) TypeKey() string {
	if t.Recurrence == RecurrenceNone {
		return "one_off"
	}

	return string(t.Recurrence)
}

// Validate checks schema constraints on the task.
//
// Validation failures are caller errors, not business outcomes: they wrap
// ErrInvalidTask and name the offending field.
//
// Returns:
//   - error: nil if the task is well-formed
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: field id must not be empty", ErrInvalidTask)
	}
	if t.Priority < PriorityHigh || t.Priority > PriorityLow {
		return fmt.Errorf("%w: field priority must be in [1,3], got %d", ErrInvalidTask, t.Priority)
	}
	if t.EstimatedMinutes < 0 {
		return fmt.Errorf("%w: field estimatedMinutes must be >= 0, got %d", ErrInvalidTask, t.EstimatedMinutes)
	}

	switch t.Recurrence {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
	default:
		return fmt.Errorf("%w: field recurrence has unknown value %q", ErrInvalidTask, t.Recurrence)
	}

	return nil
}
