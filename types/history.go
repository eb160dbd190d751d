package types

import (
	"fmt"
	"time"
)

// HistoryEntry is one record of the append-only historical completion log.
//
// The engine only reads history; it never deletes or rewrites entries.
type HistoryEntry struct {
	// Date is when the task was (or should have been) completed.
	Date time.Time `json:"date"`

	// MemberID identifies the member the task was assigned to.
	MemberID string `json:"memberId"`

	// TaskID identifies the task.
	TaskID string `json:"taskId"`

	// Category is the task category at completion time.
	Category string `json:"category"`

	// Weight is the adjusted load weight the task carried.
	Weight float64 `json:"weight"`

	// Completed indicates whether the task was actually done.
	Completed bool `json:"completed"`

	// MinutesSpent is the optional actual time spent (0 when unknown).
	MinutesSpent int `json:"minutesSpent,omitempty"`
}

// Validate checks schema constraints on the history entry.
//
// Returns:
//   - error: nil if the entry is well-formed
func (e HistoryEntry) Validate() error {
	if e.MemberID == "" {
		return fmt.Errorf("%w: field memberId must not be empty", ErrInvalidHistoryEntry)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: field date must be set", ErrInvalidHistoryEntry)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: field weight must be >= 0, got %v", ErrInvalidHistoryEntry, e.Weight)
	}
	if e.MinutesSpent < 0 {
		return fmt.Errorf("%w: field minutesSpent must be >= 0, got %d", ErrInvalidHistoryEntry, e.MinutesSpent)
	}

	return nil
}
