package types

import (
	"fmt"
	"time"
)

// WorkloadDataPoint is one day of historical workload volume, the
// forecaster's input unit.
type WorkloadDataPoint struct {
	// Timestamp is the day the point describes.
	Timestamp time.Time `json:"timestamp"`

	// TaskCount is the number of tasks completed that day.
	TaskCount int `json:"taskCount"`

	// TotalMinutes is the total minutes worked that day.
	TotalMinutes int `json:"totalMinutes"`

	// CategoryCounts breaks TaskCount down per category.
	CategoryCounts map[string]int `json:"categoryCounts,omitempty"`

	// IsHoliday marks public holidays and vacations.
	IsHoliday bool `json:"isHoliday,omitempty"`
}

// DayOfWeek returns the point's weekday.
func (p WorkloadDataPoint) DayOfWeek() time.Weekday {
	return p.Timestamp.Weekday()
}

// WeekOfYear returns the point's ISO week, encoded as year*100+week so weeks
// from different years never collide.
func (p WorkloadDataPoint) WeekOfYear() int {
	year, week := p.Timestamp.ISOWeek()

	return year*100 + week
}

// Month returns the point's calendar month.
func (p WorkloadDataPoint) Month() time.Month {
	return p.Timestamp.Month()
}

// Validate checks schema constraints on the data point.
//
// Returns:
//   - error: nil if the point is well-formed
func (p WorkloadDataPoint) Validate() error {
	if p.Timestamp.IsZero() {
		return fmt.Errorf("%w: field timestamp must be set", ErrInvalidDataPoint)
	}
	if p.TaskCount < 0 {
		return fmt.Errorf("%w: field taskCount must be >= 0, got %d", ErrInvalidDataPoint, p.TaskCount)
	}
	if p.TotalMinutes < 0 {
		return fmt.Errorf("%w: field totalMinutes must be >= 0, got %d", ErrInvalidDataPoint, p.TotalMinutes)
	}

	return nil
}
