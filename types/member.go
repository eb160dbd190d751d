package types

import (
	"fmt"
	"slices"
	"time"
)

// ExclusionPeriod is a date range during which a member cannot be assigned
// tasks (vacation, illness, travel).
type ExclusionPeriod struct {
	// Start is the first excluded day (inclusive).
	Start time.Time `json:"start"`

	// End is the last excluded day (inclusive).
	End time.Time `json:"end"`

	// Reason is an optional free-form explanation.
	Reason string `json:"reason,omitempty"`
}

// Contains reports whether the given date falls inside the period.
//
// Comparison is whole-day inclusive on both ends: start <= date <= end,
// ignoring the time-of-day component.
//
// Parameters:
//   - date: Date to test
//
// Returns:
//   - bool: true if date is within [Start, End]
func (p ExclusionPeriod) Contains(date time.Time) bool {
	d := truncateToDay(date)

	return !d.Before(truncateToDay(p.Start)) && !d.After(truncateToDay(p.End))
}

// Member is a snapshot of a household member at decision time.
//
// CurrentLoad is a mutable accumulator only inside batch simulation, and only
// ever on a local copy; the engine never writes to a caller's member record.
type Member struct {
	// ID uniquely identifies the member.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// IsActive indicates whether the member can receive assignments at all.
	IsActive bool `json:"isActive"`

	// CurrentLoad is the member's accumulated load weight for the current week.
	CurrentLoad float64 `json:"currentLoad"`

	// MaxWeeklyLoad is the member's weekly load capacity.
	MaxWeeklyLoad float64 `json:"maxWeeklyLoad"`

	// PreferredCategories lists categories the member likes to take.
	PreferredCategories []string `json:"preferredCategories,omitempty"`

	// BlockedCategories lists categories the member must never be assigned.
	BlockedCategories []string `json:"blockedCategories,omitempty"`

	// Skills lists the member's skills, matched against Task.RequiredSkills.
	Skills []string `json:"skills,omitempty"`

	// ExclusionPeriods lists date ranges during which the member is unavailable.
	ExclusionPeriods []ExclusionPeriod `json:"exclusionPeriods,omitempty"`
}

// LoadRatio returns CurrentLoad / MaxWeeklyLoad.
//
// Returns 0 when MaxWeeklyLoad is zero so callers never divide by zero.
func (m Member) LoadRatio() float64 {
	if m.MaxWeeklyLoad <= 0 {
		return 0
	}

	return m.CurrentLoad / m.MaxWeeklyLoad
}

// HasSkill reports whether the member possesses the given skill.
func (m Member) HasSkill(skill string) bool {
	return slices.Contains(m.Skills, skill)
}

// PrefersCategory reports whether the category is in the member's preferred list.
func (m Member) PrefersCategory(category string) bool {
	return slices.Contains(m.PreferredCategories, category)
}

// BlocksCategory reports whether the category is in the member's blocked list.
func (m Member) BlocksCategory(category string) bool {
	return slices.Contains(m.BlockedCategories, category)
}

// ExcludedOn reports whether the member has an exclusion period covering the date.
func (m Member) ExcludedOn(date time.Time) bool {
	for _, p := range m.ExclusionPeriods {
		if p.Contains(date) {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the member.
//
// Batch simulation clones candidates before accumulating simulated load so
// the caller's snapshot is never modified.
//
// Returns:
//   - Member: Independent copy with no shared slices
func (m Member) Clone() Member {
	c := m
	c.PreferredCategories = slices.Clone(m.PreferredCategories)
	c.BlockedCategories = slices.Clone(m.BlockedCategories)
	c.Skills = slices.Clone(m.Skills)
	c.ExclusionPeriods = slices.Clone(m.ExclusionPeriods)

	return c
}

// CloneMembers deep-copies a member slice.
func CloneMembers(members []Member) []Member {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = m.Clone()
	}

	return out
}

// Validate checks schema constraints on the member snapshot.
//
// Returns:
//   - error: nil if the member is well-formed
func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: field id must not be empty", ErrInvalidMember)
	}
	if m.CurrentLoad < 0 {
		return fmt.Errorf("%w: field currentLoad must be >= 0, got %v", ErrInvalidMember, m.CurrentLoad)
	}
	if m.MaxWeeklyLoad < 0 {
		return fmt.Errorf("%w: field maxWeeklyLoad must be >= 0, got %v", ErrInvalidMember, m.MaxWeeklyLoad)
	}
	for i, p := range m.ExclusionPeriods {
		if p.End.Before(p.Start) {
			return fmt.Errorf("%w: field exclusionPeriods[%d] has end before start", ErrInvalidMember, i)
		}
	}

	return nil
}

// truncateToDay drops the time-of-day component in the date's location.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference to - from.
//
// Both instants are truncated to their calendar day first, so a due date at
// 23:00 tonight is still "today" at 08:00.
//
// Parameters:
//   - from: Reference date
//   - to: Target date
//
// Returns:
//   - int: Whole days between the two dates (negative when to is earlier)
func DaysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)

	return int(t.Sub(f).Hours() / 24)
}
