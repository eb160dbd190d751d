package rotation

import (
	"sort"
	"time"

	"github.com/fairhold/fairhold/types"
)

// Tracker records the last assignment date per (category, member) and per
// (task type, member) pair.
//
// The zero value is not usable; construct with NewTracker. All methods are
// read-only except Updated, which returns a modified copy.
type Tracker struct {
	categories map[string]map[string]time.Time
	taskTypes  map[string]map[string]time.Time
}

// IdleMember is one row of a LongestIdle report.
type IdleMember struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId"`

	// LastAssigned is when the member last received a task of the category.
	LastAssigned time.Time `json:"lastAssigned"`

	// IdleDays is the whole-day distance from LastAssigned to the query time.
	IdleDays int `json:"idleDays"`
}

// NewTracker creates an empty rotation tracker.
func NewTracker() Tracker {
	return Tracker{
		categories: make(map[string]map[string]time.Time),
		taskTypes:  make(map[string]map[string]time.Time),
	}
}

// Updated returns a new Tracker with the member's last-assignment date set
// for the category and, when non-empty, the task type.
//
// Timestamps never move backward: an update older than the recorded date
// leaves the recorded date in place. The receiver is not modified.
//
// Parameters:
//   - memberID: Member who received the assignment
//   - category: Task category (required)
//   - taskType: Task type key, empty to skip the type map
//   - at: Assignment timestamp
//
// Returns:
//   - Tracker: New tracker reflecting the assignment
func (t Tracker) Updated(memberID, category, taskType string, at time.Time) Tracker {
	next := Tracker{
		categories: cloneOuter(t.categories),
		taskTypes:  cloneOuter(t.taskTypes),
	}

	setForward(next.categories, category, memberID, at)
	if taskType != "" {
		setForward(next.taskTypes, taskType, memberID, at)
	}

	return next
}

// LastAssigned reports when the member was last assigned a task of the
// category, with found=false when the pair has never been seen.
func (t Tracker) LastAssigned(category, memberID string) (time.Time, bool) {
	at, ok := t.categories[category][memberID]
	return at, ok
}

// LastAssignedType is LastAssigned keyed by task type instead of category.
func (t Tracker) LastAssignedType(taskType, memberID string) (time.Time, bool) {
	at, ok := t.taskTypes[taskType][memberID]
	return at, ok
}

// DaysSince returns whole days since the member's last assignment in the
// category, or -1 when the member has never been assigned it.
//
// Parameters:
//   - category: Task category
//   - memberID: Member to query
//   - now: Reference instant
//
// Returns:
//   - int: Whole-day distance, -1 for never-assigned
func (t Tracker) DaysSince(category, memberID string, now time.Time) int {
	at, ok := t.categories[category][memberID]
	if !ok {
		return -1
	}

	days := types.DaysBetween(at, now)
	if days < 0 {
		return 0
	}

	return days
}

// LongestIdle lists every member known to the category, sorted by idle days
// descending so the longest-waiting member comes first.
//
// Members with equal idle time are ordered by ID for stable output.
//
// Parameters:
//   - category: Task category
//   - now: Reference instant
//
// Returns:
//   - []IdleMember: Members sorted longest-idle first, empty when the
//     category has no recorded assignments
func (t Tracker) LongestIdle(category string, now time.Time) []IdleMember {
	byMember := t.categories[category]
	if len(byMember) == 0 {
		return nil
	}

	idle := make([]IdleMember, 0, len(byMember))
	for memberID, at := range byMember {
		days := types.DaysBetween(at, now)
		if days < 0 {
			days = 0
		}
		idle = append(idle, IdleMember{MemberID: memberID, LastAssigned: at, IdleDays: days})
	}

	sort.Slice(idle, func(i, j int) bool {
		if idle[i].IdleDays != idle[j].IdleDays {
			return idle[i].IdleDays > idle[j].IdleDays
		}
		return idle[i].MemberID < idle[j].MemberID
	})

	return idle
}

// Categories returns the category keys with at least one recorded
// assignment, in no particular order.
func (t Tracker) Categories() []string {
	keys := make([]string, 0, len(t.categories))
	for category := range t.categories {
		keys = append(keys, category)
	}

	return keys
}

func cloneOuter(src map[string]map[string]time.Time) map[string]map[string]time.Time {
	dst := make(map[string]map[string]time.Time, len(src)+1)
	for key, inner := range src {
		innerCopy := make(map[string]time.Time, len(inner)+1)
		for memberID, at := range inner {
			innerCopy[memberID] = at
		}
		dst[key] = innerCopy
	}

	return dst
}

func setForward(m map[string]map[string]time.Time, key, memberID string, at time.Time) {
	inner, ok := m[key]
	if !ok {
		inner = make(map[string]time.Time, 1)
		m[key] = inner
	}

	if existing, ok := inner[memberID]; ok && existing.After(at) {
		return
	}

	inner[memberID] = at
}
