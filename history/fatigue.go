package history

import (
	"time"

	"github.com/fairhold/fairhold/types"
)

// Fatigue component caps. Intensity contributes up to 70 points, missing
// rest days up to 30, so a member can only reach 100 with both.
const (
	intensityCap = 70.0
	restCap      = 30.0

	// fullRestPenaltyDays is the streak length at which the rest component
	// saturates.
	fullRestPenaltyDays = 7.0
)

// FatigueLevel derives a 0-100 fatigue level for one member.
//
// Two components are combined:
//
//   - Intensity: the member's decayed load inside the fatigue window,
//     compared against twice the average member's windowed load. A member
//     carrying double the average is maximally intense.
//   - Rest recency: days since the member's last zero-work calendar day
//     within the lookback, saturating after a week without rest.
//
// A member with no recent completions is fully rested (level 0).
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - memberID: Member to evaluate
//   - now: Reference instant
//
// Returns:
//   - float64: Fatigue level in [0,100]
func (a *Aggregator) FatigueLevel(entries []types.HistoryEntry, memberID string, now time.Time) float64 {
	windowStart := now.AddDate(0, 0, -a.fatigueWindow)

	memberRecent := 0.0
	totalRecent := 0.0
	recentMembers := make(map[string]struct{})

	for _, entry := range entries {
		if !entry.Completed || entry.Date.Before(windowStart) || entry.Date.After(now) {
			continue
		}

		decayed := entry.Weight * a.decayFactor(entry.Date, now)
		totalRecent += decayed
		recentMembers[entry.MemberID] = struct{}{}
		if entry.MemberID == memberID {
			memberRecent += decayed
		}
	}

	if memberRecent == 0 {
		return 0
	}

	meanRecent := totalRecent / float64(len(recentMembers))

	intensity := 0.0
	if meanRecent > 0 {
		intensity = clamp(memberRecent/(2*meanRecent)*intensityCap, 0, intensityCap)
	}

	rest := clamp(float64(a.daysSinceRest(entries, memberID, now))/fullRestPenaltyDays*restCap, 0, restCap)

	return clamp(intensity+rest, 0, 100)
}

// DaysSinceRest returns how many days ago the member last had a calendar day
// with no completed work, bounded by the configured lookback.
//
// A member who worked every day of the lookback reports the full lookback.
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - memberID: Member to evaluate
//   - now: Reference instant
//
// Returns:
//   - int: Days since the last rest day (0 when today is workless)
func (a *Aggregator) DaysSinceRest(entries []types.HistoryEntry, memberID string, now time.Time) int {
	return a.daysSinceRest(entries, memberID, now)
}

func (a *Aggregator) daysSinceRest(entries []types.HistoryEntry, memberID string, now time.Time) int {
	workedDays := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Completed && entry.MemberID == memberID {
			workedDays[entry.Date.Format("2006-01-02")] = struct{}{}
		}
	}

	for back := 0; back <= a.restLookbackDays; back++ {
		day := now.AddDate(0, 0, -back).Format("2006-01-02")
		if _, worked := workedDays[day]; !worked {
			return back
		}
	}

	return a.restLookbackDays
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
