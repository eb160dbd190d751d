package assign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fairhold/fairhold/rotation"
	"github.com/fairhold/fairhold/types"
)

var targetDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func member(id string, load float64) types.Member {
	return types.Member{
		ID:            id,
		Name:          id,
		IsActive:      true,
		CurrentLoad:   load,
		MaxWeeklyLoad: 100,
	}
}

func chore(id string) types.Task {
	return types.Task{ID: id, Category: "menage", Priority: types.PriorityNormal}
}

func TestSelector_Select(t *testing.T) {
	selector := NewSelector()

	t.Run("least loaded member wins when otherwise equal", func(t *testing.T) {
		decision := selector.Select(Request{
			Task:       chore("t1"),
			Candidates: []types.Member{member("a", 10), member("b", 5), member("c", 0)},
			Tracker:    rotation.NewTracker(),
			TargetDate: targetDate,
		})

		require.True(t, decision.Assigned)
		require.Equal(t, "c", decision.MemberID)
		require.Len(t, decision.Alternatives, 2)
		require.Equal(t, "b", decision.Alternatives[0].MemberID)
	})

	t.Run("alternatives capped at three", func(t *testing.T) {
		decision := selector.Select(Request{
			Task: chore("t1"),
			Candidates: []types.Member{
				member("a", 40), member("b", 30), member("c", 20),
				member("d", 10), member("e", 0),
			},
			Tracker:    rotation.NewTracker(),
			TargetDate: targetDate,
		})

		require.Len(t, decision.Alternatives, 3)
	})

	t.Run("no eligible candidate is an outcome, not an error", func(t *testing.T) {
		inactive := member("a", 0)
		inactive.IsActive = false
		blocked := member("b", 0)
		blocked.BlockedCategories = []string{"menage"}

		decision := selector.Select(Request{
			Task:       chore("t1"),
			Candidates: []types.Member{inactive, blocked},
			Tracker:    rotation.NewTracker(),
			TargetDate: targetDate,
		})

		require.False(t, decision.Assigned)
		require.Empty(t, decision.MemberID)
		require.Len(t, decision.Reasons, 2)
		require.NotEmpty(t, decision.Reasons["a"])
		require.NotEmpty(t, decision.Reasons["b"])
	})

	t.Run("empty pool yields unassigned", func(t *testing.T) {
		decision := selector.Select(Request{Task: chore("t1"), Tracker: rotation.NewTracker(), TargetDate: targetDate})
		require.False(t, decision.Assigned)
	})

	t.Run("forced assignee wins regardless of score", func(t *testing.T) {
		decision := selector.Select(Request{
			Task:             chore("t1"),
			Candidates:       []types.Member{member("a", 90), member("b", 0)},
			Tracker:          rotation.NewTracker(),
			TargetDate:       targetDate,
			ForcedAssigneeID: "a",
		})

		require.True(t, decision.Assigned)
		require.Equal(t, "a", decision.MemberID)
		require.True(t, decision.Forced)
		require.False(t, decision.ForcedIneligible)
		require.True(t, decision.Score.Eligible)
	})

	t.Run("forcing an ineligible member is flagged", func(t *testing.T) {
		inactive := member("a", 0)
		inactive.IsActive = false

		decision := selector.Select(Request{
			Task:             chore("t1"),
			Candidates:       []types.Member{inactive, member("b", 0)},
			Tracker:          rotation.NewTracker(),
			TargetDate:       targetDate,
			ForcedAssigneeID: "a",
		})

		require.True(t, decision.Assigned)
		require.True(t, decision.Forced)
		require.True(t, decision.ForcedIneligible)
		require.False(t, decision.Score.Eligible)

		flagged := false
		for _, line := range decision.Rationale {
			if line != "" && (len(line) >= 7 && line[:7] == "warning") {
				flagged = true
			}
		}
		require.True(t, flagged, "rationale must flag the ineligible forced pick")
	})

	t.Run("unknown forced assignee falls back to scoring", func(t *testing.T) {
		decision := selector.Select(Request{
			Task:             chore("t1"),
			Candidates:       []types.Member{member("a", 10), member("b", 0)},
			Tracker:          rotation.NewTracker(),
			TargetDate:       targetDate,
			ForcedAssigneeID: "ghost",
		})

		require.True(t, decision.Assigned)
		require.Equal(t, "b", decision.MemberID)
		require.False(t, decision.Forced)
	})

	t.Run("ties break deterministically, not by slice order", func(t *testing.T) {
		pool := []types.Member{member("a", 0), member("b", 0)}

		first := selector.Select(Request{
			Task: chore("t1"), Candidates: pool, Tracker: rotation.NewTracker(), TargetDate: targetDate,
		})
		repeat := selector.Select(Request{
			Task: chore("t1"), Candidates: pool, Tracker: rotation.NewTracker(), TargetDate: targetDate,
		})
		require.Equal(t, first.MemberID, repeat.MemberID)

		// Across many distinct tasks, both members should win sometimes.
		winners := make(map[string]int)
		taskIDs := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11", "t12"}
		for _, taskID := range taskIDs {
			d := selector.Select(Request{
				Task: chore(taskID), Candidates: pool, Tracker: rotation.NewTracker(), TargetDate: targetDate,
			})
			winners[d.MemberID]++
		}
		require.Len(t, winners, 2, "hash tie-breaking should spread wins across members")
	})

	t.Run("rationale mentions load and rotation concerns", func(t *testing.T) {
		tracker := rotation.NewTracker().
			Updated("a", "menage", "", targetDate).
			Updated("b", "menage", "", targetDate)

		decision := selector.Select(Request{
			Task:       chore("t1"),
			Candidates: []types.Member{member("a", 0), member("b", 50)},
			Tracker:    tracker,
			TargetDate: targetDate,
		})

		require.Equal(t, "a", decision.MemberID)
		require.NotEmpty(t, decision.Rationale)

		found := false
		for _, line := range decision.Rationale {
			if line == "a handled this category very recently" {
				found = true
			}
		}
		require.True(t, found)
	})
}
