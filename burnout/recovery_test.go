package burnout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairhold/fairhold/types"
)

func teammate(id string, load float64) types.Member {
	return types.Member{
		ID:            id,
		Name:          id,
		IsActive:      true,
		CurrentLoad:   load,
		MaxWeeklyLoad: 100,
	}
}

func pendingTask(id string, reassignable bool) types.PendingTask {
	return types.PendingTask{
		Task:         types.Task{ID: id, Category: "menage", Priority: types.PriorityNormal},
		Reassignable: reassignable,
	}
}

func TestMonitor_CreateRecoveryPlan(t *testing.T) {
	m := newMonitor(t)

	t.Run("recovery type escalates with health", func(t *testing.T) {
		cases := []struct {
			load       float64
			wantType   types.RecoveryType
			wantTarget float64
			wantDays   int
		}{
			{load: 70, wantType: types.RecoveryShortBreak, wantTarget: 50, wantDays: 1},
			{load: 95, wantType: types.RecoveryLightDay, wantTarget: 30, wantDays: 1},
			{load: 115, wantType: types.RecoveryDayOff, wantTarget: 0, wantDays: 1},
			{load: 140, wantType: types.RecoveryExtendedRest, wantTarget: 0, wantDays: 3},
		}

		for _, tc := range cases {
			plan := m.CreateRecoveryPlan(types.MemberWorkloadState{MemberID: "alice", LoadPercent: tc.load}, nil)

			require.Equal(t, tc.wantType, plan.Type, "load %v", tc.load)
			require.Equal(t, tc.wantTarget, plan.TargetLoadPercent, "load %v", tc.load)
			require.Equal(t, tc.wantDays, plan.DurationDays, "load %v", tc.load)
			require.Equal(t, "alice", plan.MemberID)
			require.Equal(t, now, plan.CreatedAt)
			require.NotEmpty(t, plan.ID)
		}
	})

	t.Run("day off reassigns to the least loaded eligible teammate", func(t *testing.T) {
		state := types.MemberWorkloadState{
			MemberID:     "alice",
			LoadPercent:  115,
			PendingTasks: []types.PendingTask{pendingTask("t1", true)},
		}

		plan := m.CreateRecoveryPlan(state, []types.Member{teammate("bob", 50), teammate("carol", 10)})

		require.Equal(t, types.RecoveryDayOff, plan.Type)
		require.Len(t, plan.Reassignments, 1)
		require.Equal(t, "carol", plan.Reassignments[0].ToMemberID)
		require.Equal(t, "alice", plan.Reassignments[0].FromMemberID)
		require.Empty(t, plan.PostponedTaskIDs)
	})

	t.Run("transfers spread across teammates", func(t *testing.T) {
		state := types.MemberWorkloadState{
			MemberID:    "alice",
			LoadPercent: 115,
			PendingTasks: []types.PendingTask{
				pendingTask("t1", true),
				pendingTask("t2", true),
			},
		}

		plan := m.CreateRecoveryPlan(state, []types.Member{teammate("bob", 10), teammate("carol", 12)})

		require.Len(t, plan.Reassignments, 2)
		require.NotEqual(t, plan.Reassignments[0].ToMemberID, plan.Reassignments[1].ToMemberID)
	})

	t.Run("non-reassignable and unplaceable tasks are postponed", func(t *testing.T) {
		blocked := teammate("bob", 10)
		blocked.BlockedCategories = []string{"menage"}

		state := types.MemberWorkloadState{
			MemberID:    "alice",
			LoadPercent: 115,
			PendingTasks: []types.PendingTask{
				pendingTask("keep", false),
				pendingTask("orphan", true),
			},
		}

		plan := m.CreateRecoveryPlan(state, []types.Member{blocked})

		require.Empty(t, plan.Reassignments)
		require.ElementsMatch(t, []string{"keep", "orphan"}, plan.PostponedTaskIDs)
	})

	t.Run("light day plans do not move tasks", func(t *testing.T) {
		state := types.MemberWorkloadState{
			MemberID:     "alice",
			LoadPercent:  95,
			PendingTasks: []types.PendingTask{pendingTask("t1", true)},
		}

		plan := m.CreateRecoveryPlan(state, []types.Member{teammate("bob", 0)})

		require.Equal(t, types.RecoveryLightDay, plan.Type)
		require.Empty(t, plan.Reassignments)
		require.Empty(t, plan.PostponedTaskIDs)
	})
}
