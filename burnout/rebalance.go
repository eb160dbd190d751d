package burnout

import (
	"sort"

	"github.com/fairhold/fairhold/types"
)

// taskReliefPercent is the fixed load-percentage contribution assumed for
// one transferred task.
const taskReliefPercent = 10.0

// underloadMargin below the warning threshold qualifies a member as a
// transfer recipient.
const underloadMargin = 20.0

// rebalanceTargetPercent is the load percentage an overloaded member is
// brought down toward.
const rebalanceTargetPercent = 70.0

// noRebalanceMessage is returned when a run has nothing to do.
const noRebalanceMessage = "No rebalancing needed or no available members"

// AutoBalance proposes task transfers from overloaded to underloaded
// members.
//
// A member is overloaded at or above the warning threshold and underloaded
// below threshold minus 20. For each overloaded member, lowest-priority
// reassignable tasks are moved one by one to the least-loaded eligible
// recipient, each transfer counted as a fixed 10-point relief, until the
// member's reduction target (current load minus 70) is met or no safe
// recipient remains.
//
// A run with nothing to move is a success with an explanatory message.
//
// Parameters:
//   - states: Workload snapshots for every member
//   - members: Member snapshots keyed by the same IDs, used for eligibility
//
// Returns:
//   - types.RebalanceResult: Proposed transfers, never an error
func (m *Monitor) AutoBalance(states []types.MemberWorkloadState, members []types.Member) types.RebalanceResult {
	byID := make(map[string]types.Member, len(members))
	for _, member := range members {
		byID[member.ID] = member
	}

	simulated := make(map[string]float64, len(states))
	var overloaded []types.MemberWorkloadState
	for _, state := range states {
		simulated[state.MemberID] = state.LoadPercent
		if state.LoadPercent >= m.cfg.WarningThreshold {
			overloaded = append(overloaded, state)
		}
	}

	// Heaviest members first so the worst case gets first pick of recipients.
	sort.SliceStable(overloaded, func(i, j int) bool {
		return overloaded[i].LoadPercent > overloaded[j].LoadPercent
	})

	var transfers []types.TaskTransfer
	now := m.clock.Now()

	for _, state := range overloaded {
		reduction := state.LoadPercent - rebalanceTargetPercent
		if reduction <= 0 {
			continue
		}

		pending := reassignableByPriority(state.PendingTasks)
		relieved := 0.0

		for _, task := range pending {
			if relieved >= reduction {
				break
			}

			recipient := ""
			best := 0.0
			for id, load := range simulated {
				if id == state.MemberID || load >= m.cfg.WarningThreshold-underloadMargin {
					continue
				}

				member, known := byID[id]
				if !known {
					continue
				}
				if verdict := m.filter.Check(member, task, now); !verdict.Eligible {
					continue
				}

				if recipient == "" || load < best || (load == best && id < recipient) {
					recipient = id
					best = load
				}
			}

			if recipient == "" {
				break
			}

			simulated[recipient] += taskReliefPercent
			simulated[state.MemberID] -= taskReliefPercent
			relieved += taskReliefPercent
			transfers = append(transfers, types.TaskTransfer{
				TaskID:                 task.ID,
				FromMemberID:           state.MemberID,
				ToMemberID:             recipient,
				EstimatedReliefPercent: taskReliefPercent,
			})
		}
	}

	if len(transfers) == 0 {
		return types.RebalanceResult{Success: true, Message: noRebalanceMessage}
	}

	m.logger.Info("auto-balance proposed transfers", "count", len(transfers))

	return types.RebalanceResult{Success: true, Transfers: transfers}
}

// reassignableByPriority returns the reassignable pending tasks ordered
// lowest priority first, so urgent work stays with its owner.
func reassignableByPriority(pending []types.PendingTask) []types.Task {
	tasks := make([]types.Task, 0, len(pending))
	for _, p := range pending {
		if p.Reassignable {
			tasks = append(tasks, p.Task)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})

	return tasks
}
