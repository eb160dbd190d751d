package burnout

import (
	"github.com/fairhold/fairhold/types"
)

// Recovery targets as a percentage of the member's normal maximum load.
const (
	shortBreakTarget = 50.0
	lightDayTarget   = 30.0

	extendedRestDays = 3
)

// CreateRecoveryPlan builds a plan to bring a stressed member back to a
// sustainable load.
//
// The recovery type escalates with health and indicator severity: a short
// half-load break, a light day at 30%, a full day off, or several days of
// extended rest. Day-off and extended-rest plans offload every reassignable
// pending task to the least-loaded eligible teammate; tasks with no safe
// recipient (and non-reassignable ones) are postponed instead of silently
// kept.
//
// Parameters:
//   - state: Workload snapshot of the recovering member
//   - teammates: Other members considered as transfer recipients
//
// Returns:
//   - types.RecoveryPlan: Recovery plan with reassignments and postponements
func (m *Monitor) CreateRecoveryPlan(state types.MemberWorkloadState, teammates []types.Member) types.RecoveryPlan {
	health := m.Health(state.LoadPercent)
	indicators := m.Indicators(state)

	maxSeverity := 0
	for _, ind := range indicators {
		if ind.Severity > maxSeverity {
			maxSeverity = ind.Severity
		}
	}

	plan := types.RecoveryPlan{
		ID:        m.idgen.NewID(),
		MemberID:  state.MemberID,
		CreatedAt: m.clock.Now(),
	}

	switch {
	case health == types.HealthBurnoutRisk || maxSeverity >= 9:
		plan.Type = types.RecoveryExtendedRest
		plan.TargetLoadPercent = 0
		plan.DurationDays = extendedRestDays
	case health == types.HealthCritical || maxSeverity >= 7:
		plan.Type = types.RecoveryDayOff
		plan.TargetLoadPercent = 0
		plan.DurationDays = 1
	case health == types.HealthHigh || maxSeverity >= 5:
		plan.Type = types.RecoveryLightDay
		plan.TargetLoadPercent = lightDayTarget
		plan.DurationDays = 1
	default:
		plan.Type = types.RecoveryShortBreak
		plan.TargetLoadPercent = shortBreakTarget
		plan.DurationDays = 1
	}

	if plan.Type == types.RecoveryDayOff || plan.Type == types.RecoveryExtendedRest {
		plan.Reassignments, plan.PostponedTaskIDs = m.offload(state, teammates)
	}

	m.logger.Info("recovery plan created",
		"member", state.MemberID, "type", plan.Type,
		"reassigned", len(plan.Reassignments), "postponed", len(plan.PostponedTaskIDs))

	return plan
}

// offload moves every reassignable pending task to the least-loaded eligible
// teammate, postponing what cannot be placed.
func (m *Monitor) offload(state types.MemberWorkloadState, teammates []types.Member) ([]types.TaskTransfer, []string) {
	var transfers []types.TaskTransfer
	var postponed []string

	// Simulated recipient load percentages; each accepted task adds a fixed
	// contribution so a single teammate does not absorb everything.
	simulated := make(map[string]float64, len(teammates))
	for _, teammate := range teammates {
		simulated[teammate.ID] = teammate.LoadRatio() * 100
	}

	now := m.clock.Now()
	for _, pending := range state.PendingTasks {
		if !pending.Reassignable {
			postponed = append(postponed, pending.Task.ID)
			continue
		}

		recipient := ""
		best := 0.0
		for _, teammate := range teammates {
			if teammate.ID == state.MemberID {
				continue
			}
			if verdict := m.filter.Check(teammate, pending.Task, now); !verdict.Eligible {
				continue
			}

			load := simulated[teammate.ID]
			if recipient == "" || load < best || (load == best && teammate.ID < recipient) {
				recipient = teammate.ID
				best = load
			}
		}

		if recipient == "" {
			postponed = append(postponed, pending.Task.ID)
			continue
		}

		simulated[recipient] += taskReliefPercent
		transfers = append(transfers, types.TaskTransfer{
			TaskID:                 pending.Task.ID,
			FromMemberID:           state.MemberID,
			ToMemberID:             recipient,
			EstimatedReliefPercent: taskReliefPercent,
		})
	}

	return transfers, postponed
}
