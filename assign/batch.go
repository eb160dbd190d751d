package assign

import (
	"sort"
	"time"

	"github.com/fairhold/fairhold/fairness"
	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/rotation"
	"github.com/fairhold/fairhold/types"
	"github.com/fairhold/fairhold/weight"
)

// BatchAssignment is one successful placement inside a batch run.
type BatchAssignment struct {
	// TaskID identifies the placed task.
	TaskID string `json:"taskId"`

	// MemberID is the member the task was assigned to.
	MemberID string `json:"memberId"`

	// Weight is the task's adjusted load weight added to the member's
	// simulated load.
	Weight float64 `json:"weight"`

	// Decision is the full selection outcome for the task.
	Decision Decision `json:"decision"`
}

// UnassignedTask records a task no member could take.
type UnassignedTask struct {
	// TaskID identifies the task.
	TaskID string `json:"taskId"`

	// Reasons maps member ID to the disqualification reason.
	Reasons map[string]string `json:"reasons,omitempty"`
}

// BatchResult is the outcome of a batch assignment run.
//
// Members and Tracker are updated local copies; the caller's inputs are
// untouched. Persisting the result is the caller's job.
type BatchResult struct {
	// Assignments lists successful placements in processing order.
	Assignments []BatchAssignment `json:"assignments"`

	// Unassigned lists tasks that found no eligible member.
	Unassigned []UnassignedTask `json:"unassigned,omitempty"`

	// Members is the simulated member snapshot after all placements.
	Members []types.Member `json:"members"`

	// Tracker is the rotation state after all placements.
	Tracker rotation.Tracker `json:"-"`

	// BalanceBefore is the balance score of the pool before the batch.
	BalanceBefore float64 `json:"balanceBefore"`

	// BalanceAfter is the balance score of the pool after the batch.
	BalanceAfter float64 `json:"balanceAfter"`
}

// BatchAssigner distributes a task list over a simulated member pool.
type BatchAssigner struct {
	selector *Selector
	weigher  *weight.Calculator
	logger   types.Logger
}

// BatchOption configures a BatchAssigner.
type BatchOption func(*BatchAssigner)

// WithSelector replaces the default selector.
func WithSelector(selector *Selector) BatchOption {
	return func(b *BatchAssigner) {
		b.selector = selector
	}
}

// WithCalculator replaces the default weight calculator.
func WithCalculator(weigher *weight.Calculator) BatchOption {
	return func(b *BatchAssigner) {
		b.weigher = weigher
	}
}

// WithBatchLogger sets the logger used for diagnostics.
func WithBatchLogger(logger types.Logger) BatchOption {
	return func(b *BatchAssigner) {
		b.logger = logger
	}
}

// NewBatchAssigner creates a batch assigner.
//
// Parameters:
//   - weigher: Weight calculator for simulated load accumulation
//   - opts: Optional configuration (WithSelector, WithBatchLogger)
//
// Returns:
//   - *BatchAssigner: Initialized assigner ready for use
func NewBatchAssigner(weigher *weight.Calculator, opts ...BatchOption) *BatchAssigner {
	b := &BatchAssigner{
		weigher: weigher,
		logger:  logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if b.selector == nil {
		b.selector = NewSelector(WithLogger(b.logger))
	}

	return b
}

// Assign distributes the task list over the member pool.
//
// Tasks are processed critical-first, then by ascending priority number, so
// urgent work is placed while the pool is still under-committed. Each
// placement adds the task's adjusted weight to the winner's simulated load
// and advances a local rotation tracker, which later tasks in the same batch
// observe. The caller's task, member and tracker inputs are never modified.
//
// Parameters:
//   - tasks: Tasks to place (read-only)
//   - members: Member pool snapshot (read-only)
//   - tracker: Rotation state at batch start (read-only)
//   - fatigue: Fatigue level per member ID
//   - targetDate: Assignment date for the whole batch
//
// Returns:
//   - BatchResult: Placements, failures and the updated simulated snapshot
func (b *BatchAssigner) Assign(
	tasks []types.Task,
	members []types.Member,
	tracker rotation.Tracker,
	fatigue map[string]float64,
	targetDate time.Time,
) BatchResult {
	pool := types.CloneMembers(members)

	result := BatchResult{
		Assignments:   make([]BatchAssignment, 0, len(tasks)),
		Members:       pool,
		Tracker:       tracker,
		BalanceBefore: fairness.Round2(fairness.BalanceScore(loads(pool))),
	}

	ordered := make([]types.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsCritical != ordered[j].IsCritical {
			return ordered[i].IsCritical
		}
		return ordered[i].Priority < ordered[j].Priority
	})

	for _, task := range ordered {
		decision := b.selector.Select(Request{
			Task:       task,
			Candidates: pool,
			Tracker:    result.Tracker,
			Fatigue:    fatigue,
			TargetDate: targetDate,
		})

		if !decision.Assigned {
			result.Unassigned = append(result.Unassigned, UnassignedTask{
				TaskID:  task.ID,
				Reasons: decision.Reasons,
			})
			b.logger.Debug("no eligible member for task", "task", task.ID)

			continue
		}

		w := b.weigher.TaskWeight(task, fatigue[decision.MemberID])
		for i := range pool {
			if pool[i].ID == decision.MemberID {
				pool[i].CurrentLoad += w.Adjusted
				break
			}
		}
		result.Tracker = result.Tracker.Updated(decision.MemberID, task.Category, task.TypeKey(), targetDate)

		result.Assignments = append(result.Assignments, BatchAssignment{
			TaskID:   task.ID,
			MemberID: decision.MemberID,
			Weight:   w.Adjusted,
			Decision: decision,
		})
	}

	result.BalanceAfter = fairness.Round2(fairness.BalanceScore(loads(pool)))

	return result
}

func loads(members []types.Member) []float64 {
	out := make([]float64, len(members))
	for i, m := range members {
		out[i] = m.CurrentLoad
	}

	return out
}
