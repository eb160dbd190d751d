package eligibility

import (
	"fmt"
	"time"

	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/types"
)

// ReasonCode is a stable, localization-ready disqualification identifier.
type ReasonCode string

const (
	// ReasonEligible marks a passing verdict.
	ReasonEligible ReasonCode = "eligible"

	// ReasonInactive means the member is deactivated.
	ReasonInactive ReasonCode = "member_inactive"

	// ReasonExcluded means the target date falls in an exclusion period.
	ReasonExcluded ReasonCode = "exclusion_period"

	// ReasonBlockedCategory means the member blocks the task category.
	ReasonBlockedCategory ReasonCode = "category_blocked"

	// ReasonMissingSkills means the member covers less than half of the
	// required skills.
	ReasonMissingSkills ReasonCode = "missing_skills"

	// ReasonAtCapacity means the member's load ratio has reached 100%.
	ReasonAtCapacity ReasonCode = "at_capacity"
)

// defaultSkillThreshold is the minimum fraction of required skills a member
// must possess.
const defaultSkillThreshold = 0.5

// Verdict is the outcome of an eligibility check.
//
// No scoring has happened when a verdict is produced; scoring is a separate
// step so batch rebalancing tools can reuse eligibility alone.
type Verdict struct {
	// Eligible indicates the member passed every check.
	Eligible bool `json:"eligible"`

	// Code is the stable reason code (ReasonEligible on success).
	Code ReasonCode `json:"code"`

	// Reason is the human-readable explanation of a failure.
	Reason string `json:"reason,omitempty"`
}

// Filter evaluates member eligibility for tasks.
type Filter struct {
	skillThreshold float64
	logger         types.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithSkillThreshold sets the minimum required-skill fraction (default 0.5).
func WithSkillThreshold(threshold float64) Option {
	return func(f *Filter) {
		f.skillThreshold = threshold
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// NewFilter creates an eligibility filter.
//
// Parameters:
//   - opts: Optional configuration (WithSkillThreshold, WithLogger)
//
// Returns:
//   - *Filter: Initialized filter ready for use
func NewFilter(opts ...Option) *Filter {
	f := &Filter{
		skillThreshold: defaultSkillThreshold,
		logger:         logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if f.skillThreshold <= 0 || f.skillThreshold > 1 {
		f.logger.Warn("skill threshold outside (0,1]; using default",
			"provided", f.skillThreshold, "using", defaultSkillThreshold)
		f.skillThreshold = defaultSkillThreshold
	}

	return f
}

// Check evaluates whether the member may be assigned the task on the target
// date.
//
// Checks run in order and short-circuit on the first failure:
//  1. Member must be active
//  2. Target date must not fall in an exclusion period
//  3. Task category must not be blocked
//  4. Member must cover at least half of the required skills
//  5. Load ratio must be below 100%
//
// Parameters:
//   - member: Member snapshot
//   - task: Task to assign
//   - targetDate: Intended assignment date
//
// Returns:
//   - Verdict: Eligibility outcome with reason code on failure
func (f *Filter) Check(member types.Member, task types.Task, targetDate time.Time) Verdict {
	if !member.IsActive {
		return fail(ReasonInactive, fmt.Sprintf("%s is not an active member", member.Name))
	}

	if member.ExcludedOn(targetDate) {
		return fail(ReasonExcluded,
			fmt.Sprintf("%s is unavailable on %s", member.Name, targetDate.Format("2006-01-02")))
	}

	if member.BlocksCategory(task.Category) {
		return fail(ReasonBlockedCategory,
			fmt.Sprintf("%s does not take %s tasks", member.Name, task.Category))
	}

	if len(task.RequiredSkills) > 0 {
		matched := 0
		for _, skill := range task.RequiredSkills {
			if member.HasSkill(skill) {
				matched++
			}
		}

		fraction := float64(matched) / float64(len(task.RequiredSkills))
		if fraction < f.skillThreshold {
			return fail(ReasonMissingSkills,
				fmt.Sprintf("%s has %d of %d required skills", member.Name, matched, len(task.RequiredSkills)))
		}
	}

	if member.MaxWeeklyLoad > 0 && member.LoadRatio() >= 1.0 {
		return fail(ReasonAtCapacity,
			fmt.Sprintf("%s has reached their weekly capacity", member.Name))
	}

	return Verdict{Eligible: true, Code: ReasonEligible}
}

func fail(code ReasonCode, reason string) Verdict {
	return Verdict{Eligible: false, Code: code, Reason: reason}
}
