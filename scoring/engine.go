package scoring

import (
	"math"
	"time"

	"github.com/fairhold/fairhold/eligibility"
	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/rotation"
	"github.com/fairhold/fairhold/types"
)

// Component baselines and adjustments.
const (
	neutralScore = 50.0

	preferredBonus   = 40.0
	unpreferredMalus = 5.0

	// Availability deductions by load ratio tier.
	heavyLoadDeduction    = 50.0
	highLoadDeduction     = 30.0
	moderateLoadDeduction = 10.0

	// upcomingExclusionDeduction applies when an exclusion period starts
	// within exclusionHorizonDays of the target date.
	upcomingExclusionDeduction = 20.0
	exclusionHorizonDays       = 3
)

// Engine computes per-candidate assignment scores.
type Engine struct {
	weights types.ScoreWeights
	filter  *eligibility.Filter
	logger  types.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights replaces the default scoring profile.
//
// The profile must pass types.ScoreWeights.Validate; NewEngine falls back to
// the default profile on an invalid one.
func WithWeights(weights types.ScoreWeights) Option {
	return func(e *Engine) {
		e.weights = weights
	}
}

// WithFilter replaces the default eligibility filter.
func WithFilter(filter *eligibility.Filter) Option {
	return func(e *Engine) {
		e.filter = filter
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a scoring engine with the canonical weight profile.
//
// Parameters:
//   - opts: Optional configuration (WithWeights, WithFilter, WithLogger)
//
// Returns:
//   - *Engine: Initialized engine ready for use
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		weights: types.DefaultScoreWeights(),
		logger:  logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if err := e.weights.Validate(); err != nil {
		e.logger.Warn("invalid score weights; using defaults", "error", err)
		e.weights = types.DefaultScoreWeights()
	}

	if e.filter == nil {
		e.filter = eligibility.NewFilter(eligibility.WithLogger(e.logger))
	}

	return e
}

// Weights returns the active scoring profile.
func (e *Engine) Weights() types.ScoreWeights {
	return e.weights
}

// Context carries the cross-candidate state one scoring pass needs.
type Context struct {
	// TargetDate is the intended assignment date.
	TargetDate time.Time

	// TotalLoad is the summed current load of every candidate.
	TotalLoad float64

	// MemberCount is the number of candidates in the pool.
	MemberCount int

	// DaysSinceCategory is the member's rotation distance for the task
	// category (-1 when never assigned).
	DaysSinceCategory int

	// FatigueLevel is the member's fatigue in [0,100].
	FatigueLevel float64
}

// Score evaluates one candidate for one task.
//
// The eligibility filter runs first; an ineligible candidate gets a zero
// total, Eligible=false and the disqualification reason, with no components
// computed.
//
// Parameters:
//   - task: Task to assign
//   - member: Candidate snapshot
//   - sctx: Pool-level context for this scoring pass
//
// Returns:
//   - types.AssignmentScore: Component and total scores for the candidate
func (e *Engine) Score(task types.Task, member types.Member, sctx Context) types.AssignmentScore {
	score := types.AssignmentScore{MemberID: member.ID}

	verdict := e.filter.Check(member, task, sctx.TargetDate)
	if !verdict.Eligible {
		score.DisqualifyReason = verdict.Reason

		return score
	}

	score.Eligible = true
	score.LoadBalance = loadBalanceScore(member, sctx.TotalLoad, sctx.MemberCount)
	score.CategoryPreference = preferenceScore(member, task.Category)
	score.SkillMatch = skillMatchScore(member, task.RequiredSkills)
	score.Availability = availabilityScore(member, sctx.TargetDate)
	score.Rotation = RotationScore(sctx.DaysSinceCategory)
	score.Fatigue = fatigueScore(sctx.FatigueLevel)

	total := score.LoadBalance*e.weights.LoadBalance +
		score.CategoryPreference*e.weights.CategoryPreference +
		score.SkillMatch*e.weights.SkillMatch +
		score.Availability*e.weights.Availability +
		score.Rotation*e.weights.Rotation +
		score.Fatigue*e.weights.Fatigue
	score.Total = clamp(math.Round(total), 0, 100)

	return score
}

// ScoreCandidates scores every candidate in a pool for one task.
//
// Pool-level figures (total load, member count) are derived from the
// candidate slice; rotation distance and fatigue are looked up per member.
//
// Parameters:
//   - task: Task to assign
//   - candidates: Candidate pool (read-only)
//   - tracker: Rotation state
//   - fatigueByMember: Fatigue level per member ID, missing entries mean 0
//   - targetDate: Intended assignment date
//
// Returns:
//   - []types.AssignmentScore: One score per candidate, in input order
func (e *Engine) ScoreCandidates(
	task types.Task,
	candidates []types.Member,
	tracker rotation.Tracker,
	fatigueByMember map[string]float64,
	targetDate time.Time,
) []types.AssignmentScore {
	totalLoad := 0.0
	for _, member := range candidates {
		totalLoad += member.CurrentLoad
	}

	sctx := Context{
		TargetDate:  targetDate,
		TotalLoad:   totalLoad,
		MemberCount: len(candidates),
	}

	scores := make([]types.AssignmentScore, 0, len(candidates))
	for _, member := range candidates {
		sctx.DaysSinceCategory = tracker.DaysSince(task.Category, member.ID, targetDate)
		sctx.FatigueLevel = fatigueByMember[member.ID]
		scores = append(scores, e.Score(task, member, sctx))
	}

	return scores
}

// loadBalanceScore rewards members below their fair share of the pool load.
//
// 50 is neutral: a member exactly at the ideal share scores 50, a member
// carrying less scores higher. An empty pool or zero total load is neutral.
func loadBalanceScore(member types.Member, totalLoad float64, memberCount int) float64 {
	if totalLoad <= 0 || memberCount == 0 {
		return neutralScore
	}

	share := member.CurrentLoad / totalLoad * 100
	ideal := 100.0 / float64(memberCount)

	return clamp(neutralScore-(share-ideal), 0, 100)
}

func preferenceScore(member types.Member, category string) float64 {
	if member.PrefersCategory(category) {
		return neutralScore + preferredBonus
	}

	return neutralScore - unpreferredMalus
}

func skillMatchScore(member types.Member, required []string) float64 {
	if len(required) == 0 {
		return 100
	}

	matched := 0
	for _, skill := range required {
		if member.HasSkill(skill) {
			matched++
		}
	}

	return math.Round(float64(matched) / float64(len(required)) * 100)
}

func availabilityScore(member types.Member, targetDate time.Time) float64 {
	score := 100.0

	switch ratio := member.LoadRatio(); {
	case ratio >= 0.9:
		score -= heavyLoadDeduction
	case ratio >= 0.7:
		score -= highLoadDeduction
	case ratio >= 0.5:
		score -= moderateLoadDeduction
	}

	for _, period := range member.ExclusionPeriods {
		days := types.DaysBetween(targetDate, period.Start)
		if days >= 0 && days <= exclusionHorizonDays {
			score -= upcomingExclusionDeduction
			break
		}
	}

	return clamp(score, 0, 100)
}

// RotationScore maps days-since-last-assignment to an anti-starvation score.
//
// Never-assigned members (negative distance) score as if two weeks have
// passed. The mapping is monotonic: more recent assignments score lower.
//
// Parameters:
//   - daysSince: Whole days since the last same-category assignment, -1 for never
//
// Returns:
//   - float64: Rotation component score
func RotationScore(daysSince int) float64 {
	switch {
	case daysSince < 0 || daysSince >= 14:
		return 100
	case daysSince >= 7:
		return 80
	case daysSince >= 3:
		return 60
	case daysSince >= 1:
		return 40
	default:
		return 20
	}
}

// fatigueScore inverts fatigue level into a score: tired members score low.
func fatigueScore(level float64) float64 {
	switch {
	case level <= 20:
		return 100
	case level <= 40:
		return 80
	case level <= 60:
		return 60
	case level <= 80:
		return 40
	default:
		return 20
	}
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
