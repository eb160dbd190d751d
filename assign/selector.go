package assign

import (
	"fmt"
	"sort"
	"time"

	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/internal/tiebreak"
	"github.com/fairhold/fairhold/rotation"
	"github.com/fairhold/fairhold/scoring"
	"github.com/fairhold/fairhold/types"
)

// Rationale thresholds. Components above goodThreshold earn a positive
// remark, below concernThreshold a warning.
const (
	goodThreshold    = 70.0
	concernThreshold = 50.0

	maxAlternatives = 3
)

// Request carries everything single-task selection needs.
type Request struct {
	// Task is the task to assign.
	Task types.Task

	// Candidates is the member pool (read-only).
	Candidates []types.Member

	// Tracker is the rotation state at decision time.
	Tracker rotation.Tracker

	// Fatigue maps member ID to fatigue level; missing entries mean rested.
	Fatigue map[string]float64

	// TargetDate is the intended assignment date.
	TargetDate time.Time

	// ForcedAssigneeID, when non-empty and present in the pool, wins
	// regardless of score. Forcing an ineligible member is allowed but
	// flagged in the rationale.
	ForcedAssigneeID string
}

// Decision is the outcome of single-task selection.
//
// Assigned=false with a populated Reasons map is a legitimate "no eligible
// candidate" outcome, not an error.
type Decision struct {
	// TaskID identifies the task the decision is for.
	TaskID string `json:"taskId"`

	// Assigned indicates whether a member was selected.
	Assigned bool `json:"assigned"`

	// MemberID is the selected member, empty when Assigned is false.
	MemberID string `json:"memberId,omitempty"`

	// Score is the selected member's full scoring breakdown.
	Score types.AssignmentScore `json:"score"`

	// Alternatives lists up to three runners-up by descending total.
	Alternatives []types.AssignmentScore `json:"alternatives,omitempty"`

	// Rationale explains the decision in human-readable terms.
	Rationale []string `json:"rationale,omitempty"`

	// Forced indicates the assignee was explicitly supplied by the caller.
	Forced bool `json:"forced,omitempty"`

	// ForcedIneligible indicates a forced assignee failed eligibility.
	ForcedIneligible bool `json:"forcedIneligible,omitempty"`

	// Reasons maps member ID to disqualification reason when no eligible
	// candidate remained.
	Reasons map[string]string `json:"reasons,omitempty"`
}

// Selector performs single-task assignment selection.
type Selector struct {
	scorer *scoring.Engine
	seed   uint64
	logger types.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithScorer replaces the default scoring engine.
func WithScorer(scorer *scoring.Engine) Option {
	return func(s *Selector) {
		s.scorer = scorer
	}
}

// WithSeed sets the tie-breaking seed so equal-score picks are reproducible
// across engine instances.
func WithSeed(seed uint64) Option {
	return func(s *Selector) {
		s.seed = seed
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// NewSelector creates a selector with default scoring.
//
// Parameters:
//   - opts: Optional configuration (WithScorer, WithSeed, WithLogger)
//
// Returns:
//   - *Selector: Initialized selector ready for use
func NewSelector(opts ...Option) *Selector {
	s := &Selector{logger: logging.NewNop()}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.scorer == nil {
		s.scorer = scoring.NewEngine(scoring.WithLogger(s.logger))
	}

	return s
}

// Select picks the best candidate for one task.
//
// A forced assignee present in the pool wins regardless of score; their
// score and eligibility are still computed and surfaced for transparency.
// Otherwise ineligible candidates are discarded, the rest sorted by total
// descending with deterministic hash tie-breaking, and the top candidate
// selected with up to three alternatives.
//
// Parameters:
//   - req: Selection request
//
// Returns:
//   - Decision: Assignment outcome, never an error
func (s *Selector) Select(req Request) Decision {
	decision := Decision{TaskID: req.Task.ID}

	if len(req.Candidates) == 0 {
		decision.Reasons = map[string]string{}

		return decision
	}

	scores := s.scorer.ScoreCandidates(req.Task, req.Candidates, req.Tracker, req.Fatigue, req.TargetDate)
	names := memberNames(req.Candidates)

	if req.ForcedAssigneeID != "" {
		for _, score := range scores {
			if score.MemberID != req.ForcedAssigneeID {
				continue
			}

			decision.Assigned = true
			decision.MemberID = score.MemberID
			decision.Score = score
			decision.Forced = true
			decision.ForcedIneligible = !score.Eligible
			decision.Rationale = forcedRationale(score, names)

			return decision
		}

		s.logger.Warn("forced assignee not in candidate pool, falling back to scoring",
			"task", req.Task.ID, "forced", req.ForcedAssigneeID)
	}

	eligible := make([]types.AssignmentScore, 0, len(scores))
	for _, score := range scores {
		if score.Eligible {
			eligible = append(eligible, score)
		}
	}

	if len(eligible) == 0 {
		decision.Reasons = make(map[string]string, len(scores))
		for _, score := range scores {
			decision.Reasons[score.MemberID] = score.DisqualifyReason
		}

		return decision
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Total != eligible[j].Total {
			return eligible[i].Total > eligible[j].Total
		}

		return tiebreak.Key(s.seed, req.Task.ID, eligible[i].MemberID) >
			tiebreak.Key(s.seed, req.Task.ID, eligible[j].MemberID)
	})

	winner := eligible[0]
	decision.Assigned = true
	decision.MemberID = winner.MemberID
	decision.Score = winner

	rest := eligible[1:]
	if len(rest) > maxAlternatives {
		rest = rest[:maxAlternatives]
	}
	decision.Alternatives = rest
	decision.Rationale = rationale(winner, names)

	return decision
}

func memberNames(members []types.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	return names
}

func displayName(names map[string]string, memberID string) string {
	if name, ok := names[memberID]; ok && name != "" {
		return name
	}

	return memberID
}

// rationale explains the winning score in terms a household member would
// accept: which components favored the pick, which are a risk.
func rationale(score types.AssignmentScore, names map[string]string) []string {
	name := displayName(names, score.MemberID)
	lines := make([]string, 0, 4)

	switch {
	case score.LoadBalance > goodThreshold:
		lines = append(lines, fmt.Sprintf("%s is well below their fair share of the household load", name))
	case score.LoadBalance < concernThreshold:
		lines = append(lines, fmt.Sprintf("%s is already above their fair share of the household load", name))
	}

	switch {
	case score.CategoryPreference > goodThreshold:
		lines = append(lines, fmt.Sprintf("%s prefers this task category", name))
	case score.CategoryPreference < concernThreshold:
		lines = append(lines, fmt.Sprintf("%s has not listed this category as a preference", name))
	}

	if score.Rotation < concernThreshold {
		lines = append(lines, fmt.Sprintf("%s handled this category very recently", name))
	}

	if score.Fatigue < concernThreshold {
		lines = append(lines, fmt.Sprintf("%s is showing signs of fatigue", name))
	}

	return lines
}

func forcedRationale(score types.AssignmentScore, names map[string]string) []string {
	name := displayName(names, score.MemberID)
	lines := []string{fmt.Sprintf("%s was explicitly requested for this task", name)}

	if !score.Eligible {
		lines = append(lines,
			fmt.Sprintf("warning: %s is not eligible for this task (%s)", name, score.DisqualifyReason))
	}

	return append(lines, rationale(score, names)...)
}
