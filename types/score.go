package types

import "fmt"

// ScoreWeights is the weighting profile for the six-factor candidate score.
//
// The weights must sum to 1.0. The canonical profile weighs load balance
// heaviest, followed by category preference, then skill match, availability,
// rotation and fatigue.
type ScoreWeights struct {
	// LoadBalance weighs how far the member is below their fair share.
	LoadBalance float64 `yaml:"loadBalance"`

	// CategoryPreference weighs whether the member prefers the task category.
	CategoryPreference float64 `yaml:"categoryPreference"`

	// SkillMatch weighs the fraction of required skills the member has.
	SkillMatch float64 `yaml:"skillMatch"`

	// Availability weighs remaining capacity and upcoming exclusions.
	Availability float64 `yaml:"availability"`

	// Rotation weighs how long ago the member last took this category.
	Rotation float64 `yaml:"rotation"`

	// Fatigue weighs the member's recent workload intensity.
	Fatigue float64 `yaml:"fatigue"`
}

// DefaultScoreWeights returns the canonical scoring profile.
//
// Returns:
//   - ScoreWeights: loadBalance 0.30, categoryPreference 0.20, skillMatch 0.15,
//     availability 0.15, rotation 0.10, fatigue 0.10
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		LoadBalance:        0.30,
		CategoryPreference: 0.20,
		SkillMatch:         0.15,
		Availability:       0.15,
		Rotation:           0.10,
		Fatigue:            0.10,
	}
}

// Sum returns the total of all component weights.
func (w ScoreWeights) Sum() float64 {
	return w.LoadBalance + w.CategoryPreference + w.SkillMatch + w.Availability + w.Rotation + w.Fatigue
}

// Validate checks that all weights are non-negative and sum to 1.0.
//
// Returns:
//   - error: nil if the profile is usable for scoring
func (w ScoreWeights) Validate() error {
	for name, v := range map[string]float64{
		"loadBalance":        w.LoadBalance,
		"categoryPreference": w.CategoryPreference,
		"skillMatch":         w.SkillMatch,
		"availability":       w.Availability,
		"rotation":           w.Rotation,
		"fatigue":            w.Fatigue,
	} {
		if v < 0 {
			return fmt.Errorf("%w: field %s must be >= 0, got %v", ErrInvalidConfig, name, v)
		}
	}

	const epsilon = 1e-9
	if diff := w.Sum() - 1.0; diff > epsilon || diff < -epsilon {
		return fmt.Errorf("%w: score weights must sum to 1.0, got %v", ErrInvalidConfig, w.Sum())
	}

	return nil
}

// AssignmentScore is the per-candidate scoring output for one task.
//
// All component scores and the total are clamped to [0,100]. An ineligible
// candidate always has Total 0, Eligible false and a disqualification reason.
type AssignmentScore struct {
	// MemberID identifies the scored candidate.
	MemberID string `json:"memberId"`

	// LoadBalance is the fair-share component score.
	LoadBalance float64 `json:"loadBalance"`

	// CategoryPreference is the preference component score.
	CategoryPreference float64 `json:"categoryPreference"`

	// SkillMatch is the skill coverage component score.
	SkillMatch float64 `json:"skillMatch"`

	// Availability is the remaining-capacity component score.
	Availability float64 `json:"availability"`

	// Rotation is the anti-starvation component score.
	Rotation float64 `json:"rotation"`

	// Fatigue is the inverted fatigue-level component score.
	Fatigue float64 `json:"fatigue"`

	// Total is the weighted sum of all components, rounded to the nearest integer.
	Total float64 `json:"total"`

	// Eligible indicates whether the candidate passed the eligibility filter.
	Eligible bool `json:"eligible"`

	// DisqualifyReason explains ineligibility; empty when Eligible is true.
	DisqualifyReason string `json:"disqualifyReason,omitempty"`
}
