// Package scoring ranks eligible candidates for a task.
//
// Each candidate receives six component scores in [0,100]: load balance,
// category preference, skill match, availability, rotation and fatigue. The
// total is a weighted sum using a profile that must sum to 1.0; the default
// profile weighs load balance heaviest so the engine steadily pulls the
// distribution toward each member's fair share.
//
// Ineligible candidates are never scored. They surface with a zero total, the
// eligible flag cleared and the disqualification reason attached, so callers
// can explain why a member was skipped.
package scoring
