// Package tiebreak provides deterministic pseudo-random ordering for
// equal-score assignment candidates.
//
// When two candidates tie on total score, picking the first one in slice
// order would systematically favor whoever the caller happens to list first.
// Hashing the (task, member) pair instead spreads ties across members while
// keeping every decision reproducible for a given seed.
package tiebreak

import "github.com/zeebo/xxh3"

// Key returns the tie-breaking rank for a (task, member) pair.
//
// The task ID is folded first and becomes the seed for the member ID, so the
// same member ranks differently on different tasks. Candidates with equal
// scores are ordered by descending Key, which is stable for a fixed seed.
//
// Parameters:
//   - seed: Engine-level seed (0 for unseeded hashing)
//   - taskID: Task identifier
//   - memberID: Candidate member identifier
//
// Returns:
//   - uint64: Deterministic rank for the pair
func Key(seed uint64, taskID, memberID string) uint64 {
	var h uint64
	if seed != 0 {
		h = xxh3.HashStringSeed(taskID, seed)
	} else {
		h = xxh3.HashString(taskID)
	}

	return xxh3.HashStringSeed(memberID, h)
}
