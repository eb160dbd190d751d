// Package assign turns candidate scores into assignment decisions.
//
// Selector handles one task: it scores every candidate, honors an explicit
// forced assignee when one is supplied, and otherwise picks the top-scoring
// eligible member with up to three runners-up and a human-readable rationale.
// Having no eligible candidate is a normal outcome with per-member reasons,
// not an error.
//
// BatchAssigner repeats selection over a sorted task list against a
// simulated, in-memory pool: winners accumulate the task's adjusted weight on
// a local member copy and the rotation tracker advances locally, so later
// tasks in the batch see earlier placements. Callers persist the returned
// snapshot themselves.
package assign
