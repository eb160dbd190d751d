// Package eligibility decides which members are legally assignable to a
// task.
//
// Checks run in a fixed order and short-circuit on the first failure:
// activity, exclusion periods, blocked categories, skill coverage, remaining
// capacity. Each failure carries a stable reason code plus a human-readable
// message, so callers can localize without parsing strings.
//
// Eligibility is deliberately separate from scoring: rebalancing tools reuse
// the filter on its own to find safe recipients without ranking them.
package eligibility
