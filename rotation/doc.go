// Package rotation tracks when each member was last assigned a task of a
// given category or type.
//
// The Tracker is an immutable value: Updated returns a new Tracker and never
// touches the receiver, so a snapshot handed to one assignment run cannot be
// aliased by another. Timestamps only move forward; a stale update is a
// no-op. Callers persist trackers between invocations themselves.
//
// Rotation data feeds two consumers: the scoring engine penalizes recent
// repeats to prevent the same member being picked over and over, and
// dashboards use LongestIdle to show who has waited longest for a category.
package rotation
