// Package weight converts task attributes into numeric load weights.
//
// Every task category carries a weight profile: a base weight on a 1-10
// scale plus energy, mental-load and time dimensions that feed a complexity
// multiplier. The calculator multiplies the base weight by priority,
// deadline pressure, recurrence, criticality, coordination overhead,
// complexity and (above a threshold) member fatigue, and reports the list of
// applied factors for auditability.
//
// Unknown categories fall back to the default profile and never produce an
// error.
package weight
