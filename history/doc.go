// Package history turns the append-only completion log into time-decayed
// load and fatigue figures per member.
//
// Load decays exponentially with a configurable half-life so that last
// month's marathon no longer dominates this week's decisions. Fatigue
// combines recent load intensity with rest-day recency into a 0-100 level
// consumed by the scoring engine and the weight calculator.
//
// The aggregator only reads history; entries are never modified.
package history
