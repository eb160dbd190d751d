// Package testing provides deterministic test doubles for the Fairhold
// library: a fixed clock, a sequential ID generator and a testing.T-backed
// logger.
//
// The engine's time- and ID-dependent outputs (rotation ages, deadline
// pressure, forecast predictions, alert IDs) become reproducible when these
// are injected instead of the production defaults.
package testing
