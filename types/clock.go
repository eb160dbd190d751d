package types

import "time"

// Clock abstracts the wall clock so rotation, eligibility and forecasting
// computations stay deterministic under test.
//
// Production code uses the system clock; tests inject a fixed clock from the
// fairhold/testing package.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// IDGenerator produces identifiers for ephemeral engine outputs such as
// alerts, recovery plans and batch runs.
//
// The default implementation generates UUIDs; tests inject a sequential
// generator for stable output.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}
