package testing

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fairhold/fairhold/types"
)

// FixedClock is a Clock that returns a caller-controlled instant.
//
// Safe for concurrent use; Advance and Set may be called between engine
// invocations to simulate the passage of time.
type FixedClock struct {
	mu  sync.RWMutex
	now time.Time
}

var _ types.Clock = (*FixedClock)(nil)

// NewFixedClock creates a clock frozen at the given instant.
//
// Parameters:
//   - now: The instant Now() will report
//
// Returns:
//   - *FixedClock: Clock frozen at now
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the configured instant.
func (c *FixedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// Set moves the clock to the given instant.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

// SequentialIDs is an IDGenerator producing "prefix-1", "prefix-2", ...
//
// Safe for concurrent use.
type SequentialIDs struct {
	prefix string
	next   atomic.Uint64
}

var _ types.IDGenerator = (*SequentialIDs)(nil)

// NewSequentialIDs creates a sequential ID generator.
//
// Parameters:
//   - prefix: Prefix for generated IDs ("id" when empty)
//
// Returns:
//   - *SequentialIDs: Generator starting at <prefix>-1
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "id"
	}

	return &SequentialIDs{prefix: prefix}
}

// NewID returns the next sequential identifier.
func (g *SequentialIDs) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
