package burnout

import (
	"fmt"

	"github.com/fairhold/fairhold/types"
)

// Config controls indicator detection and rebalancing thresholds.
type Config struct {
	// WarningThreshold is the load percentage at which a member counts as
	// overloaded for rebalancing. Default 80.
	WarningThreshold float64 `yaml:"warningThreshold"`

	// ConsecutiveOverloadDays is the overload streak length that trips the
	// consecutive_overload indicator. Default 3.
	ConsecutiveOverloadDays int `yaml:"consecutiveOverloadDays"`

	// RestIntervalDays is the expected cadence of rest days; the no_rest
	// indicator fires when the member has gone more than twice this long
	// without one. Default 3.
	RestIntervalDays int `yaml:"restIntervalDays"`

	// VarianceThreshold is the standard deviation of recent daily load
	// percentages above which the high_variance indicator fires. Default 30.
	VarianceThreshold float64 `yaml:"varianceThreshold"`

	// LongDayMinutes is the worked-minutes bar for a "very long day".
	// Default 480.
	LongDayMinutes int `yaml:"longDayMinutes"`

	// LongDayCount is how many very long days trip the long_tasks
	// indicator. Default 3.
	LongDayCount int `yaml:"longDayCount"`
}

// DefaultConfig returns the default monitor configuration.
func DefaultConfig() Config {
	return Config{
		WarningThreshold:        80,
		ConsecutiveOverloadDays: 3,
		RestIntervalDays:        3,
		VarianceThreshold:       30,
		LongDayMinutes:          480,
		LongDayCount:            3,
	}
}

// Validate checks the configuration for values that cannot be clamped into
// a usable range.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Config) Validate() error {
	if c.WarningThreshold < 0 {
		return fmt.Errorf("%w: field warningThreshold must be >= 0, got %v", types.ErrInvalidConfig, c.WarningThreshold)
	}

	return nil
}

// normalize clamps out-of-range fields back to their defaults, warning
// through the logger so misconfiguration is visible.
func (c Config) normalize(logger types.Logger) Config {
	def := DefaultConfig()

	if c.WarningThreshold <= 0 || c.WarningThreshold > 200 {
		logger.Warn("warning threshold out of range, using default",
			"provided", c.WarningThreshold, "using", def.WarningThreshold)
		c.WarningThreshold = def.WarningThreshold
	}
	if c.ConsecutiveOverloadDays <= 0 {
		logger.Warn("consecutive overload days out of range, using default",
			"provided", c.ConsecutiveOverloadDays, "using", def.ConsecutiveOverloadDays)
		c.ConsecutiveOverloadDays = def.ConsecutiveOverloadDays
	}
	if c.RestIntervalDays <= 0 {
		logger.Warn("rest interval out of range, using default",
			"provided", c.RestIntervalDays, "using", def.RestIntervalDays)
		c.RestIntervalDays = def.RestIntervalDays
	}
	if c.VarianceThreshold <= 0 {
		c.VarianceThreshold = def.VarianceThreshold
	}
	if c.LongDayMinutes <= 0 {
		c.LongDayMinutes = def.LongDayMinutes
	}
	if c.LongDayCount <= 0 {
		c.LongDayCount = def.LongDayCount
	}

	return c
}
