package fairhold

import (
	"fmt"

	"github.com/fairhold/fairhold/burnout"
	"github.com/fairhold/fairhold/types"
)

// Default configuration values.
const (
	// DefaultSkillThreshold is the minimum required-skill fraction.
	DefaultSkillThreshold = 0.5

	// DefaultHalfLifeDays is the historical load decay half-life.
	DefaultHalfLifeDays = 14

	// DefaultFatigueWindowDays is the fatigue intensity window.
	DefaultFatigueWindowDays = 7

	// DefaultRestLookbackDays bounds the rest-day search.
	DefaultRestLookbackDays = 14

	// DefaultTrendWindowWeeks is the forecaster trend-fitting window.
	DefaultTrendWindowWeeks = 4

	// DefaultAnomalySensitivity is the forecaster z-score multiplier.
	DefaultAnomalySensitivity = 2.0
)

// HistoryConfig controls historical load aggregation.
type HistoryConfig struct {
	// HalfLifeDays is the exponential decay half-life for past load.
	HalfLifeDays int `yaml:"halfLifeDays"`

	// FatigueWindowDays is the window for fatigue intensity.
	FatigueWindowDays int `yaml:"fatigueWindowDays"`

	// RestLookbackDays bounds how far back rest days are searched.
	RestLookbackDays int `yaml:"restLookbackDays"`
}

// ForecastConfig controls the workload forecaster.
type ForecastConfig struct {
	// TrendWindowWeeks is the trend-fitting window.
	TrendWindowWeeks int `yaml:"trendWindowWeeks"`

	// AnomalySensitivity is the default z-score multiplier for anomaly
	// detection.
	AnomalySensitivity float64 `yaml:"anomalySensitivity"`
}

// Config is the engine configuration.
//
// The zero value is not usable directly; call SetDefaults or start from
// DefaultConfig. All fields have sane defaults, so callers typically adjust
// one or two fields at most.
type Config struct {
	// ScoreWeights is the six-factor scoring profile. Must sum to 1.0.
	ScoreWeights types.ScoreWeights `yaml:"scoreWeights"`

	// SkillThreshold is the minimum fraction of required skills a member
	// must possess to be eligible. In (0,1].
	SkillThreshold float64 `yaml:"skillThreshold"`

	// History controls load decay and fatigue aggregation.
	History HistoryConfig `yaml:"history"`

	// Burnout controls health monitoring and rebalancing thresholds.
	Burnout burnout.Config `yaml:"burnout"`

	// Forecast controls the workload forecaster.
	Forecast ForecastConfig `yaml:"forecast"`

	// TiebreakSeed seeds deterministic tie-breaking between equal-score
	// candidates. Zero means unseeded hashing, which is still deterministic.
	TiebreakSeed uint64 `yaml:"tiebreakSeed"`
}

// DefaultConfig returns the default engine configuration.
//
// Returns:
//   - Config: Configuration with all defaults applied
func DefaultConfig() Config {
	return Config{
		ScoreWeights:   types.DefaultScoreWeights(),
		SkillThreshold: DefaultSkillThreshold,
		History: HistoryConfig{
			HalfLifeDays:      DefaultHalfLifeDays,
			FatigueWindowDays: DefaultFatigueWindowDays,
			RestLookbackDays:  DefaultRestLookbackDays,
		},
		Burnout: burnout.DefaultConfig(),
		Forecast: ForecastConfig{
			TrendWindowWeeks:   DefaultTrendWindowWeeks,
			AnomalySensitivity: DefaultAnomalySensitivity,
		},
	}
}

// TestConfig returns a configuration suitable for tests: identical to the
// defaults but with a fixed tie-breaking seed so selection order is stable
// across runs.
//
// Returns:
//   - Config: Deterministic test configuration
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.TiebreakSeed = 1

	return cfg
}

// SetDefaults fills zero-valued fields with their defaults.
//
// Explicitly set fields are left untouched, so a caller can override a
// single knob and default the rest.
func (c *Config) SetDefaults() {
	def := DefaultConfig()

	if c.ScoreWeights.Sum() == 0 {
		c.ScoreWeights = def.ScoreWeights
	}
	if c.SkillThreshold == 0 {
		c.SkillThreshold = def.SkillThreshold
	}
	if c.History.HalfLifeDays == 0 {
		c.History.HalfLifeDays = def.History.HalfLifeDays
	}
	if c.History.FatigueWindowDays == 0 {
		c.History.FatigueWindowDays = def.History.FatigueWindowDays
	}
	if c.History.RestLookbackDays == 0 {
		c.History.RestLookbackDays = def.History.RestLookbackDays
	}
	if c.Burnout.WarningThreshold == 0 {
		c.Burnout.WarningThreshold = def.Burnout.WarningThreshold
	}
	if c.Burnout.ConsecutiveOverloadDays == 0 {
		c.Burnout.ConsecutiveOverloadDays = def.Burnout.ConsecutiveOverloadDays
	}
	if c.Burnout.RestIntervalDays == 0 {
		c.Burnout.RestIntervalDays = def.Burnout.RestIntervalDays
	}
	if c.Burnout.VarianceThreshold == 0 {
		c.Burnout.VarianceThreshold = def.Burnout.VarianceThreshold
	}
	if c.Burnout.LongDayMinutes == 0 {
		c.Burnout.LongDayMinutes = def.Burnout.LongDayMinutes
	}
	if c.Burnout.LongDayCount == 0 {
		c.Burnout.LongDayCount = def.Burnout.LongDayCount
	}
	if c.Forecast.TrendWindowWeeks == 0 {
		c.Forecast.TrendWindowWeeks = def.Forecast.TrendWindowWeeks
	}
	if c.Forecast.AnomalySensitivity == 0 {
		c.Forecast.AnomalySensitivity = def.Forecast.AnomalySensitivity
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: nil if the configuration is usable, otherwise an error
//     wrapping ErrInvalidConfig and naming the offending field
func (c *Config) Validate() error {
	if err := c.ScoreWeights.Validate(); err != nil {
		return err
	}
	if c.SkillThreshold <= 0 || c.SkillThreshold > 1 {
		return fmt.Errorf("%w: field skillThreshold must be in (0,1], got %v",
			types.ErrInvalidConfig, c.SkillThreshold)
	}
	if c.History.HalfLifeDays < 0 {
		return fmt.Errorf("%w: field history.halfLifeDays must be >= 0, got %d",
			types.ErrInvalidConfig, c.History.HalfLifeDays)
	}
	if c.History.FatigueWindowDays < 0 {
		return fmt.Errorf("%w: field history.fatigueWindowDays must be >= 0, got %d",
			types.ErrInvalidConfig, c.History.FatigueWindowDays)
	}
	if c.History.RestLookbackDays < 0 {
		return fmt.Errorf("%w: field history.restLookbackDays must be >= 0, got %d",
			types.ErrInvalidConfig, c.History.RestLookbackDays)
	}
	if c.Forecast.AnomalySensitivity < 0 {
		return fmt.Errorf("%w: field forecast.anomalySensitivity must be >= 0, got %v",
			types.ErrInvalidConfig, c.Forecast.AnomalySensitivity)
	}

	return c.Burnout.Validate()
}

// ValidateWithWarnings validates the configuration and logs warnings for
// legal but unusual settings.
//
// Parameters:
//   - logger: Logger that receives the warnings
//
// Returns:
//   - error: Same contract as Validate
func (c *Config) ValidateWithWarnings(logger types.Logger) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.SkillThreshold > 0.8 {
		logger.Warn("skill threshold is very strict; most multi-skill tasks will have few eligible members",
			"skillThreshold", c.SkillThreshold)
	}
	if c.History.HalfLifeDays > 60 {
		logger.Warn("long decay half-life; old completions will dominate current loads",
			"halfLifeDays", c.History.HalfLifeDays)
	}
	if c.Burnout.WarningThreshold < 70 {
		logger.Warn("low burnout warning threshold; expect frequent rebalancing",
			"warningThreshold", c.Burnout.WarningThreshold)
	}
	if c.Forecast.AnomalySensitivity < 1.5 {
		logger.Warn("low anomaly sensitivity; expect noisy anomaly reports",
			"anomalySensitivity", c.Forecast.AnomalySensitivity)
	}

	return nil
}
