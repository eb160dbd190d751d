package weight

import (
	"fmt"
	"math"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/types"
)

// Multipliers applied by the calculator. Priority and deadline compound, so
// an overdue critical task can weigh several times its base.
const (
	priorityHighMultiplier = 1.5
	priorityLowMultiplier  = 0.8

	overdueMultiplier     = 1.8
	dueTodayMultiplier    = 1.5
	dueTomorrowMultiplier = 1.3
	dueThisWeekMultiplier = 1.1

	dailyDiscount   = 0.6
	weeklyDiscount  = 0.8
	monthlyDiscount = 0.9

	criticalMultiplier     = 1.4
	coordinationMultiplier = 1.2

	// fatigueThreshold is the fatigue level below which no multiplier applies.
	fatigueThreshold = 20.0
)

// Weight is the computed load weight for one task.
type Weight struct {
	// Base is the category's default weight on the 1-10 scale.
	Base float64 `json:"base"`

	// Adjusted is the final weight after all multipliers, rounded to one decimal.
	Adjusted float64 `json:"adjusted"`

	// Factors lists the applied multipliers in human-readable form, for
	// auditability of the weighting decision.
	Factors []string `json:"factors"`
}

// Calculator computes task load weights from category profiles.
//
// The profile registry is read concurrently when multiple engine invocations
// run in parallel, so it is backed by a concurrent map. Profiles are only
// written during construction.
type Calculator struct {
	profiles *xsync.Map[string, Profile]
	clock    types.Clock
	logger   types.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithProfiles registers custom category profiles, overriding built-ins with
// the same key.
func WithProfiles(profiles map[string]Profile) Option {
	return func(c *Calculator) {
		for category, p := range profiles {
			c.profiles.Store(category, p)
		}
	}
}

// WithClock sets the clock used for deadline pressure.
func WithClock(clock types.Clock) Option {
	return func(c *Calculator) {
		c.clock = clock
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// NewCalculator creates a weight calculator with the built-in category
// profiles.
//
// Parameters:
//   - clock: Clock for deadline pressure (required)
//   - opts: Optional configuration (WithProfiles, WithLogger)
//
// Returns:
//   - *Calculator: Initialized calculator ready for use
func NewCalculator(clock types.Clock, opts ...Option) *Calculator {
	c := &Calculator{
		profiles: xsync.NewMap[string, Profile](),
		clock:    clock,
		logger:   logging.NewNop(),
	}

	for category, p := range builtinProfiles() {
		c.profiles.Store(category, p)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Profile returns the weight profile for a category.
//
// Unknown categories resolve to the default profile; this never fails.
//
// Parameters:
//   - category: Category key
//
// Returns:
//   - Profile: The category's profile, or the default profile
//   - bool: false when the default profile was substituted
func (c *Calculator) Profile(category string) (Profile, bool) {
	if p, ok := c.profiles.Load(category); ok {
		return p, true
	}

	p, _ := c.profiles.Load(DefaultCategory)

	return p, false
}

// TaskWeight computes the base and adjusted load weight for a task.
//
// The adjusted weight is:
//
//	base × priority × deadline × recurrence × critical × coordination × complexity × fatigue
//
// rounded to one decimal. The fatigue multiplier only applies when the
// supplied fatigue level exceeds 20 (rested members pay no surcharge).
//
// Parameters:
//   - task: Task to weigh
//   - fatigueLevel: Assignee fatigue 0-100 (pass 0 when unknown)
//
// Returns:
//   - Weight: Base weight, adjusted weight and the list of applied factors
func (c *Calculator) TaskWeight(task types.Task, fatigueLevel float64) Weight {
	profile, known := c.Profile(task.Category)
	if !known {
		c.logger.Debug("unknown task category, using default profile",
			"task", task.ID,
			"category", task.Category,
		)
	}

	w := Weight{
		Base:    profile.BaseWeight,
		Factors: []string{fmt.Sprintf("base weight %s (%.1f)", categoryLabel(task.Category, known), profile.BaseWeight)},
	}

	adjusted := profile.BaseWeight

	if m := priorityMultiplier(task.Priority); m != 1.0 {
		adjusted *= m
		w.Factors = append(w.Factors, fmt.Sprintf("priority %d (x%.1f)", task.Priority, m))
	}

	if m, label := c.deadlineMultiplier(task.DueDate); m != 1.0 {
		adjusted *= m
		w.Factors = append(w.Factors, fmt.Sprintf("%s (x%.1f)", label, m))
	}

	if m := recurrenceDiscount(task.Recurrence); m != 1.0 {
		adjusted *= m
		w.Factors = append(w.Factors, fmt.Sprintf("recurring %s (x%.1f)", task.Recurrence, m))
	}

	if task.IsCritical {
		adjusted *= criticalMultiplier
		w.Factors = append(w.Factors, fmt.Sprintf("critical task (x%.1f)", criticalMultiplier))
	}

	if task.RequiresCoordination {
		adjusted *= coordinationMultiplier
		w.Factors = append(w.Factors, fmt.Sprintf("coordination overhead (x%.1f)", coordinationMultiplier))
	}

	complexity := profile.ComplexityMultiplier()
	adjusted *= complexity
	w.Factors = append(w.Factors, fmt.Sprintf("complexity (x%.2f)", complexity))

	if fatigueLevel > fatigueThreshold {
		m := fatigueMultiplier(fatigueLevel)
		adjusted *= m
		w.Factors = append(w.Factors, fmt.Sprintf("fatigue level %.0f (x%.1f)", fatigueLevel, m))
	}

	w.Adjusted = round1(adjusted)

	return w
}

// priorityMultiplier maps the 1-3 priority scale to its weight multiplier.
func priorityMultiplier(priority int) float64 {
	switch priority {
	case types.PriorityHigh:
		return priorityHighMultiplier
	case types.PriorityLow:
		return priorityLowMultiplier
	default:
		return 1.0
	}
}

// deadlineMultiplier derives deadline pressure from the whole-day difference
// between now and the due date.
func (c *Calculator) deadlineMultiplier(dueDate *time.Time) (float64, string) {
	if dueDate == nil {
		return 1.0, ""
	}

	days := types.DaysBetween(c.clock.Now(), *dueDate)
	switch {
	case days < 0:
		return overdueMultiplier, "overdue"
	case days == 0:
		return dueTodayMultiplier, "due today"
	case days == 1:
		return dueTomorrowMultiplier, "due tomorrow"
	case days <= 7:
		return dueThisWeekMultiplier, "due this week"
	default:
		return 1.0, ""
	}
}

// recurrenceDiscount discounts recurring tasks: the routine is already paid
// for mentally, so each occurrence weighs less than a one-off.
func recurrenceDiscount(recurrence types.Recurrence) float64 {
	switch recurrence {
	case types.RecurrenceDaily:
		return dailyDiscount
	case types.RecurrenceWeekly:
		return weeklyDiscount
	case types.RecurrenceMonthly:
		return monthlyDiscount
	default:
		return 1.0
	}
}

// fatigueMultiplier maps a fatigue level above the threshold to a surcharge.
func fatigueMultiplier(level float64) float64 {
	switch {
	case level <= 40:
		return 1.1
	case level <= 60:
		return 1.2
	case level <= 80:
		return 1.4
	default:
		return 1.6
	}
}

func categoryLabel(category string, known bool) string {
	if known {
		return category
	}

	return DefaultCategory
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
