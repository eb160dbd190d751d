package history

import (
	"math"
	"time"

	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/types"
)

const (
	defaultHalfLifeDays  = 14
	defaultFatigueWindow = 7
	defaultRestLookback  = 14
	hoursPerDay          = 24.0
)

// MemberLoad aggregates one member's historical load.
type MemberLoad struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId"`

	// DecayedLoad is the half-life-weighted sum of completed task weights.
	DecayedLoad float64 `json:"decayedLoad"`

	// RawLoad is the undecayed sum of completed task weights.
	RawLoad float64 `json:"rawLoad"`

	// ByCategory breaks DecayedLoad down per category.
	ByCategory map[string]float64 `json:"byCategory,omitempty"`

	// CompletedCount is the number of completed entries.
	CompletedCount int `json:"completedCount"`

	// TotalCount is the number of entries, completed or not.
	TotalCount int `json:"totalCount"`

	// CompletionRate is CompletedCount / TotalCount (0 with no entries).
	CompletionRate float64 `json:"completionRate"`

	// TotalMinutes sums the recorded minutes of completed entries.
	TotalMinutes int `json:"totalMinutes"`
}

// Aggregator computes decayed loads and fatigue levels from history.
type Aggregator struct {
	halfLifeDays     int
	fatigueWindow    int
	restLookbackDays int
	logger           types.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithHalfLife sets the decay half-life in days.
func WithHalfLife(days int) Option {
	return func(a *Aggregator) {
		a.halfLifeDays = days
	}
}

// WithFatigueWindow sets the intensity window in days for fatigue.
func WithFatigueWindow(days int) Option {
	return func(a *Aggregator) {
		a.fatigueWindow = days
	}
}

// WithRestLookback sets how far back the rest-day search goes.
func WithRestLookback(days int) Option {
	return func(a *Aggregator) {
		a.restLookbackDays = days
	}
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(logger types.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// NewAggregator creates a history aggregator.
//
// Parameters:
//   - opts: Optional configuration (WithHalfLife, WithFatigueWindow,
//     WithRestLookback, WithLogger)
//
// Returns:
//   - *Aggregator: Initialized aggregator with 14-day half-life defaults
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		halfLifeDays:     defaultHalfLifeDays,
		fatigueWindow:    defaultFatigueWindow,
		restLookbackDays: defaultRestLookback,
		logger:           logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	a.normalizeConfig()

	return a
}

func (a *Aggregator) normalizeConfig() {
	if a.logger == nil {
		a.logger = logging.NewNop()
	}
	if a.halfLifeDays < 1 {
		a.logger.Warn("half-life must be positive; clamping to 1 day", "provided", a.halfLifeDays)
		a.halfLifeDays = 1
	}
	if a.fatigueWindow < 1 {
		a.logger.Warn("fatigue window must be positive; clamping to 1 day", "provided", a.fatigueWindow)
		a.fatigueWindow = 1
	}
	if a.restLookbackDays < a.fatigueWindow {
		a.logger.Warn("rest lookback below fatigue window; clamping",
			"provided", a.restLookbackDays, "using", a.fatigueWindow)
		a.restLookbackDays = a.fatigueWindow
	}
}

// MemberLoads aggregates decayed load figures for every member in the log.
//
// Future-dated entries decay as age zero. Only completed entries contribute
// load; completion rate counts all entries.
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - now: Reference instant for decay
//
// Returns:
//   - map[string]MemberLoad: Per-member aggregates keyed by member ID
func (a *Aggregator) MemberLoads(entries []types.HistoryEntry, now time.Time) map[string]MemberLoad {
	loads := make(map[string]MemberLoad)

	for _, entry := range entries {
		load := loads[entry.MemberID]
		load.MemberID = entry.MemberID
		load.TotalCount++

		if entry.Completed {
			decayed := entry.Weight * a.decayFactor(entry.Date, now)

			load.CompletedCount++
			load.RawLoad += entry.Weight
			load.DecayedLoad += decayed
			load.TotalMinutes += entry.MinutesSpent

			if load.ByCategory == nil {
				load.ByCategory = make(map[string]float64)
			}
			load.ByCategory[entry.Category] += decayed
		}

		loads[entry.MemberID] = load
	}

	for id, load := range loads {
		load.CompletionRate = completionRate(load.CompletedCount, load.TotalCount)
		loads[id] = load
	}

	return loads
}

// decayFactor returns 0.5^(ageDays/halfLife) for an entry.
func (a *Aggregator) decayFactor(date, now time.Time) float64 {
	ageDays := now.Sub(date).Hours() / hoursPerDay
	if ageDays < 0 {
		ageDays = 0
	}

	return math.Pow(0.5, ageDays/float64(a.halfLifeDays))
}

func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(completed) / float64(total)
}
