package burnout

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/fairhold/fairhold/eligibility"
	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/types"
)

// Health classification bounds by load percentage.
const (
	healthyBound  = 60.0
	elevatedBound = 80.0
	highBound     = 100.0
	criticalBound = 120.0
)

// dayOverloadBound is the daily load percentage at which a single day
// counts as overloaded for streak detection.
const dayOverloadBound = 100.0

// Monitor evaluates member workload snapshots.
type Monitor struct {
	cfg    Config
	clock  types.Clock
	idgen  types.IDGenerator
	filter *eligibility.Filter
	logger types.Logger
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Monitor) {
		m.cfg = cfg
	}
}

// WithIDGenerator sets the generator for alert and plan IDs.
func WithIDGenerator(idgen types.IDGenerator) Option {
	return func(m *Monitor) {
		m.idgen = idgen
	}
}

// WithFilter replaces the eligibility filter used for transfer recipients.
func WithFilter(filter *eligibility.Filter) Option {
	return func(m *Monitor) {
		m.filter = filter
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// NewMonitor creates a burnout monitor.
//
// Parameters:
//   - clock: Time source for alert and plan timestamps
//   - opts: Optional configuration (WithConfig, WithIDGenerator, WithFilter,
//     WithLogger)
//
// Returns:
//   - *Monitor: Initialized monitor ready for use
func NewMonitor(clock types.Clock, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:    DefaultConfig(),
		clock:  clock,
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	m.cfg = m.cfg.normalize(m.logger)
	if m.idgen == nil {
		m.idgen = uuidIDs{}
	}
	if m.filter == nil {
		m.filter = eligibility.NewFilter(eligibility.WithLogger(m.logger))
	}

	return m
}

type uuidIDs struct{}

func (uuidIDs) NewID() string { return uuid.NewString() }

// Health classifies a load percentage.
//
// Parameters:
//   - loadPercent: Current load as a percentage of the weekly maximum
//
// Returns:
//   - types.HealthStatus: Classified workload health
func (m *Monitor) Health(loadPercent float64) types.HealthStatus {
	switch {
	case loadPercent <= healthyBound:
		return types.HealthHealthy
	case loadPercent <= elevatedBound:
		return types.HealthElevated
	case loadPercent <= highBound:
		return types.HealthHigh
	case loadPercent <= criticalBound:
		return types.HealthCritical
	default:
		return types.HealthBurnoutRisk
	}
}

// Indicators detects stress indicators from the member's rolling daily
// window. Each indicator is independent; a member can trip all four.
//
// Parameters:
//   - state: Member workload snapshot
//
// Returns:
//   - []types.StressIndicator: Detected indicators, empty when none fire
func (m *Monitor) Indicators(state types.MemberWorkloadState) []types.StressIndicator {
	var indicators []types.StressIndicator

	if streak := longestOverloadStreak(state.RecentDays); streak >= m.cfg.ConsecutiveOverloadDays {
		indicators = append(indicators, types.StressIndicator{
			Kind:     types.IndicatorConsecutiveOverload,
			Severity: severity(streak * 2),
			Detail:   fmt.Sprintf("%d consecutive days over capacity", streak),
		})
	}

	if state.DaysSinceRest > 2*m.cfg.RestIntervalDays {
		indicators = append(indicators, types.StressIndicator{
			Kind:     types.IndicatorNoRest,
			Severity: severity(state.DaysSinceRest),
			Detail:   fmt.Sprintf("%d days without a rest day", state.DaysSinceRest),
		})
	}

	if sd := loadStdDev(state.RecentDays); sd > m.cfg.VarianceThreshold {
		indicators = append(indicators, types.StressIndicator{
			Kind:     types.IndicatorHighVariance,
			Severity: severity(int(math.Round(sd / 10))),
			Detail:   fmt.Sprintf("daily load swings with a standard deviation of %.0f points", sd),
		})
	}

	longDays := 0
	for _, day := range state.RecentDays {
		if day.MinutesWorked > m.cfg.LongDayMinutes {
			longDays++
		}
	}
	if longDays >= m.cfg.LongDayCount {
		indicators = append(indicators, types.StressIndicator{
			Kind:     types.IndicatorLongTasks,
			Severity: severity(longDays * 2),
			Detail:   fmt.Sprintf("%d days with more than %d minutes worked", longDays, m.cfg.LongDayMinutes),
		})
	}

	return indicators
}

// CheckOverload evaluates a workload snapshot and raises an alert when the
// member needs relief.
//
// The escalation level combines the health classification with the most
// severe detected indicator. A healthy member with no indicators produces no
// alert (nil result, not an error).
//
// Parameters:
//   - state: Member workload snapshot
//
// Returns:
//   - *types.OverloadAlert: Alert with ranked actions, nil when none needed
func (m *Monitor) CheckOverload(state types.MemberWorkloadState) *types.OverloadAlert {
	health := m.Health(state.LoadPercent)
	indicators := m.Indicators(state)

	maxSeverity := 0
	for _, ind := range indicators {
		if ind.Severity > maxSeverity {
			maxSeverity = ind.Severity
		}
	}

	var alertType types.AlertType
	switch {
	case health == types.HealthBurnoutRisk || maxSeverity >= 9:
		alertType = types.AlertEmergency
	case health == types.HealthCritical || maxSeverity >= 7:
		alertType = types.AlertCritical
	case health >= types.HealthHigh || len(indicators) > 0:
		alertType = types.AlertWarning
	default:
		return nil
	}

	alert := &types.OverloadAlert{
		ID:         m.idgen.NewID(),
		MemberID:   state.MemberID,
		Type:       alertType,
		Health:     health,
		Indicators: indicators,
		Actions:    m.suggestActions(state, indicators),
		CreatedAt:  m.clock.Now(),
	}

	m.logger.Info("overload alert raised",
		"member", state.MemberID, "type", alertType, "health", health.String(),
		"indicators", len(indicators))

	return alert
}

// suggestActions ranks relief actions by estimated load-percentage relief.
func (m *Monitor) suggestActions(state types.MemberWorkloadState, indicators []types.StressIndicator) []types.SuggestedAction {
	excess := state.LoadPercent - healthyBound
	if excess < 0 {
		excess = 0
	}

	reassignable := 0
	for _, pending := range state.PendingTasks {
		if pending.Reassignable {
			reassignable++
		}
	}

	actions := []types.SuggestedAction{
		{
			Kind:          types.ActionRedistribute,
			ReliefPercent: math.Min(excess, float64(reassignable)*taskReliefPercent),
			Description:   fmt.Sprintf("move %d reassignable tasks to other members", reassignable),
		},
		{
			Kind:          types.ActionDelay,
			ReliefPercent: math.Min(excess/2, 15),
			Description:   "postpone low-priority tasks to next week",
		},
		{
			Kind:          types.ActionDelegate,
			ReliefPercent: 10,
			Description:   "delegate suitable tasks outside the household",
		},
	}

	restRelief := 20.0
	for _, ind := range indicators {
		if ind.Kind == types.IndicatorNoRest || ind.Kind == types.IndicatorConsecutiveOverload {
			restRelief = 30
			break
		}
	}
	actions = append(actions, types.SuggestedAction{
		Kind:          types.ActionRest,
		ReliefPercent: restRelief,
		Description:   "schedule a full rest day this week",
	})

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].ReliefPercent > actions[j].ReliefPercent
	})

	return actions
}

func longestOverloadStreak(days []types.DayWorkload) int {
	longest, current := 0, 0
	for _, day := range days {
		if day.LoadPercent >= dayOverloadBound {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest
}

func loadStdDev(days []types.DayWorkload) float64 {
	if len(days) < 2 {
		return 0
	}

	mean := 0.0
	for _, day := range days {
		mean += day.LoadPercent
	}
	mean /= float64(len(days))

	variance := 0.0
	for _, day := range days {
		diff := day.LoadPercent - mean
		variance += diff * diff
	}
	variance /= float64(len(days))

	return math.Sqrt(variance)
}

// severity clamps a raw severity figure into the 1-10 scale.
func severity(raw int) int {
	if raw < 1 {
		return 1
	}
	if raw > 10 {
		return 10
	}

	return raw
}
