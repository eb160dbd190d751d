package fairhold

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fairhold/fairhold/assign"
	"github.com/fairhold/fairhold/burnout"
	"github.com/fairhold/fairhold/eligibility"
	"github.com/fairhold/fairhold/fairness"
	"github.com/fairhold/fairhold/forecast"
	"github.com/fairhold/fairhold/history"
	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/internal/metrics"
	"github.com/fairhold/fairhold/rotation"
	"github.com/fairhold/fairhold/scoring"
	"github.com/fairhold/fairhold/types"
	"github.com/fairhold/fairhold/weight"
)

// Engine is the fair-distribution and forecasting facade.
//
// An Engine is safe for concurrent use: it holds no mutable state between
// calls, and every method is a pure transform from the caller's snapshot to
// a new value.
type Engine struct {
	cfg      Config
	logger   types.Logger
	clock    types.Clock
	idgen    types.IDGenerator
	metrics  types.MetricsCollector
	hooks    Hooks
	profiles map[string]weight.Profile

	weigher    *weight.Calculator
	aggregator *history.Aggregator
	scorer     *scoring.Engine
	selector   *assign.Selector
	batch      *assign.BatchAssigner
	monitor    *burnout.Monitor
	forecaster *forecast.Forecaster
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// NewEngine creates an engine from the configuration.
//
// Zero-valued configuration fields are filled with defaults before
// validation, so Config{} is a legal starting point.
//
// Parameters:
//   - cfg: Engine configuration
//   - opts: Optional overrides (WithLogger, WithClock, WithIDGenerator,
//     WithMetrics, WithHooks, WithWeightProfiles)
//
// Returns:
//   - *Engine: Ready-to-use engine
//   - error: Configuration validation failure
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:     cfg,
		logger:  logging.NewNop(),
		clock:   systemClock{},
		idgen:   uuidGenerator{},
		metrics: metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	e.cfg.SetDefaults()
	if err := e.cfg.ValidateWithWarnings(e.logger); err != nil {
		return nil, err
	}

	weightOpts := []weight.Option{weight.WithLogger(e.logger)}
	if e.profiles != nil {
		weightOpts = append(weightOpts, weight.WithProfiles(e.profiles))
	}
	e.weigher = weight.NewCalculator(e.clock, weightOpts...)

	e.aggregator = history.NewAggregator(
		history.WithHalfLife(e.cfg.History.HalfLifeDays),
		history.WithFatigueWindow(e.cfg.History.FatigueWindowDays),
		history.WithRestLookback(e.cfg.History.RestLookbackDays),
		history.WithLogger(e.logger),
	)

	filter := eligibility.NewFilter(
		eligibility.WithSkillThreshold(e.cfg.SkillThreshold),
		eligibility.WithLogger(e.logger),
	)
	e.scorer = scoring.NewEngine(
		scoring.WithWeights(e.cfg.ScoreWeights),
		scoring.WithFilter(filter),
		scoring.WithLogger(e.logger),
	)
	e.selector = assign.NewSelector(
		assign.WithScorer(e.scorer),
		assign.WithSeed(e.cfg.TiebreakSeed),
		assign.WithLogger(e.logger),
	)
	e.batch = assign.NewBatchAssigner(e.weigher,
		assign.WithSelector(e.selector),
		assign.WithBatchLogger(e.logger),
	)

	e.monitor = burnout.NewMonitor(e.clock,
		burnout.WithConfig(e.cfg.Burnout),
		burnout.WithIDGenerator(e.idgen),
		burnout.WithFilter(filter),
		burnout.WithLogger(e.logger),
	)

	e.forecaster = forecast.NewForecaster(
		forecast.WithTrendWindow(e.cfg.Forecast.TrendWindowWeeks),
		forecast.WithSensitivity(e.cfg.Forecast.AnomalySensitivity),
		forecast.WithLogger(e.logger),
	)

	return e, nil
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// TaskWeight computes a task's load weight for a member at the given
// fatigue level.
//
// Parameters:
//   - task: Task to weigh
//   - fatigueLevel: Assignee fatigue 0-100 (pass 0 when unknown)
//
// Returns:
//   - weight.Weight: Base weight, adjusted weight and applied factors
//   - error: Task validation failure
func (e *Engine) TaskWeight(task Task, fatigueLevel float64) (weight.Weight, error) {
	if err := task.Validate(); err != nil {
		return weight.Weight{}, err
	}

	return e.weigher.TaskWeight(task, fatigueLevel), nil
}

// ScoreCandidates scores every member for one task without selecting.
//
// Parameters:
//   - task: Task to assign
//   - members: Candidate pool (read-only)
//   - tracker: Rotation state
//   - entries: Historical completion log, used for fatigue levels
//   - targetDate: Intended assignment date; zero means now
//
// Returns:
//   - []AssignmentScore: One score per candidate, in input order
//   - error: Input validation failure
func (e *Engine) ScoreCandidates(
	task Task,
	members []Member,
	tracker rotation.Tracker,
	entries []HistoryEntry,
	targetDate time.Time,
) ([]AssignmentScore, error) {
	if err := validateInputs(task, members, entries); err != nil {
		return nil, err
	}
	targetDate = e.orNow(targetDate)

	fatigue := e.fatigueLevels(entries, members, targetDate)

	return e.scorer.ScoreCandidates(task, members, tracker, fatigue, targetDate), nil
}

// SelectAssignee picks the best member for one task.
//
// A non-empty forcedID present in the pool wins regardless of score; forcing
// an ineligible member is allowed but flagged in the decision. Having no
// eligible candidate is a normal outcome (Decision.Assigned false), not an
// error.
//
// Parameters:
//   - task: Task to assign
//   - members: Candidate pool (read-only)
//   - tracker: Rotation state
//   - entries: Historical completion log, used for fatigue levels
//   - targetDate: Intended assignment date; zero means now
//   - forcedID: Explicit assignee override, empty for normal selection
//
// Returns:
//   - assign.Decision: Selection outcome with alternatives and rationale
//   - error: Input validation failure
func (e *Engine) SelectAssignee(
	task Task,
	members []Member,
	tracker rotation.Tracker,
	entries []HistoryEntry,
	targetDate time.Time,
	forcedID string,
) (assign.Decision, error) {
	if err := validateInputs(task, members, entries); err != nil {
		return assign.Decision{}, err
	}
	targetDate = e.orNow(targetDate)

	started := time.Now()
	decision := e.selector.Select(assign.Request{
		Task:             task,
		Candidates:       members,
		Tracker:          tracker,
		Fatigue:          e.fatigueLevels(entries, members, targetDate),
		TargetDate:       targetDate,
		ForcedAssigneeID: forcedID,
	})

	e.metrics.RecordDecision(decision.Assigned, len(members), time.Since(started).Seconds())
	if decision.Forced {
		e.metrics.RecordForcedAssignment(!decision.ForcedIneligible)
	}
	e.fireAssignmentHook(decision)

	return decision, nil
}

// AssignBatch distributes a task list over a simulated member pool.
//
// The returned snapshot (members, tracker) reflects all placements; the
// caller's inputs are untouched and persisting the result is the caller's
// job.
//
// Parameters:
//   - tasks: Tasks to place (read-only)
//   - members: Member pool snapshot (read-only)
//   - tracker: Rotation state at batch start (read-only)
//   - entries: Historical completion log, used for fatigue levels
//   - targetDate: Assignment date for the whole batch; zero means now
//
// Returns:
//   - assign.BatchResult: Placements, failures and the updated snapshot
//   - error: Input validation failure
func (e *Engine) AssignBatch(
	tasks []Task,
	members []Member,
	tracker rotation.Tracker,
	entries []HistoryEntry,
	targetDate time.Time,
) (assign.BatchResult, error) {
	for i, task := range tasks {
		if err := task.Validate(); err != nil {
			return assign.BatchResult{}, fmt.Errorf("tasks[%d]: %w", i, err)
		}
	}
	if err := validateMembers(members); err != nil {
		return assign.BatchResult{}, err
	}
	if err := validateEntries(entries); err != nil {
		return assign.BatchResult{}, err
	}
	targetDate = e.orNow(targetDate)

	started := time.Now()
	result := e.batch.Assign(tasks, members, tracker, e.fatigueLevels(entries, members, targetDate), targetDate)

	e.metrics.RecordBatchRun(len(tasks), len(result.Assignments), time.Since(started).Seconds())
	e.metrics.RecordBalanceImprovement(result.BalanceBefore, result.BalanceAfter)
	for _, placed := range result.Assignments {
		e.fireAssignmentHook(placed.Decision)
	}
	for _, failed := range result.Unassigned {
		e.fireAssignmentHook(assign.Decision{TaskID: failed.TaskID})
	}

	return result, nil
}

// MemberLoads aggregates the completion log into decayed loads per member.
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - at: Reference instant for decay; zero means now
//
// Returns:
//   - map[string]history.MemberLoad: Aggregates keyed by member ID
//   - error: Entry validation failure
func (e *Engine) MemberLoads(entries []HistoryEntry, at time.Time) (map[string]history.MemberLoad, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	return e.aggregator.MemberLoads(entries, e.orNow(at)), nil
}

// FatigueLevel derives a member's 0-100 fatigue level from the log.
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - memberID: Member to evaluate
//   - at: Reference instant; zero means now
//
// Returns:
//   - float64: Fatigue level in [0,100]
//   - error: Entry validation failure
func (e *Engine) FatigueLevel(entries []HistoryEntry, memberID string, at time.Time) (float64, error) {
	if err := validateEntries(entries); err != nil {
		return 0, err
	}

	return e.aggregator.FatigueLevel(entries, memberID, e.orNow(at)), nil
}

// DistributionReport summarizes the fairness of the current distribution.
//
// Loads are the decayed historical loads per member; the report carries
// per-member shares, the balance score and the Gini coefficient.
//
// Parameters:
//   - entries: Historical completion log (read-only)
//   - at: Reference instant for decay; zero means now
//
// Returns:
//   - fairness.Report: Dashboard-ready fairness summary
//   - error: Entry validation failure
func (e *Engine) DistributionReport(entries []HistoryEntry, at time.Time) (fairness.Report, error) {
	if err := validateEntries(entries); err != nil {
		return fairness.Report{}, err
	}

	loads := make(map[string]float64)
	for memberID, load := range e.aggregator.MemberLoads(entries, e.orNow(at)) {
		loads[memberID] = load.DecayedLoad
	}

	return fairness.NewReport(loads), nil
}

// LongestIdle lists a category's members sorted by days since their last
// assignment, longest first.
//
// Parameters:
//   - tracker: Rotation state
//   - category: Task category
//   - at: Reference instant; zero means now
//
// Returns:
//   - []rotation.IdleMember: Members sorted longest-idle first
func (e *Engine) LongestIdle(tracker rotation.Tracker, category string, at time.Time) []rotation.IdleMember {
	return tracker.LongestIdle(category, e.orNow(at))
}

// EvaluateWorkload classifies a member's workload health and detects stress
// indicators without raising an alert.
//
// Parameters:
//   - state: Member workload snapshot
//
// Returns:
//   - HealthStatus: Classified workload health
//   - []StressIndicator: Detected indicators, empty when none fire
func (e *Engine) EvaluateWorkload(state MemberWorkloadState) (HealthStatus, []StressIndicator) {
	return e.monitor.Health(state.LoadPercent), e.monitor.Indicators(state)
}

// CheckOverload evaluates a workload snapshot and raises an alert when the
// member needs relief. Nil means no alert is warranted.
//
// Parameters:
//   - state: Member workload snapshot
//
// Returns:
//   - *OverloadAlert: Alert with ranked actions, nil when none needed
func (e *Engine) CheckOverload(state MemberWorkloadState) *OverloadAlert {
	alert := e.monitor.CheckOverload(state)
	if alert == nil {
		return nil
	}

	e.metrics.RecordAlert(string(alert.Type))
	if e.hooks.OnOverloadAlert != nil {
		if err := e.hooks.OnOverloadAlert(*alert); err != nil {
			e.logger.Warn("overload alert hook failed", "member", alert.MemberID, "error", err)
		}
	}

	return alert
}

// CreateRecoveryPlan builds a recovery plan for a stressed member.
//
// Parameters:
//   - state: Workload snapshot of the recovering member
//   - teammates: Other members considered as transfer recipients
//
// Returns:
//   - RecoveryPlan: Plan with reassignments and postponements
func (e *Engine) CreateRecoveryPlan(state MemberWorkloadState, teammates []Member) RecoveryPlan {
	plan := e.monitor.CreateRecoveryPlan(state, teammates)
	e.metrics.RecordRecoveryPlan(string(plan.Type))

	return plan
}

// AutoBalance proposes task transfers from overloaded to underloaded
// members. A run with nothing to move is a success with an explanatory
// message.
//
// Parameters:
//   - states: Workload snapshots for every member
//   - members: Member snapshots keyed by the same IDs
//
// Returns:
//   - RebalanceResult: Proposed transfers, never an error
func (e *Engine) AutoBalance(states []MemberWorkloadState, members []Member) RebalanceResult {
	result := e.monitor.AutoBalance(states, members)
	e.metrics.RecordRebalance(len(result.Transfers))

	return result
}

// WorkloadAnalysis bundles the forecaster's pattern and trend findings.
//
// Monthly and Trend are nil when the series is too short for them; Daily
// and Weekly are always present on success.
type WorkloadAnalysis struct {
	// Daily is the per-weekday periodic component.
	Daily *forecast.DailyPattern `json:"daily"`

	// Weekly is the per-ISO-week aggregate.
	Weekly *forecast.WeeklyPattern `json:"weekly"`

	// Monthly is the per-month component, nil under 60 points.
	Monthly *forecast.MonthlyPattern `json:"monthly,omitempty"`

	// Trend is the fitted linear trend, nil under 2 observed weeks.
	Trend *forecast.Trend `json:"trend,omitempty"`
}

// AnalyzeWorkload runs full pattern and trend detection over a series.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//
// Returns:
//   - WorkloadAnalysis: Detected patterns; optional parts nil when the
//     series is too short for them
//   - error: Validation failure or ErrInsufficientData under 14 points
func (e *Engine) AnalyzeWorkload(points []WorkloadDataPoint) (WorkloadAnalysis, error) {
	if err := validatePoints(points); err != nil {
		return WorkloadAnalysis{}, err
	}

	started := time.Now()

	daily, err := e.forecaster.DetectDailyPattern(points)
	if err != nil {
		return WorkloadAnalysis{}, err
	}
	weekly, err := e.forecaster.DetectWeeklyPattern(points)
	if err != nil {
		return WorkloadAnalysis{}, err
	}

	analysis := WorkloadAnalysis{Daily: daily, Weekly: weekly}

	if monthly, err := e.forecaster.DetectMonthlyPattern(points); err == nil {
		analysis.Monthly = monthly
	} else if !errors.Is(err, types.ErrInsufficientData) {
		return WorkloadAnalysis{}, err
	}
	if trend, err := e.forecaster.AnalyzeTrend(points); err == nil {
		analysis.Trend = trend
	} else if !errors.Is(err, types.ErrInsufficientData) {
		return WorkloadAnalysis{}, err
	}

	e.metrics.RecordForecastRun("analyze", len(points), time.Since(started).Seconds())

	return analysis, nil
}

// PredictWorkload forecasts task volume for one target date.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//   - target: Date to predict
//
// Returns:
//   - forecast.Prediction: Point forecast
//   - error: Validation failure or ErrInsufficientData
func (e *Engine) PredictWorkload(points []WorkloadDataPoint, target time.Time) (forecast.Prediction, error) {
	if err := validatePoints(points); err != nil {
		return forecast.Prediction{}, err
	}

	started := time.Now()
	prediction, err := e.forecaster.Predict(points, target)
	if err != nil {
		return forecast.Prediction{}, err
	}

	e.metrics.RecordForecastRun("predict", len(points), time.Since(started).Seconds())

	return prediction, nil
}

// DetectAnomalies flags days far outside their rolling 7-day baseline.
//
// Parameters:
//   - points: Daily workload series in any order
//   - sensitivity: Z-score multiplier, 0 to use the configured default
//
// Returns:
//   - []forecast.Anomaly: Flagged days in chronological order
//   - error: Point validation failure
func (e *Engine) DetectAnomalies(points []WorkloadDataPoint, sensitivity float64) ([]forecast.Anomaly, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	started := time.Now()
	anomalies := e.forecaster.DetectAnomalies(points, sensitivity)

	e.metrics.RecordForecastRun("anomaly", len(points), time.Since(started).Seconds())
	e.metrics.RecordAnomalies(len(anomalies))

	return anomalies, nil
}

// SuggestPreassignments lists upcoming days predicted to be busier than the
// historical mean.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//   - from: First day of the horizon; zero means now
//   - horizonDays: Number of days to look ahead
//
// Returns:
//   - []forecast.Suggestion: Busier-than-usual days, chronological
//   - error: Validation failure or ErrInsufficientData
func (e *Engine) SuggestPreassignments(points []WorkloadDataPoint, from time.Time, horizonDays int) ([]forecast.Suggestion, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	return e.forecaster.SuggestPreassignments(points, e.orNow(from), horizonDays)
}

// orNow substitutes the engine clock for a zero time.
func (e *Engine) orNow(t time.Time) time.Time {
	if t.IsZero() {
		return e.clock.Now()
	}

	return t
}

// fatigueLevels computes the fatigue map the scorer and selector consume.
func (e *Engine) fatigueLevels(entries []HistoryEntry, members []Member, at time.Time) map[string]float64 {
	fatigue := make(map[string]float64, len(members))
	for _, member := range members {
		fatigue[member.ID] = e.aggregator.FatigueLevel(entries, member.ID, at)
	}

	return fatigue
}

// fireAssignmentHook invokes OnAssignmentDecided; hook errors are logged,
// never propagated.
func (e *Engine) fireAssignmentHook(decision assign.Decision) {
	if e.hooks.OnAssignmentDecided == nil {
		return
	}

	if err := e.hooks.OnAssignmentDecided(decision.TaskID, decision.MemberID, decision.Assigned); err != nil {
		e.logger.Warn("assignment hook failed", "task", decision.TaskID, "error", err)
		if e.hooks.OnError != nil {
			_ = e.hooks.OnError(err)
		}
	}
}

func validateInputs(task Task, members []Member, entries []HistoryEntry) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := validateMembers(members); err != nil {
		return err
	}

	return validateEntries(entries)
}

func validateMembers(members []Member) error {
	for i, member := range members {
		if err := member.Validate(); err != nil {
			return fmt.Errorf("members[%d]: %w", i, err)
		}
	}

	return nil
}

func validateEntries(entries []HistoryEntry) error {
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
	}

	return nil
}

func validatePoints(points []WorkloadDataPoint) error {
	for i, point := range points {
		if err := point.Validate(); err != nil {
			return fmt.Errorf("points[%d]: %w", i, err)
		}
	}

	return nil
}
