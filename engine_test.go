package fairhold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fairhold/fairhold/internal/metrics"
	"github.com/fairhold/fairhold/rotation"
	ftesting "github.com/fairhold/fairhold/testing"
	"github.com/fairhold/fairhold/types"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // a Monday

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	base := []Option{
		WithClock(ftesting.NewFixedClock(testNow)),
		WithIDGenerator(ftesting.NewSequentialIDs("test")),
	}
	engine, err := NewEngine(TestConfig(), append(base, opts...)...)
	require.NoError(t, err)

	return engine
}

// captureMetrics records selected calls and delegates nothing else.
type captureMetrics struct {
	types.MetricsCollector

	decisions int
	assigned  int
	forced    int
}

func (c *captureMetrics) RecordDecision(assigned bool, _ /* candidates */ int, _ /* duration */ float64) {
	c.decisions++
	if assigned {
		c.assigned++
	}
}

func (c *captureMetrics) RecordForcedAssignment(_ /* eligible */ bool) {
	c.forced++
}

func TestNewEngine(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, engine)
	})

	t.Run("zero config gets defaults", func(t *testing.T) {
		engine, err := NewEngine(Config{})
		require.NoError(t, err)
		require.Equal(t, DefaultSkillThreshold, engine.cfg.SkillThreshold)
		require.Equal(t, DefaultHalfLifeDays, engine.cfg.History.HalfLifeDays)
	})

	t.Run("invalid weights rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ScoreWeights.LoadBalance = 0.9

		_, err := NewEngine(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid skill threshold rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SkillThreshold = 1.5

		_, err := NewEngine(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestEngineSelectAssignee(t *testing.T) {
	task := Task{ID: "t1", Title: "Dishes", Category: "menage", Priority: PriorityNormal}
	members := []Member{
		{ID: "alice", Name: "Alice", IsActive: true, CurrentLoad: 0, MaxWeeklyLoad: 100},
		{ID: "bob", Name: "Bob", IsActive: true, CurrentLoad: 80, MaxWeeklyLoad: 100},
	}

	t.Run("least loaded member wins", func(t *testing.T) {
		engine := newTestEngine(t)

		decision, err := engine.SelectAssignee(task, members, rotation.NewTracker(), nil, time.Time{}, "")
		require.NoError(t, err)
		require.True(t, decision.Assigned)
		require.Equal(t, "alice", decision.MemberID)
		require.NotEmpty(t, decision.Rationale)
	})

	t.Run("forced ineligible member is flagged", func(t *testing.T) {
		engine := newTestEngine(t)

		pool := append([]Member{{ID: "carol", Name: "Carol", IsActive: false}}, members...)
		decision, err := engine.SelectAssignee(task, pool, rotation.NewTracker(), nil, time.Time{}, "carol")
		require.NoError(t, err)
		require.True(t, decision.Assigned)
		require.True(t, decision.Forced)
		require.True(t, decision.ForcedIneligible)
		require.Equal(t, "carol", decision.MemberID)
	})

	t.Run("no eligible candidate is not an error", func(t *testing.T) {
		engine := newTestEngine(t)

		inactive := []Member{{ID: "dave", Name: "Dave", IsActive: false}}
		decision, err := engine.SelectAssignee(task, inactive, rotation.NewTracker(), nil, time.Time{}, "")
		require.NoError(t, err)
		require.False(t, decision.Assigned)
		require.Contains(t, decision.Reasons, "dave")
	})

	t.Run("invalid task rejected", func(t *testing.T) {
		engine := newTestEngine(t)

		_, err := engine.SelectAssignee(Task{}, members, rotation.NewTracker(), nil, time.Time{}, "")
		require.ErrorIs(t, err, ErrInvalidTask)
		require.True(t, IsValidationError(err))
	})

	t.Run("metrics and hooks fire", func(t *testing.T) {
		collector := &captureMetrics{MetricsCollector: metrics.NewNop()}
		var hooked []string
		engine := newTestEngine(t,
			WithMetrics(collector),
			WithHooks(Hooks{
				OnAssignmentDecided: func(taskID, memberID string, assigned bool) error {
					hooked = append(hooked, taskID+":"+memberID)
					return nil
				},
			}),
		)

		_, err := engine.SelectAssignee(task, members, rotation.NewTracker(), nil, time.Time{}, "")
		require.NoError(t, err)
		require.Equal(t, 1, collector.decisions)
		require.Equal(t, 1, collector.assigned)
		require.Equal(t, 0, collector.forced)
		require.Equal(t, []string{"t1:alice"}, hooked)
	})
}

func TestEngineScoreCandidates(t *testing.T) {
	engine := newTestEngine(t)

	task := Task{ID: "t1", Category: "menage", Priority: PriorityNormal}
	members := []Member{
		{ID: "alice", IsActive: true, MaxWeeklyLoad: 100},
		{ID: "bob", IsActive: true, MaxWeeklyLoad: 100, BlockedCategories: []string{"menage"}},
	}

	scores, err := engine.ScoreCandidates(task, members, rotation.NewTracker(), nil, time.Time{})
	require.NoError(t, err)
	require.Len(t, scores, 2)
	require.True(t, scores[0].Eligible)
	require.Positive(t, scores[0].Total)
	require.False(t, scores[1].Eligible)
	require.Zero(t, scores[1].Total)
	require.NotEmpty(t, scores[1].DisqualifyReason)
}

func TestEngineAssignBatch(t *testing.T) {
	engine := newTestEngine(t)

	tasks := []Task{
		{ID: "t1", Category: "menage", Priority: PriorityLow, EstimatedMinutes: 30},
		{ID: "t2", Category: "courses", Priority: PriorityHigh, EstimatedMinutes: 30},
		{ID: "t3", Category: "menage", Priority: PriorityNormal, EstimatedMinutes: 30, IsCritical: true},
	}
	members := []Member{
		{ID: "alice", IsActive: true, MaxWeeklyLoad: 100},
		{ID: "bob", IsActive: true, MaxWeeklyLoad: 100},
	}

	result, err := engine.AssignBatch(tasks, members, rotation.NewTracker(), nil, time.Time{})
	require.NoError(t, err)
	require.Len(t, result.Assignments, 3)
	require.Empty(t, result.Unassigned)

	// Critical task placed first.
	require.Equal(t, "t3", result.Assignments[0].TaskID)

	// Simulated loads accumulated in the snapshot, not the input.
	var total float64
	for _, m := range result.Members {
		total += m.CurrentLoad
	}
	require.Positive(t, total)
	require.Zero(t, members[0].CurrentLoad)

	// Rotation snapshot knows about every placement.
	for _, placed := range result.Assignments {
		category := ""
		for _, task := range tasks {
			if task.ID == placed.TaskID {
				category = task.Category
			}
		}
		_, ok := result.Tracker.LastAssigned(category, placed.MemberID)
		require.True(t, ok)
	}
}

func TestEngineDistributionReport(t *testing.T) {
	engine := newTestEngine(t)

	entries := []HistoryEntry{
		{Date: testNow.AddDate(0, 0, -1), MemberID: "alice", TaskID: "t1", Category: "menage", Weight: 10, Completed: true},
		{Date: testNow.AddDate(0, 0, -1), MemberID: "bob", TaskID: "t2", Category: "courses", Weight: 10, Completed: true},
	}

	report, err := engine.DistributionReport(entries, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 2, report.MemberCount)
	require.InDelta(t, 100.0, report.Balance, 1e-9)
	require.InDelta(t, 0.0, report.Gini, 1e-9)
	require.InDelta(t, 50.0, report.Shares[0].SharePercent, 1e-9)
}

func TestEngineMemberLoads(t *testing.T) {
	engine := newTestEngine(t)

	entries := []HistoryEntry{
		{Date: testNow, MemberID: "alice", TaskID: "t1", Category: "menage", Weight: 8, Completed: true},
	}

	loads, err := engine.MemberLoads(entries, time.Time{})
	require.NoError(t, err)
	require.Contains(t, loads, "alice")
	require.InDelta(t, 8.0, loads["alice"].DecayedLoad, 1e-9)

	t.Run("invalid entry rejected", func(t *testing.T) {
		_, err := engine.MemberLoads([]HistoryEntry{{TaskID: "t1"}}, time.Time{})
		require.ErrorIs(t, err, ErrInvalidHistoryEntry)
	})
}

func TestEngineCheckOverload(t *testing.T) {
	var alerted []OverloadAlert
	engine := newTestEngine(t, WithHooks(Hooks{
		OnOverloadAlert: func(alert OverloadAlert) error {
			alerted = append(alerted, alert)
			return nil
		},
	}))

	t.Run("healthy member raises nothing", func(t *testing.T) {
		alert := engine.CheckOverload(MemberWorkloadState{MemberID: "alice", LoadPercent: 40})
		require.Nil(t, alert)
		require.Empty(t, alerted)
	})

	t.Run("burnout risk raises emergency", func(t *testing.T) {
		alert := engine.CheckOverload(MemberWorkloadState{MemberID: "bob", LoadPercent: 130})
		require.NotNil(t, alert)
		require.Equal(t, types.AlertEmergency, alert.Type)
		require.Equal(t, types.HealthBurnoutRisk, alert.Health)
		require.Equal(t, "test-1", alert.ID)
		require.Equal(t, testNow, alert.CreatedAt)
		require.Len(t, alerted, 1)
	})
}

func TestEngineEvaluateWorkload(t *testing.T) {
	engine := newTestEngine(t)

	health, indicators := engine.EvaluateWorkload(MemberWorkloadState{MemberID: "alice", LoadPercent: 95})
	require.Equal(t, HealthHigh, health)
	require.Empty(t, indicators)

	days := make([]DayWorkload, 4)
	for i := range days {
		days[i] = DayWorkload{Date: testNow.AddDate(0, 0, i-4), LoadPercent: 110}
	}
	health, indicators = engine.EvaluateWorkload(MemberWorkloadState{
		MemberID:    "bob",
		LoadPercent: 110,
		RecentDays:  days,
	})
	require.Equal(t, HealthCritical, health)
	require.NotEmpty(t, indicators)
}

func TestEngineCreateRecoveryPlan(t *testing.T) {
	engine := newTestEngine(t)

	state := MemberWorkloadState{
		MemberID:      "alice",
		LoadPercent:   130,
		DaysSinceRest: 12,
		PendingTasks: []PendingTask{
			{Task: Task{ID: "t1", Category: "menage", Priority: PriorityLow}, Reassignable: true},
		},
	}
	teammates := []Member{{ID: "bob", IsActive: true, CurrentLoad: 10, MaxWeeklyLoad: 100}}

	plan := engine.CreateRecoveryPlan(state, teammates)
	require.Equal(t, "alice", plan.MemberID)
	require.Equal(t, types.RecoveryExtendedRest, plan.Type)
	require.Zero(t, plan.TargetLoadPercent)
	require.Len(t, plan.Reassignments, 1)
	require.Equal(t, "bob", plan.Reassignments[0].ToMemberID)
}

func TestEngineAutoBalance(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("no-op run succeeds with message", func(t *testing.T) {
		states := []MemberWorkloadState{
			{MemberID: "alice", LoadPercent: 50},
			{MemberID: "bob", LoadPercent: 50},
		}
		result := engine.AutoBalance(states, []Member{{ID: "alice", IsActive: true}, {ID: "bob", IsActive: true}})
		require.True(t, result.Success)
		require.Empty(t, result.Transfers)
		require.NotEmpty(t, result.Message)
	})

	t.Run("transfers flow to underloaded member", func(t *testing.T) {
		states := []MemberWorkloadState{
			{
				MemberID:    "alice",
				LoadPercent: 95,
				PendingTasks: []PendingTask{
					{Task: Task{ID: "t1", Category: "menage", Priority: PriorityLow}, Reassignable: true},
					{Task: Task{ID: "t2", Category: "menage", Priority: PriorityLow}, Reassignable: true},
				},
			},
			{MemberID: "bob", LoadPercent: 20},
		}
		members := []Member{
			{ID: "alice", IsActive: true, MaxWeeklyLoad: 100},
			{ID: "bob", IsActive: true, MaxWeeklyLoad: 100},
		}

		result := engine.AutoBalance(states, members)
		require.True(t, result.Success)
		require.NotEmpty(t, result.Transfers)
		require.Equal(t, "bob", result.Transfers[0].ToMemberID)
	})
}

func workloadSeries(days int, count func(day int) int) []WorkloadDataPoint {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // a Monday
	points := make([]WorkloadDataPoint, days)
	for i := range points {
		points[i] = WorkloadDataPoint{
			Timestamp: start.AddDate(0, 0, i),
			TaskCount: count(i),
		}
	}

	return points
}

func TestEngineAnalyzeWorkload(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("four flat weeks", func(t *testing.T) {
		points := workloadSeries(28, func(int) int { return 3 })

		analysis, err := engine.AnalyzeWorkload(points)
		require.NoError(t, err)
		require.NotNil(t, analysis.Daily)
		require.NotNil(t, analysis.Weekly)
		require.NotNil(t, analysis.Trend)
		require.Nil(t, analysis.Monthly)
		require.InDelta(t, 3.0, analysis.Daily.OverallMean, 1e-9)
		require.Equal(t, "stable", string(analysis.Trend.Direction))
	})

	t.Run("too short", func(t *testing.T) {
		points := workloadSeries(7, func(int) int { return 3 })

		_, err := engine.AnalyzeWorkload(points)
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestEnginePredictWorkload(t *testing.T) {
	engine := newTestEngine(t)

	points := workloadSeries(28, func(day int) int {
		if day%7 == 5 { // Saturdays
			return 10
		}
		return 2
	})

	saturday := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	satPred, err := engine.PredictWorkload(points, saturday)
	require.NoError(t, err)
	tuePred, err := engine.PredictWorkload(points, tuesday)
	require.NoError(t, err)
	require.Greater(t, satPred.TaskCount, tuePred.TaskCount)
}

func TestEngineDetectAnomalies(t *testing.T) {
	engine := newTestEngine(t)

	points := workloadSeries(15, func(day int) int {
		if day == 14 {
			return 20
		}
		return 2
	})

	anomalies, err := engine.DetectAnomalies(points, 0)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	require.Equal(t, "spike", string(anomalies[0].Type))
	require.Equal(t, 10, anomalies[0].Severity)
}

func TestEngineSuggestPreassignments(t *testing.T) {
	engine := newTestEngine(t)

	points := workloadSeries(28, func(day int) int {
		if day%7 == 5 {
			return 10
		}
		return 2
	})

	suggestions, err := engine.SuggestPreassignments(points, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	found := false
	for _, s := range suggestions {
		require.Positive(t, s.ExcessOverMean)
		if s.Date.Weekday() == time.Saturday {
			found = true
		}
	}
	require.True(t, found, "the heavy Saturday must be suggested")
}

func TestEngineLongestIdle(t *testing.T) {
	engine := newTestEngine(t)

	tracker := rotation.NewTracker().
		Updated("alice", "menage", "one_off", testNow.AddDate(0, 0, -10)).
		Updated("bob", "menage", "one_off", testNow.AddDate(0, 0, -2))

	idle := engine.LongestIdle(tracker, "menage", time.Time{})
	require.Len(t, idle, 2)
	require.Equal(t, "alice", idle[0].MemberID)
	require.Equal(t, 10, idle[0].IdleDays)
}
