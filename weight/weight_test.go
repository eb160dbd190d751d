package weight

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fhtesting "github.com/fairhold/fairhold/testing"
	"github.com/fairhold/fairhold/types"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestCalculator(t *testing.T, opts ...Option) *Calculator {
	t.Helper()

	opts = append(opts, WithLogger(fhtesting.NewTestLogger(t)))

	return NewCalculator(fhtesting.NewFixedClock(testNow), opts...)
}

func TestCalculator_TaskWeight(t *testing.T) {
	t.Run("critical urgent sante task multiplies in order", func(t *testing.T) {
		calc := newTestCalculator(t)
		task := types.Task{
			ID:         "t1",
			Category:   "sante",
			Priority:   types.PriorityHigh,
			IsCritical: true,
		}

		w := calc.TaskWeight(task, 0)

		profile, known := calc.Profile("sante")
		require.True(t, known)
		require.InDelta(t, 4.0, w.Base, 1e-9)

		expected := math.Round(4*1.5*1.4*profile.ComplexityMultiplier()*10) / 10
		require.InDelta(t, expected, w.Adjusted, 1e-9)
		require.InDelta(t, 11.3, w.Adjusted, 1e-9)
	})

	t.Run("normal priority without deadline applies only complexity", func(t *testing.T) {
		calc := newTestCalculator(t)
		task := types.Task{ID: "t1", Category: "menage", Priority: types.PriorityNormal}

		w := calc.TaskWeight(task, 0)

		profile, _ := calc.Profile("menage")
		require.InDelta(t, math.Round(3*profile.ComplexityMultiplier()*10)/10, w.Adjusted, 1e-9)
	})

	t.Run("deadline pressure tiers", func(t *testing.T) {
		calc := newTestCalculator(t)
		cases := []struct {
			name       string
			due        time.Time
			multiplier float64
		}{
			{"overdue", testNow.AddDate(0, 0, -2), 1.8},
			{"due today", testNow.Add(10 * time.Hour), 1.5},
			{"due tomorrow", testNow.AddDate(0, 0, 1), 1.3},
			{"due this week", testNow.AddDate(0, 0, 5), 1.1},
			{"far future", testNow.AddDate(0, 0, 20), 1.0},
		}

		profile, _ := calc.Profile("courses")
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				due := tc.due
				task := types.Task{ID: "t1", Category: "courses", Priority: types.PriorityNormal, DueDate: &due}

				w := calc.TaskWeight(task, 0)

				expected := math.Round(profile.BaseWeight*tc.multiplier*profile.ComplexityMultiplier()*10) / 10
				require.InDelta(t, expected, w.Adjusted, 1e-9, "deadline tier %s", tc.name)
			})
		}
	})

	t.Run("recurrence discounts", func(t *testing.T) {
		calc := newTestCalculator(t)
		profile, _ := calc.Profile("cuisine")

		for recurrence, discount := range map[types.Recurrence]float64{
			types.RecurrenceDaily:   0.6,
			types.RecurrenceWeekly:  0.8,
			types.RecurrenceMonthly: 0.9,
			types.RecurrenceNone:    1.0,
		} {
			task := types.Task{ID: "t1", Category: "cuisine", Priority: types.PriorityNormal, Recurrence: recurrence}

			w := calc.TaskWeight(task, 0)

			expected := math.Round(profile.BaseWeight*discount*profile.ComplexityMultiplier()*10) / 10
			require.InDelta(t, expected, w.Adjusted, 1e-9, "recurrence %q", recurrence)
		}
	})

	t.Run("fatigue surcharge only above threshold", func(t *testing.T) {
		calc := newTestCalculator(t)
		task := types.Task{ID: "t1", Category: "menage", Priority: types.PriorityNormal}

		rested := calc.TaskWeight(task, 20)
		tired := calc.TaskWeight(task, 65)
		exhausted := calc.TaskWeight(task, 95)

		require.Equal(t, rested.Adjusted, calc.TaskWeight(task, 0).Adjusted)
		require.Greater(t, tired.Adjusted, rested.Adjusted)
		require.Greater(t, exhausted.Adjusted, tired.Adjusted)
	})

	t.Run("unknown category falls back to default profile", func(t *testing.T) {
		calc := newTestCalculator(t)
		task := types.Task{ID: "t1", Category: "jardinage-exotique", Priority: types.PriorityNormal}

		w := calc.TaskWeight(task, 0)

		fallback, known := calc.Profile("jardinage-exotique")
		require.False(t, known)
		require.InDelta(t, fallback.BaseWeight, w.Base, 1e-9)
		require.NotZero(t, w.Adjusted)
	})

	t.Run("reports applied factors", func(t *testing.T) {
		calc := newTestCalculator(t)
		due := testNow.AddDate(0, 0, -1)
		task := types.Task{
			ID:                   "t1",
			Category:             "administratif",
			Priority:             types.PriorityHigh,
			DueDate:              &due,
			IsCritical:           true,
			RequiresCoordination: true,
		}

		w := calc.TaskWeight(task, 70)

		joined := ""
		for _, f := range w.Factors {
			joined += f + "\n"
		}
		require.Contains(t, joined, "base weight administratif")
		require.Contains(t, joined, "priority 1")
		require.Contains(t, joined, "overdue")
		require.Contains(t, joined, "critical task")
		require.Contains(t, joined, "coordination overhead")
		require.Contains(t, joined, "complexity")
		require.Contains(t, joined, "fatigue level 70")
	})
}

func TestCalculator_CustomProfiles(t *testing.T) {
	calc := newTestCalculator(t, WithProfiles(map[string]Profile{
		"animaux": {BaseWeight: 5, EnergyCost: 0.5, MentalLoad: 0.5, TimeRequired: 0.5},
	}))

	p, known := calc.Profile("animaux")
	require.True(t, known)
	require.InDelta(t, 5.0, p.BaseWeight, 1e-9)

	task := types.Task{ID: "t1", Category: "animaux", Priority: types.PriorityNormal}
	w := calc.TaskWeight(task, 0)
	require.InDelta(t, math.Round(5*p.ComplexityMultiplier()*10)/10, w.Adjusted, 1e-9)
}

func TestProfile_ComplexityMultiplier(t *testing.T) {
	p := Profile{EnergyCost: 0.5, MentalLoad: 1.0, TimeRequired: 0.5}
	require.InDelta(t, 1+0.1+0.3+0.1, p.ComplexityMultiplier(), 1e-9)

	require.InDelta(t, 1.0, Profile{}.ComplexityMultiplier(), 1e-9)
}
