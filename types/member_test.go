package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExclusionPeriod_Contains(t *testing.T) {
	period := ExclusionPeriod{Start: day(2025, 3, 10), End: day(2025, 3, 14), Reason: "vacances"}

	t.Run("includes both boundary days", func(t *testing.T) {
		require.True(t, period.Contains(day(2025, 3, 10)))
		require.True(t, period.Contains(day(2025, 3, 14)))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		require.True(t, period.Contains(time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("excludes days outside the range", func(t *testing.T) {
		require.False(t, period.Contains(day(2025, 3, 9)))
		require.False(t, period.Contains(day(2025, 3, 15)))
	})
}

func TestMember_LoadRatio(t *testing.T) {
	t.Run("computes ratio", func(t *testing.T) {
		m := Member{ID: "m1", CurrentLoad: 15, MaxWeeklyLoad: 30}
		require.InDelta(t, 0.5, m.LoadRatio(), 1e-9)
	})

	t.Run("guards zero capacity", func(t *testing.T) {
		m := Member{ID: "m1", CurrentLoad: 15}
		require.Zero(t, m.LoadRatio())
	})
}

func TestMember_Clone(t *testing.T) {
	m := Member{
		ID:                  "m1",
		IsActive:            true,
		PreferredCategories: []string{"cuisine"},
		Skills:              []string{"conduite"},
		ExclusionPeriods:    []ExclusionPeriod{{Start: day(2025, 3, 1), End: day(2025, 3, 2)}},
	}

	c := m.Clone()
	c.PreferredCategories[0] = "menage"
	c.Skills = append(c.Skills, "bricolage")
	c.CurrentLoad = 99

	require.Equal(t, "cuisine", m.PreferredCategories[0])
	require.Len(t, m.Skills, 1)
	require.Zero(t, m.CurrentLoad)
}

func TestMember_Validate(t *testing.T) {
	t.Run("rejects negative load", func(t *testing.T) {
		m := Member{ID: "m1", CurrentLoad: -1}
		require.ErrorIs(t, m.Validate(), ErrInvalidMember)
	})

	t.Run("rejects inverted exclusion period", func(t *testing.T) {
		m := Member{ID: "m1", ExclusionPeriods: []ExclusionPeriod{
			{Start: day(2025, 3, 10), End: day(2025, 3, 5)},
		}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidMember)
		require.Contains(t, err.Error(), "exclusionPeriods[0]")
	})
}

func TestDaysBetween(t *testing.T) {
	t.Run("whole-day difference ignores clock time", func(t *testing.T) {
		from := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
		require.Equal(t, 0, DaysBetween(from, to))
	})

	t.Run("negative when target is earlier", func(t *testing.T) {
		require.Equal(t, -3, DaysBetween(day(2025, 3, 10), day(2025, 3, 7)))
	})

	t.Run("positive across weeks", func(t *testing.T) {
		require.Equal(t, 9, DaysBetween(day(2025, 3, 10), day(2025, 3, 19)))
	})
}
