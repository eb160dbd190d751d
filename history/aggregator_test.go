package history

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fairhold/fairhold/types"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func entry(memberID string, daysAgo int, weight float64, completed bool) types.HistoryEntry {
	return types.HistoryEntry{
		Date:      now.AddDate(0, 0, -daysAgo),
		MemberID:  memberID,
		TaskID:    "task",
		Category:  "menage",
		Weight:    weight,
		Completed: completed,
	}
}

func TestAggregator_MemberLoads(t *testing.T) {
	t.Run("decays load by half-life", func(t *testing.T) {
		agg := NewAggregator(WithHalfLife(14))
		entries := []types.HistoryEntry{
			entry("alice", 0, 10, true),
			entry("alice", 14, 10, true),
		}

		loads := agg.MemberLoads(entries, now)

		alice := loads["alice"]
		require.InDelta(t, 20.0, alice.RawLoad, 1e-9)
		// Fresh entry decays ~1.0, 14-day-old entry exactly 0.5.
		require.InDelta(t, 10+5, alice.DecayedLoad, 0.2)
	})

	t.Run("only completed entries contribute load", func(t *testing.T) {
		agg := NewAggregator()
		entries := []types.HistoryEntry{
			entry("alice", 1, 10, true),
			entry("alice", 2, 10, false),
		}

		loads := agg.MemberLoads(entries, now)

		alice := loads["alice"]
		require.Equal(t, 1, alice.CompletedCount)
		require.Equal(t, 2, alice.TotalCount)
		require.InDelta(t, 0.5, alice.CompletionRate, 1e-9)
		require.InDelta(t, 10.0, alice.RawLoad, 1e-9)
	})

	t.Run("breaks load down by category", func(t *testing.T) {
		agg := NewAggregator()
		e1 := entry("alice", 0, 4, true)
		e2 := entry("alice", 0, 6, true)
		e2.Category = "courses"

		loads := agg.MemberLoads([]types.HistoryEntry{e1, e2}, now)

		alice := loads["alice"]
		require.Len(t, alice.ByCategory, 2)
		require.InDelta(t, 4.0, alice.ByCategory["menage"], 0.01)
		require.InDelta(t, 6.0, alice.ByCategory["courses"], 0.01)
	})

	t.Run("future-dated entries decay as age zero", func(t *testing.T) {
		agg := NewAggregator()
		loads := agg.MemberLoads([]types.HistoryEntry{entry("alice", -3, 8, true)}, now)
		require.InDelta(t, 8.0, loads["alice"].DecayedLoad, 1e-9)
	})

	t.Run("empty log yields empty map", func(t *testing.T) {
		agg := NewAggregator()
		require.Empty(t, agg.MemberLoads(nil, now))
	})
}

func TestAggregator_FatigueLevel(t *testing.T) {
	t.Run("no recent work means fully rested", func(t *testing.T) {
		agg := NewAggregator()
		entries := []types.HistoryEntry{entry("alice", 30, 10, true)}

		require.Zero(t, agg.FatigueLevel(entries, "alice", now))
		require.Zero(t, agg.FatigueLevel(entries, "ghost", now))
	})

	t.Run("higher recent share means higher fatigue", func(t *testing.T) {
		agg := NewAggregator()
		entries := []types.HistoryEntry{
			entry("alice", 1, 20, true),
			entry("bob", 1, 5, true),
		}

		alice := agg.FatigueLevel(entries, "alice", now)
		bob := agg.FatigueLevel(entries, "bob", now)
		require.Greater(t, alice, bob)
		require.LessOrEqual(t, alice, 100.0)
	})

	t.Run("working every day adds rest penalty", func(t *testing.T) {
		agg := NewAggregator()

		var daily, restful []types.HistoryEntry
		for d := 0; d < 10; d++ {
			daily = append(daily, entry("alice", d, 5, true), entry("bob", d, 5, true))
			restful = append(restful, entry("alice", d, 5, true))
			if d != 0 {
				// Bob rested today.
				restful = append(restful, entry("bob", d, 5, true))
			}
		}

		tired := agg.FatigueLevel(daily, "bob", now)
		rested := agg.FatigueLevel(restful, "bob", now)
		require.Greater(t, tired, rested)
	})

	t.Run("level stays within bounds", func(t *testing.T) {
		agg := NewAggregator()
		var entries []types.HistoryEntry
		for d := 0; d < 14; d++ {
			entries = append(entries, entry("alice", d, 50, true))
		}

		level := agg.FatigueLevel(entries, "alice", now)
		require.GreaterOrEqual(t, level, 0.0)
		require.LessOrEqual(t, level, 100.0)
	})
}

func TestAggregator_DaysSinceRest(t *testing.T) {
	agg := NewAggregator(WithRestLookback(14))

	t.Run("workless today is zero", func(t *testing.T) {
		entries := []types.HistoryEntry{entry("alice", 3, 5, true)}
		require.Equal(t, 0, agg.DaysSinceRest(entries, "alice", now))
	})

	t.Run("counts back to the last rest day", func(t *testing.T) {
		entries := []types.HistoryEntry{
			entry("alice", 0, 5, true),
			entry("alice", 1, 5, true),
			entry("alice", 2, 5, true),
		}
		require.Equal(t, 3, agg.DaysSinceRest(entries, "alice", now))
	})

	t.Run("caps at the lookback", func(t *testing.T) {
		var entries []types.HistoryEntry
		for d := 0; d <= 20; d++ {
			entries = append(entries, entry("alice", d, 5, true))
		}
		require.Equal(t, 14, agg.DaysSinceRest(entries, "alice", now))
	})
}

func TestAggregator_ConfigClamping(t *testing.T) {
	agg := NewAggregator(WithHalfLife(0), WithFatigueWindow(-1), WithRestLookback(0))

	// Clamped values must still produce sane decay.
	loads := agg.MemberLoads([]types.HistoryEntry{entry("alice", 1, 8, true)}, now)
	require.False(t, math.IsNaN(loads["alice"].DecayedLoad))
	require.Greater(t, loads["alice"].DecayedLoad, 0.0)
}
