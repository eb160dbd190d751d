package fairness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceScore(t *testing.T) {
	t.Run("equal loads score 100", func(t *testing.T) {
		require.Equal(t, 100.0, BalanceScore([]float64{5, 5, 5}))
		require.Equal(t, 100.0, BalanceScore([]float64{12, 12}))
	})

	t.Run("single member scores 100", func(t *testing.T) {
		require.Equal(t, 100.0, BalanceScore([]float64{42}))
	})

	t.Run("all-zero loads score 100", func(t *testing.T) {
		require.Equal(t, 100.0, BalanceScore([]float64{0, 0, 0}))
	})

	t.Run("skew lowers the score", func(t *testing.T) {
		// Shares 75/25 against ideal 50: mean deviation 25, score 50.
		require.InDelta(t, 50.0, BalanceScore([]float64{75, 25}), 1e-9)
	})

	t.Run("extreme skew floors at zero", func(t *testing.T) {
		// Shares 100/0: mean deviation 50, raw score 0.
		require.Equal(t, 0.0, BalanceScore([]float64{10, 0}))
	})

	t.Run("more uneven never scores higher", func(t *testing.T) {
		require.Greater(t, BalanceScore([]float64{55, 45}), BalanceScore([]float64{70, 30}))
	})
}

func TestGiniCoefficient(t *testing.T) {
	t.Run("empty and all-zero are zero", func(t *testing.T) {
		require.Equal(t, 0.0, GiniCoefficient(nil))
		require.Equal(t, 0.0, GiniCoefficient([]float64{0, 0, 0}))
	})

	t.Run("equal values are zero", func(t *testing.T) {
		require.InDelta(t, 0.0, GiniCoefficient([]float64{7, 7, 7}), 1e-9)
	})

	t.Run("two-member extreme is one half", func(t *testing.T) {
		// sum|vi-vj| = 20, 2*n^2*mean = 2*4*5 = 40.
		require.InDelta(t, 0.5, GiniCoefficient([]float64{10, 0}), 1e-9)
	})

	t.Run("stays within unit interval", func(t *testing.T) {
		g := GiniCoefficient([]float64{1, 2, 3, 50})
		require.GreaterOrEqual(t, g, 0.0)
		require.LessOrEqual(t, g, 1.0)
	})
}

func TestRound2(t *testing.T) {
	require.Equal(t, 33.33, Round2(100.0/3.0))
	require.Equal(t, 0.5, Round2(0.499999999))
}

func TestNewReport(t *testing.T) {
	t.Run("orders members by share descending", func(t *testing.T) {
		report := NewReport(map[string]float64{"alice": 30, "bob": 50, "carol": 20})

		require.Equal(t, 3, report.MemberCount)
		require.Equal(t, 100.0, report.TotalLoad)
		require.Equal(t, 33.33, report.IdealSharePercent)

		require.Equal(t, "bob", report.Shares[0].MemberID)
		require.Equal(t, 50.0, report.Shares[0].SharePercent)
		require.Equal(t, 16.67, report.Shares[0].Deviation)
		require.Equal(t, "carol", report.Shares[2].MemberID)
		require.Equal(t, -13.33, report.Shares[2].Deviation)

		require.Greater(t, report.Gini, 0.0)
		require.Less(t, report.Balance, 100.0)
	})

	t.Run("empty input is a perfect report", func(t *testing.T) {
		report := NewReport(nil)

		require.Zero(t, report.MemberCount)
		require.Empty(t, report.Shares)
		require.Equal(t, 100.0, report.Balance)
		require.Equal(t, 0.0, report.Gini)
	})

	t.Run("zero total leaves shares at zero", func(t *testing.T) {
		report := NewReport(map[string]float64{"alice": 0, "bob": 0})

		require.Equal(t, 0.0, report.Shares[0].SharePercent)
		require.Equal(t, 100.0, report.Balance)
	})
}
