package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/fairhold/fairhold/types"
)

// ratePerWeekThreshold is the ±percent-per-week band inside which a trend
// counts as stable.
const ratePerWeekThreshold = 5.0

// TrendDirection classifies a fitted trend.
type TrendDirection string

const (
	// TrendIncreasing means the workload grows more than 5% per week.
	TrendIncreasing TrendDirection = "increasing"

	// TrendDecreasing means the workload shrinks more than 5% per week.
	TrendDecreasing TrendDirection = "decreasing"

	// TrendStable means the weekly rate of change is within ±5%.
	TrendStable TrendDirection = "stable"
)

// Trend is an ordinary least-squares fit over weekly workload totals.
type Trend struct {
	// Slope is the fitted change in weekly total per week.
	Slope float64 `json:"slope"`

	// Intercept is the fitted weekly total at the window start.
	Intercept float64 `json:"intercept"`

	// R2 is the coefficient of determination of the fit.
	R2 float64 `json:"r2"`

	// RatePercentPerWeek is the slope relative to the mean weekly total.
	RatePercentPerWeek float64 `json:"ratePercentPerWeek"`

	// Direction classifies the rate against the ±5%/week band.
	Direction TrendDirection `json:"direction"`

	// Confidence is the fit quality used to damp trend extrapolation,
	// currently R2.
	Confidence float64 `json:"confidence"`

	// Start is the first day of the fitted window.
	Start time.Time `json:"start"`
}

// AnalyzeTrend fits a linear trend over the most recent weekly totals.
//
// The series is grouped by ISO week, the last trendWindowWeeks weeks (default
// 4) are kept, and an ordinary least-squares line is fitted through their
// totals. At least two observed weeks are required.
//
// Parameters:
//   - points: Daily workload series
//
// Returns:
//   - *Trend: Fitted trend with direction classification
//   - error: types.ErrInsufficientData with fewer than two observed weeks
func (f *Forecaster) AnalyzeTrend(points []types.WorkloadDataPoint) (*Trend, error) {
	totals := make(map[int]float64)
	starts := make(map[int]time.Time)
	for _, p := range points {
		week := p.WeekOfYear()
		totals[week] += float64(p.TaskCount)
		if start, seen := starts[week]; !seen || p.Timestamp.Before(start) {
			starts[week] = p.Timestamp
		}
	}

	if len(totals) < 2 {
		return nil, fmt.Errorf("%w: trend analysis needs at least 2 observed weeks, got %d",
			types.ErrInsufficientData, len(totals))
	}

	weeks := make([]int, 0, len(totals))
	for week := range totals {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	if len(weeks) > f.trendWindowWeeks {
		weeks = weeks[len(weeks)-f.trendWindowWeeks:]
	}

	ys := make([]float64, len(weeks))
	mean := 0.0
	for i, week := range weeks {
		ys[i] = totals[week]
		mean += totals[week]
	}
	mean /= float64(len(ys))

	slope, intercept, r2 := leastSquares(ys)

	trend := &Trend{
		Slope:      slope,
		Intercept:  intercept,
		R2:         r2,
		Confidence: r2,
		Direction:  TrendStable,
		Start:      starts[weeks[0]],
	}

	if mean > 0 {
		trend.RatePercentPerWeek = slope / mean * 100
	}
	switch {
	case trend.RatePercentPerWeek > ratePerWeekThreshold:
		trend.Direction = TrendIncreasing
	case trend.RatePercentPerWeek < -ratePerWeekThreshold:
		trend.Direction = TrendDecreasing
	}

	return trend, nil
}

// leastSquares fits y = slope*x + intercept over x = 0..n-1 using the
// standard sum formulas.
func leastSquares(ys []float64) (slope, intercept, r2 float64) {
	n := float64(len(ys))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range ys {
		fit := slope*float64(i) + intercept
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}

	if ssTot == 0 {
		// A flat series is fitted exactly by the flat line.
		return slope, intercept, 1
	}

	return slope, intercept, 1 - ssRes/ssTot
}
