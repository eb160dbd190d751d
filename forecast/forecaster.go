package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fairhold/fairhold/internal/logging"
	"github.com/fairhold/fairhold/types"
)

const (
	// minPatternPoints is the minimum series length for daily and weekly
	// pattern detection.
	minPatternPoints = 14

	// minMonthlyPoints is the minimum series length for monthly patterns.
	minMonthlyPoints = 60

	// defaultTrendWindowWeeks is the trend-fitting window.
	defaultTrendWindowWeeks = 4

	// defaultSensitivity is the z-score multiplier for anomaly detection.
	defaultSensitivity = 2.0

	// confidenceScale damps pattern confidence so noisy series never claim
	// certainty.
	confidenceScale = 0.8

	// weeksPerYear saturates weekly-pattern confidence at about a year of
	// observed weeks.
	weeksPerYear = 52.0
)

// DailyPattern is the per-weekday periodic component of a series.
type DailyPattern struct {
	// WeekdayMeans is the mean task count per weekday (Sunday = 0).
	WeekdayMeans [7]float64 `json:"weekdayMeans"`

	// OverallMean is the mean task count across the whole series.
	OverallMean float64 `json:"overallMean"`

	// Amplitude is half the spread between the busiest and quietest weekday.
	Amplitude float64 `json:"amplitude"`

	// PeakWeekday is the weekday with the highest mean (the pattern phase).
	PeakWeekday time.Weekday `json:"peakWeekday"`

	// Confidence is the pattern strength in [0,1].
	Confidence float64 `json:"confidence"`
}

// WeeklyPattern is the per-ISO-week aggregate of a series.
type WeeklyPattern struct {
	// WeekTotals maps ISO week key (year*100+week) to total task count.
	WeekTotals map[int]float64 `json:"weekTotals"`

	// MeanWeeklyTotal is the mean of all weekly totals.
	MeanWeeklyTotal float64 `json:"meanWeeklyTotal"`

	// Confidence grows with the number of observed weeks, reaching 1 at
	// about a year.
	Confidence float64 `json:"confidence"`
}

// MonthlyPattern is the per-calendar-month periodic component of a series.
type MonthlyPattern struct {
	// MonthMeans is the mean task count per month (January = 1).
	MonthMeans map[time.Month]float64 `json:"monthMeans"`

	// OverallMean is the mean task count across the whole series.
	OverallMean float64 `json:"overallMean"`

	// Confidence is the pattern strength in [0,1].
	Confidence float64 `json:"confidence"`
}

// Forecaster runs statistical workload forecasting.
type Forecaster struct {
	trendWindowWeeks int
	sensitivity      float64
	logger           types.Logger
}

// Option configures a Forecaster.
type Option func(*Forecaster)

// WithTrendWindow sets the trend-fitting window in weeks (default 4).
func WithTrendWindow(weeks int) Option {
	return func(f *Forecaster) {
		f.trendWindowWeeks = weeks
	}
}

// WithSensitivity sets the anomaly z-score multiplier (default 2).
func WithSensitivity(sensitivity float64) Option {
	return func(f *Forecaster) {
		f.sensitivity = sensitivity
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(f *Forecaster) {
		f.logger = logger
	}
}

// NewForecaster creates a forecaster.
//
// Parameters:
//   - opts: Optional configuration (WithTrendWindow, WithSensitivity,
//     WithLogger)
//
// Returns:
//   - *Forecaster: Initialized forecaster ready for use
func NewForecaster(opts ...Option) *Forecaster {
	f := &Forecaster{
		trendWindowWeeks: defaultTrendWindowWeeks,
		sensitivity:      defaultSensitivity,
		logger:           logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if f.trendWindowWeeks <= 1 {
		f.logger.Warn("trend window too small, using default",
			"provided", f.trendWindowWeeks, "using", defaultTrendWindowWeeks)
		f.trendWindowWeeks = defaultTrendWindowWeeks
	}
	if f.sensitivity <= 0 {
		f.sensitivity = defaultSensitivity
	}

	return f
}

// DetectDailyPattern extracts the per-weekday periodic component.
//
// Confidence is the pattern amplitude relative to the average within-weekday
// noise, damped and capped at 1: a series where weekdays differ strongly and
// consistently scores high.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//
// Returns:
//   - *DailyPattern: Detected pattern
//   - error: types.ErrInsufficientData when the series is too short
func (f *Forecaster) DetectDailyPattern(points []types.WorkloadDataPoint) (*DailyPattern, error) {
	if len(points) < minPatternPoints {
		return nil, fmt.Errorf("%w: daily pattern needs at least %d points, got %d",
			types.ErrInsufficientData, minPatternPoints, len(points))
	}

	var buckets [7][]float64
	total := 0.0
	for _, p := range points {
		wd := int(p.DayOfWeek())
		buckets[wd] = append(buckets[wd], float64(p.TaskCount))
		total += float64(p.TaskCount)
	}

	pattern := &DailyPattern{OverallMean: total / float64(len(points))}

	minMean, maxMean := math.Inf(1), math.Inf(-1)
	stdSum, observed := 0.0, 0
	for wd, counts := range buckets {
		if len(counts) == 0 {
			continue
		}

		mean, std := meanStdDev(counts)
		pattern.WeekdayMeans[wd] = mean
		stdSum += std
		observed++

		if mean > maxMean {
			maxMean = mean
			pattern.PeakWeekday = time.Weekday(wd)
		}
		if mean < minMean {
			minMean = mean
		}
	}

	pattern.Amplitude = (maxMean - minMean) / 2
	avgStd := stdSum / float64(observed)
	pattern.Confidence = math.Min(1, pattern.Amplitude/(avgStd+1)*confidenceScale)

	return pattern, nil
}

// DetectWeeklyPattern aggregates the series by ISO week.
//
// Confidence grows linearly with the number of observed weeks, saturating at
// roughly a year of weekly samples.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//
// Returns:
//   - *WeeklyPattern: Per-week totals with their mean
//   - error: types.ErrInsufficientData when the series is too short
func (f *Forecaster) DetectWeeklyPattern(points []types.WorkloadDataPoint) (*WeeklyPattern, error) {
	if len(points) < minPatternPoints {
		return nil, fmt.Errorf("%w: weekly pattern needs at least %d points, got %d",
			types.ErrInsufficientData, minPatternPoints, len(points))
	}

	totals := make(map[int]float64)
	for _, p := range points {
		totals[p.WeekOfYear()] += float64(p.TaskCount)
	}

	sum := 0.0
	for _, t := range totals {
		sum += t
	}

	return &WeeklyPattern{
		WeekTotals:      totals,
		MeanWeeklyTotal: sum / float64(len(totals)),
		Confidence:      math.Min(1, float64(len(totals))/weeksPerYear),
	}, nil
}

// DetectMonthlyPattern extracts the per-calendar-month component.
//
// Parameters:
//   - points: Daily workload series, at least 60 points
//
// Returns:
//   - *MonthlyPattern: Per-month means
//   - error: types.ErrInsufficientData when the series is too short
func (f *Forecaster) DetectMonthlyPattern(points []types.WorkloadDataPoint) (*MonthlyPattern, error) {
	if len(points) < minMonthlyPoints {
		return nil, fmt.Errorf("%w: monthly pattern needs at least %d points, got %d",
			types.ErrInsufficientData, minMonthlyPoints, len(points))
	}

	sums := make(map[time.Month]float64)
	counts := make(map[time.Month]int)
	total := 0.0
	for _, p := range points {
		sums[p.Month()] += float64(p.TaskCount)
		counts[p.Month()]++
		total += float64(p.TaskCount)
	}

	means := make(map[time.Month]float64, len(sums))
	for month, sum := range sums {
		means[month] = sum / float64(counts[month])
	}

	return &MonthlyPattern{
		MonthMeans:  means,
		OverallMean: total / float64(len(points)),
		Confidence:  math.Min(1, float64(len(means))/12),
	}, nil
}

// sortedByTime returns the points ordered by ascending timestamp without
// touching the caller's slice.
func sortedByTime(points []types.WorkloadDataPoint) []types.WorkloadDataPoint {
	out := make([]types.WorkloadDataPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}

func meanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
