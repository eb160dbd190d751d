package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/fairhold/fairhold/types"
)

// anomalyWindowDays is the rolling window for anomaly baselines.
const anomalyWindowDays = 7

// daysPerWeek converts day distances to trend weeks.
const daysPerWeek = 7.0

// Prediction is a point forecast for one target date.
type Prediction struct {
	// Date is the predicted day.
	Date time.Time `json:"date"`

	// TaskCount is the predicted task volume, never negative.
	TaskCount int `json:"taskCount"`

	// Confidence is the daily pattern confidence backing the prediction.
	Confidence float64 `json:"confidence"`
}

// AnomalyType distinguishes unusually busy from unusually quiet days.
type AnomalyType string

const (
	// AnomalySpike is a day far above its rolling baseline.
	AnomalySpike AnomalyType = "spike"

	// AnomalyDrop is a day far below its rolling baseline.
	AnomalyDrop AnomalyType = "drop"
)

// Anomaly is one flagged data point.
type Anomaly struct {
	// Date is the anomalous day.
	Date time.Time `json:"date"`

	// TaskCount is the observed volume.
	TaskCount int `json:"taskCount"`

	// ZScore is the distance from the rolling baseline in standard
	// deviations (signed).
	ZScore float64 `json:"zScore"`

	// Type classifies the anomaly.
	Type AnomalyType `json:"type"`

	// Severity ranges 1 (mild) to 10 (extreme).
	Severity int `json:"severity"`
}

// Suggestion is a forward-looking heads-up for a busier-than-usual day.
type Suggestion struct {
	// Date is the day worth pre-assigning for.
	Date time.Time `json:"date"`

	// PredictedCount is the forecast volume for the day.
	PredictedCount int `json:"predictedCount"`

	// ExcessOverMean is how far the forecast sits above the historical mean.
	ExcessOverMean float64 `json:"excessOverMean"`
}

// Predict forecasts task volume for one target date.
//
// The forecast combines the historical mean with three multiplicative
// adjustments: the same-weekday historical ratio, a cosine-shaped periodic
// multiplier from the daily pattern, and the damped trend extrapolation.
// The result is rounded and floored at zero.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//   - target: Date to predict
//
// Returns:
//   - Prediction: Point forecast for the target date
//   - error: types.ErrInsufficientData when the series is too short
func (f *Forecaster) Predict(points []types.WorkloadDataPoint, target time.Time) (Prediction, error) {
	daily, err := f.DetectDailyPattern(points)
	if err != nil {
		return Prediction{}, err
	}

	forecast := daily.OverallMean
	forecast *= weekdayAdjustment(daily, target.Weekday())
	forecast *= patternMultiplier(daily, target.Weekday())

	if trend, err := f.AnalyzeTrend(points); err == nil {
		weeks := float64(types.DaysBetween(trend.Start, target)) / daysPerWeek
		if weeks > 0 {
			forecast *= 1 + (trend.RatePercentPerWeek/100)*weeks*trend.Confidence
		}
	}

	count := int(math.Round(forecast))
	if count < 0 {
		count = 0
	}

	f.logger.Debug("workload predicted",
		"date", target.Format("2006-01-02"), "count", count, "confidence", daily.Confidence)

	return Prediction{Date: target, TaskCount: count, Confidence: daily.Confidence}, nil
}

// weekdayAdjustment is the same-weekday historical mean over the overall mean.
func weekdayAdjustment(daily *DailyPattern, weekday time.Weekday) float64 {
	if daily.OverallMean <= 0 {
		return 1
	}

	return daily.WeekdayMeans[int(weekday)] / daily.OverallMean
}

// patternMultiplier is the cosine-shaped periodic adjustment derived from
// the daily pattern's amplitude and phase, damped by its confidence.
func patternMultiplier(daily *DailyPattern, weekday time.Weekday) float64 {
	if daily.OverallMean <= 0 || daily.Amplitude == 0 {
		return 1
	}

	phase := 2 * math.Pi * float64(int(weekday)-int(daily.PeakWeekday)) / 7
	mult := 1 + daily.Confidence*(daily.Amplitude/daily.OverallMean)*math.Cos(phase)
	if mult < 0 {
		return 0
	}

	return mult
}

// DetectAnomalies flags days far outside their rolling 7-day baseline.
//
// For each point with a full window of predecessors, the rolling mean and
// standard deviation of the preceding 7 days form the baseline; a z-score
// beyond the sensitivity multiplier flags the day as a spike or drop with
// severity min(10, round(2*z)).
//
// Parameters:
//   - points: Daily workload series in any order
//   - sensitivity: Z-score multiplier, 0 to use the configured default
//
// Returns:
//   - []Anomaly: Flagged days in chronological order, empty when none
func (f *Forecaster) DetectAnomalies(points []types.WorkloadDataPoint, sensitivity float64) []Anomaly {
	if sensitivity <= 0 {
		sensitivity = f.sensitivity
	}

	ordered := sortedByTime(points)

	var anomalies []Anomaly
	for i := anomalyWindowDays; i < len(ordered); i++ {
		window := make([]float64, anomalyWindowDays)
		for j := 0; j < anomalyWindowDays; j++ {
			window[j] = float64(ordered[i-anomalyWindowDays+j].TaskCount)
		}

		mean, std := meanStdDev(window)
		if std == 0 {
			// A perfectly flat window flags any deviation at all.
			if float64(ordered[i].TaskCount) == mean {
				continue
			}
			std = 1
		}

		z := (float64(ordered[i].TaskCount) - mean) / std
		if math.Abs(z) <= sensitivity {
			continue
		}

		kind := AnomalySpike
		if z < 0 {
			kind = AnomalyDrop
		}

		anomalies = append(anomalies, Anomaly{
			Date:      ordered[i].Timestamp,
			TaskCount: ordered[i].TaskCount,
			ZScore:    z,
			Type:      kind,
			Severity:  severityFromZ(z),
		})
	}

	return anomalies
}

func severityFromZ(z float64) int {
	severity := int(math.Round(2 * math.Abs(z)))
	if severity > 10 {
		return 10
	}
	if severity < 1 {
		return 1
	}

	return severity
}

// SuggestPreassignments lists upcoming days predicted to be busier than the
// historical mean, so the household can distribute work ahead of the rush.
//
// Parameters:
//   - points: Daily workload series, at least 14 points
//   - from: First day of the horizon (inclusive)
//   - horizonDays: Number of days to look ahead
//
// Returns:
//   - []Suggestion: Busier-than-usual days in chronological order
//   - error: types.ErrInsufficientData when the series is too short
func (f *Forecaster) SuggestPreassignments(points []types.WorkloadDataPoint, from time.Time, horizonDays int) ([]Suggestion, error) {
	daily, err := f.DetectDailyPattern(points)
	if err != nil {
		return nil, err
	}
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: field horizonDays must be > 0, got %d", types.ErrInvalidConfig, horizonDays)
	}

	var suggestions []Suggestion
	for day := 0; day < horizonDays; day++ {
		date := from.AddDate(0, 0, day)

		prediction, err := f.Predict(points, date)
		if err != nil {
			return nil, err
		}

		if excess := float64(prediction.TaskCount) - daily.OverallMean; excess > 0 {
			suggestions = append(suggestions, Suggestion{
				Date:           date,
				PredictedCount: prediction.TaskCount,
				ExcessOverMean: excess,
			})
		}
	}

	return suggestions, nil
}
