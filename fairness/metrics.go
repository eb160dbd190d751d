package fairness

import (
	"math"
	"sort"
)

// BalanceScore rates how close a load vector is to a perfectly even split.
//
// The ideal share is 100/n percent. The score is 100 minus twice the mean
// absolute deviation of each member's share from the ideal, floored at 0.
// A single member or an all-zero vector scores a perfect 100.
//
// Parameters:
//   - loads: Per-member load values
//
// Returns:
//   - float64: Balance score in [0,100]
func BalanceScore(loads []float64) float64 {
	n := len(loads)
	if n <= 1 {
		return 100
	}

	total := 0.0
	for _, load := range loads {
		total += load
	}
	if total == 0 {
		return 100
	}

	ideal := 100.0 / float64(n)
	deviation := 0.0
	for _, load := range loads {
		share := load / total * 100
		deviation += math.Abs(share - ideal)
	}
	deviation /= float64(n)

	return math.Max(0, 100-2*deviation)
}

// GiniCoefficient computes the Gini inequality index of a value vector.
//
// 0 means perfect equality, 1 maximal inequality. Empty and all-zero
// vectors return 0.
//
// Parameters:
//   - values: Per-member load values
//
// Returns:
//   - float64: Gini coefficient in [0,1]
func GiniCoefficient(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return 0
	}

	mean := total / float64(n)
	sumDiff := 0.0
	for _, vi := range values {
		for _, vj := range values {
			sumDiff += math.Abs(vi - vj)
		}
	}

	return sumDiff / (2 * float64(n) * float64(n) * mean)
}

// Round2 rounds a metric to 2 decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MemberShare is one member's slice of the distribution report.
type MemberShare struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId"`

	// Load is the member's absolute load.
	Load float64 `json:"load"`

	// SharePercent is the member's percentage of the total load.
	SharePercent float64 `json:"sharePercent"`

	// Deviation is SharePercent minus the ideal share (positive when the
	// member carries more than their fair slice).
	Deviation float64 `json:"deviation"`
}

// Report is the fairness summary a dashboard renders.
type Report struct {
	// MemberCount is the number of members in the distribution.
	MemberCount int `json:"memberCount"`

	// TotalLoad is the sum of all member loads.
	TotalLoad float64 `json:"totalLoad"`

	// IdealSharePercent is 100/MemberCount.
	IdealSharePercent float64 `json:"idealSharePercent"`

	// Shares lists members ordered by share descending.
	Shares []MemberShare `json:"shares"`

	// Balance is the balance score of the distribution, 2-decimal rounded.
	Balance float64 `json:"balance"`

	// Gini is the Gini coefficient of the distribution, 2-decimal rounded.
	Gini float64 `json:"gini"`
}

// NewReport builds a distribution report from per-member loads.
//
// Members are listed heaviest-share first; ties break on member ID. An empty
// input yields a report with perfect balance and zero Gini.
//
// Parameters:
//   - loads: Load per member ID
//
// Returns:
//   - Report: Fairness summary with display-rounded metrics
func NewReport(loads map[string]float64) Report {
	report := Report{MemberCount: len(loads)}

	values := make([]float64, 0, len(loads))
	for memberID, load := range loads {
		values = append(values, load)
		report.TotalLoad += load
		report.Shares = append(report.Shares, MemberShare{MemberID: memberID, Load: load})
	}

	if report.MemberCount > 0 {
		report.IdealSharePercent = Round2(100.0 / float64(report.MemberCount))
	}

	for i := range report.Shares {
		if report.TotalLoad > 0 {
			report.Shares[i].SharePercent = Round2(report.Shares[i].Load / report.TotalLoad * 100)
		}
		report.Shares[i].Deviation = Round2(report.Shares[i].SharePercent - report.IdealSharePercent)
	}

	sort.Slice(report.Shares, func(i, j int) bool {
		if report.Shares[i].SharePercent != report.Shares[j].SharePercent {
			return report.Shares[i].SharePercent > report.Shares[j].SharePercent
		}
		return report.Shares[i].MemberID < report.Shares[j].MemberID
	})

	report.Balance = Round2(BalanceScore(values))
	report.Gini = Round2(GiniCoefficient(values))

	return report
}
