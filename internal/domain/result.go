package domain

// AnnualCashFlows holds the nominal annual contribution and withdrawal
// sequences produced by the schedule builder, aligned to a single year index
// running from 0 to TotalYears()-1. Contributions cover years
// [0, YearsBuild); withdrawals begin at year YearsBuild, the first year
// after accumulation ends.
type AnnualCashFlows struct {
	Contributions []float64 `json:"annualContributions"`
	Withdrawals   []float64 `json:"annualWithdrawals"`
	YearsBuild    int       `json:"yearsBuild"`
}

// TotalYears is the combined simulation horizon.
func (f AnnualCashFlows) TotalYears() int {
	return f.YearsBuild + len(f.Withdrawals)
}

// ContributionAt returns the scheduled contribution for a year index, zero
// outside the accumulation phase.
func (f AnnualCashFlows) ContributionAt(year int) float64 {
	if year < 0 || year >= len(f.Contributions) {
		return 0
	}
	return f.Contributions[year]
}

// WithdrawalAt returns the scheduled withdrawal for a year index, zero
// during accumulation and beyond the last phase.
func (f AnnualCashFlows) WithdrawalAt(year int) float64 {
	i := year - f.YearsBuild
	if i < 0 || i >= len(f.Withdrawals) {
		return 0
	}
	return f.Withdrawals[i]
}

// TrajectoryMatrix holds one simulated capital path per row and one year per
// column. Values are nominal and floored at zero. The matrix is written once
// by the path simulator and read-only afterwards.
type TrajectoryMatrix [][]float64

// Scenarios returns the number of simulated paths.
func (m TrajectoryMatrix) Scenarios() int { return len(m) }

// Years returns the horizon length, zero for an empty matrix.
func (m TrajectoryMatrix) Years() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// PercentileCurve is the per-year p-th percentile of capital across all
// scenarios.
type PercentileCurve struct {
	Percentile int       `json:"percentile"`
	Values     []float64 `json:"values"`
}

// SimulationResult is everything a presentation surface needs: the raw
// trajectories, the percentile reduction, the first zero year per curve and
// the cash-flow schedules that produced them.
type SimulationResult struct {
	// Trajectories is the full scenario matrix. It is excluded from JSON
	// encodings; at production scenario counts it dwarfs the curves that
	// consumers actually chart.
	Trajectories TrajectoryMatrix `json:"-"`

	Curves []PercentileCurve `json:"curves"`

	// ZeroCrossings maps each percentile to the 0-based index of the first
	// year its curve is at or below zero, nil when capital never runs out
	// within the horizon.
	ZeroCrossings map[int]*int `json:"zeroCrossings"`

	Flows        AnnualCashFlows `json:"flows"`
	TotalYears   int             `json:"totalYears"`
	NumScenarios int             `json:"numScenarios"`

	// Seed is the master seed actually used, echoed so any run can be
	// reproduced exactly.
	Seed int64 `json:"seed"`
}

// CurveValueAt returns the value of the curve for percentile p at a year
// index, with ok reporting whether that curve and year exist.
func (r *SimulationResult) CurveValueAt(percentile, year int) (float64, bool) {
	for _, c := range r.Curves {
		if c.Percentile == percentile {
			if year < 0 || year >= len(c.Values) {
				return 0, false
			}
			return c.Values[year], true
		}
	}
	return 0, false
}
