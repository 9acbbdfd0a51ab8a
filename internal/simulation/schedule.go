// Package simulation implements the projection core: schedule construction,
// the Monte Carlo path simulator and the percentile summary engine, wired
// together by Engine.
package simulation

import (
	"math"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// BuildSchedule converts the real-terms monthly contribution ramp and the
// withdrawal phases into nominal annual cash-flow sequences.
//
// Monthly amounts are interpolated linearly with inclusive endpoints, then
// converted to nominal currency by compounding inflation once per completed
// year: month m of accumulation is scaled by (1+inflation)^floor(m/12).
// Withdrawal phases keep their own month counter but continue the
// compounding from the end of accumulation, so phase month m is scaled by
// (1+inflation)^(yearsBuild + floor(m/12)). Each block of 12 nominal months
// is summed into one annual figure.
//
// Callers pass only phases with Years >= 1; zero-length phases are filtered
// upstream (Parameters.ActivePhases).
func BuildSchedule(ramp domain.ContributionRamp, phases []domain.WithdrawalPhase, inflationRate float64) domain.AnnualCashFlows {
	yearsBuild := ramp.Years
	contributions := annualize(
		monthlyRamp(ramp.MonthlyStart.InexactFloat64(), ramp.MonthlyEnd.InexactFloat64(), yearsBuild*12),
		inflationRate, 0)

	var withdrawals []float64
	for _, phase := range phases {
		annual := annualize(
			monthlyRamp(phase.Start.InexactFloat64(), phase.End.InexactFloat64(), phase.Years*12),
			inflationRate, yearsBuild)
		withdrawals = append(withdrawals, annual...)
	}

	return domain.AnnualCashFlows{
		Contributions: contributions,
		Withdrawals:   withdrawals,
		YearsBuild:    yearsBuild,
	}
}

// monthlyRamp interpolates linearly from start to end over months points,
// endpoints inclusive. A single-point ramp is just the start value.
func monthlyRamp(start, end float64, months int) []float64 {
	values := make([]float64, months)
	if months == 1 {
		values[0] = start
		return values
	}
	for m := range values {
		values[m] = start + (end-start)*float64(m)/float64(months-1)
	}
	return values
}

// annualize converts real monthly amounts to nominal currency and sums each
// block of 12 months into one annual figure. yearOffset shifts the inflation
// exponent; it is zero during accumulation and yearsBuild for withdrawal
// phases.
func annualize(monthly []float64, inflationRate float64, yearOffset int) []float64 {
	years := len(monthly) / 12
	annual := make([]float64, years)
	for m, v := range monthly {
		factor := math.Pow(1+inflationRate, float64(yearOffset+m/12))
		annual[m/12] += v * factor
	}
	return annual
}
