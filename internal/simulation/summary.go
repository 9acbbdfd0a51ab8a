package simulation

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// Summarize reduces the trajectory matrix to one percentile curve per
// requested percentile and locates each curve's first zero year. Percentiles
// are deduplicated and sorted before use; the returned curves are in
// ascending percentile order.
func Summarize(matrix domain.TrajectoryMatrix, percentiles []int) ([]domain.PercentileCurve, map[int]*int, error) {
	if matrix.Scenarios() == 0 || matrix.Years() == 0 {
		return nil, nil, fmt.Errorf("%w: trajectory matrix is empty", domain.ErrEmptyResultSet)
	}
	if len(percentiles) == 0 {
		return nil, nil, fmt.Errorf("%w: no percentiles requested", domain.ErrInvalidPercentileRequest)
	}
	for _, p := range percentiles {
		if p < 0 || p > 100 {
			return nil, nil, fmt.Errorf("%w: percentile %d outside [0,100]", domain.ErrInvalidPercentileRequest, p)
		}
	}
	normalized := domain.NormalizePercentiles(percentiles)

	years := matrix.Years()
	curves := make([]domain.PercentileCurve, len(normalized))
	for i, p := range normalized {
		curves[i] = domain.PercentileCurve{Percentile: p, Values: make([]float64, years)}
	}

	// Year columns are independent; reduce them on bounded goroutines with
	// a per-goroutine sort buffer.
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for t := 0; t < years; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			column := make([]float64, matrix.Scenarios())
			for s := range matrix {
				column[s] = matrix[s][t]
			}
			sort.Float64s(column)
			for i, p := range normalized {
				curves[i].Values[t] = percentileOf(column, p)
			}
		}(t)
	}
	wg.Wait()

	crossings := make(map[int]*int, len(curves))
	for _, curve := range curves {
		crossings[curve.Percentile] = firstZeroYear(curve.Values)
	}
	return curves, crossings, nil
}

// percentileOf computes the p-th percentile of an ascending-sorted slice
// using linear interpolation between order statistics.
func percentileOf(sorted []float64, p int) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := float64(p) / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// firstZeroYear returns the 0-based index of the first non-positive value,
// nil when capital never reaches zero within the horizon. The raw index is
// reported, not index plus one.
func firstZeroYear(values []float64) *int {
	for t, v := range values {
		if v <= 0 {
			year := t
			return &year
		}
	}
	return nil
}
