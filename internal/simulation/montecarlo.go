package simulation

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// PathSimulator generates independent capital trajectories under the given
// cash-flow schedule and return distribution.
type PathSimulator struct {
	NumScenarios int
	Seed         int64

	// MaxParallel bounds the number of scenarios simulated concurrently.
	// Zero means one per CPU. The value never affects the results; scenario
	// s always draws from the sub-stream derived from (Seed, s).
	MaxParallel int

	Logger Logger
}

// NewPathSimulator creates a simulator. A zero seed is replaced by an
// entropy-based one so that production runs differ while seeded runs stay
// reproducible.
func NewPathSimulator(numScenarios int, seed int64) *PathSimulator {
	if seed == 0 {
		seed = seedFunc()
	}
	return &PathSimulator{
		NumScenarios: numScenarios,
		Seed:         seed,
		Logger:       NopLogger{},
	}
}

// SimulatePaths runs every scenario and records the year-end capital into
// one row per scenario. For each year the capital grows by a return drawn
// from Normal(model.Mean, model.StdDev), receives the scheduled contribution,
// pays the scheduled withdrawal and is clamped at zero. The clamp is applied
// every year: a path that hits the floor stays at zero until a later
// contribution re-injects capital, it never recovers from a negative base.
func (ps *PathSimulator) SimulatePaths(initialCapital float64, flows domain.AnnualCashFlows, model domain.ReturnModel) domain.TrajectoryMatrix {
	totalYears := flows.TotalYears()
	matrix := make(domain.TrajectoryMatrix, ps.NumScenarios)

	limit := ps.MaxParallel
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for s := 0; s < ps.NumScenarios; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			matrix[s] = ps.simulateScenario(s, initialCapital, flows, model, totalYears)
		}(s)
	}
	wg.Wait()

	ps.Logger.Debugf("simulated %d scenarios over %d years", ps.NumScenarios, totalYears)
	return matrix
}

// simulateScenario walks a single path over the full horizon using the
// scenario's own random sub-stream.
func (ps *PathSimulator) simulateScenario(s int, capital float64, flows domain.AnnualCashFlows, model domain.ReturnModel, totalYears int) []float64 {
	rng := rand.New(rand.NewSource(subSeed(ps.Seed, s)))
	path := make([]float64, totalYears)

	for t := 0; t < totalYears; t++ {
		r := rng.NormFloat64()*model.StdDev + model.Mean
		capital = capital*(1+r) + flows.ContributionAt(t) - flows.WithdrawalAt(t)
		if capital < 0 {
			capital = 0
		}
		path[t] = capital
	}
	return path
}
