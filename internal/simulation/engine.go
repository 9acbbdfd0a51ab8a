package simulation

import (
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// Engine wires the schedule builder, path simulator and summary engine
// behind the module's single entry point.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes one complete simulation: validate the parameters, build the
// nominal cash-flow schedule, simulate all scenarios and reduce them to
// percentile curves with zero crossings. Every precondition failure surfaces
// here before any simulation work starts; no partial results are returned.
func (e *Engine) Run(params *domain.Parameters) (*domain.SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	phases := params.ActivePhases()
	flows := BuildSchedule(params.Contribution, phases, params.InflationRate)
	e.Logger.Debugf("schedule built: %d accumulation years, %d withdrawal years across %d phases",
		flows.YearsBuild, len(flows.Withdrawals), len(phases))

	sim := NewPathSimulator(params.NumScenarios, params.Seed)
	sim.Logger = e.Logger
	matrix := sim.SimulatePaths(params.InitialCapital.InexactFloat64(), flows, params.Returns)

	curves, crossings, err := Summarize(matrix, params.Percentiles)
	if err != nil {
		return nil, err
	}

	e.Logger.Infof("simulation complete: %d scenarios over %d years, seed %d",
		params.NumScenarios, flows.TotalYears(), sim.Seed)

	return &domain.SimulationResult{
		Trajectories:  matrix,
		Curves:        curves,
		ZeroCrossings: crossings,
		Flows:         flows,
		TotalYears:    flows.TotalYears(),
		NumScenarios:  params.NumScenarios,
		Seed:          sim.Seed,
	}, nil
}
