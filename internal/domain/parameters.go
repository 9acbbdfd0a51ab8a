// Package domain defines the parameter and result types shared by the
// simulation engine and its delivery surfaces (CLI, HTTP, formatters).
package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ContributionRamp describes the monthly deposits made during the
// accumulation phase. Amounts are in today's purchasing power and ramp
// linearly from MonthlyStart to MonthlyEnd over Years*12 months, endpoints
// inclusive.
type ContributionRamp struct {
	MonthlyStart decimal.Decimal `yaml:"monthlyStart" json:"monthlyStart"`
	MonthlyEnd   decimal.Decimal `yaml:"monthlyEnd" json:"monthlyEnd"`
	Years        int             `yaml:"years" json:"years"`
}

// WithdrawalPhase is one block of the decumulation schedule. Within a phase
// the monthly withdrawal ramps linearly from Start to End, both in today's
// purchasing power. A phase with Years == 0 is dropped before simulation.
type WithdrawalPhase struct {
	Years int             `yaml:"years" json:"years"`
	Start decimal.Decimal `yaml:"start" json:"start"`
	End   decimal.Decimal `yaml:"end" json:"end"`
}

// The yaml package cannot decode scalars into decimal.Decimal, so the money
// fields travel as strings through alias structs.
func (r *ContributionRamp) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		MonthlyStart string `yaml:"monthlyStart"`
		MonthlyEnd   string `yaml:"monthlyEnd"`
		Years        int    `yaml:"years"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	start, err := parseAmount(aux.MonthlyStart)
	if err != nil {
		return fmt.Errorf("invalid monthlyStart: %w", err)
	}
	end, err := parseAmount(aux.MonthlyEnd)
	if err != nil {
		return fmt.Errorf("invalid monthlyEnd: %w", err)
	}
	r.MonthlyStart = start
	r.MonthlyEnd = end
	r.Years = aux.Years
	return nil
}

func (r ContributionRamp) MarshalYAML() (interface{}, error) {
	type alias struct {
		MonthlyStart string `yaml:"monthlyStart"`
		MonthlyEnd   string `yaml:"monthlyEnd"`
		Years        int    `yaml:"years"`
	}
	return alias{r.MonthlyStart.String(), r.MonthlyEnd.String(), r.Years}, nil
}

func (w *WithdrawalPhase) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		Years int    `yaml:"years"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	start, err := parseAmount(aux.Start)
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := parseAmount(aux.End)
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}
	w.Years = aux.Years
	w.Start = start
	w.End = end
	return nil
}

func (w WithdrawalPhase) MarshalYAML() (interface{}, error) {
	type alias struct {
		Years int    `yaml:"years"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	}
	return alias{w.Years, w.Start.String(), w.End.String()}, nil
}

// parseAmount reads a money amount from its YAML string form; an omitted
// field comes through as an empty string and means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ReturnModel parameterizes the annual return distribution: returns are
// drawn i.i.d. from Normal(Mean, StdDev) across years and scenarios.
type ReturnModel struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"stdDev" json:"stdDev"`
}

// Parameters bundles every tunable input of a simulation run. The original
// interactive tool threaded slider state straight into the engine; here all
// inputs travel through this single validated value.
//
// InflationRate, NumScenarios and Percentiles have zero values that are only
// meaningful when constructed programmatically (for example a deliberate
// zero-inflation test run); the config parser treats them as "not set" and
// fills in the defaults.
type Parameters struct {
	InitialCapital   decimal.Decimal   `yaml:"initialCapital" json:"initialCapital"`
	Contribution     ContributionRamp  `yaml:"contribution" json:"contribution"`
	WithdrawalPhases []WithdrawalPhase `yaml:"withdrawalPhases" json:"withdrawalPhases"`
	Returns          ReturnModel       `yaml:"returns" json:"returns"`
	InflationRate    float64           `yaml:"inflationRate" json:"inflationRate"`
	NumScenarios     int               `yaml:"numScenarios" json:"numScenarios"`
	Percentiles      []int             `yaml:"percentiles" json:"percentiles"`

	// Seed makes a run reproducible. Zero means the engine picks an
	// entropy-based seed; the seed actually used is echoed in the result.
	Seed int64 `yaml:"seed" json:"seed"`

	// MilestoneYear marks an extra year of interest on charts and reports
	// (the original used the retirement year). Zero or out-of-horizon
	// values disable the marker.
	MilestoneYear int `yaml:"milestoneYear" json:"milestoneYear"`
}

// parametersAlias mirrors Parameters with the top-level money field as a
// string; the nested types carry their own YAML conversions.
type parametersAlias struct {
	InitialCapital   string            `yaml:"initialCapital"`
	Contribution     ContributionRamp  `yaml:"contribution"`
	WithdrawalPhases []WithdrawalPhase `yaml:"withdrawalPhases"`
	Returns          ReturnModel       `yaml:"returns"`
	InflationRate    float64           `yaml:"inflationRate"`
	NumScenarios     int               `yaml:"numScenarios"`
	Percentiles      []int             `yaml:"percentiles"`
	Seed             int64             `yaml:"seed"`
	MilestoneYear    int               `yaml:"milestoneYear"`
}

func (p *Parameters) UnmarshalYAML(value *yaml.Node) error {
	var aux parametersAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	capital, err := parseAmount(aux.InitialCapital)
	if err != nil {
		return fmt.Errorf("invalid initialCapital: %w", err)
	}
	p.InitialCapital = capital
	p.Contribution = aux.Contribution
	p.WithdrawalPhases = aux.WithdrawalPhases
	p.Returns = aux.Returns
	p.InflationRate = aux.InflationRate
	p.NumScenarios = aux.NumScenarios
	p.Percentiles = aux.Percentiles
	p.Seed = aux.Seed
	p.MilestoneYear = aux.MilestoneYear
	return nil
}

func (p Parameters) MarshalYAML() (interface{}, error) {
	return parametersAlias{
		InitialCapital:   p.InitialCapital.String(),
		Contribution:     p.Contribution,
		WithdrawalPhases: p.WithdrawalPhases,
		Returns:          p.Returns,
		InflationRate:    p.InflationRate,
		NumScenarios:     p.NumScenarios,
		Percentiles:      p.Percentiles,
		Seed:             p.Seed,
		MilestoneYear:    p.MilestoneYear,
	}, nil
}

// Validate checks every precondition the engine relies on. It reports the
// first violation found, wrapped in the matching sentinel from errors.go.
func (p *Parameters) Validate() error {
	if p.Contribution.Years < 1 {
		return fmt.Errorf("%w: accumulation must span at least one year, got %d", ErrInvalidSchedule, p.Contribution.Years)
	}
	if p.Contribution.MonthlyStart.IsNegative() || p.Contribution.MonthlyEnd.IsNegative() {
		return fmt.Errorf("%w: contribution amounts cannot be negative", ErrInvalidSchedule)
	}
	if p.InitialCapital.IsNegative() {
		return fmt.Errorf("%w: initial capital cannot be negative", ErrInvalidSchedule)
	}
	if p.InflationRate < 0 {
		return fmt.Errorf("%w: inflation rate cannot be negative, got %v", ErrInvalidSchedule, p.InflationRate)
	}
	for i, phase := range p.WithdrawalPhases {
		if phase.Years < 0 {
			return fmt.Errorf("%w: withdrawal phase %d has negative length %d", ErrInvalidSchedule, i+1, phase.Years)
		}
		if phase.Start.IsNegative() || phase.End.IsNegative() {
			return fmt.Errorf("%w: withdrawal phase %d has negative amounts", ErrInvalidSchedule, i+1)
		}
	}
	if p.Returns.StdDev < 0 {
		return fmt.Errorf("%w: return standard deviation cannot be negative, got %v", ErrInvalidDistribution, p.Returns.StdDev)
	}
	if p.NumScenarios <= 0 {
		return fmt.Errorf("%w: scenario count must be positive, got %d", ErrEmptyResultSet, p.NumScenarios)
	}
	if len(p.Percentiles) == 0 {
		return fmt.Errorf("%w: no percentiles requested", ErrInvalidPercentileRequest)
	}
	for _, pct := range p.Percentiles {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: percentile %d outside [0,100]", ErrInvalidPercentileRequest, pct)
		}
	}
	return nil
}

// ActivePhases returns the withdrawal phases with zero-length phases
// dropped, preserving order. All returned phases span at least one year.
func (p *Parameters) ActivePhases() []WithdrawalPhase {
	phases := make([]WithdrawalPhase, 0, len(p.WithdrawalPhases))
	for _, phase := range p.WithdrawalPhases {
		if phase.Years > 0 {
			phases = append(phases, phase)
		}
	}
	return phases
}

// TotalYears is the combined horizon: accumulation years plus the summed
// length of the active withdrawal phases.
func (p *Parameters) TotalYears() int {
	total := p.Contribution.Years
	for _, phase := range p.ActivePhases() {
		total += phase.Years
	}
	return total
}

// NormalizedPercentiles returns the requested percentiles sorted ascending
// with duplicates removed.
func (p *Parameters) NormalizedPercentiles() []int {
	return NormalizePercentiles(p.Percentiles)
}

// NormalizePercentiles deduplicates and sorts a percentile list. Range
// checking is Validate's job; this only makes the order deterministic.
func NormalizePercentiles(percentiles []int) []int {
	seen := make(map[int]struct{}, len(percentiles))
	out := make([]int, 0, len(percentiles))
	for _, pct := range percentiles {
		if _, ok := seen[pct]; ok {
			continue
		}
		seen[pct] = struct{}{}
		out = append(out, pct)
	}
	sort.Ints(out)
	return out
}
