// Package config loads and validates simulation parameter files.
package config

import (
	"fmt"
	"os"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a parameter file omits the optional fields. They
// match the original interactive tool's slider defaults.
const (
	DefaultInflationRate = 0.02
	DefaultNumScenarios  = 10000
)

// DefaultPercentiles returns the standard percentile band set.
func DefaultPercentiles() []int {
	return []int{10, 20, 40, 50, 60, 80, 90}
}

// InputParser handles parsing of simulation parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads parameters from a YAML file, applies defaults for
// omitted optional fields and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.Parameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&params)

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return &params, nil
}

// ApplyDefaults fills in the optional fields a parameter file may omit. A
// file cannot request a literal zero inflation rate or scenario count
// through this path; runs that need those construct Parameters directly.
func (ip *InputParser) ApplyDefaults(params *domain.Parameters) {
	if params.InflationRate == 0 {
		params.InflationRate = DefaultInflationRate
	}
	if params.NumScenarios == 0 {
		params.NumScenarios = DefaultNumScenarios
	}
	if len(params.Percentiles) == 0 {
		params.Percentiles = DefaultPercentiles()
	}
}

// CreateExampleParameters returns a complete parameter set matching the
// original tool's defaults: 10k starting capital, a 300 to 800 euro monthly
// ramp over 30 years, three flat 10-year withdrawal phases of 3000 euro per
// month, 7% mean return with 15% volatility, and a retirement milestone at
// year 45 (age 70 for a 25-year-old).
func (ip *InputParser) CreateExampleParameters() *domain.Parameters {
	return &domain.Parameters{
		InitialCapital: decimal.NewFromInt(10000),
		Contribution: domain.ContributionRamp{
			MonthlyStart: decimal.NewFromInt(300),
			MonthlyEnd:   decimal.NewFromInt(800),
			Years:        30,
		},
		WithdrawalPhases: []domain.WithdrawalPhase{
			{Years: 10, Start: decimal.NewFromInt(3000), End: decimal.NewFromInt(3000)},
			{Years: 10, Start: decimal.NewFromInt(3000), End: decimal.NewFromInt(3000)},
			{Years: 10, Start: decimal.NewFromInt(3000), End: decimal.NewFromInt(3000)},
		},
		Returns: domain.ReturnModel{
			Mean:   0.07,
			StdDev: 0.15,
		},
		InflationRate: DefaultInflationRate,
		NumScenarios:  DefaultNumScenarios,
		Percentiles:   DefaultPercentiles(),
		MilestoneYear: 45,
	}
}

// ExampleYAML renders the example parameters as a YAML document suitable as
// a starting point for a parameter file.
func (ip *InputParser) ExampleYAML() ([]byte, error) {
	data, err := yaml.Marshal(ip.CreateExampleParameters())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal example parameters: %w", err)
	}
	return data, nil
}
