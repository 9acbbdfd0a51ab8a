package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParameters() *Parameters {
	return &Parameters{
		InitialCapital: decimal.NewFromInt(10000),
		Contribution: ContributionRamp{
			MonthlyStart: decimal.NewFromInt(300),
			MonthlyEnd:   decimal.NewFromInt(800),
			Years:        30,
		},
		WithdrawalPhases: []WithdrawalPhase{
			{Years: 10, Start: decimal.NewFromInt(3000), End: decimal.NewFromInt(3000)},
		},
		Returns:       ReturnModel{Mean: 0.07, StdDev: 0.15},
		InflationRate: 0.02,
		NumScenarios:  100,
		Percentiles:   []int{10, 50, 90},
	}
}

func TestParametersValidate(t *testing.T) {
	require.NoError(t, validParameters().Validate())

	cases := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr error
	}{
		{"zero accumulation years", func(p *Parameters) { p.Contribution.Years = 0 }, ErrInvalidSchedule},
		{"negative monthly end", func(p *Parameters) { p.Contribution.MonthlyEnd = decimal.NewFromInt(-5) }, ErrInvalidSchedule},
		{"negative initial capital", func(p *Parameters) { p.InitialCapital = decimal.NewFromInt(-1) }, ErrInvalidSchedule},
		{"negative inflation", func(p *Parameters) { p.InflationRate = -0.02 }, ErrInvalidSchedule},
		{"negative phase years", func(p *Parameters) { p.WithdrawalPhases[0].Years = -3 }, ErrInvalidSchedule},
		{"negative phase amount", func(p *Parameters) { p.WithdrawalPhases[0].End = decimal.NewFromInt(-100) }, ErrInvalidSchedule},
		{"negative stddev", func(p *Parameters) { p.Returns.StdDev = -0.15 }, ErrInvalidDistribution},
		{"zero scenarios", func(p *Parameters) { p.NumScenarios = 0 }, ErrEmptyResultSet},
		{"empty percentiles", func(p *Parameters) { p.Percentiles = nil }, ErrInvalidPercentileRequest},
		{"negative percentile", func(p *Parameters) { p.Percentiles = []int{-1} }, ErrInvalidPercentileRequest},
		{"percentile above 100", func(p *Parameters) { p.Percentiles = []int{101} }, ErrInvalidPercentileRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParameters()
			tc.mutate(p)
			assert.ErrorIs(t, p.Validate(), tc.wantErr)
		})
	}
}

func TestParametersValidateAllowsEdgeValues(t *testing.T) {
	p := validParameters()
	p.InflationRate = 0
	p.Returns.StdDev = 0
	p.Returns.Mean = -0.5
	p.InitialCapital = decimal.Zero
	p.Percentiles = []int{0, 100}
	assert.NoError(t, p.Validate())
}

func TestActivePhases(t *testing.T) {
	p := validParameters()
	p.WithdrawalPhases = []WithdrawalPhase{
		{Years: 10, Start: decimal.NewFromInt(1000), End: decimal.NewFromInt(1000)},
		{Years: 0, Start: decimal.NewFromInt(9999), End: decimal.NewFromInt(9999)},
		{Years: 5, Start: decimal.NewFromInt(500), End: decimal.NewFromInt(500)},
	}

	phases := p.ActivePhases()
	require.Len(t, phases, 2)
	assert.Equal(t, 10, phases[0].Years)
	assert.Equal(t, 5, phases[1].Years)
}

func TestTotalYears(t *testing.T) {
	p := validParameters()
	assert.Equal(t, 40, p.TotalYears())

	p.WithdrawalPhases = nil
	assert.Equal(t, 30, p.TotalYears())

	p.WithdrawalPhases = []WithdrawalPhase{{Years: 0}, {Years: 7}}
	assert.Equal(t, 37, p.TotalYears())
}

func TestNormalizePercentiles(t *testing.T) {
	assert.Equal(t, []int{10, 50, 90}, NormalizePercentiles([]int{90, 10, 50, 50, 10}))
	assert.Equal(t, []int{50}, NormalizePercentiles([]int{50}))
	assert.Empty(t, NormalizePercentiles(nil))
}
