package simulation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

func testParameters() *domain.Parameters {
	return &domain.Parameters{
		InitialCapital: decimal.NewFromInt(10000),
		Contribution: domain.ContributionRamp{
			MonthlyStart: decimal.NewFromInt(300),
			MonthlyEnd:   decimal.NewFromInt(800),
			Years:        10,
		},
		WithdrawalPhases: []domain.WithdrawalPhase{
			{Years: 5, Start: decimal.NewFromInt(2000), End: decimal.NewFromInt(2000)},
		},
		Returns:       domain.ReturnModel{Mean: 0.07, StdDev: 0.15},
		InflationRate: 0.02,
		NumScenarios:  200,
		Percentiles:   []int{10, 50, 90},
		Seed:          42,
	}
}

func TestEngineRunValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Parameters)
		wantErr error
	}{
		{
			name:    "no accumulation years",
			mutate:  func(p *domain.Parameters) { p.Contribution.Years = 0 },
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name:    "negative contribution",
			mutate:  func(p *domain.Parameters) { p.Contribution.MonthlyStart = decimal.NewFromInt(-1) },
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name:    "negative inflation",
			mutate:  func(p *domain.Parameters) { p.InflationRate = -0.01 },
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name:    "negative phase length",
			mutate:  func(p *domain.Parameters) { p.WithdrawalPhases[0].Years = -1 },
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name:    "negative volatility",
			mutate:  func(p *domain.Parameters) { p.Returns.StdDev = -0.1 },
			wantErr: domain.ErrInvalidDistribution,
		},
		{
			name:    "no scenarios",
			mutate:  func(p *domain.Parameters) { p.NumScenarios = 0 },
			wantErr: domain.ErrEmptyResultSet,
		},
		{
			name:    "no percentiles",
			mutate:  func(p *domain.Parameters) { p.Percentiles = nil },
			wantErr: domain.ErrInvalidPercentileRequest,
		},
		{
			name:    "percentile above 100",
			mutate:  func(p *domain.Parameters) { p.Percentiles = []int{50, 150} },
			wantErr: domain.ErrInvalidPercentileRequest,
		},
	}

	engine := NewEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := testParameters()
			tc.mutate(params)

			_, err := engine.Run(params)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEngineRun(t *testing.T) {
	engine := NewEngine()
	params := testParameters()

	result, err := engine.Run(params)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalYears != 15 {
		t.Errorf("TotalYears = %d, want 15", result.TotalYears)
	}
	if result.NumScenarios != 200 {
		t.Errorf("NumScenarios = %d, want 200", result.NumScenarios)
	}
	if result.Seed != 42 {
		t.Errorf("Seed = %d, want the requested 42", result.Seed)
	}
	if len(result.Curves) != 3 {
		t.Fatalf("expected 3 curves, got %d", len(result.Curves))
	}
	for _, curve := range result.Curves {
		if len(curve.Values) != 15 {
			t.Errorf("P%d has %d values, want 15", curve.Percentile, len(curve.Values))
		}
		if _, ok := result.ZeroCrossings[curve.Percentile]; !ok {
			t.Errorf("missing zero-crossing entry for P%d", curve.Percentile)
		}
	}
	if result.Trajectories.Scenarios() != 200 {
		t.Errorf("kept %d trajectories, want 200", result.Trajectories.Scenarios())
	}
}

func TestEngineRunReproducible(t *testing.T) {
	engine := NewEngine()

	a, err := engine.Run(testParameters())
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.Run(testParameters())
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Curves {
		for y := range a.Curves[i].Values {
			if a.Curves[i].Values[y] != b.Curves[i].Values[y] {
				t.Fatalf("P%d year %d differs between runs: %v vs %v",
					a.Curves[i].Percentile, y, a.Curves[i].Values[y], b.Curves[i].Values[y])
			}
		}
	}
}

func TestEngineRunDropsEmptyPhases(t *testing.T) {
	engine := NewEngine()
	params := testParameters()
	params.WithdrawalPhases = []domain.WithdrawalPhase{
		{Years: 0, Start: decimal.NewFromInt(9999), End: decimal.NewFromInt(9999)},
		{Years: 5, Start: decimal.NewFromInt(2000), End: decimal.NewFromInt(2000)},
		{Years: 0},
	}

	result, err := engine.Run(params)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalYears != 15 {
		t.Errorf("TotalYears = %d, want 15 with zero-length phases dropped", result.TotalYears)
	}
	if len(result.Flows.Withdrawals) != 5 {
		t.Errorf("withdrawal years = %d, want 5", len(result.Flows.Withdrawals))
	}
}

func TestEngineRunEntropySeedEchoed(t *testing.T) {
	SetSeedFunc(func() int64 { return 31337 })
	defer SetSeedFunc(nil)

	engine := NewEngine()
	params := testParameters()
	params.Seed = 0

	result, err := engine.Run(params)
	if err != nil {
		t.Fatal(err)
	}
	if result.Seed != 31337 {
		t.Errorf("Seed = %d, want the drawn 31337", result.Seed)
	}
}
