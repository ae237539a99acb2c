package services

import (
	"errors"
	"math"
	"testing"
)

func TestComputeSavings(t *testing.T) {
	report, err := ComputeSavings(100, 60, 4.0, 25.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.BaselineCost != 16.0 {
		t.Errorf("baseline cost = %v, want 16", report.BaselineCost)
	}
	if report.OptimizedCost != 9.6 {
		t.Errorf("optimized cost = %v, want 9.6", report.OptimizedCost)
	}
	if report.MilesSaved != 40 {
		t.Errorf("miles saved = %v, want 40", report.MilesSaved)
	}
	if report.PercentSaved != 40 {
		t.Errorf("percent saved = %v, want 40", report.PercentSaved)
	}
	if math.Abs(report.CostSaved-6.4) > 1e-9 {
		t.Errorf("cost saved = %v, want 6.4", report.CostSaved)
	}
}

func TestComputeSavingsLinearInFuelPrice(t *testing.T) {
	base, err := ComputeSavings(123.4, 87.6, 3.5, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doubled, err := ComputeSavings(123.4, 87.6, 7.0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(doubled.BaselineCost-2*base.BaselineCost) > 1e-9 {
		t.Errorf("baseline cost not linear: %v vs %v", doubled.BaselineCost, base.BaselineCost)
	}
	if math.Abs(doubled.OptimizedCost-2*base.OptimizedCost) > 1e-9 {
		t.Errorf("optimized cost not linear: %v vs %v", doubled.OptimizedCost, base.OptimizedCost)
	}
	if math.Abs(doubled.CostSaved-2*base.CostSaved) > 1e-9 {
		t.Errorf("cost saved not linear: %v vs %v", doubled.CostSaved, base.CostSaved)
	}
}

func TestComputeSavingsNegativeDeltaReportedAsIs(t *testing.T) {
	report, err := ComputeSavings(50, 80, 4.0, 25.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.MilesSaved != -30 {
		t.Errorf("miles saved = %v, want -30", report.MilesSaved)
	}
	if report.PercentSaved != -60 {
		t.Errorf("percent saved = %v, want -60", report.PercentSaved)
	}
	if report.CostSaved >= 0 {
		t.Errorf("cost saved = %v, want negative", report.CostSaved)
	}
}

func TestComputeSavingsZeroBaseline(t *testing.T) {
	report, err := ComputeSavings(0, 0, 4.0, 25.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.PercentSaved != 0 {
		t.Errorf("percent saved = %v, want 0 for zero baseline", report.PercentSaved)
	}
}

func TestComputeSavingsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name           string
		fuelPrice, mpg float64
	}{
		{"zero fuel price", 0, 25},
		{"negative fuel price", -1, 25},
		{"NaN fuel price", math.NaN(), 25},
		{"zero mpg", 4, 0},
		{"negative mpg", 4, -5},
		{"NaN mpg", 4, math.NaN()},
	}

	for _, c := range cases {
		if _, err := ComputeSavings(100, 60, c.fuelPrice, c.mpg); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: err = %v, want ErrInvalidConfiguration", c.name, err)
		}
	}
}
