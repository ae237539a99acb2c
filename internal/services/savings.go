package services

import (
	"fleet-savings-service/internal/domain"
	"fmt"
	"math"
)

// ComputeSavings derives the baseline-vs-optimized cost comparison from the
// two distance totals and the fuel economics.
//
// Cost model: distance / mpg * fuel price. Deltas are reported as-is, even
// when negative (the baseline can beat the heuristic); percent saved is zero
// when the baseline distance is zero.
func ComputeSavings(baselineMiles, optimizedMiles, fuelPrice, mpg float64) (domain.SavingsReport, error) {
	if math.IsNaN(fuelPrice) || fuelPrice <= 0 {
		return domain.SavingsReport{}, fmt.Errorf("compute savings: %w: fuel price must be positive, got %v", ErrInvalidConfiguration, fuelPrice)
	}
	if math.IsNaN(mpg) || mpg <= 0 {
		return domain.SavingsReport{}, fmt.Errorf("compute savings: %w: avg mpg must be positive, got %v", ErrInvalidConfiguration, mpg)
	}

	baselineCost := baselineMiles / mpg * fuelPrice
	optimizedCost := optimizedMiles / mpg * fuelPrice

	milesSaved := baselineMiles - optimizedMiles
	percentSaved := 0.0
	if baselineMiles > 0 {
		percentSaved = milesSaved / baselineMiles * 100
	}

	return domain.SavingsReport{
		BaselineMiles:      baselineMiles,
		OptimizedMiles:     optimizedMiles,
		MilesSaved:         milesSaved,
		PercentSaved:       percentSaved,
		FuelPricePerGallon: fuelPrice,
		AvgMPG:             mpg,
		BaselineCost:       baselineCost,
		OptimizedCost:      optimizedCost,
		CostSaved:          baselineCost - optimizedCost,
	}, nil
}
