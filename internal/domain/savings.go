package domain

// Baseline-vs-optimized comparison figures for one run.
// Derived once from the two distance totals and the user-supplied cost
// parameters; read-only afterwards. Negative deltas are reported as-is when
// the baseline happens to beat the optimized plan.
type SavingsReport struct {
	BaselineMiles  float64
	OptimizedMiles float64
	MilesSaved     float64
	PercentSaved   float64

	FuelPricePerGallon float64
	AvgMPG             float64
	BaselineCost       float64
	OptimizedCost      float64
	CostSaved          float64
}
