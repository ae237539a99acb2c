package services

import (
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/geo"
)

// BaselineDistance returns the total distance of the reference, unoptimized
// plan in miles.
//
// Baseline policy (fixed, the denominator for every savings claim): a single
// driver visits every stop in input order, starting from the depot when one
// is modeled, with no return leg. Zero stops cost zero; a single stop costs
// the depot leg, or zero without a depot.
func BaselineDistance(depot *domain.Coordinate, stops []domain.Stop) float64 {
	if len(stops) == 0 {
		return 0
	}

	current := stops[0].Coord
	if depot != nil {
		current = *depot
	}

	total := 0.0
	for _, s := range stops {
		total += geo.Distance(current, s.Coord)
		current = s.Coord
	}

	return total
}
