package services

import (
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/geo"
	"fmt"
	"math"
)

// AssignRoutes partitions stops across driverCount drivers using a greedy
// nearest-assignment heuristic and returns one RoutePlan per driver.
//
// Each iteration selects the globally closest (driver, stop) pair over the
// current driver positions and appends that stop to that driver's route.
// The algorithm does not attempt global route optimization (e.g., VRP
// solvers); the design prioritizes determinism and simplicity over
// optimality.
//
// Driver positions start at the depot. Without a depot, driver i is seeded
// with stop i in input order and drivers beyond the stop count stay empty.
// Ties break to the lowest driver index, then to stop input order, so
// identical inputs always yield identical routes.
func AssignRoutes(stops []domain.Stop, driverCount int, depot *domain.Coordinate) ([]domain.RoutePlan, error) {
	if driverCount < 1 {
		return nil, fmt.Errorf("assign routes: %w: driver count must be at least 1, got %d", ErrInvalidConfiguration, driverCount)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("assign routes: %w: no stops to assign", ErrInvalidConfiguration)
	}

	remaining := make([]domain.Stop, len(stops))
	copy(remaining, stops)

	drivers := make([]*domain.Driver, 0, driverCount)
	for i := 0; i < driverCount; i++ {
		if depot != nil {
			drivers = append(drivers, domain.NewDriver(i+1, *depot))
			continue
		}

		d := domain.NewDriver(i+1, domain.Coordinate{})
		if len(remaining) > 0 {
			seed := remaining[0]
			remaining = remaining[1:]
			d.Visit(seed)
		}
		drivers = append(drivers, d)
	}

	for len(remaining) > 0 {
		bestDriver := -1
		bestStop := -1
		minDistance := math.MaxFloat64

		// Pure selection over the current snapshot: scan drivers in index
		// order and stops in input order with a strict comparison, so the
		// first minimal pair wins ties.
		for di, d := range drivers {
			if depot == nil && len(d.Stops) == 0 {
				continue
			}
			for si, s := range remaining {
				if dist := geo.Distance(d.Position, s.Coord); dist < minDistance {
					minDistance = dist
					bestDriver = di
					bestStop = si
				}
			}
		}

		if bestDriver < 0 {
			return nil, fmt.Errorf("assign routes: failed to select next stop with %d remaining", len(remaining))
		}

		drivers[bestDriver].Visit(remaining[bestStop])
		remaining = append(remaining[:bestStop], remaining[bestStop+1:]...)
	}

	plans := make([]domain.RoutePlan, 0, len(drivers))
	for _, d := range drivers {
		plans = append(plans, buildPlan(d, depot))
	}

	return plans, nil
}

// buildPlan recomputes per-leg distances for a driver's visitation order.
// The depot leg, when modeled, is part of the first stop's leg distance.
func buildPlan(d *domain.Driver, depot *domain.Coordinate) domain.RoutePlan {
	plan := domain.RoutePlan{
		DriverID: d.DriverID,
		Stops:    make([]domain.RouteStop, 0, len(d.Stops)),
	}
	if len(d.Stops) == 0 {
		return plan
	}

	current := d.Stops[0].Coord
	if depot != nil {
		current = *depot
	}

	total := 0.0
	for _, s := range d.Stops {
		leg := geo.Distance(current, s.Coord)
		total += leg
		plan.Stops = append(plan.Stops, domain.RouteStop{
			Stop:            s,
			LegMiles:        leg,
			CumulativeMiles: total,
		})
		current = s.Coord
	}
	plan.TotalMiles = total

	return plan
}

// TotalMiles sums the route totals of an optimized plan set.
func TotalMiles(plans []domain.RoutePlan) float64 {
	total := 0.0
	for _, p := range plans {
		total += p.TotalMiles
	}
	return total
}
