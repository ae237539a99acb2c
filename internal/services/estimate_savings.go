package services

import (
	"context"
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/ports"
	"fmt"
	"strings"
)

type EstimateSavingsRequest struct {
	// Delivery addresses for this run. When empty, the saved address book is
	// used instead.
	Addresses []string
	// Optional fixed start location for every driver.
	DepotAddress string

	DriverCount        int
	FuelPricePerGallon float64
	AvgMPG             float64
}

// An address excluded from the run because it could not be geocoded.
type FailedAddress struct {
	Address string
	Reason  string
}

// Complete outcome of one savings run: the comparison report, the per-driver
// routes behind the optimized figure, and the diagnostics for any addresses
// that were dropped. Discarded after the caller consumes it; nothing is
// shared between runs.
type RunResult struct {
	Report     domain.SavingsReport
	Routes     []domain.RoutePlan
	Resolved   int
	Unresolved []FailedAddress
}

// EstimateSavings runs the full pipeline: resolve addresses, compute the
// baseline tour, build the greedy multi-driver assignment, and derive the
// savings report.
//
// Delivery addresses that cannot be geocoded (unresolvable, or a transport
// failure once retries are spent) are excluded and reported in
// RunResult.Unresolved rather than failing the run; a depot that cannot be
// geocoded is fatal. When every delivery address fails to resolve the run fails with
// ErrInvalidConfiguration, and the returned RunResult still carries the full
// diagnostics list.
func EstimateSavings(
	ctx context.Context,
	req EstimateSavingsRequest,
	repo ports.AddressRepository,
	geocoder ports.Geocoder,
) (*RunResult, error) {
	if req.DriverCount < 1 {
		return nil, fmt.Errorf("estimate savings: %w: driver count must be at least 1, got %d", ErrInvalidConfiguration, req.DriverCount)
	}
	if req.FuelPricePerGallon <= 0 {
		return nil, fmt.Errorf("estimate savings: %w: fuel price must be positive, got %v", ErrInvalidConfiguration, req.FuelPricePerGallon)
	}
	if req.AvgMPG <= 0 {
		return nil, fmt.Errorf("estimate savings: %w: avg mpg must be positive, got %v", ErrInvalidConfiguration, req.AvgMPG)
	}

	addresses, err := gatherAddresses(ctx, req, repo)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, fmt.Errorf("estimate savings: %w: no delivery addresses provided", ErrInvalidConfiguration)
	}

	var depot *domain.Coordinate
	if d := strings.TrimSpace(req.DepotAddress); d != "" {
		coord, err := geocoder.Geocode(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("estimate savings: geocode depot %q: %w", d, err)
		}
		depot = &coord
	}

	stops, unresolved, err := resolveStops(ctx, addresses, geocoder)
	if err != nil {
		return nil, fmt.Errorf("estimate savings: %w", err)
	}

	result := &RunResult{
		Resolved:   len(stops),
		Unresolved: unresolved,
	}

	if len(stops) == 0 {
		return result, fmt.Errorf("estimate savings: %w: none of the %d delivery addresses could be resolved", ErrInvalidConfiguration, len(addresses))
	}

	baseline := BaselineDistance(depot, stops)

	plans, err := AssignRoutes(stops, req.DriverCount, depot)
	if err != nil {
		return nil, fmt.Errorf("estimate savings: %w", err)
	}
	result.Routes = plans

	report, err := ComputeSavings(baseline, TotalMiles(plans), req.FuelPricePerGallon, req.AvgMPG)
	if err != nil {
		return nil, fmt.Errorf("estimate savings: %w", err)
	}
	result.Report = report

	return result, nil
}

// gatherAddresses prefers request addresses and falls back to the saved
// address book. Blank entries are dropped.
func gatherAddresses(ctx context.Context, req EstimateSavingsRequest, repo ports.AddressRepository) ([]string, error) {
	raw := req.Addresses
	if len(raw) == 0 && repo != nil {
		saved, err := repo.ListAddresses(ctx)
		if err != nil {
			return nil, fmt.Errorf("estimate savings: list saved addresses: %w", err)
		}
		raw = make([]string, 0, len(saved))
		for _, s := range saved {
			raw = append(raw, s.Address)
		}
	}

	addresses := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, a)
		}
	}
	return addresses, nil
}

// resolveStops geocodes every address, preserving input order. Any failure on
// a single address, unresolvable or a transport error once the adapter's
// retries are spent, turns into a diagnostic and the remaining addresses
// still resolve. Only a cancelled context aborts the run.
func resolveStops(
	ctx context.Context,
	addresses []string,
	geocoder ports.Geocoder,
) ([]domain.Stop, []FailedAddress, error) {
	stops := make([]domain.Stop, 0, len(addresses))
	unresolved := make([]FailedAddress, 0)

	// Prefer batched geocoding when supported to reduce external API calls.
	// A batch-level failure falls through to per-address lookups so one bad
	// address cannot take the whole run down.
	if batch, ok := geocoder.(ports.BatchGeocoder); ok {
		if coords, err := batch.GeocodeMany(ctx, addresses); err == nil {
			for _, a := range addresses {
				coord, ok := coords[a]
				if !ok {
					unresolved = append(unresolved, FailedAddress{Address: a, Reason: ports.ErrUnresolvableAddress.Error()})
					continue
				}
				stops = append(stops, domain.Stop{Address: a, Coord: coord})
			}
			return stops, unresolved, nil
		} else if ctx.Err() != nil {
			return nil, nil, fmt.Errorf("geocode addresses: %w", err)
		}
	}

	for _, a := range addresses {
		coord, err := geocoder.Geocode(ctx, a)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, fmt.Errorf("geocode %q: %w", a, err)
			}
			unresolved = append(unresolved, FailedAddress{Address: a, Reason: err.Error()})
			continue
		}
		stops = append(stops, domain.Stop{Address: a, Coord: coord})
	}

	return stops, unresolved, nil
}
