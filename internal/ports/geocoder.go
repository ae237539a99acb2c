package ports

import (
	"context"
	"errors"
	"fleet-savings-service/internal/domain"
)

// Returned (wrapped) when an address cannot be resolved to a coordinate.
// Unresolvable addresses are recoverable per-stop: the caller excludes them
// from the run and reports them, it does not abort the batch.
var ErrUnresolvableAddress = errors.New("unresolvable address")

// Contract for resolving a free-form address to a geographic coordinate.
type Geocoder interface {
	// Resolve one address. Errors matching ErrUnresolvableAddress mean the
	// address itself is bad; any other error is a transport failure.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}

// Optional extension of Geocoder that supports batched lookups.
type BatchGeocoder interface {
	Geocoder
	// Resolve many addresses at once. Addresses absent from the returned map
	// were unresolvable; only transport failures produce an error.
	GeocodeMany(ctx context.Context, addresses []string) (map[string]domain.Coordinate, error)
}
