package geocode

import (
	"context"
	"fleet-savings-service/internal/domain"
)

// Cache is a persistent address -> coordinate cache consulted before the
// external geocoding service. Keys are normalized addresses.
type Cache interface {
	// Fetch cached coordinates for the given addresses. Addresses with no
	// cached entry are simply absent from the result.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinate, error)
	// Store address -> coordinate mappings.
	PutMany(ctx context.Context, coords map[string]domain.Coordinate) error
}
