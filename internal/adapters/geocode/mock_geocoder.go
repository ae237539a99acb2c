package geocode

import (
	"context"
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/ports"
	"fmt"
)

// In-memory geocoder for tests. Addresses absent from the map resolve to
// ErrUnresolvableAddress.
type MockGeocoder struct {
	m map[string]domain.Coordinate
}

func NewMockGeocoder(coords map[string]domain.Coordinate) *MockGeocoder {
	m := make(map[string]domain.Coordinate, len(coords))
	for k, v := range coords {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("mock geocoder: %q: %w", address, ports.ErrUnresolvableAddress)
	}
	return c, nil
}
