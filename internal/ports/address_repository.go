package ports

import (
	"context"
	"fleet-savings-service/internal/domain"
)

// Port: a boundary for retrieving saved delivery addresses from a data source.
type AddressRepository interface {
	// Retrieve all saved delivery addresses available for routing.
	ListAddresses(ctx context.Context) ([]domain.SavedAddress, error)
}
