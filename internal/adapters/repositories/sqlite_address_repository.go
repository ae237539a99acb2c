package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fleet-savings-service/internal/domain"
	"fmt"
)

// SQLite-backed implementation of the AddressRepository port.
type SqliteAddressRepository struct{ DB *sql.DB }

func NewSqliteAddressRepository(db *sql.DB) *SqliteAddressRepository {
	return &SqliteAddressRepository{DB: db}
}

// Return all saved delivery addresses.
func (s *SqliteAddressRepository) ListAddresses(ctx context.Context) ([]domain.SavedAddress, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite address repository: DB is nil")
	}

	query := `
	SELECT
		address_id,
		address
	FROM saved_addresses
	ORDER BY address_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list addresses: query saved_addresses table: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.SavedAddress, 0, 64)
	for rows.Next() {
		var id int
		var addr string
		if err := rows.Scan(&id, &addr); err != nil {
			return nil, fmt.Errorf("list addresses: scan row: %w", err)
		}
		addresses = append(addresses, domain.SavedAddress{AddressID: id, Address: addr})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: row iteration: %w", err)
	}

	return addresses, nil
}
