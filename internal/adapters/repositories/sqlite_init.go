package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAddressesQuery := `
	CREATE TABLE IF NOT EXISTS saved_addresses (
		address_id INTEGER PRIMARY KEY,
		address TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	statements := []string{
		createAddressesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AddressSeed struct {
	AddressID int    `json:"address_id"`
	Address   string `json:"address"`
}

// Seed the saved address book from a JSON file of demo delivery addresses.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed addresses: read %q: %w", jsonPath, err)
	}

	var data []AddressSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed addresses: parse json: %w", err)
	}

	rows := make([]AddressSeed, 0, len(data))
	for i, item := range data {
		addressID := item.AddressID
		if addressID <= 0 {
			return fmt.Errorf("seed addresses: invalid addressID at index %d: %d", i+1, addressID)
		}

		addr := strings.TrimSpace(item.Address)
		if addr == "" {
			return fmt.Errorf("seed addresses: item at index %d: address cannot be empty", i+1)
		}
		rows = append(rows, AddressSeed{AddressID: addressID, Address: addr})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed addresses: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO saved_addresses (address_id, address)
	VALUES (?, ?)
	ON CONFLICT (address_id) DO UPDATE SET address = excluded.address;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed addresses: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.Exec(a.AddressID, a.Address); err != nil {
			return fmt.Errorf("seed addresses: insert address_id=%d: %w", a.AddressID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed addresses: commit tx: %w", err)
	}

	return nil
}
