package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchemaPG(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS saved_addresses (
		address_id INTEGER PRIMARY KEY,
		address TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`,
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

// Seed the Postgres saved address book from a JSON file.
func SeedFromJSONPG(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed addresses: read %q: %w", jsonPath, err)
	}

	var data []AddressSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed addresses: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed addresses: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO saved_addresses (address_id, address)
	VALUES ($1, $2)
	ON CONFLICT (address_id) DO UPDATE SET address = EXCLUDED.address;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed addresses: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range data {
		if a.AddressID <= 0 {
			return fmt.Errorf("seed addresses: invalid addressID at index %d: %d", i+1, a.AddressID)
		}
		addr := strings.TrimSpace(a.Address)
		if addr == "" {
			return fmt.Errorf("seed addresses: item at index %d: address cannot be empty", i+1)
		}

		if _, err := stmt.Exec(a.AddressID, addr); err != nil {
			return fmt.Errorf("seed addresses: insert address_id=%d: %w", a.AddressID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed addresses: commit tx: %w", err)
	}

	return nil
}
