package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"parking-search-service/internal/domain"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// position preserves catalog order; ranking ties depend on it.
	createListingsQuery := `
	CREATE TABLE IF NOT EXISTS listings (
		listing_id TEXT PRIMARY KEY,
		location_id TEXT NOT NULL,
		width INTEGER NOT NULL,
		length INTEGER NOT NULL,
		price_in_cents INTEGER NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createLocationIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_listings_location
	ON listings(location_id);
	`

	statements := []string{
		createListingsQuery,
		createLocationIndexQuery,
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

type ListingSeed struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`
	Width      int    `json:"width"`
	Length     int    `json:"length"`
	PriceCents int    `json:"price_in_cents"`
}

// Validate one catalog entry and convert it to the domain type.
func listingFromSeed(item ListingSeed) (domain.Listing, error) {
	id := strings.TrimSpace(item.ID)
	if id == "" {
		return domain.Listing{}, errors.New("listing id cannot be empty")
	}

	locationID := strings.TrimSpace(item.LocationID)
	if locationID == "" {
		return domain.Listing{}, errors.New("location id cannot be empty")
	}

	if item.Width < 0 || item.Length < 0 || item.PriceCents < 0 {
		return domain.Listing{}, errors.New("width, length, and price must be non-negative")
	}

	return domain.Listing{
		ID:         id,
		LocationID: locationID,
		Width:      item.Width,
		Length:     item.Length,
		PriceCents: item.PriceCents,
	}, nil
}

// Convert raw seed entries into validated listings, preserving order.
func parseCatalog(data []ListingSeed) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0, len(data))
	seen := make(map[string]bool, len(data))
	for i, item := range data {
		l, err := listingFromSeed(item)
		if err != nil {
			return nil, fmt.Errorf("listing at index %d: %w", i, err)
		}

		if seen[l.ID] {
			return nil, fmt.Errorf("listing at index %d: duplicate id %q", i, l.ID)
		}
		seen[l.ID] = true

		listings = append(listings, l)
	}

	return listings, nil
}

// Populate the database with the listing catalog from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed listings: read %q: %w", jsonPath, err)
	}

	var data []ListingSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed listings: parse json: %w", err)
	}

	listings, err := parseCatalog(data)
	if err != nil {
		return fmt.Errorf("seed listings: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed listings: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO listings (
		listing_id,
		location_id,
		width,
		length,
		price_in_cents,
		position
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (listing_id) DO UPDATE SET
		location_id = EXCLUDED.location_id,
		width = EXCLUDED.width,
		length = EXCLUDED.length,
		price_in_cents = EXCLUDED.price_in_cents,
		position = EXCLUDED.position;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed listings: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range listings {
		if _, err := stmt.Exec(l.ID, l.LocationID, l.Width, l.Length, l.PriceCents, i); err != nil {
			return fmt.Errorf("seed listings: insert listing_id=%q: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed listings: commit tx: %w", err)
	}

	return nil
}
