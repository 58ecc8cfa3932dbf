package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/ports"
)

// Postgres-backed implementation of the ListingRepository port.
type PostgresListingRepository struct{ DB *sql.DB }

func NewPostgresListingRepository(db *sql.DB) *PostgresListingRepository {
	return &PostgresListingRepository{DB: db}
}

// Return the full listing catalog in seed order.
func (s *PostgresListingRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("postgres listing repository: DB is nil: %w", ports.ErrCatalogUnavailable)
	}

	query := `
	SELECT
		listing_id,
		location_id,
		width,
		length,
		price_in_cents
	FROM listings
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: query listings table: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, 64)
	for rows.Next() {
		var l domain.Listing
		err := rows.Scan(&l.ID, &l.LocationID, &l.Width, &l.Length, &l.PriceCents)
		if err != nil {
			return nil, fmt.Errorf("list listings: scan row: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: row iteration: %w", err)
	}

	return listings, nil
}
