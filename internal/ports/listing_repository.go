package ports

import (
	"context"
	"errors"
	"parking-search-service/internal/domain"
)

// ErrCatalogUnavailable marks failures where the listing catalog itself is
// missing from its backing store, as opposed to a transient read error.
// Callers map it to a distinct storage-failure response.
var ErrCatalogUnavailable = errors.New("listing catalog unavailable")

// Port: a boundary for retrieving the listing catalog from a data source.
type ListingRepository interface {
	// Retrieve every listing in the catalog, in catalog order.
	ListListings(ctx context.Context) ([]domain.Listing, error)
}
