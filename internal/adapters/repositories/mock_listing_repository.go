package repositories

import (
	"context"
	"parking-search-service/internal/domain"
)

// MockListingRepository serves a fixed in-memory catalog for tests.
type MockListingRepository struct {
	listings []domain.Listing
	err      error
	calls    int
}

func NewMockListingRepository(listings []domain.Listing) *MockListingRepository {
	return &MockListingRepository{listings: listings}
}

// NewFailingListingRepository returns a repository whose ListListings always
// fails with err.
func NewFailingListingRepository(err error) *MockListingRepository {
	return &MockListingRepository{err: err}
}

func (r *MockListingRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}

	out := make([]domain.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

// Calls reports how many times ListListings has been invoked.
func (r *MockListingRepository) Calls() int {
	return r.calls
}
