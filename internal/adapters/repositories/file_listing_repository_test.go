package repositories

import (
	"context"
	"errors"
	"os"
	"parking-search-service/internal/ports"
	"path/filepath"
	"testing"
)

func TestFileListingRepositoryReadsCatalog(t *testing.T) {
	catalog := `[
	{"id": "a1", "location_id": "L1", "width": 10, "length": 20, "price_in_cents": 300},
	{"id": "b2", "location_id": "L2", "width": 30, "length": 40, "price_in_cents": 700}
]`
	path := filepath.Join(t.TempDir(), "listings.json")
	if err := os.WriteFile(path, []byte(catalog), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := NewFileListingRepository(path)
	listings, err := repo.ListListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].ID != "a1" || listings[0].LocationID != "L1" || listings[0].PriceCents != 300 {
		t.Errorf("unexpected first listing: %+v", listings[0])
	}
	if listings[1].ID != "b2" {
		t.Errorf("catalog order not preserved: got %q", listings[1].ID)
	}
}

func TestFileListingRepositoryMissingFile(t *testing.T) {
	repo := NewFileListingRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.ListListings(context.Background())
	if !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestFileListingRepositoryMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := NewFileListingRepository(path)
	_, err := repo.ListListings(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Error("a malformed catalog is not the same as a missing one")
	}
}
