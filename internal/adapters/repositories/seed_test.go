package repositories

import (
	"parking-search-service/internal/domain"
	"testing"
)

func TestListingFromSeed(t *testing.T) {
	valid := ListingSeed{ID: "a1", LocationID: "L1", Width: 10, Length: 20, PriceCents: 300}

	cases := []struct {
		name    string
		seed    ListingSeed
		wantErr bool
	}{
		{"valid", valid, false},
		{"blank id", ListingSeed{ID: "  ", LocationID: "L1", Width: 10, Length: 20, PriceCents: 300}, true},
		{"blank location", ListingSeed{ID: "a1", LocationID: "", Width: 10, Length: 20, PriceCents: 300}, true},
		{"negative width", ListingSeed{ID: "a1", LocationID: "L1", Width: -1, Length: 20, PriceCents: 300}, true},
		{"negative length", ListingSeed{ID: "a1", LocationID: "L1", Width: 10, Length: -5, PriceCents: 300}, true},
		{"negative price", ListingSeed{ID: "a1", LocationID: "L1", Width: 10, Length: 20, PriceCents: -300}, true},
		{"zero dimensions allowed", ListingSeed{ID: "a1", LocationID: "L1", Width: 0, Length: 0, PriceCents: 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := listingFromSeed(tc.seed)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", tc.seed)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestListingFromSeedTrimsFields(t *testing.T) {
	got, err := listingFromSeed(ListingSeed{ID: " a1 ", LocationID: " L1 ", Width: 10, Length: 20, PriceCents: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Listing{ID: "a1", LocationID: "L1", Width: 10, Length: 20, PriceCents: 300}
	if got != want {
		t.Errorf("listingFromSeed = %+v, want %+v", got, want)
	}
}

func TestParseCatalog(t *testing.T) {
	data := []ListingSeed{
		{ID: "b2", LocationID: "L2", Width: 30, Length: 40, PriceCents: 700},
		{ID: "a1", LocationID: "L1", Width: 10, Length: 20, PriceCents: 300},
	}

	listings, err := parseCatalog(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].ID != "b2" || listings[1].ID != "a1" {
		t.Errorf("catalog order not preserved: got %q, %q", listings[0].ID, listings[1].ID)
	}
}

func TestParseCatalogRejectsDuplicateID(t *testing.T) {
	data := []ListingSeed{
		{ID: "a1", LocationID: "L1", Width: 10, Length: 20, PriceCents: 300},
		{ID: "a1", LocationID: "L2", Width: 30, Length: 40, PriceCents: 700},
	}

	if _, err := parseCatalog(data); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
