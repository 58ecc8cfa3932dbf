package domain

// Represents a single rentable parking space in the catalog.
// A Listing is immutable once loaded: dimensions, price and location
// never change during a search. Price is in cents so totals stay exact.
type Listing struct {
	ID         string
	LocationID string
	Width      int
	Length     int
	PriceCents int
}
