package domain

// Arrangement is one way to park a whole vehicle group at a location: the
// sub-group sizes in assignment order, the listing chosen for each, and the
// summed price. It is search-internal planning data with no side effects.
type Arrangement struct {
	Sizes      []int
	Listings   []Listing
	PriceCents int
}

// LocationResult is the outcome for a location where every vehicle group
// could be placed. ListingIDs are in the order the listings were consumed.
type LocationResult struct {
	LocationID      string
	TotalPriceCents int
	ListingIDs      []string
}
