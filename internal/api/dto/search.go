package dto

// The search request body is a bare JSON array of these.
type VehicleGroupRequest struct {
	Length   int `json:"length"`
	Quantity int `json:"quantity"`
}

// ListingIDs appear in the order the search consumed the listings.
type LocationResultResponse struct {
	LocationID      string   `json:"location_id"`
	TotalPriceCents int      `json:"total_price_in_cents"`
	ListingIDs      []string `json:"listing_ids"`
}
