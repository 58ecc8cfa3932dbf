package dto

type ListingResponse struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`
	Width      int    `json:"width"`
	Length     int    `json:"length"`
	PriceCents int    `json:"price_in_cents"`
}

type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}
