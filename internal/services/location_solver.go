package services

import (
	"context"
	"math"
	"parking-search-service/internal/domain"
	"slices"
)

// solveLocation prices one location for the whole request, or reports it
// infeasible when any vehicle group cannot be placed.
//
// Vehicle groups are placed in descending demand order so the hardest
// group fails fast before effort is spent on the easy ones; groups with
// equal demand keep their request order. Each group's winning listings are
// permanently consumed before the next group is placed. Groups are never
// revisited: once a group has consumed a listing, a later group that
// needed it makes the location infeasible even if a different split could
// have served both.
func solveLocation(
	ctx context.Context,
	locationID string,
	groups []domain.VehicleGroup,
	listings []domain.Listing,
	opts SearchOptions,
) (domain.LocationResult, bool, error) {
	pool := domain.NewListingPool(listings)

	ordered := slices.Clone(groups)
	slices.SortStableFunc(ordered, func(a, b domain.VehicleGroup) int {
		da, db := a.Demand(), b.Demand()
		if da > db {
			return -1
		}
		if da < db {
			return 1
		}
		return 0
	})

	total := 0
	listingIDs := make([]string, 0, len(listings))

	for _, g := range ordered {
		arrangement, ok, err := cheapestArrangement(ctx, g.Length, g.Quantity, pool, math.MaxInt, opts.MaxOrderings)
		if err != nil {
			return domain.LocationResult{}, false, err
		}
		if !ok {
			return domain.LocationResult{}, false, nil
		}

		total += arrangement.PriceCents
		for _, l := range arrangement.Listings {
			pool.Take(l.ID)
			listingIDs = append(listingIDs, l.ID)
		}
	}

	return domain.LocationResult{
		LocationID:      locationID,
		TotalPriceCents: total,
		ListingIDs:      listingIDs,
	}, true, nil
}
