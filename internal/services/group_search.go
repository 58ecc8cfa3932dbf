package services

import (
	"context"
	"parking-search-service/internal/domain"
	"slices"
)

// cheapestArrangement finds the cheapest way to park one vehicle group on a
// location's remaining listings, splitting the group across several
// listings when a single one does not fit or a split is cheaper.
//
// It tries every split of the group into 1..quantity sub-groups and every
// distinct ordering of each split. Walking an ordering, each sub-group
// takes the cheapest compatible listing still in the pool; an ordering is
// abandoned as soon as its running price reaches the best price found so
// far, or a sub-group finds no listing. The per-sub-group choice is greedy:
// a locally cheapest listing is kept even when it would unlock a better
// assignment for a sibling sub-group. The design prioritizes determinism
// and aggressive pruning over a provable global optimum.
//
// priceToBeat seeds the pruning bound; arrangements at or above it are
// never returned. maxOrderings caps how many orderings are evaluated (zero
// means no cap); once spent, the best arrangement found up to that point is
// returned. The pool is always handed back exactly as it was received.
func cheapestArrangement(
	ctx context.Context,
	vehicleLength int,
	quantity int,
	pool *domain.ListingPool,
	priceToBeat int,
	maxOrderings int,
) (domain.Arrangement, bool, error) {
	var best domain.Arrangement
	found := false
	bound := priceToBeat

	orderings := 0
	used := make([]domain.Listing, 0, quantity)

	for parts := 1; parts <= quantity; parts++ {
		var walkErr error
		exhausted := false

		forEachPartition(quantity, parts, 1, func(partition []int) bool {
			// A non-decreasing partition is the lexicographically first
			// ordering of its sizes; stepping from it visits each distinct
			// ordering once.
			ordering := slices.Clone(partition)

			for {
				if err := ctx.Err(); err != nil {
					walkErr = err
					return false
				}
				if maxOrderings > 0 && orderings >= maxOrderings {
					exhausted = true
					return false
				}
				orderings++

				price := 0
				used = used[:0]
				feasible := true

				for _, size := range ordering {
					if price >= bound {
						feasible = false
						break
					}

					spot, ok := pool.FindCheapest(vehicleLength, size)
					if !ok {
						feasible = false
						break
					}

					pool.Take(spot.ID)
					used = append(used, spot)
					price += spot.PriceCents
				}

				if feasible && price < bound {
					bound = price
					best = domain.Arrangement{
						Sizes:      slices.Clone(ordering),
						Listings:   slices.Clone(used),
						PriceCents: price,
					}
					found = true
				}

				for _, l := range used {
					pool.Restore(l.ID)
				}

				if !nextOrdering(ordering) {
					return true
				}
			}
		})

		if walkErr != nil {
			return domain.Arrangement{}, false, walkErr
		}
		if exhausted {
			break
		}
	}

	return best, found, nil
}
