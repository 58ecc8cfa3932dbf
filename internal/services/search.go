package services

import (
	"context"
	"fmt"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/platform/obs"
	"parking-search-service/internal/ports"
	"slices"
	"sync"
)

// SearchOptions tunes how much work the solver may spend. The defaults
// (zero value) run unbounded and sequential.
type SearchOptions struct {
	// MaxOrderings caps how many sub-group orderings one vehicle group may
	// evaluate at one location, guarding against the factorial blow-up of
	// large quantities. Zero means no cap. When the cap is hit the search
	// keeps the best arrangement found up to that point.
	MaxOrderings int

	// Parallelism is the number of locations solved concurrently. Values
	// below two select the sequential path. Output is identical either way.
	Parallelism int
}

type locationTask struct {
	locationID string
	listings   []domain.Listing
}

type locationOutcome struct {
	idx      int
	result   domain.LocationResult
	feasible bool
	err      error
}

// RankLocations prices every location able to hold the entire request and
// returns them cheapest first. Locations that cannot place some vehicle
// group are left out; zero groups or zero listings yield an empty result.
// The function is a pure computation over its inputs: identical inputs
// produce identical output, with no state carried between calls.
func RankLocations(
	ctx context.Context,
	groups []domain.VehicleGroup,
	listings []domain.Listing,
	opts SearchOptions,
) ([]domain.LocationResult, error) {
	if len(groups) == 0 || len(listings) == 0 {
		return []domain.LocationResult{}, nil
	}

	tasks := groupByLocation(listings)
	results := make([]*domain.LocationResult, len(tasks))

	if opts.Parallelism > 1 && len(tasks) > 1 {
		if err := solveParallel(ctx, tasks, groups, opts, results); err != nil {
			return nil, err
		}
	} else {
		for i, task := range tasks {
			res, ok, err := solveLocation(ctx, task.locationID, groups, task.listings, opts)
			if err != nil {
				return nil, fmt.Errorf("rank locations: solve location %q: %w", task.locationID, err)
			}
			if ok {
				results[i] = &res
			}
		}
	}

	ranked := make([]domain.LocationResult, 0, len(tasks))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}

	// Stable sort: locations tied on price stay in first-encounter order.
	slices.SortStableFunc(ranked, func(a, b domain.LocationResult) int {
		if a.TotalPriceCents < b.TotalPriceCents {
			return -1
		}
		if a.TotalPriceCents > b.TotalPriceCents {
			return 1
		}
		return 0
	})

	return ranked, nil
}

// groupByLocation splits the catalog into per-location listing sets,
// keeping locations in order of first appearance.
func groupByLocation(listings []domain.Listing) []locationTask {
	index := make(map[string]int, len(listings))
	tasks := make([]locationTask, 0, len(listings))

	for _, l := range listings {
		i, ok := index[l.LocationID]
		if !ok {
			i = len(tasks)
			index[l.LocationID] = i
			tasks = append(tasks, locationTask{locationID: l.LocationID})
		}
		tasks[i].listings = append(tasks[i].listings, l)
	}

	return tasks
}

// solveParallel fans location work out over a bounded worker set. Each task
// derives a private pool from the read-only catalog, so tasks share nothing
// but the results slice, which is indexed by location position to keep
// output deterministic regardless of completion order.
func solveParallel(
	ctx context.Context,
	tasks []locationTask,
	groups []domain.VehicleGroup,
	opts SearchOptions,
	results []*domain.LocationResult,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, opts.Parallelism)
	outcomes := make(chan locationOutcome, len(tasks))
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(idx int, t locationTask) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			res, ok, err := solveLocation(ctx, t.locationID, groups, t.listings, opts)
			if err != nil {
				outcomes <- locationOutcome{idx: idx, err: fmt.Errorf("rank locations: solve location %q: %w", t.locationID, err)}
				cancel()
				return
			}

			outcomes <- locationOutcome{idx: idx, result: res, feasible: ok}
		}(i, task)
	}

	wg.Wait()
	close(outcomes)

	var solveErr error
	for oc := range outcomes {
		if oc.err != nil {
			if solveErr == nil {
				solveErr = oc.err
			}
			continue
		}
		if oc.feasible {
			r := oc.result
			results[oc.idx] = &r
		}
	}

	return solveErr
}

// SearchParking loads the catalog through the repository port and ranks
// every feasible location for the request.
func SearchParking(
	ctx context.Context,
	groups []domain.VehicleGroup,
	repo ports.ListingRepository,
	opts SearchOptions,
) (_ []domain.LocationResult, err error) {
	defer obs.Time(ctx, "search.SearchParking")(&err)

	listings, err := repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("search parking: list listings: %w", err)
	}

	results, err := RankLocations(ctx, groups, listings, opts)
	if err != nil {
		return nil, fmt.Errorf("search parking: %w", err)
	}

	return results, nil
}
