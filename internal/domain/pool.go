package domain

import "slices"

// ListingPool is the working set of one location's listings during a search.
//
// The backing slice is sorted price-ascending once and never reorders;
// availability is tracked per slot so Take and Restore are O(1) and a
// restored listing reappears at its original price position. Search branches
// that take listings and restore them afterwards never observe each other's
// state.
type ListingPool struct {
	listings  []Listing
	taken     []bool
	slots     map[string]int
	available int
}

// NewListingPool copies the listings and orders them by ascending price.
// Listings with equal prices keep their catalog order.
func NewListingPool(listings []Listing) *ListingPool {
	pool := &ListingPool{
		listings:  slices.Clone(listings),
		taken:     make([]bool, len(listings)),
		slots:     make(map[string]int, len(listings)),
		available: len(listings),
	}

	slices.SortStableFunc(pool.listings, func(a, b Listing) int {
		if a.PriceCents < b.PriceCents {
			return -1
		}
		if a.PriceCents > b.PriceCents {
			return 1
		}
		return 0
	})

	for i, l := range pool.listings {
		pool.slots[l.ID] = i
	}

	return pool
}

// FindCheapest scans available listings in price order and returns the
// first that can hold count vehicles of the given length. Because the pool
// is price-sorted, the first hit is the cheapest listing for that one
// sub-group in isolation.
func (p *ListingPool) FindCheapest(vehicleLength, count int) (Listing, bool) {
	for i, l := range p.listings {
		if p.taken[i] {
			continue
		}
		if l.CanHold(vehicleLength, count) {
			return l, true
		}
	}
	return Listing{}, false
}

// Take marks the listing with the given ID unavailable. It reports whether
// the listing was present and available.
func (p *ListingPool) Take(id string) bool {
	i, ok := p.slots[id]
	if !ok || p.taken[i] {
		return false
	}
	p.taken[i] = true
	p.available--
	return true
}

// Restore makes a previously taken listing available again.
func (p *ListingPool) Restore(id string) {
	i, ok := p.slots[id]
	if !ok || !p.taken[i] {
		return
	}
	p.taken[i] = false
	p.available++
}

// Available returns how many listings remain available.
func (p *ListingPool) Available() int { return p.available }
