package handlers

import (
	"errors"
	"log"
	"net/http"
	"parking-search-service/internal/api/dto"
	"parking-search-service/internal/platform/obs"
	"parking-search-service/internal/ports"
)

// ListingHandler exposes read-only catalog retrieval endpoints.
type ListingHandler struct {
	Repo ports.ListingRepository
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	listings, err := h.Repo.ListListings(r.Context())
	if err != nil {
		log.Printf("req_id=%s list listings failed: %v", obs.RequestID(r.Context()), err)
		if errors.Is(err, ports.ErrCatalogUnavailable) {
			writeError(w, r, http.StatusInternalServerError, "listing catalog unavailable")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListListingsResponse{
		Listings: make([]dto.ListingResponse, 0, len(listings)),
	}
	for _, l := range listings {
		res.Listings = append(res.Listings, dto.ListingResponse{
			ID:         l.ID,
			LocationID: l.LocationID,
			Width:      l.Width,
			Length:     l.Length,
			PriceCents: l.PriceCents,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
