package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"parking-search-service/internal/api/dto"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/platform/metrics"
	"parking-search-service/internal/platform/obs"
	"parking-search-service/internal/ports"
	"parking-search-service/internal/services"
	"time"
)

// Bounds on a single search request. They exist to keep the combinatorial
// search inside its orderings budget, not to model any real fleet.
const (
	maxVehicleGroups   = 100
	maxVehicleQuantity = 100
	maxVehicleLength   = 1000
)

type SearchHandler struct {
	Repo    ports.ListingRepository
	Options services.SearchOptions
}

// Search prices every location able to park the whole request and returns
// them cheapest first. The body is a JSON array of vehicle groups; locations
// that cannot hold the request are omitted, so an empty array is a valid
// successful answer, never an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req []dto.VehicleGroupRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		writeError(w, r, http.StatusBadRequest, "body must be a JSON array of vehicle groups")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON array")
		return
	}

	if msg, ok := validateSearchRequest(req); !ok {
		metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	groups := make([]domain.VehicleGroup, 0, len(req))
	for _, g := range req {
		groups = append(groups, domain.VehicleGroup{Length: g.Length, Quantity: g.Quantity})
	}

	start := time.Now()
	results, err := services.SearchParking(r.Context(), groups, h.Repo, h.Options)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		log.Printf("req_id=%s search parking failed: %v", obs.RequestID(r.Context()), err)
		if errors.Is(err, ports.ErrCatalogUnavailable) {
			writeError(w, r, http.StatusInternalServerError, "listing catalog unavailable")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.FeasibleLocations.Observe(float64(len(results)))

	res := make([]dto.LocationResultResponse, 0, len(results))
	for _, lr := range results {
		res = append(res, dto.LocationResultResponse{
			LocationID:      lr.LocationID,
			TotalPriceCents: lr.TotalPriceCents,
			ListingIDs:      lr.ListingIDs,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func validateSearchRequest(req []dto.VehicleGroupRequest) (string, bool) {
	if len(req) == 0 {
		return "request must contain at least one vehicle group", false
	}
	if len(req) > maxVehicleGroups {
		return fmt.Sprintf("request must contain at most %d vehicle groups", maxVehicleGroups), false
	}

	for i, g := range req {
		if g.Length < 1 || g.Length > maxVehicleLength {
			return fmt.Sprintf("vehicle group %d: length must be between 1 and %d", i, maxVehicleLength), false
		}
		if g.Quantity < 1 || g.Quantity > maxVehicleQuantity {
			return fmt.Sprintf("vehicle group %d: quantity must be between 1 and %d", i, maxVehicleQuantity), false
		}
	}

	return "", true
}
