package api

import (
	"net/http"
	"parking-search-service/internal/api/handlers"
	"parking-search-service/internal/ports"
	"parking-search-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ListingRepository, opts services.SearchOptions, searchLimit *rate.Limiter) http.Handler {
	mux := http.NewServeMux()

	searchHandler := &handlers.SearchHandler{Repo: repo, Options: opts}
	listingHandler := &handlers.ListingHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/listings", listingHandler.List)
	// Search is the only endpoint expensive enough to need shedding.
	mux.Handle("/search", rateLimitMiddleware(searchLimit, http.HandlerFunc(searchHandler.Search)))
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(metricsMiddleware(loggingMiddleware(mux)))
}
