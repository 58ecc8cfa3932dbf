package api

import (
	"net/http"
	"net/http/httptest"
	"parking-search-service/internal/adapters/repositories"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/services"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestRouter(limiter *rate.Limiter) http.Handler {
	repo := repositories.NewMockListingRepository([]domain.Listing{
		{ID: "abc123", LocationID: "L1", Width: 30, Length: 20, PriceCents: 500},
	})
	return NewRouter(repo, services.SearchOptions{}, limiter)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestRouterMintsRequestID(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	got := rr.Header().Get("X-Request-Id")
	if got == "" {
		t.Fatal("expected X-Request-Id to be set")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("X-Request-Id %q is not a uuid: %v", got, err)
	}
}

func TestRouterKeepsValidRequestID(t *testing.T) {
	router := newTestRouter(nil)
	supplied := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", supplied)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != supplied {
		t.Errorf("X-Request-Id = %q, want the supplied %q", got, supplied)
	}
}

func TestRouterReplacesInvalidRequestID(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	got := rr.Header().Get("X-Request-Id")
	if got == "not-a-uuid" {
		t.Fatal("invalid request id must be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("X-Request-Id %q is not a uuid: %v", got, err)
	}
}

func TestRouterSearchEndToEnd(t *testing.T) {
	router := newTestRouter(rate.NewLimiter(rate.Inf, 0))

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`[{"length": 10, "quantity": 1}]`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"total_price_in_cents":500`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestRouterRateLimitsSearch(t *testing.T) {
	// A drained zero-rate bucket rejects immediately.
	router := newTestRouter(rate.NewLimiter(0, 0))

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`[{"length": 10, "quantity": 1}]`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}

	// Other routes stay unthrottled.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rr.Code)
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(nil)

	// Generate one request so the HTTP collectors have a sample.
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "parking_http_requests_total") {
		t.Error("expected parking_http_requests_total in the exposition")
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
