package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"bitefinder/internal/domain"
)

func TestListRestaurantsHandler_PassesFilters(t *testing.T) {
	restaurant := &stubRestaurantSvc{
		restaurants: []domain.Restaurant{
			{ID: "r1", Name: "Spice Garden", Cuisine: "North Indian", Rating: 4.5},
		},
	}
	router := newTestRouter(routerOpts{restaurant: restaurant})

	rec := doJSON(t, router, http.MethodGet, "/restaurants?q=spice&cuisine=North+Indian&min_rating=4", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if restaurant.lastFilters.Query != "spice" {
		t.Fatalf("query filter lost: %+v", restaurant.lastFilters)
	}
	if restaurant.lastFilters.Cuisine != "North Indian" {
		t.Fatalf("cuisine filter lost: %+v", restaurant.lastFilters)
	}
	if restaurant.lastFilters.MinRating != 4 {
		t.Fatalf("rating filter lost: %+v", restaurant.lastFilters)
	}
	if !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListRestaurantsHandler_BadRating(t *testing.T) {
	router := newTestRouter(routerOpts{})

	rec := doJSON(t, router, http.MethodGet, "/restaurants?min_rating=six", "", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListRestaurantsHandler_EmptyIsArray(t *testing.T) {
	router := newTestRouter(routerOpts{})

	rec := doJSON(t, router, http.MethodGet, "/restaurants", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"restaurants":[]`) {
		t.Fatalf("expected empty array, got: %s", rec.Body.String())
	}
}

func TestCuisinesHandler(t *testing.T) {
	restaurant := &stubRestaurantSvc{cuisines: []string{"North Indian", "Chinese"}}
	router := newTestRouter(routerOpts{restaurant: restaurant})

	rec := doJSON(t, router, http.MethodGet, "/restaurants/cuisines", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Chinese"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetRestaurantHandler_NotFound(t *testing.T) {
	restaurant := &stubRestaurantSvc{getErr: domain.ErrNotFound}
	router := newTestRouter(routerOpts{restaurant: restaurant})

	rec := doJSON(t, router, http.MethodGet, "/restaurants/missing", "", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetRestaurantHandler_Success(t *testing.T) {
	restaurant := &stubRestaurantSvc{
		single: &domain.Restaurant{ID: "r1", Name: "Spice Garden", CostForTwo: 500},
	}
	router := newTestRouter(routerOpts{restaurant: restaurant})

	rec := doJSON(t, router, http.MethodGet, "/restaurants/r1", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"costForTwo":500`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
