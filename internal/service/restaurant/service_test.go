package restaurant

import (
	"context"
	"errors"
	"testing"

	"bitefinder/internal/domain"
)

type stubRepo struct {
	restaurants []domain.Restaurant
	err         error
}

func (s *stubRepo) ListActive(_ context.Context) ([]domain.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func catalog() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: "r1", Name: "Spice Garden", Cuisine: "North Indian", Rating: 4.6},
		{ID: "r2", Name: "Pasta Palace", Cuisine: "Italian", Rating: 4.3},
		{ID: "r3", Name: "Dosa Corner", Cuisine: "South Indian", Rating: 4.1},
		{ID: "r4", Name: "Indian Express", Cuisine: "North Indian", Rating: 3.8},
	}
}

func ids(rs []domain.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListNoFiltersReturnsAll(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})
	got, err := svc.List(context.Background(), Filters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalIDs(ids(got), []string{"r1", "r2", "r3", "r4"}) {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

func TestListQueryMatchesNameOrCuisine(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})

	got, err := svc.List(context.Background(), Filters{Query: "indian"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// "indian" hits two cuisines plus the "Indian Express" name.
	if !equalIDs(ids(got), []string{"r1", "r3", "r4"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}

	got, err = svc.List(context.Background(), Filters{Query: "PASTA"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalIDs(ids(got), []string{"r2"}) {
		t.Fatalf("expected case-insensitive name match, got %v", ids(got))
	}
}

func TestListCuisineExactMatch(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})
	got, err := svc.List(context.Background(), Filters{Cuisine: "North Indian"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalIDs(ids(got), []string{"r1", "r4"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}
}

func TestListMinRating(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})
	got, err := svc.List(context.Background(), Filters{MinRating: 4.0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalIDs(ids(got), []string{"r1", "r2", "r3"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}
}

func TestListCombinedFilters(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})
	got, err := svc.List(context.Background(), Filters{Query: "indian", Cuisine: "North Indian", MinRating: 4.0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalIDs(ids(got), []string{"r1"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}
}

func TestListRepoError(t *testing.T) {
	svc := New(&stubRepo{err: errors.New("boom")})
	if _, err := svc.List(context.Background(), Filters{}); err == nil {
		t.Fatal("expected repo error")
	}
}

func TestCuisinesDistinctFirstSeen(t *testing.T) {
	svc := New(&stubRepo{restaurants: catalog()})
	got, err := svc.Cuisines(context.Background())
	if err != nil {
		t.Fatalf("cuisines: %v", err)
	}
	want := []string{"North Indian", "Italian", "South Indian"}
	if !equalIDs(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
