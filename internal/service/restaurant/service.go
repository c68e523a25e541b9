// Package restaurant exposes the read-only catalog with the listing
// filters the storefront offers.
package restaurant

import (
	"context"
	"strings"

	"bitefinder/internal/domain"
	restrepo "bitefinder/internal/repository/restaurant"
)

// Filters narrows the active-restaurant listing. Zero values disable a
// filter. Filtering happens over the full fetched set, mirroring the
// storefront's behavior.
type Filters struct {
	Query     string
	Cuisine   string
	MinRating float64
}

type Service struct {
	repo restrepo.Repository
}

func New(repo restrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns active restaurants ordered by descending rating, narrowed
// by the given filters. The text query is a case-insensitive substring
// match against name or cuisine.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Restaurant, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Restaurant, 0, len(all))
	for _, r := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Cuisine), query) {
			continue
		}
		if f.Cuisine != "" && r.Cuisine != f.Cuisine {
			continue
		}
		if f.MinRating > 0 && r.Rating < f.MinRating {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Cuisines returns the distinct cuisine tags of active restaurants in
// first-seen (rating) order.
func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	var out []string
	for _, r := range all {
		if !seen[r.Cuisine] {
			seen[r.Cuisine] = true
			out = append(out, r.Cuisine)
		}
	}
	return out, nil
}

// Get fetches one active restaurant by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}
