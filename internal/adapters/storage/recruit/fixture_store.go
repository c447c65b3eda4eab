package recruit

import (
	"context"
	"fmt"

	"coala/internal/adapters/storage/fixtures"
	domain "coala/internal/domain/recruit"
)

// FixtureStore implements Store over the embedded recruit dataset.
type FixtureStore struct {
	items []domain.Item
	byID  map[string]int
}

// NewFixtureStore loads and validates the embedded recruit dataset.
// PRE: none
// POST: Returns a store with every listing validated
func NewFixtureStore() (*FixtureStore, error) {
	var ds struct {
		Items []domain.Item `yaml:"items"`
	}
	if err := fixtures.Decode(fixtures.Recruit, &ds); err != nil {
		return nil, err
	}
	s := &FixtureStore{items: ds.Items, byID: make(map[string]int, len(ds.Items))}
	for i := range ds.Items {
		if err := ds.Items[i].Validate(); err != nil {
			return nil, fmt.Errorf("recruit %q: %w", ds.Items[i].ID, err)
		}
		s.byID[ds.Items[i].ID] = i
	}
	return s, nil
}

// List returns all listings in dataset order. The slice is a copy.
func (s *FixtureStore) List(ctx context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns one listing, or ErrNotFound.
func (s *FixtureStore) GetByID(ctx context.Context, id string) (domain.Item, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Item{}, ErrNotFound
	}
	return s.items[i], nil
}
