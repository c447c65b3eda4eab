package home

import (
	"context"

	"coala/internal/adapters/storage/fixtures"
	domain "coala/internal/domain/home"
)

// FixtureStore implements Store over the embedded home dataset.
type FixtureStore struct {
	dashboard domain.Dashboard
}

// NewFixtureStore loads the embedded home dataset.
func NewFixtureStore() (*FixtureStore, error) {
	var d domain.Dashboard
	if err := fixtures.Decode(fixtures.Home, &d); err != nil {
		return nil, err
	}
	return &FixtureStore{dashboard: d}, nil
}

// Dashboard returns the home datasets.
func (s *FixtureStore) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	return s.dashboard, nil
}
