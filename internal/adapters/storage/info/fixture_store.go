package info

import (
	"context"

	"coala/internal/adapters/storage/fixtures"
	domain "coala/internal/domain/info"
)

type dataset struct {
	Featured  domain.FeaturedArticle `yaml:"featured"`
	Resources []domain.ResourceCard  `yaml:"resources"`
	Calendar  domain.Calendar        `yaml:"calendar"`
	Latest    []domain.LatestUpdate  `yaml:"latest"`
}

// FixtureStore implements Store over the embedded info dataset.
type FixtureStore struct {
	ds dataset
}

// NewFixtureStore loads the embedded info dataset.
func NewFixtureStore() (*FixtureStore, error) {
	var ds dataset
	if err := fixtures.Decode(fixtures.Info, &ds); err != nil {
		return nil, err
	}
	return &FixtureStore{ds: ds}, nil
}

// Featured returns the hero article.
func (s *FixtureStore) Featured(ctx context.Context) (domain.FeaturedArticle, error) {
	return s.ds.Featured, nil
}

// ListResources returns resource cards in dataset order. The slice is a copy.
func (s *FixtureStore) ListResources(ctx context.Context) ([]domain.ResourceCard, error) {
	out := make([]domain.ResourceCard, len(s.ds.Resources))
	copy(out, s.ds.Resources)
	return out, nil
}

// Calendar returns the month view.
func (s *FixtureStore) Calendar(ctx context.Context) (domain.Calendar, error) {
	return s.ds.Calendar, nil
}

// ListLatest returns the latest updates in dataset order. The slice is a copy.
func (s *FixtureStore) ListLatest(ctx context.Context) ([]domain.LatestUpdate, error) {
	out := make([]domain.LatestUpdate, len(s.ds.Latest))
	copy(out, s.ds.Latest)
	return out, nil
}
