package activity

import (
	"context"
	"fmt"

	"coala/internal/adapters/storage/fixtures"
	domain "coala/internal/domain/activity"
)

// FixtureStore implements Store over the embedded activity dataset.
type FixtureStore struct {
	members []domain.Member
	sources []domain.Source
}

// NewFixtureStore loads and validates the embedded activity dataset.
// PRE: none
// POST: Returns a store whose members are valid and at most one is marked as the visitor
func NewFixtureStore() (*FixtureStore, error) {
	var ds struct {
		Sources []domain.Source `yaml:"sources"`
		Members []domain.Member `yaml:"members"`
	}
	if err := fixtures.Decode(fixtures.Activity, &ds); err != nil {
		return nil, err
	}
	me := 0
	for i := range ds.Members {
		if err := ds.Members[i].Validate(); err != nil {
			return nil, fmt.Errorf("member %q: %w", ds.Members[i].ID, err)
		}
		if ds.Members[i].IsMe {
			me++
		}
	}
	if me > 1 {
		return nil, fmt.Errorf("activity dataset marks %d members as the visitor", me)
	}
	return &FixtureStore{members: ds.Members, sources: ds.Sources}, nil
}

// ListMembers returns members in dataset order. The slice is a copy.
func (s *FixtureStore) ListMembers(ctx context.Context) ([]domain.Member, error) {
	out := make([]domain.Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

// ListSources returns the point sources. The slice is a copy.
func (s *FixtureStore) ListSources(ctx context.Context) ([]domain.Source, error) {
	out := make([]domain.Source, len(s.sources))
	copy(out, s.sources)
	return out, nil
}
