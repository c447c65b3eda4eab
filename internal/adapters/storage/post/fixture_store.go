package post

import (
	"context"
	"fmt"

	"coala/internal/adapters/storage/fixtures"
	domain "coala/internal/domain/post"
)

type dataset struct {
	Posts   []domain.Post            `yaml:"posts"`
	Details map[string]domain.Detail `yaml:"details"`
}

// FixtureStore implements Store over the embedded posts dataset.
type FixtureStore struct {
	posts   []domain.Post
	byID    map[string]int
	details map[string]domain.Detail
}

// NewFixtureStore loads and validates the embedded posts dataset.
// PRE: none
// POST: Returns a store with every post validated, or an error naming the bad record
func NewFixtureStore() (*FixtureStore, error) {
	var ds dataset
	if err := fixtures.Decode(fixtures.Posts, &ds); err != nil {
		return nil, err
	}
	return newStore(ds.Posts, ds.Details)
}

func newStore(posts []domain.Post, details map[string]domain.Detail) (*FixtureStore, error) {
	s := &FixtureStore{
		posts:   posts,
		byID:    make(map[string]int, len(posts)),
		details: details,
	}
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return nil, fmt.Errorf("post %q: %w", posts[i].ID, err)
		}
		if _, dup := s.byID[posts[i].ID]; dup {
			return nil, fmt.Errorf("post %q: duplicate id", posts[i].ID)
		}
		s.byID[posts[i].ID] = i
	}
	return s, nil
}

// List returns all posts in dataset order. The slice is a copy.
func (s *FixtureStore) List(ctx context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

// GetByID returns one post.
// PRE: none
// POST: Returns ErrNotFound for unknown ids
func (s *FixtureStore) GetByID(ctx context.Context, id string) (domain.Post, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Post{}, ErrNotFound
	}
	return s.posts[i], nil
}

// GetDetail returns the long-form body of a post.
// PRE: none
// POST: Returns ErrNotFound when the post has no detail entry
func (s *FixtureStore) GetDetail(ctx context.Context, id string) (domain.Detail, error) {
	d, ok := s.details[id]
	if !ok {
		return domain.Detail{}, ErrNotFound
	}
	return d, nil
}
