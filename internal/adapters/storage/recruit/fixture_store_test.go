package recruit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "coala/internal/domain/recruit"
)

func TestNewFixtureStore_LoadsDataset(t *testing.T) {
	s, err := NewFixtureStore()
	require.NoError(t, err)

	items, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"react-study", "ai-project", "portfolio-mentoring", "backend-study", "design-system-project"}, ids)

	closed, err := s.GetByID(context.Background(), "design-system-project")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClosed, closed.Status)
}

func TestFixtureStore_GetByID_NotFound(t *testing.T) {
	s, err := NewFixtureStore()
	require.NoError(t, err)
	_, err = s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
