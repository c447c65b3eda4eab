package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "coala/internal/domain/activity"
)

func TestNewFixtureStore_LoadsDataset(t *testing.T) {
	s, err := NewFixtureStore()
	require.NoError(t, err)
	ctx := context.Background()

	members, err := s.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 7)
	assert.Equal(t, "이영희", members[0].Name)
	assert.Equal(t, domain.TierDiamond, members[0].SolvedTier)

	last := members[len(members)-1]
	assert.True(t, last.IsMe)
	assert.Equal(t, 42, last.Rank)

	sources, err := s.ListSources(ctx)
	require.NoError(t, err)
	assert.Len(t, sources, 2)
}
