package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

func TestSourceRepository_ActiveFeedSources(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	interest := "crypto,blockchain"
	sources := []domain.FeedSource{
		{Key: "zeta", Name: "Zeta Agency", FeedURL: "https://zeta.example.com/rss", Active: true},
		{Key: "alpha", Name: "Alpha Agency", FeedURL: "https://alpha.example.com/rss", Interest: &interest, Active: true},
		{Key: "mid", Name: "Mid Agency", FeedURL: "https://mid.example.com/rss", Active: false},
	}
	for i := range sources {
		require.NoError(t, store.Sources.CreateSource(ctx, &sources[i]))
		assert.NotZero(t, sources[i].ID)
	}

	active, err := store.Sources.ActiveFeedSources(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2, "inactive sources excluded")

	// ordered by key for deterministic runs
	assert.Equal(t, "alpha", active[0].Key)
	assert.Equal(t, "zeta", active[1].Key)

	require.NotNil(t, active[0].Interest)
	assert.Equal(t, "crypto,blockchain", *active[0].Interest)
	assert.False(t, active[0].Unfiltered())
	assert.Nil(t, active[1].Interest)
	assert.True(t, active[1].Unfiltered())
}

func TestSourceRepository_TouchLastFetched(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	src := domain.FeedSource{Key: "fsa-test", Name: "Test", FeedURL: "https://example.com/rss", Active: true}
	require.NoError(t, store.Sources.CreateSource(ctx, &src))

	active, err := store.Sources.ActiveFeedSources(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].LastFetchedAt)

	require.NoError(t, store.Sources.TouchLastFetched(ctx, "fsa-test"))

	active, err = store.Sources.ActiveFeedSources(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.NotNil(t, active[0].LastFetchedAt, "fetch attempt recorded")
}
