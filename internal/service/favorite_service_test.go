package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggle(t *testing.T) {
	env := setupEnv(t)
	svc := NewFavoriteService(env.catalog, env.store)
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "calm-2")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.Toggle(ctx, "calm-2")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestFavoriteToggle_UnknownActivityCannotBeAdded(t *testing.T) {
	env := setupEnv(t)
	svc := NewFavoriteService(env.catalog, env.store)

	_, err := svc.Toggle(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrActivityNotFound)
	assert.Empty(t, env.store.Favorites())
}

func TestFavoriteToggle_StaleFavoriteCanBeRemoved(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	_, err := env.store.ToggleFavorite(ctx, "retired")
	require.NoError(t, err)

	svc := NewFavoriteService(env.catalog, env.store)
	on, err := svc.Toggle(ctx, "retired")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestFavoriteList_ResolvesInInsertionOrder(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	for _, id := range []string{"calm-3", "retired", "calm-1"} {
		_, err := env.store.ToggleFavorite(ctx, id)
		require.NoError(t, err)
	}

	list, err := NewFavoriteService(env.catalog, env.store).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "calm-3", list[0].ID)
	assert.Equal(t, "calm-1", list[1].ID)
}
