package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/mocks"
	"github.com/imovia/imovia-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteServiceFixture(t *testing.T) (*FavoriteService, *mocks.FavoriteStore, *mocks.PropertyStore) {
	t.Helper()

	favorites := mocks.NewFavoriteStore()
	properties := mocks.NewPropertyStore()
	return NewFavoriteService(favorites, properties, nil), favorites, properties
}

func seedProperty(t *testing.T, properties *mocks.PropertyStore) *domain.Property {
	t.Helper()

	property, err := domain.NewProperty(
		uuid.New(), uuid.New(), nil, "Apartamento", "", 45_000_000,
	)
	require.NoError(t, err)
	properties.Properties[property.ID] = property
	return property
}

func TestFavoriteService_Add(t *testing.T) {
	t.Parallel()

	t.Run("favorite an existing property", func(t *testing.T) {
		t.Parallel()

		svc, favorites, properties := newFavoriteServiceFixture(t)
		property := seedProperty(t, properties)
		userID := uuid.New()

		favorite, err := svc.Add(context.Background(), userID, property.ID)

		require.NoError(t, err)
		assert.Equal(t, userID, favorite.UserID)
		assert.Equal(t, property.ID, favorite.PropertyID)
		assert.Len(t, favorites.Favorites, 1)
	})

	t.Run("favoriting twice conflicts", func(t *testing.T) {
		t.Parallel()

		svc, favorites, properties := newFavoriteServiceFixture(t)
		property := seedProperty(t, properties)
		userID := uuid.New()

		_, err := svc.Add(context.Background(), userID, property.ID)
		require.NoError(t, err)

		_, err = svc.Add(context.Background(), userID, property.ID)
		assert.ErrorIs(t, err, store.ErrFavoriteExists)
		assert.Len(t, favorites.Favorites, 1)
	})

	t.Run("missing property", func(t *testing.T) {
		t.Parallel()

		svc, favorites, _ := newFavoriteServiceFixture(t)

		_, err := svc.Add(context.Background(), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, store.ErrPropertyNotFound)
		assert.Empty(t, favorites.Favorites)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Parallel()

	svc, _, properties := newFavoriteServiceFixture(t)
	property := seedProperty(t, properties)
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, property.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), userID, property.ID))
	assert.ErrorIs(t,
		svc.Remove(context.Background(), userID, property.ID),
		store.ErrFavoriteNotFound)
}

func TestFavoriteService_ListByUser(t *testing.T) {
	t.Parallel()

	svc, _, properties := newFavoriteServiceFixture(t)
	userID := uuid.New()
	other := uuid.New()

	for i := 0; i < 3; i++ {
		property := seedProperty(t, properties)
		_, err := svc.Add(context.Background(), userID, property.ID)
		require.NoError(t, err)
	}
	stray := seedProperty(t, properties)
	_, err := svc.Add(context.Background(), other, stray.ID)
	require.NoError(t, err)

	page, err := svc.ListByUser(context.Background(), userID, domain.PageRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)
	assert.Equal(t, 1, page.Pages)
	assert.Len(t, page.Items, 3)
}
