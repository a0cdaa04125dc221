package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/store"
)

// FavoriteStore implements store.FavoriteStore for testing.
type FavoriteStore struct {
	CreateFn      func(ctx context.Context, favorite *domain.Favorite) error
	DeleteFn      func(ctx context.Context, userID, propertyID uuid.UUID) error
	ListByUserFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Favorite, error)
	CountByUserFn func(ctx context.Context, userID uuid.UUID) (int, error)

	// Favorites backs the default implementations, keyed by ID.
	Favorites map[uuid.UUID]*domain.Favorite
}

// NewFavoriteStore creates a mock store with initialized defaults.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{Favorites: make(map[uuid.UUID]*domain.Favorite)}
}

// Ensure FavoriteStore implements store.FavoriteStore
var _ store.FavoriteStore = (*FavoriteStore)(nil)

// Create implements the FavoriteStore interface.
func (m *FavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, favorite)
	}

	for _, existing := range m.Favorites {
		if existing.UserID == favorite.UserID && existing.PropertyID == favorite.PropertyID {
			return store.ErrFavoriteExists
		}
	}
	m.Favorites[favorite.ID] = favorite
	return nil
}

// Delete implements the FavoriteStore interface.
func (m *FavoriteStore) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, propertyID)
	}

	for id, favorite := range m.Favorites {
		if favorite.UserID == userID && favorite.PropertyID == propertyID {
			delete(m.Favorites, id)
			return nil
		}
	}
	return store.ErrFavoriteNotFound
}

// ListByUser implements the FavoriteStore interface.
func (m *FavoriteStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Favorite, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, limit, offset)
	}

	favorites := make([]*domain.Favorite, 0)
	for _, favorite := range m.Favorites {
		if favorite.UserID == userID {
			favorites = append(favorites, favorite)
		}
	}
	if offset >= len(favorites) {
		return []*domain.Favorite{}, nil
	}
	end := offset + limit
	if end > len(favorites) {
		end = len(favorites)
	}
	return favorites[offset:end], nil
}

// CountByUser implements the FavoriteStore interface.
func (m *FavoriteStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID)
	}

	count := 0
	for _, favorite := range m.Favorites {
		if favorite.UserID == userID {
			count++
		}
	}
	return count, nil
}
