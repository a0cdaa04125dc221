package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
)

// FavoriteStore defines the interface for favorite data persistence.
type FavoriteStore interface {
	// Create saves a new favorite to the store.
	// Returns ErrFavoriteExists if the user already favorited the property.
	// Returns ErrInvalidEntity if the user or property reference is invalid.
	Create(ctx context.Context, favorite *domain.Favorite) error

	// Delete removes the favorite linking a user to a property.
	// Returns ErrFavoriteNotFound if no such favorite exists.
	Delete(ctx context.Context, userID, propertyID uuid.UUID) error

	// ListByUser returns a window of the user's favorites, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Favorite, error)

	// CountByUser returns how many properties the user has favorited.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
