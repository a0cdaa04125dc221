package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
)

// PropertyStore defines the interface for property data persistence.
type PropertyStore interface {
	// Create saves a new property listing to the store.
	// Returns ErrInvalidEntity if the user, city or community reference
	// is invalid.
	Create(ctx context.Context, property *domain.Property) error

	// GetByID retrieves a property by its unique ID.
	// Returns ErrPropertyNotFound if the property does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// List returns a window of properties ordered by newest first.
	List(ctx context.Context, limit, offset int) ([]*domain.Property, error)

	// Count returns the total number of properties.
	Count(ctx context.Context) (int, error)

	// Delete removes a property from the store by its ID.
	// Returns ErrPropertyNotFound if the property does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
