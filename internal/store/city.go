package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
)

// UpdateCityParams carries the optional attributes of a city update.
// Nil fields are left unchanged. Coordinates and place ID are never
// updatable: they belong to the geocoding provider.
type UpdateCityParams struct {
	Name *string
}

// CityStore defines the interface for city data persistence.
type CityStore interface {
	// Create saves a new city to the store.
	// Returns ErrPlaceExists if a city with the same
	// (province_id, place_id) pair already exists. The composite unique
	// index behind that error is the real guard against concurrent
	// creations of the same place.
	// Returns ErrInvalidEntity if the province reference is invalid.
	Create(ctx context.Context, city *domain.City) error

	// GetByID retrieves a city by its unique ID.
	// Returns ErrCityNotFound if the city does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)

	// GetByPlace retrieves a city by its (province_id, place_id) pair.
	// Returns ErrCityNotFound if no such city exists.
	GetByPlace(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.City, error)

	// List returns a window of cities ordered by name.
	List(ctx context.Context, limit, offset int) ([]*domain.City, error)

	// Count returns the total number of cities.
	Count(ctx context.Context) (int, error)

	// Update applies a partial-attribute merge to an existing city.
	// Returns ErrCityNotFound if the city does not exist.
	Update(ctx context.Context, id uuid.UUID, params UpdateCityParams) (*domain.City, error)

	// SetCoverImage persists the public URL of the city's cover image.
	// Returns ErrCityNotFound if the city does not exist.
	SetCoverImage(ctx context.Context, id uuid.UUID, url string) error

	// Delete removes a city from the store by its ID.
	// Returns ErrCityNotFound if the city does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
