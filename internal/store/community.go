package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
)

// UpdateCommunityParams carries the optional attributes of a community
// update. Nil fields are left unchanged.
type UpdateCommunityParams struct {
	Name *string
}

// CommunityStore defines the interface for community data persistence.
// The contract mirrors CityStore, including the (province_id, place_id)
// uniqueness guarantee.
type CommunityStore interface {
	// Create saves a new community to the store.
	// Returns ErrPlaceExists if a community with the same
	// (province_id, place_id) pair already exists.
	// Returns ErrInvalidEntity if the province reference is invalid.
	Create(ctx context.Context, community *domain.Community) error

	// GetByID retrieves a community by its unique ID.
	// Returns ErrCommunityNotFound if the community does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error)

	// GetByPlace retrieves a community by its (province_id, place_id) pair.
	// Returns ErrCommunityNotFound if no such community exists.
	GetByPlace(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.Community, error)

	// List returns a window of communities ordered by name.
	List(ctx context.Context, limit, offset int) ([]*domain.Community, error)

	// Count returns the total number of communities.
	Count(ctx context.Context) (int, error)

	// Update applies a partial-attribute merge to an existing community.
	// Returns ErrCommunityNotFound if the community does not exist.
	Update(ctx context.Context, id uuid.UUID, params UpdateCommunityParams) (*domain.Community, error)

	// SetCoverImage persists the public URL of the community's cover image.
	// Returns ErrCommunityNotFound if the community does not exist.
	SetCoverImage(ctx context.Context, id uuid.UUID, url string) error

	// Delete removes a community from the store by its ID.
	// Returns ErrCommunityNotFound if the community does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
