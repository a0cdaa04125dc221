package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
)

// ProvinceStore defines the interface for province data persistence.
// Provinces are seeded by migrations and read-only at runtime; the
// service layer only ever needs to resolve one before geocoding.
type ProvinceStore interface {
	// GetByID retrieves a province by its unique ID.
	// Returns ErrProvinceNotFound if the province does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error)

	// List returns all provinces ordered by name.
	List(ctx context.Context) ([]*domain.Province, error)
}
