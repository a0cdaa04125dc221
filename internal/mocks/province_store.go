package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/store"
)

// ProvinceStore implements store.ProvinceStore for testing.
type ProvinceStore struct {
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Province, error)
	ListFn    func(ctx context.Context) ([]*domain.Province, error)

	// Provinces backs the default implementations, keyed by ID.
	Provinces map[uuid.UUID]*domain.Province
}

// NewProvinceStore creates a mock store with initialized defaults.
func NewProvinceStore() *ProvinceStore {
	return &ProvinceStore{Provinces: make(map[uuid.UUID]*domain.Province)}
}

// Ensure ProvinceStore implements store.ProvinceStore
var _ store.ProvinceStore = (*ProvinceStore)(nil)

// GetByID implements the ProvinceStore interface.
func (m *ProvinceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	province, exists := m.Provinces[id]
	if !exists {
		return nil, store.ErrProvinceNotFound
	}
	return province, nil
}

// List implements the ProvinceStore interface.
func (m *ProvinceStore) List(ctx context.Context) ([]*domain.Province, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	provinces := make([]*domain.Province, 0, len(m.Provinces))
	for _, province := range m.Provinces {
		provinces = append(provinces, province)
	}
	return provinces, nil
}
