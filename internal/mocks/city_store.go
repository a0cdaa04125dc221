package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/store"
)

// CityStore implements store.CityStore for testing.
type CityStore struct {
	CreateFn        func(ctx context.Context, city *domain.City) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.City, error)
	GetByPlaceFn    func(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.City, error)
	ListFn          func(ctx context.Context, limit, offset int) ([]*domain.City, error)
	CountFn         func(ctx context.Context) (int, error)
	UpdateFn        func(ctx context.Context, id uuid.UUID, params store.UpdateCityParams) (*domain.City, error)
	SetCoverImageFn func(ctx context.Context, id uuid.UUID, url string) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error

	// Cities backs the default implementations, keyed by ID.
	Cities map[uuid.UUID]*domain.City
}

// NewCityStore creates a mock store with initialized defaults.
func NewCityStore() *CityStore {
	return &CityStore{Cities: make(map[uuid.UUID]*domain.City)}
}

// Ensure CityStore implements store.CityStore
var _ store.CityStore = (*CityStore)(nil)

// Create implements the CityStore interface.
func (m *CityStore) Create(ctx context.Context, city *domain.City) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, city)
	}

	for _, existing := range m.Cities {
		if existing.ProvinceID == city.ProvinceID && existing.PlaceID == city.PlaceID {
			return store.ErrPlaceExists
		}
	}
	m.Cities[city.ID] = city
	return nil
}

// GetByID implements the CityStore interface.
func (m *CityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	city, exists := m.Cities[id]
	if !exists {
		return nil, store.ErrCityNotFound
	}
	return city, nil
}

// GetByPlace implements the CityStore interface.
func (m *CityStore) GetByPlace(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.City, error) {
	if m.GetByPlaceFn != nil {
		return m.GetByPlaceFn(ctx, provinceID, placeID)
	}

	for _, city := range m.Cities {
		if city.ProvinceID == provinceID && city.PlaceID == placeID {
			return city, nil
		}
	}
	return nil, store.ErrCityNotFound
}

// List implements the CityStore interface.
func (m *CityStore) List(ctx context.Context, limit, offset int) ([]*domain.City, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	cities := make([]*domain.City, 0, len(m.Cities))
	for _, city := range m.Cities {
		cities = append(cities, city)
	}
	if offset >= len(cities) {
		return []*domain.City{}, nil
	}
	end := offset + limit
	if end > len(cities) {
		end = len(cities)
	}
	return cities[offset:end], nil
}

// Count implements the CityStore interface.
func (m *CityStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Cities), nil
}

// Update implements the CityStore interface.
func (m *CityStore) Update(ctx context.Context, id uuid.UUID, params store.UpdateCityParams) (*domain.City, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, params)
	}

	city, exists := m.Cities[id]
	if !exists {
		return nil, store.ErrCityNotFound
	}
	if params.Name != nil {
		city.Name = *params.Name
	}
	city.UpdatedAt = time.Now().UTC()
	return city, nil
}

// SetCoverImage implements the CityStore interface.
func (m *CityStore) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	if m.SetCoverImageFn != nil {
		return m.SetCoverImageFn(ctx, id, url)
	}

	city, exists := m.Cities[id]
	if !exists {
		return store.ErrCityNotFound
	}
	city.CoverImageURL = url
	return nil
}

// Delete implements the CityStore interface.
func (m *CityStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Cities[id]; !exists {
		return store.ErrCityNotFound
	}
	delete(m.Cities, id)
	return nil
}
