package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/store"
)

// PropertyStore implements store.PropertyStore for testing.
type PropertyStore struct {
	CreateFn  func(ctx context.Context, property *domain.Property) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	ListFn    func(ctx context.Context, limit, offset int) ([]*domain.Property, error)
	CountFn   func(ctx context.Context) (int, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Properties backs the default implementations, keyed by ID.
	Properties map[uuid.UUID]*domain.Property
}

// NewPropertyStore creates a mock store with initialized defaults.
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{Properties: make(map[uuid.UUID]*domain.Property)}
}

// Ensure PropertyStore implements store.PropertyStore
var _ store.PropertyStore = (*PropertyStore)(nil)

// Create implements the PropertyStore interface.
func (m *PropertyStore) Create(ctx context.Context, property *domain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, property)
	}
	m.Properties[property.ID] = property
	return nil
}

// GetByID implements the PropertyStore interface.
func (m *PropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	property, exists := m.Properties[id]
	if !exists {
		return nil, store.ErrPropertyNotFound
	}
	return property, nil
}

// List implements the PropertyStore interface.
func (m *PropertyStore) List(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	properties := make([]*domain.Property, 0, len(m.Properties))
	for _, property := range m.Properties {
		properties = append(properties, property)
	}
	if offset >= len(properties) {
		return []*domain.Property{}, nil
	}
	end := offset + limit
	if end > len(properties) {
		end = len(properties)
	}
	return properties[offset:end], nil
}

// Count implements the PropertyStore interface.
func (m *PropertyStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Properties), nil
}

// Delete implements the PropertyStore interface.
func (m *PropertyStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Properties[id]; !exists {
		return store.ErrPropertyNotFound
	}
	delete(m.Properties, id)
	return nil
}
