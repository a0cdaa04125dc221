package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/store"
)

// CommunityStore implements store.CommunityStore for testing.
type CommunityStore struct {
	CreateFn        func(ctx context.Context, community *domain.Community) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	GetByPlaceFn    func(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.Community, error)
	ListFn          func(ctx context.Context, limit, offset int) ([]*domain.Community, error)
	CountFn         func(ctx context.Context) (int, error)
	UpdateFn        func(ctx context.Context, id uuid.UUID, params store.UpdateCommunityParams) (*domain.Community, error)
	SetCoverImageFn func(ctx context.Context, id uuid.UUID, url string) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error

	// Communities backs the default implementations, keyed by ID.
	Communities map[uuid.UUID]*domain.Community
}

// NewCommunityStore creates a mock store with initialized defaults.
func NewCommunityStore() *CommunityStore {
	return &CommunityStore{Communities: make(map[uuid.UUID]*domain.Community)}
}

// Ensure CommunityStore implements store.CommunityStore
var _ store.CommunityStore = (*CommunityStore)(nil)

// Create implements the CommunityStore interface.
func (m *CommunityStore) Create(ctx context.Context, community *domain.Community) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, community)
	}

	for _, existing := range m.Communities {
		if existing.ProvinceID == community.ProvinceID && existing.PlaceID == community.PlaceID {
			return store.ErrPlaceExists
		}
	}
	m.Communities[community.ID] = community
	return nil
}

// GetByID implements the CommunityStore interface.
func (m *CommunityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	community, exists := m.Communities[id]
	if !exists {
		return nil, store.ErrCommunityNotFound
	}
	return community, nil
}

// GetByPlace implements the CommunityStore interface.
func (m *CommunityStore) GetByPlace(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.Community, error) {
	if m.GetByPlaceFn != nil {
		return m.GetByPlaceFn(ctx, provinceID, placeID)
	}

	for _, community := range m.Communities {
		if community.ProvinceID == provinceID && community.PlaceID == placeID {
			return community, nil
		}
	}
	return nil, store.ErrCommunityNotFound
}

// List implements the CommunityStore interface.
func (m *CommunityStore) List(ctx context.Context, limit, offset int) ([]*domain.Community, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	communities := make([]*domain.Community, 0, len(m.Communities))
	for _, community := range m.Communities {
		communities = append(communities, community)
	}
	if offset >= len(communities) {
		return []*domain.Community{}, nil
	}
	end := offset + limit
	if end > len(communities) {
		end = len(communities)
	}
	return communities[offset:end], nil
}

// Count implements the CommunityStore interface.
func (m *CommunityStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Communities), nil
}

// Update implements the CommunityStore interface.
func (m *CommunityStore) Update(ctx context.Context, id uuid.UUID, params store.UpdateCommunityParams) (*domain.Community, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, params)
	}

	community, exists := m.Communities[id]
	if !exists {
		return nil, store.ErrCommunityNotFound
	}
	if params.Name != nil {
		community.Name = *params.Name
	}
	community.UpdatedAt = time.Now().UTC()
	return community, nil
}

// SetCoverImage implements the CommunityStore interface.
func (m *CommunityStore) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	if m.SetCoverImageFn != nil {
		return m.SetCoverImageFn(ctx, id, url)
	}

	community, exists := m.Communities[id]
	if !exists {
		return store.ErrCommunityNotFound
	}
	community.CoverImageURL = url
	return nil
}

// Delete implements the CommunityStore interface.
func (m *CommunityStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Communities[id]; !exists {
		return store.ErrCommunityNotFound
	}
	delete(m.Communities, id)
	return nil
}
