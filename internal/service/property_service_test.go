package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/mocks"
	"github.com/imovia/imovia-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type propertyServiceFixture struct {
	properties  *mocks.PropertyStore
	cities      *mocks.CityStore
	communities *mocks.CommunityStore
	svc         *PropertyService
}

func newPropertyServiceFixture(t *testing.T) *propertyServiceFixture {
	t.Helper()

	f := &propertyServiceFixture{
		properties:  mocks.NewPropertyStore(),
		cities:      mocks.NewCityStore(),
		communities: mocks.NewCommunityStore(),
	}
	f.svc = NewPropertyService(f.properties, f.cities, f.communities, nil)
	return f
}

func (f *propertyServiceFixture) seedCity(t *testing.T) *domain.City {
	t.Helper()

	city, err := domain.NewCity(uuid.New(), "Porto Alegre", 0, 0, "place-42")
	require.NoError(t, err)
	f.cities.Cities[city.ID] = city
	return city
}

func TestPropertyService_Create(t *testing.T) {
	t.Parallel()

	t.Run("listing in an existing city", func(t *testing.T) {
		t.Parallel()

		f := newPropertyServiceFixture(t)
		city := f.seedCity(t)
		userID := uuid.New()

		property, err := f.svc.Create(context.Background(), userID, CreatePropertyParams{
			CityID:     city.ID,
			Title:      "Apartamento 2 quartos",
			PriceCents: 45_000_000,
		})

		require.NoError(t, err)
		assert.Equal(t, userID, property.UserID)
		assert.Equal(t, city.ID, property.CityID)
		assert.Nil(t, property.CommunityID)
		assert.Len(t, f.properties.Properties, 1)
	})

	t.Run("unknown city", func(t *testing.T) {
		t.Parallel()

		f := newPropertyServiceFixture(t)

		_, err := f.svc.Create(context.Background(), uuid.New(), CreatePropertyParams{
			CityID:     uuid.New(),
			Title:      "Casa",
			PriceCents: 1,
		})

		assert.ErrorIs(t, err, ErrInvalidReference)
		assert.Empty(t, f.properties.Properties)
	})

	t.Run("unknown community", func(t *testing.T) {
		t.Parallel()

		f := newPropertyServiceFixture(t)
		city := f.seedCity(t)
		missing := uuid.New()

		_, err := f.svc.Create(context.Background(), uuid.New(), CreatePropertyParams{
			CityID:      city.ID,
			CommunityID: &missing,
			Title:       "Casa",
			PriceCents:  1,
		})

		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	t.Parallel()

	f := newPropertyServiceFixture(t)

	err := f.svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}
