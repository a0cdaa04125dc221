package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/blobstore"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/geocoding"
	"github.com/imovia/imovia-api/internal/mocks"
	"github.com/imovia/imovia-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorageURL = "https://cdn.example.com"

type cityServiceFixture struct {
	cities    *mocks.CityStore
	provinces *mocks.ProvinceStore
	geocoder  *mocks.Geocoder
	blobs     *mocks.BlobStore
	svc       *CityService
}

func newCityServiceFixture(t *testing.T) *cityServiceFixture {
	t.Helper()

	f := &cityServiceFixture{
		cities:    mocks.NewCityStore(),
		provinces: mocks.NewProvinceStore(),
		geocoder:  &mocks.Geocoder{},
		blobs:     mocks.NewBlobStore(),
	}
	f.svc = NewCityService(f.cities, f.provinces, f.geocoder, f.blobs, testStorageURL, nil)
	return f
}

func (f *cityServiceFixture) seedProvince(t *testing.T) *domain.Province {
	t.Helper()

	province := &domain.Province{ID: uuid.New(), Name: "Rio Grande do Sul", ShortName: "RS"}
	f.provinces.Provinces[province.ID] = province
	return province
}

func TestCityService_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists the geocoded canonical place", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		province := f.seedProvince(t)
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			assert.Equal(t, "RS", regionCode)
			return &geocoding.Place{
				Name:      "Porto Alegre",
				Latitude:  -30.0346,
				Longitude: -51.2177,
				PlaceID:   "place-42",
			}, nil
		}

		city, err := f.svc.Create(context.Background(), province.ID, "porto alegre")

		require.NoError(t, err)
		assert.Equal(t, "Porto Alegre", city.Name)
		assert.Equal(t, -30.0346, city.Latitude)
		assert.Equal(t, -51.2177, city.Longitude)
		assert.Equal(t, "place-42", city.PlaceID)
		assert.Equal(t, province.ID, city.ProvinceID)
	})

	t.Run("same place twice yields one row and a conflict", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		province := f.seedProvince(t)
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			// Different spellings of the same place resolve to one PlaceID.
			return &geocoding.Place{Name: "Porto Alegre", PlaceID: "place-42"}, nil
		}

		_, err := f.svc.Create(context.Background(), province.ID, "Porto Alegre")
		require.NoError(t, err)

		_, err = f.svc.Create(context.Background(), province.ID, "PORTO ALEGRE")
		assert.ErrorIs(t, err, store.ErrPlaceExists)
		assert.Len(t, f.cities.Cities, 1)
	})

	t.Run("same place id in another province is a distinct city", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		provinceA := f.seedProvince(t)
		provinceB := &domain.Province{ID: uuid.New(), Name: "Santa Catarina", ShortName: "SC"}
		f.provinces.Provinces[provinceB.ID] = provinceB
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			return &geocoding.Place{Name: placeName, PlaceID: "place-42"}, nil
		}

		_, err := f.svc.Create(context.Background(), provinceA.ID, "Centro")
		require.NoError(t, err)

		_, err = f.svc.Create(context.Background(), provinceB.ID, "Centro")
		require.NoError(t, err)
		assert.Len(t, f.cities.Cities, 2)
	})

	t.Run("unknown province", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)

		_, err := f.svc.Create(context.Background(), uuid.New(), "Porto Alegre")

		assert.ErrorIs(t, err, ErrInvalidProvince)
		// The geocoder is never consulted for an invalid province.
		assert.Empty(t, f.geocoder.Calls)
	})

	t.Run("ungeocodable name", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		province := f.seedProvince(t)

		_, err := f.svc.Create(context.Background(), province.ID, "xyzzy")

		assert.ErrorIs(t, err, ErrUngeocodableName)
		assert.Empty(t, f.cities.Cities)
	})

	t.Run("insert failure leaves no partial state", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		province := f.seedProvince(t)
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			return &geocoding.Place{Name: "Porto Alegre", PlaceID: "place-42"}, nil
		}
		f.cities.CreateFn = func(ctx context.Context, city *domain.City) error {
			return errors.New("connection reset")
		}

		_, err := f.svc.Create(context.Background(), province.ID, "Porto Alegre")

		assert.Error(t, err)
		assert.Empty(t, f.cities.Cities)
	})
}

func TestCityService_List(t *testing.T) {
	t.Parallel()

	t.Run("invalid pagination rejected before any query", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		queried := false
		f.cities.CountFn = func(ctx context.Context) (int, error) {
			queried = true
			return 0, nil
		}

		_, err := f.svc.List(context.Background(), domain.PageRequest{Page: 0, PerPage: 10})

		assert.ErrorIs(t, err, domain.ErrInvalidPagination)
		assert.False(t, queried)
	})

	t.Run("count failure fails the listing", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		f.cities.CountFn = func(ctx context.Context) (int, error) {
			return 0, errors.New("connection reset")
		}

		_, err := f.svc.List(context.Background(), domain.PageRequest{Page: 1, PerPage: 10})

		assert.Error(t, err)
	})
}

func TestCityService_ReplaceCoverImage(t *testing.T) {
	t.Parallel()

	seedCity := func(t *testing.T, f *cityServiceFixture, coverURL string) *domain.City {
		t.Helper()

		province := f.seedProvince(t)
		city, err := domain.NewCity(province.ID, "Porto Alegre", 0, 0, "place-42")
		require.NoError(t, err)
		city.CoverImageURL = coverURL
		f.cities.Cities[city.ID] = city
		return city
	}

	t.Run("no prior cover skips the delete", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		city := seedCity(t, f, "")

		info, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		require.NoError(t, err)
		assert.Empty(t, f.blobs.Deletes)
		assert.Equal(t, "cities/"+city.ID.String()+"/cover.jpg", info.Key)
		assert.Equal(t, testStorageURL+"/cities/"+city.ID.String()+"/cover.jpg", city.CoverImageURL)
	})

	t.Run("failing delete of the old blob does not block replacement", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		city := seedCity(t, f, testStorageURL+"/cities/old/old.jpg")
		f.blobs.DeleteFn = func(ctx context.Context, key string) error {
			return errors.New("object locked")
		}

		_, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		require.NoError(t, err)
		require.Len(t, f.blobs.Uploads, 1)
		assert.Equal(t, testStorageURL+"/cities/"+city.ID.String()+"/cover.jpg", city.CoverImageURL)
	})

	t.Run("foreign cover URL is left alone", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		city := seedCity(t, f, "https://elsewhere.example.com/x.jpg")

		_, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		require.NoError(t, err)
		assert.Empty(t, f.blobs.Deletes)
	})

	t.Run("upload failure aborts before persisting", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		old := testStorageURL + "/cities/old/old.jpg"
		city := seedCity(t, f, old)
		f.blobs.UploadFn = func(ctx context.Context, key, contentType string, r io.Reader, size int64) (blobstore.UploadInfo, error) {
			return blobstore.UploadInfo{}, errors.New("storage unavailable")
		}

		_, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		assert.Error(t, err)
		assert.Equal(t, old, city.CoverImageURL)
	})

	t.Run("persist failure fails the operation", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		city := seedCity(t, f, "")
		f.cities.SetCoverImageFn = func(ctx context.Context, id uuid.UUID, url string) error {
			return errors.New("connection reset")
		}

		_, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		assert.Error(t, err)
		assert.Empty(t, city.CoverImageURL)
	})

	t.Run("filename whitespace collapses to hyphens", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		city := seedCity(t, f, "")

		info, err := f.svc.ReplaceCoverImage(
			context.Background(), city.ID, "my  new\tcover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		require.NoError(t, err)
		assert.Equal(t, "cities/"+city.ID.String()+"/my-new-cover.jpg", info.Key)
	})

	t.Run("missing city", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)

		_, err := f.svc.ReplaceCoverImage(
			context.Background(), uuid.New(), "cover.jpg", "image/jpeg",
			strings.NewReader("bytes"), 5,
		)

		assert.ErrorIs(t, err, store.ErrCityNotFound)
		assert.Empty(t, f.blobs.Uploads)
	})
}

func TestCityService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("missing city causes no mutation", func(t *testing.T) {
		t.Parallel()

		f := newCityServiceFixture(t)
		deleted := false
		f.cities.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		}

		err := f.svc.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, store.ErrCityNotFound)
		assert.False(t, deleted)
	})
}
