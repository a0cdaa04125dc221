package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/geocoding"
	"github.com/imovia/imovia-api/internal/mocks"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorageURL = "https://cdn.example.com"

type cityHandlerFixture struct {
	cities    *mocks.CityStore
	provinces *mocks.ProvinceStore
	geocoder  *mocks.Geocoder
	blobs     *mocks.BlobStore
	router    chi.Router
}

func newCityHandlerFixture(t *testing.T) *cityHandlerFixture {
	t.Helper()

	f := &cityHandlerFixture{
		cities:    mocks.NewCityStore(),
		provinces: mocks.NewProvinceStore(),
		geocoder:  &mocks.Geocoder{},
		blobs:     mocks.NewBlobStore(),
	}

	svc := service.NewCityService(f.cities, f.provinces, f.geocoder, f.blobs, testStorageURL, nil)
	handler := NewCityHandler(svc)

	r := chi.NewRouter()
	r.Get("/cities", handler.List)
	r.Post("/cities", handler.Create)
	r.Get("/cities/{id}", handler.Get)
	r.Patch("/cities/{id}", handler.Update)
	r.Put("/cities/{id}/cover", handler.UploadCoverImage)
	r.Delete("/cities/{id}", handler.Delete)
	f.router = r

	return f
}

func (f *cityHandlerFixture) seedProvince(t *testing.T, shortName string) *domain.Province {
	t.Helper()

	province := &domain.Province{ID: uuid.New(), Name: "Rio Grande do Sul", ShortName: shortName}
	f.provinces.Provinces[province.ID] = province
	return province
}

func TestCityHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores the geocoded place, not the typed name", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			return &geocoding.Place{
				Name:      "Porto Alegre",
				Latitude:  -30.03,
				Longitude: -51.23,
				PlaceID:   "place-42",
			}, nil
		}

		body := `{"province_id":"` + province.ID.String() + `","name":"porto alegre"}`
		req := httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var city domain.City
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &city))
		assert.Equal(t, "Porto Alegre", city.Name)
		assert.Equal(t, "place-42", city.PlaceID)
		assert.Equal(t, province.ID, city.ProvinceID)
	})

	t.Run("second create for the same place conflicts", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")
		f.geocoder.GeocodeFn = func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
			return &geocoding.Place{Name: "Porto Alegre", PlaceID: "place-42"}, nil
		}

		body := `{"province_id":"` + province.ID.String() + `","name":"Porto Alegre"}`

		req := httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		// Different typed spelling, same geocoded place.
		body = `{"province_id":"` + province.ID.String() + `","name":"PORTO  alegre"}`
		req = httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec = httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Len(t, f.cities.Cities, 1)
	})

	t.Run("unknown province", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)

		body := `{"province_id":"` + uuid.NewString() + `","name":"Porto Alegre"}`
		req := httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("ungeocodable name", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")

		// Mock geocoder returns ErrNoMatch by default.
		body := `{"province_id":"` + province.ID.String() + `","name":"xyzzy"}`
		req := httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Empty(t, f.cities.Cities)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")

		body := `{"province_id":"` + province.ID.String() + `"}`
		req := httptest.NewRequest("POST", "/cities", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCityHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("defaults applied when query is empty", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)

		req := httptest.NewRequest("GET", "/cities", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var page domain.Page[*domain.City]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PerPage)
		assert.Equal(t, 0, page.Count)
		assert.Equal(t, 0, page.Pages)
		assert.NotNil(t, page.Items)
	})

	t.Run("explicit zero per_page is rejected", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)

		req := httptest.NewRequest("GET", "/cities?per_page=0", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("page count rounds up", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")
		for i := 0; i < 7; i++ {
			city, err := domain.NewCity(province.ID, "City", 0, 0, uuid.NewString())
			require.NoError(t, err)
			f.cities.Cities[city.ID] = city
		}

		req := httptest.NewRequest("GET", "/cities?page=1&per_page=3", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var page domain.Page[*domain.City]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 7, page.Count)
		assert.Equal(t, 3, page.Pages)
		assert.Len(t, page.Items, 3)
	})
}

func TestCityHandler_Get(t *testing.T) {
	t.Parallel()

	f := newCityHandlerFixture(t)

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cities/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing city", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cities/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCityHandler_UploadCoverImage(t *testing.T) {
	t.Parallel()

	f := newCityHandlerFixture(t)
	province := f.seedProvince(t, "RS")
	city, err := domain.NewCity(province.ID, "Porto Alegre", -30.03, -51.23, "place-42")
	require.NoError(t, err)
	city.CoverImageURL = testStorageURL + "/cities/" + city.ID.String() + "/old.jpg"
	f.cities.Cities[city.ID] = city

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "new cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("PUT", "/cities/"+city.ID.String()+"/cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Old blob deleted, new one uploaded under the sanitized key.
	require.Len(t, f.blobs.Deletes, 1)
	assert.Equal(t, "cities/"+city.ID.String()+"/old.jpg", f.blobs.Deletes[0])
	require.Len(t, f.blobs.Uploads, 1)
	assert.Equal(t, "cities/"+city.ID.String()+"/new-cover.jpg", f.blobs.Uploads[0].Key)

	var resp CoverImageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testStorageURL+"/cities/"+city.ID.String()+"/new-cover.jpg", resp.URL)
	assert.Equal(t, city.CoverImageURL, resp.URL)
}

func TestCityHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("existing city", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)
		province := f.seedProvince(t, "RS")
		city, err := domain.NewCity(province.ID, "Porto Alegre", 0, 0, "place-42")
		require.NoError(t, err)
		f.cities.Cities[city.ID] = city

		req := httptest.NewRequest("DELETE", "/cities/"+city.ID.String(), nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, f.cities.Cities)
	})

	t.Run("missing city", func(t *testing.T) {
		t.Parallel()

		f := newCityHandlerFixture(t)

		req := httptest.NewRequest("DELETE", "/cities/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
