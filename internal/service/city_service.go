package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/imovia/imovia-api/internal/blobstore"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/geocoding"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// CityService implements the city resource operations: paginated
// listing, idempotent creation through the geocoding provider, partial
// updates, cover-image replacement and deletion.
type CityService struct {
	cities     store.CityStore
	provinces  store.ProvinceStore
	geocoder   geocoding.Geocoder
	blobs      blobstore.Client
	storageURL string
	logger     *slog.Logger
}

// NewCityService creates a CityService with its collaborators.
// storageURL is the public base URL cover-image URLs are derived from.
// If log is nil, the default logger is used.
func NewCityService(
	cities store.CityStore,
	provinces store.ProvinceStore,
	geocoder geocoding.Geocoder,
	blobs blobstore.Client,
	storageURL string,
	log *slog.Logger,
) *CityService {
	if log == nil {
		log = slog.Default()
	}

	return &CityService{
		cities:     cities,
		provinces:  provinces,
		geocoder:   geocoder,
		blobs:      blobs,
		storageURL: storageURL,
		logger:     log.With(slog.String("component", "city_service")),
	}
}

// List returns one page of cities plus the total count. The count and
// the page rows are fetched concurrently on the shared pool without a
// transaction: both queries are read-only, so under concurrent writes
// the totals may skew by the handful of rows written in between, which
// this service accepts rather than paying for a snapshot transaction on
// every listing.
func (s *CityService) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.City], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		count  int
		cities []*domain.City
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.cities.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cities, err = s.cities.List(gctx, req.PerPage, req.Offset())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(req, count, cities), nil
}

// Get retrieves one city by ID.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityService) Get(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	return s.cities.GetByID(ctx, id)
}

// Create creates a city exactly once per real-world place. The sequence
// is strictly ordered: resolve the province, geocode the name within
// the province's region, check for an existing row with the geocoded
// place ID, then insert the provider's canonical name and coordinates.
// The existence check is a best-effort optimization; the unique index
// on (province_id, place_id) is what actually prevents duplicate rows
// under concurrent requests, surfacing as store.ErrPlaceExists from
// Create.
//
// Returns ErrInvalidProvince when the province does not exist,
// ErrUngeocodableName when the provider has no match, and
// store.ErrPlaceExists when the place is already present. If the insert
// fails after a successful geocode no partial state remains.
func (s *CityService) Create(ctx context.Context, provinceID uuid.UUID, name string) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	province, err := s.provinces.GetByID(ctx, provinceID)
	if err != nil {
		if errors.Is(err, store.ErrProvinceNotFound) {
			return nil, ErrInvalidProvince
		}
		return nil, err
	}

	place, err := s.geocoder.Geocode(ctx, province.ShortName, name)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoMatch) {
			log.Debug("city name did not geocode",
				slog.String("province", province.ShortName))
			return nil, ErrUngeocodableName
		}
		return nil, err
	}

	if _, err := s.cities.GetByPlace(ctx, province.ID, place.PlaceID); err == nil {
		log.Debug("city already exists for place",
			slog.String("province_id", province.ID.String()),
			slog.String("place_id", place.PlaceID))
		return nil, store.ErrPlaceExists
	} else if !errors.Is(err, store.ErrCityNotFound) {
		return nil, err
	}

	city, err := domain.NewCity(province.ID, place.Name, place.Latitude, place.Longitude, place.PlaceID)
	if err != nil {
		return nil, err
	}

	if err := s.cities.Create(ctx, city); err != nil {
		return nil, err
	}

	log.Info("city created",
		slog.String("city_id", city.ID.String()),
		slog.String("place_id", city.PlaceID))
	return city, nil
}

// Update applies a partial-attribute merge to the city. Existence is
// signalled by the store's update itself, so there is no pre-check.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityService) Update(ctx context.Context, id uuid.UUID, params store.UpdateCityParams) (*domain.City, error) {
	return s.cities.Update(ctx, id, params)
}

// ReplaceCoverImage replaces the city's cover image following the
// replacement protocol: best-effort delete of the old blob, upload of
// the new one under a deterministic key, then persist of the new public
// URL. Returns store.ErrCityNotFound if the city does not exist; upload
// and persist failures propagate as-is.
func (s *CityService) ReplaceCoverImage(
	ctx context.Context,
	id uuid.UUID,
	filename, contentType string,
	r io.Reader,
	size int64,
) (blobstore.UploadInfo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return blobstore.UploadInfo{}, err
	}

	return replaceCoverImage(
		ctx, log, s.blobs, s.storageURL, "cities",
		city.ID, city.CoverImageURL, filename, contentType, r, size,
		func(ctx context.Context, url string) error {
			return s.cities.SetCoverImage(ctx, city.ID, url)
		},
	)
}

// Delete removes the city after checking it exists.
// Returns store.ErrCityNotFound if the city does not exist; in that
// case no store mutation occurs.
func (s *CityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.cities.GetByID(ctx, id); err != nil {
		return err
	}
	return s.cities.Delete(ctx, id)
}
