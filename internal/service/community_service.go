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

// CommunityService implements the community resource operations. The
// contract mirrors CityService: same creation protocol, same pagination
// policy, same cover-image replacement sequence.
type CommunityService struct {
	communities store.CommunityStore
	provinces   store.ProvinceStore
	geocoder    geocoding.Geocoder
	blobs       blobstore.Client
	storageURL  string
	logger      *slog.Logger
}

// NewCommunityService creates a CommunityService with its collaborators.
// If log is nil, the default logger is used.
func NewCommunityService(
	communities store.CommunityStore,
	provinces store.ProvinceStore,
	geocoder geocoding.Geocoder,
	blobs blobstore.Client,
	storageURL string,
	log *slog.Logger,
) *CommunityService {
	if log == nil {
		log = slog.Default()
	}

	return &CommunityService{
		communities: communities,
		provinces:   provinces,
		geocoder:    geocoder,
		blobs:       blobs,
		storageURL:  storageURL,
		logger:      log.With(slog.String("component", "community_service")),
	}
}

// List returns one page of communities plus the total count. Count and
// page rows are fetched concurrently without a transaction; see
// CityService.List for the snapshot-skew policy.
func (s *CommunityService) List(
	ctx context.Context,
	req domain.PageRequest,
) (*domain.Page[*domain.Community], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		count       int
		communities []*domain.Community
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.communities.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		communities, err = s.communities.List(gctx, req.PerPage, req.Offset())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(req, count, communities), nil
}

// Get retrieves one community by ID.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityService) Get(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	return s.communities.GetByID(ctx, id)
}

// Create creates a community exactly once per real-world place, with
// the same strictly ordered sequence as CityService.Create: province
// lookup, geocode, best-effort existence check, insert of the
// provider's canonical values.
//
// Returns ErrInvalidProvince when the province does not exist,
// ErrUngeocodableName when the provider has no match, and
// store.ErrPlaceExists when the place is already present.
func (s *CommunityService) Create(
	ctx context.Context,
	provinceID uuid.UUID,
	name string,
) (*domain.Community, error) {
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
			log.Debug("community name did not geocode",
				slog.String("province", province.ShortName))
			return nil, ErrUngeocodableName
		}
		return nil, err
	}

	if _, err := s.communities.GetByPlace(ctx, province.ID, place.PlaceID); err == nil {
		log.Debug("community already exists for place",
			slog.String("province_id", province.ID.String()),
			slog.String("place_id", place.PlaceID))
		return nil, store.ErrPlaceExists
	} else if !errors.Is(err, store.ErrCommunityNotFound) {
		return nil, err
	}

	community, err := domain.NewCommunity(province.ID, place.Name, place.Latitude, place.Longitude, place.PlaceID)
	if err != nil {
		return nil, err
	}

	if err := s.communities.Create(ctx, community); err != nil {
		return nil, err
	}

	log.Info("community created",
		slog.String("community_id", community.ID.String()),
		slog.String("place_id", community.PlaceID))
	return community, nil
}

// Update applies a partial-attribute merge to the community.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityService) Update(
	ctx context.Context,
	id uuid.UUID,
	params store.UpdateCommunityParams,
) (*domain.Community, error) {
	return s.communities.Update(ctx, id, params)
}

// ReplaceCoverImage replaces the community's cover image following the
// replacement protocol. Returns store.ErrCommunityNotFound if the
// community does not exist; upload and persist failures propagate
// as-is.
func (s *CommunityService) ReplaceCoverImage(
	ctx context.Context,
	id uuid.UUID,
	filename, contentType string,
	r io.Reader,
	size int64,
) (blobstore.UploadInfo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	community, err := s.communities.GetByID(ctx, id)
	if err != nil {
		return blobstore.UploadInfo{}, err
	}

	return replaceCoverImage(
		ctx, log, s.blobs, s.storageURL, "communities",
		community.ID, community.CoverImageURL, filename, contentType, r, size,
		func(ctx context.Context, url string) error {
			return s.communities.SetCoverImage(ctx, community.ID, url)
		},
	)
}

// Delete removes the community after checking it exists.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.communities.GetByID(ctx, id); err != nil {
		return err
	}
	return s.communities.Delete(ctx, id)
}
