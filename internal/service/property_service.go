package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// CreatePropertyParams carries the attributes of a new property listing.
type CreatePropertyParams struct {
	CityID      uuid.UUID
	CommunityID *uuid.UUID
	Title       string
	Description string
	PriceCents  int64
}

// PropertyService implements the property listing operations.
type PropertyService struct {
	properties  store.PropertyStore
	cities      store.CityStore
	communities store.CommunityStore
	logger      *slog.Logger
}

// NewPropertyService creates a PropertyService with its collaborators.
// If log is nil, the default logger is used.
func NewPropertyService(
	properties store.PropertyStore,
	cities store.CityStore,
	communities store.CommunityStore,
	log *slog.Logger,
) *PropertyService {
	if log == nil {
		log = slog.Default()
	}

	return &PropertyService{
		properties:  properties,
		cities:      cities,
		communities: communities,
		logger:      log.With(slog.String("component", "property_service")),
	}
}

// Create publishes a new property listed by the given user.
// Returns ErrInvalidReference when the city or community does not
// exist.
func (s *PropertyService) Create(
	ctx context.Context,
	userID uuid.UUID,
	params CreatePropertyParams,
) (*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.cities.GetByID(ctx, params.CityID); err != nil {
		if errors.Is(err, store.ErrCityNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	if params.CommunityID != nil {
		if _, err := s.communities.GetByID(ctx, *params.CommunityID); err != nil {
			if errors.Is(err, store.ErrCommunityNotFound) {
				return nil, ErrInvalidReference
			}
			return nil, err
		}
	}

	property, err := domain.NewProperty(
		userID,
		params.CityID,
		params.CommunityID,
		params.Title,
		params.Description,
		params.PriceCents,
	)
	if err != nil {
		return nil, err
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	log.Info("property created",
		slog.String("property_id", property.ID.String()),
		slog.String("user_id", userID.String()))
	return property, nil
}

// Get retrieves one property by ID.
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

// List returns one page of properties plus the total count, newest
// first. Count and page rows are fetched concurrently without a
// transaction; see CityService.List for the snapshot-skew policy.
func (s *PropertyService) List(
	ctx context.Context,
	req domain.PageRequest,
) (*domain.Page[*domain.Property], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		count      int
		properties []*domain.Property
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.properties.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		properties, err = s.properties.List(gctx, req.PerPage, req.Offset())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(req, count, properties), nil
}

// Delete removes the property after checking it exists.
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.properties.GetByID(ctx, id); err != nil {
		return err
	}
	return s.properties.Delete(ctx, id)
}
