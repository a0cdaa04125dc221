package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// FavoriteService implements the user-favorites operations.
type FavoriteService struct {
	favorites  store.FavoriteStore
	properties store.PropertyStore
	logger     *slog.Logger
}

// NewFavoriteService creates a FavoriteService with its collaborators.
// If log is nil, the default logger is used.
func NewFavoriteService(
	favorites store.FavoriteStore,
	properties store.PropertyStore,
	log *slog.Logger,
) *FavoriteService {
	if log == nil {
		log = slog.Default()
	}

	return &FavoriteService{
		favorites:  favorites,
		properties: properties,
		logger:     log.With(slog.String("component", "favorite_service")),
	}
}

// Add marks a property as favorited by the user.
// Returns store.ErrPropertyNotFound when the property does not exist
// and store.ErrFavoriteExists when the user already favorited it.
func (s *FavoriteService) Add(ctx context.Context, userID, propertyID uuid.UUID) (*domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	favorite, err := domain.NewFavorite(userID, propertyID)
	if err != nil {
		return nil, err
	}

	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	log.Info("favorite added",
		slog.String("user_id", userID.String()),
		slog.String("property_id", propertyID.String()))
	return favorite, nil
}

// Remove deletes the user's favorite for a property.
// Returns store.ErrFavoriteNotFound if no such favorite exists.
func (s *FavoriteService) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	return s.favorites.Delete(ctx, userID, propertyID)
}

// ListByUser returns one page of the user's favorites plus the total
// count. Count and page rows are fetched concurrently without a
// transaction; see CityService.List for the snapshot-skew policy.
func (s *FavoriteService) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	req domain.PageRequest,
) (*domain.Page[*domain.Favorite], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		count     int
		favorites []*domain.Favorite
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.favorites.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		favorites, err = s.favorites.ListByUser(gctx, userID, req.PerPage, req.Offset())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(req, count, favorites), nil
}
