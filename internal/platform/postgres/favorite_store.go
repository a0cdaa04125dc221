package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// favoriteUserPropertyConstraint is the unique index preventing a user
// from favoriting the same property twice.
const favoriteUserPropertyConstraint = "favorites_user_id_property_id_key"

// FavoriteStore implements the store.FavoriteStore interface using a
// PostgreSQL database as the storage backend.
type FavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewFavoriteStore creates a new PostgreSQL implementation of the
// FavoriteStore interface. If log is nil, the default logger is used.
func NewFavoriteStore(db store.DBTX, log *slog.Logger) *FavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &FavoriteStore{
		db:     db,
		logger: log.With(slog.String("component", "favorite_store")),
	}
}

// Ensure FavoriteStore implements store.FavoriteStore
var _ store.FavoriteStore = (*FavoriteStore)(nil)

// Create implements store.FavoriteStore.Create.
// Returns store.ErrFavoriteExists if the user already favorited the
// property and store.ErrInvalidEntity on a broken reference.
func (s *FavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := favorite.Validate(); err != nil {
		log.Warn("favorite validation failed during create",
			slog.String("error", err.Error()),
			slog.String("favorite_id", favorite.ID.String()))
		return err
	}

	query := `
		INSERT INTO favorites (id, user_id, property_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		favorite.ID,
		favorite.UserID,
		favorite.PropertyID,
		favorite.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, favoriteUserPropertyConstraint) {
			log.Debug("favorite already exists",
				slog.String("user_id", favorite.UserID.String()),
				slog.String("property_id", favorite.PropertyID.String()))
			return store.ErrFavoriteExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during favorite creation",
				slog.String("error", err.Error()))
			return store.ErrInvalidEntity
		}

		log.Error("failed to create favorite",
			slog.String("error", err.Error()),
			slog.String("favorite_id", favorite.ID.String()))
		return err
	}

	log.Info("favorite created successfully",
		slog.String("user_id", favorite.UserID.String()),
		slog.String("property_id", favorite.PropertyID.String()))
	return nil
}

// Delete implements store.FavoriteStore.Delete.
// Returns store.ErrFavoriteNotFound if no such favorite exists.
func (s *FavoriteStore) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID,
		propertyID,
	)
	if err != nil {
		log.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("property_id", propertyID.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrFavoriteNotFound); err != nil {
		return err
	}

	log.Info("favorite deleted successfully",
		slog.String("user_id", userID.String()),
		slog.String("property_id", propertyID.String()))
	return nil
}

// ListByUser implements store.FavoriteStore.ListByUser.
func (s *FavoriteStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, property_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to list favorites",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var favorites []*domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		if err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.PropertyID,
			&favorite.CreatedAt,
		); err != nil {
			log.Error("failed to scan favorite row", slog.String("error", err.Error()))
			return nil, err
		}
		favorites = append(favorites, &favorite)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if favorites == nil {
		favorites = []*domain.Favorite{}
	}
	return favorites, nil
}

// CountByUser implements store.FavoriteStore.CountByUser.
func (s *FavoriteStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		log.Error("failed to count favorites",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}
	return count, nil
}
