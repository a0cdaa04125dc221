package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// communityPlaceConstraint is the composite unique index on
// (province_id, place_id) for communities.
const communityPlaceConstraint = "communities_province_id_place_id_key"

// CommunityStore implements the store.CommunityStore interface using a
// PostgreSQL database as the storage backend.
type CommunityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCommunityStore creates a new PostgreSQL implementation of the
// CommunityStore interface. If log is nil, the default logger is used.
func NewCommunityStore(db store.DBTX, log *slog.Logger) *CommunityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CommunityStore{
		db:     db,
		logger: log.With(slog.String("component", "community_store")),
	}
}

// Ensure CommunityStore implements store.CommunityStore
var _ store.CommunityStore = (*CommunityStore)(nil)

// Create implements store.CommunityStore.Create.
// Returns store.ErrPlaceExists on a (province_id, place_id) collision
// and store.ErrInvalidEntity when the province reference is invalid.
func (s *CommunityStore) Create(ctx context.Context, community *domain.Community) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := community.Validate(); err != nil {
		log.Warn("community validation failed during create",
			slog.String("error", err.Error()),
			slog.String("community_id", community.ID.String()))
		return err
	}

	query := `
		INSERT INTO communities (id, name, province_id, latitude, longitude, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		community.ID,
		community.Name,
		community.ProvinceID,
		community.Latitude,
		community.Longitude,
		community.PlaceID,
		community.CreatedAt,
		community.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, communityPlaceConstraint) {
			log.Debug("duplicate place during community creation",
				slog.String("province_id", community.ProvinceID.String()),
				slog.String("place_id", community.PlaceID))
			return store.ErrPlaceExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during community creation",
				slog.String("error", err.Error()),
				slog.String("province_id", community.ProvinceID.String()))
			return store.ErrInvalidEntity
		}

		log.Error("failed to create community",
			slog.String("error", err.Error()),
			slog.String("community_id", community.ID.String()))
		return err
	}

	log.Info("community created successfully",
		slog.String("community_id", community.ID.String()),
		slog.String("place_id", community.PlaceID))
	return nil
}

// GetByID implements store.CommunityStore.GetByID.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	return s.getOne(ctx, `WHERE id = $1`, id)
}

// GetByPlace implements store.CommunityStore.GetByPlace.
// Returns store.ErrCommunityNotFound if no such community exists.
func (s *CommunityStore) GetByPlace(
	ctx context.Context,
	provinceID uuid.UUID,
	placeID string,
) (*domain.Community, error) {
	return s.getOne(ctx, `WHERE province_id = $1 AND place_id = $2`, provinceID, placeID)
}

func (s *CommunityStore) getOne(ctx context.Context, where string, args ...any) (*domain.Community, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, province_id, latitude, longitude, place_id, cover_image_url, created_at, updated_at
		FROM communities
	` + where

	var community domain.Community
	var coverURL sql.NullString

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&community.ID,
		&community.Name,
		&community.ProvinceID,
		&community.Latitude,
		&community.Longitude,
		&community.PlaceID,
		&coverURL,
		&community.CreatedAt,
		&community.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("community not found")
			return nil, store.ErrCommunityNotFound
		}
		log.Error("failed to get community", slog.String("error", err.Error()))
		return nil, err
	}

	community.CoverImageURL = coverURL.String
	return &community, nil
}

// List implements store.CommunityStore.List.
func (s *CommunityStore) List(ctx context.Context, limit, offset int) ([]*domain.Community, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, province_id, latitude, longitude, place_id, cover_image_url, created_at, updated_at
		FROM communities
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list communities", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var communities []*domain.Community
	for rows.Next() {
		var community domain.Community
		var coverURL sql.NullString

		if err := rows.Scan(
			&community.ID,
			&community.Name,
			&community.ProvinceID,
			&community.Latitude,
			&community.Longitude,
			&community.PlaceID,
			&coverURL,
			&community.CreatedAt,
			&community.UpdatedAt,
		); err != nil {
			log.Error("failed to scan community row", slog.String("error", err.Error()))
			return nil, err
		}

		community.CoverImageURL = coverURL.String
		communities = append(communities, &community)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if communities == nil {
		communities = []*domain.Community{}
	}
	return communities, nil
}

// Count implements store.CommunityStore.Count.
func (s *CommunityStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM communities`).Scan(&count); err != nil {
		log.Error("failed to count communities", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

// Update implements store.CommunityStore.Update. Nil params are left
// unchanged; existence is signalled by the UPDATE itself.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityStore) Update(
	ctx context.Context,
	id uuid.UUID,
	params store.UpdateCommunityParams,
) (*domain.Community, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE communities
		SET name = COALESCE($1, name), updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, params.Name, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update community",
			slog.String("error", err.Error()),
			slog.String("community_id", id.String()))
		return nil, err
	}

	if err := checkRowsAffected(result, store.ErrCommunityNotFound); err != nil {
		log.Debug("community not found for update", slog.String("community_id", id.String()))
		return nil, err
	}

	log.Info("community updated successfully", slog.String("community_id", id.String()))
	return s.GetByID(ctx, id)
}

// SetCoverImage implements store.CommunityStore.SetCoverImage.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityStore) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE communities
		SET cover_image_url = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, url, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to set community cover image",
			slog.String("error", err.Error()),
			slog.String("community_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrCommunityNotFound); err != nil {
		return err
	}

	log.Info("community cover image updated", slog.String("community_id", id.String()))
	return nil
}

// Delete implements store.CommunityStore.Delete.
// Returns store.ErrCommunityNotFound if the community does not exist.
func (s *CommunityStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM communities WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete community",
			slog.String("error", err.Error()),
			slog.String("community_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrCommunityNotFound); err != nil {
		log.Debug("community not found for delete", slog.String("community_id", id.String()))
		return err
	}

	log.Info("community deleted successfully", slog.String("community_id", id.String()))
	return nil
}
