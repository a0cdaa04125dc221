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

// cityPlaceConstraint is the composite unique index on
// (province_id, place_id). It is the authoritative guard behind the
// idempotent-creation invariant; the service-level existence check is
// only an optimization.
const cityPlaceConstraint = "cities_province_id_place_id_key"

// CityStore implements the store.CityStore interface using a PostgreSQL
// database as the storage backend.
type CityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCityStore creates a new PostgreSQL implementation of the CityStore
// interface. It accepts a database connection or transaction that should
// be initialized and managed by the caller. If log is nil, the default
// logger is used.
func NewCityStore(db store.DBTX, log *slog.Logger) *CityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CityStore{
		db:     db,
		logger: log.With(slog.String("component", "city_store")),
	}
}

// Ensure CityStore implements store.CityStore
var _ store.CityStore = (*CityStore)(nil)

// Create implements store.CityStore.Create.
// Returns store.ErrPlaceExists on a (province_id, place_id) collision
// and store.ErrInvalidEntity when the province reference is invalid.
func (s *CityStore) Create(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := city.Validate(); err != nil {
		log.Warn("city validation failed during create",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return err
	}

	query := `
		INSERT INTO cities (id, name, province_id, latitude, longitude, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		city.ID,
		city.Name,
		city.ProvinceID,
		city.Latitude,
		city.Longitude,
		city.PlaceID,
		city.CreatedAt,
		city.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, cityPlaceConstraint) {
			log.Debug("duplicate place during city creation",
				slog.String("province_id", city.ProvinceID.String()),
				slog.String("place_id", city.PlaceID))
			return store.ErrPlaceExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during city creation",
				slog.String("error", err.Error()),
				slog.String("province_id", city.ProvinceID.String()))
			return store.ErrInvalidEntity
		}

		log.Error("failed to create city",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return err
	}

	log.Info("city created successfully",
		slog.String("city_id", city.ID.String()),
		slog.String("place_id", city.PlaceID))
	return nil
}

// GetByID implements store.CityStore.GetByID.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	return s.getOne(ctx, `WHERE id = $1`, id)
}

// GetByPlace implements store.CityStore.GetByPlace.
// Returns store.ErrCityNotFound if no such city exists.
func (s *CityStore) GetByPlace(ctx context.Context, provinceID uuid.UUID, placeID string) (*domain.City, error) {
	return s.getOne(ctx, `WHERE province_id = $1 AND place_id = $2`, provinceID, placeID)
}

func (s *CityStore) getOne(ctx context.Context, where string, args ...any) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, province_id, latitude, longitude, place_id, cover_image_url, created_at, updated_at
		FROM cities
	` + where

	var city domain.City
	var coverURL sql.NullString

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&city.ID,
		&city.Name,
		&city.ProvinceID,
		&city.Latitude,
		&city.Longitude,
		&city.PlaceID,
		&coverURL,
		&city.CreatedAt,
		&city.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("city not found")
			return nil, store.ErrCityNotFound
		}
		log.Error("failed to get city", slog.String("error", err.Error()))
		return nil, err
	}

	city.CoverImageURL = coverURL.String
	return &city, nil
}

// List implements store.CityStore.List.
func (s *CityStore) List(ctx context.Context, limit, offset int) ([]*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, province_id, latitude, longitude, place_id, cover_image_url, created_at, updated_at
		FROM cities
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list cities", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var cities []*domain.City
	for rows.Next() {
		var city domain.City
		var coverURL sql.NullString

		if err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.ProvinceID,
			&city.Latitude,
			&city.Longitude,
			&city.PlaceID,
			&coverURL,
			&city.CreatedAt,
			&city.UpdatedAt,
		); err != nil {
			log.Error("failed to scan city row", slog.String("error", err.Error()))
			return nil, err
		}

		city.CoverImageURL = coverURL.String
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if cities == nil {
		cities = []*domain.City{}
	}
	return cities, nil
}

// Count implements store.CityStore.Count.
func (s *CityStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&count); err != nil {
		log.Error("failed to count cities", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

// Update implements store.CityStore.Update. Nil params are left
// unchanged; existence is signalled by the UPDATE itself, so there is no
// separate pre-check.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityStore) Update(ctx context.Context, id uuid.UUID, params store.UpdateCityParams) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cities
		SET name = COALESCE($1, name), updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, params.Name, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update city",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return nil, err
	}

	if err := checkRowsAffected(result, store.ErrCityNotFound); err != nil {
		log.Debug("city not found for update", slog.String("city_id", id.String()))
		return nil, err
	}

	log.Info("city updated successfully", slog.String("city_id", id.String()))
	return s.GetByID(ctx, id)
}

// SetCoverImage implements store.CityStore.SetCoverImage.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityStore) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cities
		SET cover_image_url = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, url, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to set city cover image",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrCityNotFound); err != nil {
		return err
	}

	log.Info("city cover image updated", slog.String("city_id", id.String()))
	return nil
}

// Delete implements store.CityStore.Delete.
// Returns store.ErrCityNotFound if the city does not exist.
func (s *CityStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete city",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrCityNotFound); err != nil {
		log.Debug("city not found for delete", slog.String("city_id", id.String()))
		return err
	}

	log.Info("city deleted successfully", slog.String("city_id", id.String()))
	return nil
}
