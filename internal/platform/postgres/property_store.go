package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/platform/logger"
	"github.com/imovia/imovia-api/internal/store"
)

// PropertyStore implements the store.PropertyStore interface using a
// PostgreSQL database as the storage backend.
type PropertyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPropertyStore creates a new PostgreSQL implementation of the
// PropertyStore interface. If log is nil, the default logger is used.
func NewPropertyStore(db store.DBTX, log *slog.Logger) *PropertyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PropertyStore{
		db:     db,
		logger: log.With(slog.String("component", "property_store")),
	}
}

// Ensure PropertyStore implements store.PropertyStore
var _ store.PropertyStore = (*PropertyStore)(nil)

// Create implements store.PropertyStore.Create.
// Returns store.ErrInvalidEntity when the user, city or community
// reference is invalid.
func (s *PropertyStore) Create(ctx context.Context, property *domain.Property) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := property.Validate(); err != nil {
		log.Warn("property validation failed during create",
			slog.String("error", err.Error()),
			slog.String("property_id", property.ID.String()))
		return err
	}

	query := `
		INSERT INTO properties (id, user_id, city_id, community_id, title, description, price_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		property.ID,
		property.UserID,
		property.CityID,
		property.CommunityID,
		property.Title,
		property.Description,
		property.PriceCents,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during property creation",
				slog.String("error", err.Error()),
				slog.String("property_id", property.ID.String()))
			return store.ErrInvalidEntity
		}

		log.Error("failed to create property",
			slog.String("error", err.Error()),
			slog.String("property_id", property.ID.String()))
		return err
	}

	log.Info("property created successfully",
		slog.String("property_id", property.ID.String()),
		slog.String("user_id", property.UserID.String()))
	return nil
}

// GetByID implements store.PropertyStore.GetByID.
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *PropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, city_id, community_id, title, description, price_cents, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	var property domain.Property
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&property.ID,
		&property.UserID,
		&property.CityID,
		&property.CommunityID,
		&property.Title,
		&property.Description,
		&property.PriceCents,
		&property.CreatedAt,
		&property.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("property not found", slog.String("property_id", id.String()))
			return nil, store.ErrPropertyNotFound
		}
		log.Error("failed to get property by ID",
			slog.String("error", err.Error()),
			slog.String("property_id", id.String()))
		return nil, err
	}

	return &property, nil
}

// List implements store.PropertyStore.List.
func (s *PropertyStore) List(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, city_id, community_id, title, description, price_cents, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list properties", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var properties []*domain.Property
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(
			&property.ID,
			&property.UserID,
			&property.CityID,
			&property.CommunityID,
			&property.Title,
			&property.Description,
			&property.PriceCents,
			&property.CreatedAt,
			&property.UpdatedAt,
		); err != nil {
			log.Error("failed to scan property row", slog.String("error", err.Error()))
			return nil, err
		}
		properties = append(properties, &property)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if properties == nil {
		properties = []*domain.Property{}
	}
	return properties, nil
}

// Count implements store.PropertyStore.Count.
func (s *PropertyStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		log.Error("failed to count properties", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

// Delete implements store.PropertyStore.Delete.
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *PropertyStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete property",
			slog.String("error", err.Error()),
			slog.String("property_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrPropertyNotFound); err != nil {
		log.Debug("property not found for delete", slog.String("property_id", id.String()))
		return err
	}

	log.Info("property deleted successfully", slog.String("property_id", id.String()))
	return nil
}
