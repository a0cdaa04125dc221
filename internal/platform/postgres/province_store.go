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

// ProvinceStore implements the store.ProvinceStore interface using a
// PostgreSQL database as the storage backend.
type ProvinceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProvinceStore creates a new PostgreSQL implementation of the
// ProvinceStore interface.
func NewProvinceStore(db store.DBTX, log *slog.Logger) *ProvinceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProvinceStore{
		db:     db,
		logger: log.With(slog.String("component", "province_store")),
	}
}

// Ensure ProvinceStore implements store.ProvinceStore
var _ store.ProvinceStore = (*ProvinceStore)(nil)

// GetByID implements store.ProvinceStore.GetByID.
// Returns store.ErrProvinceNotFound if the province does not exist.
func (s *ProvinceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, short_name, created_at, updated_at
		FROM provinces
		WHERE id = $1
	`

	var province domain.Province
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&province.ID,
		&province.Name,
		&province.ShortName,
		&province.CreatedAt,
		&province.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("province not found", slog.String("province_id", id.String()))
			return nil, store.ErrProvinceNotFound
		}
		log.Error("failed to get province by ID",
			slog.String("error", err.Error()),
			slog.String("province_id", id.String()))
		return nil, err
	}

	return &province, nil
}

// List implements store.ProvinceStore.List.
func (s *ProvinceStore) List(ctx context.Context) ([]*domain.Province, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, short_name, created_at, updated_at
		FROM provinces
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list provinces", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var provinces []*domain.Province
	for rows.Next() {
		var province domain.Province
		if err := rows.Scan(
			&province.ID,
			&province.Name,
			&province.ShortName,
			&province.CreatedAt,
			&province.UpdatedAt,
		); err != nil {
			log.Error("failed to scan province row", slog.String("error", err.Error()))
			return nil, err
		}
		provinces = append(provinces, &province)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if provinces == nil {
		provinces = []*domain.Province{}
	}
	return provinces, nil
}
