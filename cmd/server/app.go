package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/imovia/imovia-api/internal/config"
	"github.com/imovia/imovia-api/internal/platform/googlemaps"
	"github.com/imovia/imovia-api/internal/platform/minio"
	"github.com/imovia/imovia-api/internal/platform/postgres"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/imovia/imovia-api/internal/service/auth"
	"github.com/imovia/imovia-api/internal/store"
)

// application holds the wired dependency graph for the server: the
// database pool, stores, external providers and the services the HTTP
// handlers are built on.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore      store.UserStore
	provinceStore  store.ProvinceStore
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher

	cityService      *service.CityService
	communityService *service.CommunityService
	propertyService  *service.PropertyService
	favoriteService  *service.FavoriteService
}

// newApplication wires every component from configuration. Construction
// fails fast: a bad database URL, geocoding key or storage credential
// surfaces here rather than on the first request.
func newApplication(cfg *config.Config) (*application, error) {
	log := slog.Default()

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	geocoder, err := googlemaps.NewGeocoder(cfg.Geocoding, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	blobs, err := minio.NewClient(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob storage client: %w", err)
	}

	userStore := postgres.NewUserStore(db, log)
	provinceStore := postgres.NewProvinceStore(db, log)
	cityStore := postgres.NewCityStore(db, log)
	communityStore := postgres.NewCommunityStore(db, log)
	propertyStore := postgres.NewPropertyStore(db, log)
	favoriteStore := postgres.NewFavoriteStore(db, log)

	app := &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      userStore,
		provinceStore:  provinceStore,
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(),
		cityService: service.NewCityService(
			cityStore, provinceStore, geocoder, blobs, cfg.Storage.BaseURL, log,
		),
		communityService: service.NewCommunityService(
			communityStore, provinceStore, geocoder, blobs, cfg.Storage.BaseURL, log,
		),
		propertyService: service.NewPropertyService(
			propertyStore, cityStore, communityStore, log,
		),
		favoriteService: service.NewFavoriteService(
			favoriteStore, propertyStore, log,
		),
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
