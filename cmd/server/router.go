package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/imovia/imovia-api/internal/api"
	apiMiddleware "github.com/imovia/imovia-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Listing and lookup endpoints are public; every
// mutation sits behind the auth gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	provinceHandler := api.NewProvinceHandler(app.provinceStore)
	cityHandler := api.NewCityHandler(app.cityService)
	communityHandler := api.NewCommunityHandler(app.communityService)
	propertyHandler := api.NewPropertyHandler(app.propertyService)
	favoriteHandler := api.NewFavoriteHandler(app.favoriteService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public read-only endpoints
		r.Get("/provinces", provinceHandler.List)
		r.Get("/provinces/{id}", provinceHandler.Get)
		r.Get("/cities", cityHandler.List)
		r.Get("/cities/{id}", cityHandler.Get)
		r.Get("/communities", communityHandler.List)
		r.Get("/communities/{id}", communityHandler.Get)
		r.Get("/properties", propertyHandler.List)
		r.Get("/properties/{id}", propertyHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/cities", cityHandler.Create)
			r.Patch("/cities/{id}", cityHandler.Update)
			r.Put("/cities/{id}/cover", cityHandler.UploadCoverImage)
			r.Delete("/cities/{id}", cityHandler.Delete)

			r.Post("/communities", communityHandler.Create)
			r.Patch("/communities/{id}", communityHandler.Update)
			r.Put("/communities/{id}/cover", communityHandler.UploadCoverImage)
			r.Delete("/communities/{id}", communityHandler.Delete)

			r.Post("/properties", propertyHandler.Create)
			r.Delete("/properties/{id}", propertyHandler.Delete)

			r.Get("/favorites", favoriteHandler.List)
			r.Post("/favorites", favoriteHandler.Create)
			r.Delete("/favorites/{propertyID}", favoriteHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
