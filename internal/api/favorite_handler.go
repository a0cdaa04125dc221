package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/service"
)

// FavoriteHandler handles favorite HTTP requests. All endpoints operate
// on the authenticated principal's own favorites.
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	validator       *validator.Validate
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		validator:       validator.New(),
	}
}

// List handles GET /api/favorites requests.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	pageReq, err := getPageRequest(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	page, err := h.favoriteService.ListByUser(r.Context(), principal.UserID, pageReq)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// Create handles POST /api/favorites requests.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateFavoriteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid property_id")
		return
	}

	favorite, err := h.favoriteService.Add(r.Context(), principal.UserID, propertyID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, favorite)
}

// Delete handles DELETE /api/favorites/{propertyID} requests.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	propertyID, err := getPathUUID(r, "propertyID")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.favoriteService.Remove(r.Context(), principal.UserID, propertyID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
