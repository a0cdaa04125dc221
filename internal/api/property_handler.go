package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/service"
)

// PropertyHandler handles property listing HTTP requests.
type PropertyHandler struct {
	propertyService *service.PropertyService
	validator       *validator.Validate
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		validator:       validator.New(),
	}
}

// List handles GET /api/properties requests.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := getPageRequest(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	page, err := h.propertyService.List(r.Context(), pageReq)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// Get handles GET /api/properties/{id} requests.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	property, err := h.propertyService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, property)
}

// Create handles POST /api/properties requests. The listing is owned by
// the authenticated principal.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePropertyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid city_id")
		return
	}

	var communityID *uuid.UUID
	if req.CommunityID != "" {
		id, err := uuid.Parse(req.CommunityID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid community_id")
			return
		}
		communityID = &id
	}

	property, err := h.propertyService.Create(r.Context(), principal.UserID, service.CreatePropertyParams{
		CityID:      cityID,
		CommunityID: communityID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, property)
}

// Delete handles DELETE /api/properties/{id} requests.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.propertyService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
