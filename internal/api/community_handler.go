package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/imovia/imovia-api/internal/store"
)

// CommunityHandler handles community-related HTTP requests.
type CommunityHandler struct {
	communityService *service.CommunityService
	validator        *validator.Validate
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		validator:        validator.New(),
	}
}

// List handles GET /api/communities requests.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := getPageRequest(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	page, err := h.communityService.List(r.Context(), pageReq)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// Get handles GET /api/communities/{id} requests.
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	community, err := h.communityService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, community)
}

// Create handles POST /api/communities requests. Same idempotent
// creation protocol as cities: the stored row is the geocoded place.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommunityRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	provinceID, err := uuid.Parse(req.ProvinceID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid province_id")
		return
	}

	community, err := h.communityService.Create(r.Context(), provinceID, req.Name)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, community)
}

// Update handles PATCH /api/communities/{id} requests.
func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	var req UpdateCommunityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	community, err := h.communityService.Update(
		r.Context(),
		id,
		store.UpdateCommunityParams{Name: req.Name},
	)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, community)
}

// UploadCoverImage handles PUT /api/communities/{id}/cover requests.
func (h *CommunityHandler) UploadCoverImage(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	file, header, err := readCoverImage(w, r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid image upload")
		return
	}
	defer func() { _ = file.Close() }()

	info, err := h.communityService.ReplaceCoverImage(
		r.Context(),
		id,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		header.Size,
	)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	community, err := h.communityService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CoverImageResponse{
		URL:  community.CoverImageURL,
		Size: info.Size,
	})
}

// Delete handles DELETE /api/communities/{id} requests.
func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.communityService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
