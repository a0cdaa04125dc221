package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/imovia/imovia-api/internal/store"
)

// maxCoverImageBytes bounds cover-image uploads at 10 MiB.
const maxCoverImageBytes = 10 << 20

// CityHandler handles city-related HTTP requests.
type CityHandler struct {
	cityService *service.CityService
	validator   *validator.Validate
}

// NewCityHandler creates a new CityHandler.
func NewCityHandler(cityService *service.CityService) *CityHandler {
	return &CityHandler{
		cityService: cityService,
		validator:   validator.New(),
	}
}

// List handles GET /api/cities requests.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := getPageRequest(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	page, err := h.cityService.List(r.Context(), pageReq)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// Get handles GET /api/cities/{id} requests.
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	city, err := h.cityService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// Create handles POST /api/cities requests. The city stored is the
// geocoded place, not the request payload; creating the same place
// twice answers with a conflict instead of a second row.
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCityRequest

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

	city, err := h.cityService.Create(r.Context(), provinceID, req.Name)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, city)
}

// Update handles PATCH /api/cities/{id} requests.
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	var req UpdateCityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	city, err := h.cityService.Update(r.Context(), id, store.UpdateCityParams{Name: req.Name})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// UploadCoverImage handles PUT /api/cities/{id}/cover requests. The
// image is read from the "image" multipart field.
func (h *CityHandler) UploadCoverImage(w http.ResponseWriter, r *http.Request) {
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

	info, err := h.cityService.ReplaceCoverImage(
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

	city, err := h.cityService.Get(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CoverImageResponse{
		URL:  city.CoverImageURL,
		Size: info.Size,
	})
}

// Delete handles DELETE /api/cities/{id} requests.
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.cityService.Delete(r.Context(), id); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
