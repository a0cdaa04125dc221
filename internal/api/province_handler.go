package api

import (
	"net/http"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/store"
)

// ProvinceHandler handles province-related HTTP requests. Provinces are
// reference data seeded by migration, so the surface is read-only.
type ProvinceHandler struct {
	provinces store.ProvinceStore
}

// NewProvinceHandler creates a new ProvinceHandler.
func NewProvinceHandler(provinces store.ProvinceStore) *ProvinceHandler {
	return &ProvinceHandler{provinces: provinces}
}

// List handles GET /api/provinces requests.
func (h *ProvinceHandler) List(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.provinces.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, provinces)
}

// Get handles GET /api/provinces/{id} requests.
func (h *ProvinceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	province, err := h.provinces.GetByID(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, province)
}
