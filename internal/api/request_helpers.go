package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imovia/imovia-api/internal/domain"
)

// Pagination defaults applied when the query string omits a parameter.
// Explicit zero or negative values are rejected, not defaulted.
const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// getPathUUID extracts a UUID from the URL path parameters.
// Returns domain.ErrInvalidID when the parameter is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getPageRequest reads page and per_page from the query string. Absent
// parameters fall back to the defaults; present-but-invalid parameters
// (non-numeric, zero, negative, oversized per_page) are rejected with
// domain.ErrInvalidPagination.
func getPageRequest(r *http.Request) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: defaultPage, PerPage: defaultPerPage}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return domain.PageRequest{}, domain.ErrInvalidPagination
		}
		req.Page = page
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 || perPage > maxPerPage {
			return domain.PageRequest{}, domain.ErrInvalidPagination
		}
		req.PerPage = perPage
	}

	return req, nil
}

// readCoverImage reads the "image" field from a multipart upload,
// bounding the request body at maxCoverImageBytes.
func readCoverImage(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCoverImageBytes)
	if err := r.ParseMultipartForm(maxCoverImageBytes); err != nil {
		return nil, nil, err
	}
	return r.FormFile("image")
}
