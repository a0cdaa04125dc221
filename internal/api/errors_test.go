package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/imovia/imovia-api/internal/service/auth"
	"github.com/imovia/imovia-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"city not found", store.ErrCityNotFound, http.StatusNotFound},
		{"community not found", store.ErrCommunityNotFound, http.StatusNotFound},
		{"property not found", store.ErrPropertyNotFound, http.StatusNotFound},
		{"favorite not found", store.ErrFavoriteNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"place exists", store.ErrPlaceExists, http.StatusConflict},
		{"favorite exists", store.ErrFavoriteExists, http.StatusConflict},
		{"invalid province", service.ErrInvalidProvince, http.StatusUnprocessableEntity},
		{"invalid reference", service.ErrInvalidReference, http.StatusUnprocessableEntity},
		{"ungeocodable name", service.ErrUngeocodableName, http.StatusUnprocessableEntity},
		{"invalid entity", store.ErrInvalidEntity, http.StatusUnprocessableEntity},
		{"invalid pagination", domain.ErrInvalidPagination, http.StatusUnprocessableEntity},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped place exists",
			fmt.Errorf("creating city: %w", store.ErrPlaceExists),
			http.StatusConflict,
		},
		{
			"wrapped not found",
			fmt.Errorf("fetching: %w", store.ErrCityNotFound),
			http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"city not found", store.ErrCityNotFound, "City not found"},
		{"place exists", store.ErrPlaceExists, "Place already exists"},
		{"favorite exists", store.ErrFavoriteExists, "Property already favorited"},
		{"invalid province", service.ErrInvalidProvince, "Province does not exist"},
		{"ungeocodable", service.ErrUngeocodableName, "Place name could not be resolved"},
		{"invalid pagination", domain.ErrInvalidPagination, "Invalid pagination parameters"},
		{
			"unknown error leaks nothing",
			errors.New("pq: connection to postgres://user:secret@db failed"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'CreateCityRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Name: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("random failure")))
}
