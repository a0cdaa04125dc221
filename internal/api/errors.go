package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/geocoding"
	"github.com/imovia/imovia-api/internal/service"
	"github.com/imovia/imovia-api/internal/service/auth"
	"github.com/imovia/imovia-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors: email collisions, duplicate places, duplicate favorites
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Semantically invalid input: dangling references, unresolvable place
	// names, malformed entity data
	case errors.Is(err, service.ErrInvalidProvince),
		errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrUngeocodableName),
		errors.Is(err, geocoding.ErrNoMatch),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPagination):
		return http.StatusUnprocessableEntity

	// Malformed identifiers in the request path
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrProvinceNotFound):
		return "Province not found"

	case errors.Is(err, store.ErrCityNotFound):
		return "City not found"

	case errors.Is(err, store.ErrCommunityNotFound):
		return "Community not found"

	case errors.Is(err, store.ErrPropertyNotFound):
		return "Property not found"

	case errors.Is(err, store.ErrFavoriteNotFound):
		return "Favorite not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrPlaceExists):
		return "Place already exists"

	case errors.Is(err, store.ErrFavoriteExists):
		return "Property already favorited"

	// Semantically invalid input
	case errors.Is(err, service.ErrInvalidProvince):
		return "Province does not exist"

	case errors.Is(err, service.ErrInvalidReference):
		return "Referenced entity does not exist"

	case errors.Is(err, service.ErrUngeocodableName), errors.Is(err, geocoding.ErrNoMatch):
		return "Place name could not be resolved"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidPagination):
		return "Invalid pagination parameters"

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError maps err onto a status code and safe message,
// then writes the JSON error response while logging the original error.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// validator/v10 messages look like:
	// "Key: 'CreateCityRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
