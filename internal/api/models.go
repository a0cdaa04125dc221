package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// CreateCityRequest defines the payload for city creation. Name is the
// caller-typed place name; the stored city carries whatever canonical
// name the geocoding provider resolves it to.
type CreateCityRequest struct {
	ProvinceID string `json:"province_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required,min=1"`
}

// UpdateCityRequest defines the payload for partial city updates.
// Absent fields are left untouched.
type UpdateCityRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// CreateCommunityRequest defines the payload for community creation.
type CreateCommunityRequest struct {
	ProvinceID string `json:"province_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required,min=1"`
}

// UpdateCommunityRequest defines the payload for partial community updates.
type UpdateCommunityRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// CreatePropertyRequest defines the payload for publishing a property
// listing. CommunityID is optional.
type CreatePropertyRequest struct {
	CityID      string `json:"city_id"                validate:"required,uuid"`
	CommunityID string `json:"community_id,omitempty" validate:"omitempty,uuid"`
	Title       string `json:"title"                  validate:"required,min=1,max=200"`
	Description string `json:"description"            validate:"max=10000"`
	PriceCents  int64  `json:"price_cents"            validate:"required,min=1"`
}

// CreateFavoriteRequest defines the payload for favoriting a property.
type CreateFavoriteRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
}

// CoverImageResponse defines the successful response for cover-image
// replacement endpoints.
type CoverImageResponse struct {
	// URL is the public URL the new cover image is served from.
	URL string `json:"url"`

	// Size is the number of bytes stored.
	Size int64 `json:"size"`
}
