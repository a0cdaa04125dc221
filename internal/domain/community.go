package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Community.
var (
	ErrEmptyCommunityID         = errors.New("community ID cannot be empty")
	ErrEmptyCommunityName       = errors.New("community name cannot be empty")
	ErrEmptyCommunityProvinceID = errors.New("community province ID cannot be empty")
	ErrEmptyCommunityPlaceID    = errors.New("community place ID cannot be empty")
)

// Community is a neighbourhood-level geographic entity. Like City it
// carries the geocoding provider's canonical name, coordinates and
// place ID, and is unique per (ProvinceID, PlaceID).
type Community struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ProvinceID    uuid.UUID `json:"province_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	PlaceID       string    `json:"place_id"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCommunity creates a Community from geocoded place data.
// Returns an error if validation fails.
func NewCommunity(provinceID uuid.UUID, name string, latitude, longitude float64, placeID string) (*Community, error) {
	community := &Community{
		ID:         uuid.New(),
		Name:       name,
		ProvinceID: provinceID,
		Latitude:   latitude,
		Longitude:  longitude,
		PlaceID:    placeID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := community.Validate(); err != nil {
		return nil, err
	}

	return community, nil
}

// Validate checks if the Community has valid data.
func (c *Community) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommunityID
	}

	if c.Name == "" {
		return ErrEmptyCommunityName
	}

	if c.ProvinceID == uuid.Nil {
		return ErrEmptyCommunityProvinceID
	}

	if c.PlaceID == "" {
		return ErrEmptyCommunityPlaceID
	}

	return nil
}
