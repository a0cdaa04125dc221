package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for City.
var (
	ErrEmptyCityID         = errors.New("city ID cannot be empty")
	ErrEmptyCityName       = errors.New("city name cannot be empty")
	ErrEmptyCityProvinceID = errors.New("city province ID cannot be empty")
	ErrEmptyCityPlaceID    = errors.New("city place ID cannot be empty")
)

// City is a geographic entity resolved through the geocoding provider.
// Name, Latitude, Longitude and PlaceID hold the provider's canonical
// values, not whatever the caller typed. At most one city exists per
// (ProvinceID, PlaceID) pair; the composite unique index in the cities
// table is the authoritative guard for that invariant.
type City struct {
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

// NewCity creates a City from geocoded place data.
// Returns an error if validation fails.
func NewCity(provinceID uuid.UUID, name string, latitude, longitude float64, placeID string) (*City, error) {
	city := &City{
		ID:         uuid.New(),
		Name:       name,
		ProvinceID: provinceID,
		Latitude:   latitude,
		Longitude:  longitude,
		PlaceID:    placeID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := city.Validate(); err != nil {
		return nil, err
	}

	return city, nil
}

// Validate checks if the City has valid data.
func (c *City) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCityID
	}

	if c.Name == "" {
		return ErrEmptyCityName
	}

	if c.ProvinceID == uuid.Nil {
		return ErrEmptyCityProvinceID
	}

	if c.PlaceID == "" {
		return ErrEmptyCityPlaceID
	}

	return nil
}
