package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Province.
var (
	ErrEmptyProvinceID        = errors.New("province ID cannot be empty")
	ErrEmptyProvinceName      = errors.New("province name cannot be empty")
	ErrEmptyProvinceShortName = errors.New("province short name cannot be empty")
)

// Province is a top-level administrative region. Cities and communities
// always belong to exactly one province, and the province's short name
// (e.g. "RS") is what the geocoding provider uses as a region filter.
type Province struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Province has valid data.
func (p *Province) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProvinceID
	}

	if p.Name == "" {
		return ErrEmptyProvinceName
	}

	if p.ShortName == "" {
		return ErrEmptyProvinceShortName
	}

	return nil
}
