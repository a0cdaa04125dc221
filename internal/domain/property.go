package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Property.
var (
	ErrEmptyPropertyID     = errors.New("property ID cannot be empty")
	ErrEmptyPropertyUserID = errors.New("property user ID cannot be empty")
	ErrEmptyPropertyCityID = errors.New("property city ID cannot be empty")
	ErrEmptyPropertyTitle  = errors.New("property title cannot be empty")
	ErrNegativePrice       = errors.New("property price cannot be negative")
)

// Property is a real-estate listing published by a user. Every property
// belongs to a city; the community reference is optional since not every
// listing sits inside a mapped neighbourhood. Price is stored in cents.
type Property struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CityID      uuid.UUID  `json:"city_id"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProperty creates a Property listed by the given user.
// Returns an error if validation fails.
func NewProperty(
	userID, cityID uuid.UUID,
	communityID *uuid.UUID,
	title, description string,
	priceCents int64,
) (*Property, error) {
	property := &Property{
		ID:          uuid.New(),
		UserID:      userID,
		CityID:      cityID,
		CommunityID: communityID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := property.Validate(); err != nil {
		return nil, err
	}

	return property, nil
}

// Validate checks if the Property has valid data.
func (p *Property) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPropertyID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyPropertyUserID
	}

	if p.CityID == uuid.Nil {
		return ErrEmptyPropertyCityID
	}

	if p.Title == "" {
		return ErrEmptyPropertyTitle
	}

	if p.PriceCents < 0 {
		return ErrNegativePrice
	}

	return nil
}
