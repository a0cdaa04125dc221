package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Favorite.
var (
	ErrEmptyFavoriteID         = errors.New("favorite ID cannot be empty")
	ErrEmptyFavoriteUserID     = errors.New("favorite user ID cannot be empty")
	ErrEmptyFavoritePropertyID = errors.New("favorite property ID cannot be empty")
)

// Favorite marks a property as saved by a user. A user can favorite a
// given property at most once; the (user_id, property_id) unique index
// in the favorites table enforces that.
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewFavorite creates a Favorite linking a user to a property.
// Returns an error if validation fails.
func NewFavorite(userID, propertyID uuid.UUID) (*Favorite, error) {
	favorite := &Favorite{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := favorite.Validate(); err != nil {
		return nil, err
	}

	return favorite, nil
}

// Validate checks if the Favorite has valid data.
func (f *Favorite) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFavoriteID
	}

	if f.UserID == uuid.Nil {
		return ErrEmptyFavoriteUserID
	}

	if f.PropertyID == uuid.Nil {
		return ErrEmptyFavoritePropertyID
	}

	return nil
}
