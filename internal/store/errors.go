package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references a row that does not exist (foreign key
	// violation). Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrProvinceNotFound indicates that the requested province does not exist in the store.
	ErrProvinceNotFound = fmt.Errorf("%w: province", ErrNotFound)

	// ErrCityNotFound indicates that the requested city does not exist in the store.
	ErrCityNotFound = fmt.Errorf("%w: city", ErrNotFound)

	// ErrCommunityNotFound indicates that the requested community does not exist in the store.
	ErrCommunityNotFound = fmt.Errorf("%w: community", ErrNotFound)

	// ErrPropertyNotFound indicates that the requested property does not exist in the store.
	ErrPropertyNotFound = fmt.Errorf("%w: property", ErrNotFound)

	// ErrFavoriteNotFound indicates that the requested favorite does not exist in the store.
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrPlaceExists indicates that a geographic entity with the same
	// (province_id, place_id) pair is already stored. This is the store's
	// view of the idempotent-creation invariant: creating the same
	// real-world place twice never yields two rows.
	ErrPlaceExists = fmt.Errorf("%w: place", ErrDuplicate)

	// ErrFavoriteExists indicates the user has already favorited the property.
	ErrFavoriteExists = fmt.Errorf("%w: favorite", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
