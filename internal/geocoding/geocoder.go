// Package geocoding defines the boundary between the application core
// and the external geocoding provider. The provider is the source of
// truth for a place's canonical name, coordinates and stable place ID;
// the service layer never persists caller-typed names for geographic
// entities.
package geocoding

import "context"

// Place is the structured result of a successful geocoding lookup.
type Place struct {
	// Name is the provider's canonical name for the place, which may
	// differ from what the caller typed.
	Name string

	// Latitude and Longitude locate the place.
	Latitude  float64
	Longitude float64

	// PlaceID is the provider's stable identifier for the place. Two
	// lookups for the same real-world place return the same PlaceID,
	// which is what makes idempotent creation possible.
	PlaceID string
}

// Geocoder resolves a human-typed place name within a region to a
// structured Place.
type Geocoder interface {
	// Geocode resolves placeName inside the administrative region
	// identified by regionCode (a province short name such as "RS").
	// Returns ErrNoMatch when the provider cannot resolve the name.
	Geocode(ctx context.Context, regionCode, placeName string) (*Place, error)
}
