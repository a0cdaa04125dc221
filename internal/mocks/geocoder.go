package mocks

import (
	"context"

	"github.com/imovia/imovia-api/internal/geocoding"
)

// Geocoder implements geocoding.Geocoder for testing.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error)

	// Calls records every lookup made against the mock.
	Calls []GeocodeCall
}

// GeocodeCall captures the arguments of one Geocode invocation.
type GeocodeCall struct {
	RegionCode string
	PlaceName  string
}

// Ensure Geocoder implements geocoding.Geocoder
var _ geocoding.Geocoder = (*Geocoder)(nil)

// Geocode implements the Geocoder interface.
func (m *Geocoder) Geocode(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
	m.Calls = append(m.Calls, GeocodeCall{RegionCode: regionCode, PlaceName: placeName})
	if m.GeocodeFn != nil {
		return m.GeocodeFn(ctx, regionCode, placeName)
	}
	return nil, geocoding.ErrNoMatch
}
