// Package googlemaps implements the geocoding.Geocoder interface on the
// Google Maps Geocoding API.
package googlemaps

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"

	"github.com/imovia/imovia-api/internal/config"
	"github.com/imovia/imovia-api/internal/geocoding"
	"github.com/imovia/imovia-api/internal/platform/logger"
)

// Geocoder resolves place names through the Google Maps Geocoding API.
type Geocoder struct {
	client *maps.Client
	logger *slog.Logger
}

// NewGeocoder creates a Geocoder from the geocoding configuration.
// If log is nil, the default logger is used.
func NewGeocoder(cfg config.GeocodingConfig, log *slog.Logger) (*Geocoder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geocoding API key is required")
	}
	if log == nil {
		log = slog.Default()
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Geocoder{
		client: client,
		logger: log.With(slog.String("component", "geocoder")),
	}, nil
}

// Ensure Geocoder implements geocoding.Geocoder
var _ geocoding.Geocoder = (*Geocoder)(nil)

// Geocode implements geocoding.Geocoder.Geocode. The region code is
// passed as an administrative-area component filter so that "Porto" in
// RS never resolves to a homonym in another province.
func (g *Geocoder) Geocode(ctx context.Context, regionCode, placeName string) (*geocoding.Place, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	req := &maps.GeocodingRequest{
		Address: placeName,
		Components: map[maps.Component]string{
			maps.ComponentAdministrativeArea: regionCode,
		},
	}

	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		log.Error("geocoding request failed",
			slog.String("error", err.Error()),
			slog.String("region", regionCode))
		return nil, fmt.Errorf("%w: %v", geocoding.ErrProviderUnavailable, err)
	}

	if len(results) == 0 {
		log.Debug("no geocoding match",
			slog.String("region", regionCode),
			slog.String("place_name", placeName))
		return nil, geocoding.ErrNoMatch
	}

	best := results[0]
	place := &geocoding.Place{
		Name:      canonicalName(best),
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
		PlaceID:   best.PlaceID,
	}

	log.Debug("geocoding match found",
		slog.String("region", regionCode),
		slog.String("place_id", place.PlaceID))
	return place, nil
}

// canonicalName picks the provider's name for the place: the first
// address component's long name, falling back to the formatted address
// when the result carries no components.
func canonicalName(result maps.GeocodingResult) string {
	if len(result.AddressComponents) > 0 {
		return result.AddressComponents[0].LongName
	}
	return result.FormattedAddress
}
