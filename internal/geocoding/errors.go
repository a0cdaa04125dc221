package geocoding

import "errors"

// Common errors returned by geocoding providers.
var (
	// ErrNoMatch is returned when the provider has no result for the
	// requested place name within the requested region.
	ErrNoMatch = errors.New("no geocoding match for place name")

	// ErrProviderUnavailable is returned when the provider cannot be
	// reached or answers with a transport-level failure. It is surfaced,
	// never retried; retry policy lives outside this core.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)
