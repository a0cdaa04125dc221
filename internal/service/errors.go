package service

import "errors"

// Common service errors raised by the resource services. Not-found and
// already-exists conditions are reported with the store package's
// sentinels; these cover the failures only the service layer can
// detect.
var (
	// ErrInvalidProvince is returned when a create request references a
	// province that does not exist.
	ErrInvalidProvince = errors.New("invalid province reference")

	// ErrInvalidReference is returned when a create request references a
	// city or community that does not exist.
	ErrInvalidReference = errors.New("invalid entity reference")

	// ErrUngeocodableName is returned when the geocoding provider has no
	// match for the requested place name.
	ErrUngeocodableName = errors.New("place name cannot be geocoded")
)
