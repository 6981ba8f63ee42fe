package location

import "errors"

// Location domain errors
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrServicesDisabled = errors.New("location services are disabled")
	ErrNoLocation       = errors.New("no location fix available")
)
