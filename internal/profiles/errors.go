package profiles

import (
	"errors"
	"net/http"
)

// Domain errors for profile resolution.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrBaseProfileMissing = errors.New("base profile missing")
	ErrInvalidPreset      = errors.New("invalid preset name")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
// Unknown presets are client errors; a missing base profile is a
// deployment defect.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrInvalidPreset) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBaseProfileMissing) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
