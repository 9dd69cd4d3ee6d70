package estimates

import (
	"errors"
	"net/http"

	"github.com/layerbylayersg/slicer-estimate-api/internal/download"
	"github.com/layerbylayersg/slicer-estimate-api/internal/profiles"
	"github.com/layerbylayersg/slicer-estimate-api/internal/slicer"
)

// Domain errors for estimate operations.
var (
	ErrNotFound  = errors.New("estimate not found")
	ErrDuplicate = errors.New("estimate already exists")

	// ErrEstimateFailed indicates the slicer produced G-code the parser
	// could not extract an estimate from.
	ErrEstimateFailed = errors.New("failed to read slicer output")
)

// MapHTTPStatus maps domain errors, including those surfaced from the
// profile, download, and slicer subsystems, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, download.ErrInvalidURL),
		errors.Is(err, download.ErrUnsupportedType),
		errors.Is(err, profiles.ErrProfileNotFound),
		errors.Is(err, profiles.ErrInvalidPreset):
		return http.StatusBadRequest
	case errors.Is(err, download.ErrModelTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, download.ErrDownloadFailed):
		return http.StatusBadGateway
	case errors.Is(err, slicer.ErrSlicerFailed),
		errors.Is(err, ErrEstimateFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
