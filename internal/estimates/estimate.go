// Package estimates implements print estimation: it downloads a model file,
// slices it with layered profiles through the external slicer, parses the
// resulting G-code, and persists the outcome.
package estimates

import (
	"time"

	"github.com/google/uuid"
)

// Estimate is a persisted print estimation result.
type Estimate struct {
	ID               uuid.UUID `json:"id"`
	FileURL          string    `json:"file_url"`
	FileName         string    `json:"file_name"`
	Material         string    `json:"material"`
	Quality          string    `json:"quality"`
	Supports         bool      `json:"supports"`
	Copies           int       `json:"copies"`
	PrintTimeSeconds int64     `json:"print_time_seconds"`
	FilamentGrams    float64   `json:"filament_g"`
	DurationMS       int64     `json:"duration_ms"`
	CreatedAt        time.Time `json:"created_at"`
}
