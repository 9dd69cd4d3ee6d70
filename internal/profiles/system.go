package profiles

import "github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"

// System defines the interface for profile catalog operations.
type System interface {
	// Start registers startup checks with the coordinator.
	Start(lc *lifecycle.Coordinator) error

	// Resolve returns the ordered preset paths (base, material, quality)
	// for a slice invocation. Returns ErrInvalidPreset for malformed names,
	// ErrBaseProfileMissing when base.ini is absent, and ErrProfileNotFound
	// when a requested preset file does not exist.
	Resolve(material, quality string) ([]string, error)

	// Catalog returns the configured presets with current availability.
	Catalog() Catalog
}
