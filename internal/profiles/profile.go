// Package profiles manages the PrusaSlicer configuration preset catalog.
// Presets are plain INI files owned by PrusaSlicer; this package only
// resolves and lists them. An estimate always layers three presets:
// base.ini, a material preset, and a quality preset.
package profiles

// BaseProfile is the file name of the preset every slice loads first.
const BaseProfile = "base.ini"

// Kind distinguishes the two preset roles in the catalog.
type Kind string

const (
	KindMaterial Kind = "material"
	KindQuality  Kind = "quality"
)

// Preset describes a single catalog entry.
type Preset struct {
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	File      string `json:"file"`
	Available bool   `json:"available"`
}

// Catalog is the full preset listing served by the profiles endpoint.
type Catalog struct {
	BasePresent bool     `json:"base_present"`
	Materials   []Preset `json:"materials"`
	Qualities   []Preset `json:"qualities"`
}
