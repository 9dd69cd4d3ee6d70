package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvSlicerBinary overrides the slicer binary name or path.
	EnvSlicerBinary = "SLICER_BINARY"

	// EnvSlicerProfilesPath overrides the profiles directory.
	EnvSlicerProfilesPath = "SLICER_PROFILES_PATH"

	// EnvSlicerTimeout overrides the slice execution timeout.
	EnvSlicerTimeout = "SLICER_TIMEOUT"

	// EnvSlicerMaterials overrides the material preset names (comma-separated).
	EnvSlicerMaterials = "SLICER_MATERIALS"

	// EnvSlicerQualities overrides the quality preset names (comma-separated).
	EnvSlicerQualities = "SLICER_QUALITIES"
)

// SlicerConfig contains configuration for the external prusa-slicer binary
// and its profile catalog.
type SlicerConfig struct {
	// Binary is the slicer executable name or absolute path.
	Binary string `toml:"binary"`

	// ProfilesPath is the directory holding base.ini and the preset files.
	ProfilesPath string `toml:"profiles_path"`

	// Timeout bounds a single slice execution.
	Timeout string `toml:"timeout"`

	// Materials lists the material preset names served by the catalog.
	Materials []string `toml:"materials"`

	// Qualities lists the quality preset names served by the catalog.
	Qualities []string `toml:"qualities"`
}

// TimeoutDuration parses and returns the slice timeout as a time.Duration.
func (c *SlicerConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the slicer configuration.
func (c *SlicerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SlicerConfig) Merge(overlay *SlicerConfig) {
	if overlay.Binary != "" {
		c.Binary = overlay.Binary
	}
	if overlay.ProfilesPath != "" {
		c.ProfilesPath = overlay.ProfilesPath
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Materials != nil {
		c.Materials = overlay.Materials
	}
	if overlay.Qualities != nil {
		c.Qualities = overlay.Qualities
	}
}

func (c *SlicerConfig) loadDefaults() {
	if c.Binary == "" {
		c.Binary = "prusa-slicer"
	}
	if c.ProfilesPath == "" {
		c.ProfilesPath = "profiles"
	}
	if c.Timeout == "" {
		c.Timeout = "5m"
	}
	if len(c.Materials) == 0 {
		c.Materials = []string{"pla", "petg", "abs"}
	}
	if len(c.Qualities) == 0 {
		c.Qualities = []string{"draft", "standard", "quality"}
	}
}

func (c *SlicerConfig) loadEnv() {
	if v := os.Getenv(EnvSlicerBinary); v != "" {
		c.Binary = v
	}
	if v := os.Getenv(EnvSlicerProfilesPath); v != "" {
		c.ProfilesPath = v
	}
	if v := os.Getenv(EnvSlicerTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvSlicerMaterials); v != "" {
		c.Materials = splitList(v)
	}
	if v := os.Getenv(EnvSlicerQualities); v != "" {
		c.Qualities = splitList(v)
	}
}

func (c *SlicerConfig) validate() error {
	if c.Binary == "" {
		return fmt.Errorf("binary required")
	}
	if c.ProfilesPath == "" {
		return fmt.Errorf("profiles_path required")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
