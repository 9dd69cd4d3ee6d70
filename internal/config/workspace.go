package config

import (
	"fmt"
	"os"
)

const (
	// EnvWorkspaceBasePath overrides the scratch workspace base path.
	EnvWorkspaceBasePath = "WORKSPACE_BASE_PATH"
)

// WorkspaceConfig contains configuration for per-job scratch directories.
type WorkspaceConfig struct {
	// BasePath is the root directory under which job directories are created.
	// Default: ".data/jobs"
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the workspace configuration.
func (c *WorkspaceConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *WorkspaceConfig) Merge(overlay *WorkspaceConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *WorkspaceConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = ".data/jobs"
	}
}

func (c *WorkspaceConfig) loadEnv() {
	if v := os.Getenv(EnvWorkspaceBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *WorkspaceConfig) validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base_path required")
	}
	return nil
}
