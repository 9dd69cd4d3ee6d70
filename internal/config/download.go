package config

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvDownloadTimeout overrides the model download timeout.
	EnvDownloadTimeout = "DOWNLOAD_TIMEOUT"

	// EnvDownloadMaxModelSize overrides the maximum model file size.
	EnvDownloadMaxModelSize = "DOWNLOAD_MAX_MODEL_SIZE"
)

// DownloadConfig contains configuration for fetching model files.
type DownloadConfig struct {
	// Timeout bounds a single model download.
	Timeout string `toml:"timeout"`

	// MaxModelSize is a human-readable size cap for downloaded models,
	// e.g. "100MB".
	MaxModelSize    string `toml:"max_model_size"`
	maxModelSizeVal int64
}

// TimeoutDuration parses and returns the download timeout as a time.Duration.
func (c *DownloadConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxModelSizeBytes returns the parsed model size cap in bytes.
func (c *DownloadConfig) MaxModelSizeBytes() int64 {
	return c.maxModelSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the download configuration.
func (c *DownloadConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *DownloadConfig) Merge(overlay *DownloadConfig) {
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if size, err := units.FromHumanSize(overlay.MaxModelSize); err == nil {
		c.MaxModelSize = overlay.MaxModelSize
		c.maxModelSizeVal = size
	}
}

func (c *DownloadConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "90s"
	}
	if c.MaxModelSize == "" {
		c.MaxModelSize = "100MB"
	}
}

func (c *DownloadConfig) loadEnv() {
	if v := os.Getenv(EnvDownloadTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvDownloadMaxModelSize); v != "" {
		c.MaxModelSize = v
	}
}

func (c *DownloadConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	size, err := units.FromHumanSize(c.MaxModelSize)
	if err != nil {
		return fmt.Errorf("invalid max_model_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_model_size must be positive")
	}
	c.maxModelSizeVal = size

	return nil
}
