package profiles

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
)

type catalog struct {
	basePath  string
	materials []string
	qualities []string
	logger    *slog.Logger
}

// New creates a profile catalog rooted at the configured profiles directory.
func New(cfg *config.SlicerConfig, logger *slog.Logger) (System, error) {
	if cfg.ProfilesPath == "" {
		return nil, fmt.Errorf("profiles_path required")
	}

	absPath, err := filepath.Abs(cfg.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles_path: %w", err)
	}

	return &catalog{
		basePath:  absPath,
		materials: cfg.Materials,
		qualities: cfg.Qualities,
		logger:    logger.With("system", "profiles"),
	}, nil
}

// Start verifies the profiles directory and warns about missing presets
// once the service begins startup.
func (c *catalog) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if _, err := os.Stat(filepath.Join(c.basePath, BaseProfile)); err != nil {
			c.logger.Warn("base profile missing", "path", c.basePath)
		}

		cat := c.Catalog()
		for _, p := range append(cat.Materials, cat.Qualities...) {
			if !p.Available {
				c.logger.Warn("preset unavailable", "kind", p.Kind, "name", p.Name)
			}
		}

		c.logger.Info(
			"profile catalog loaded",
			"path", c.basePath,
			"materials", len(cat.Materials),
			"qualities", len(cat.Qualities),
		)
	})

	return nil
}

func (c *catalog) Resolve(material, quality string) ([]string, error) {
	// Material names are case-folded; quality names are used verbatim.
	matFile, err := c.presetPath(strings.ToLower(material))
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", material, err)
	}

	qualFile, err := c.presetPath(quality)
	if err != nil {
		return nil, fmt.Errorf("quality %q: %w", quality, err)
	}

	base := filepath.Join(c.basePath, BaseProfile)
	if !fileExists(base) {
		return nil, ErrBaseProfileMissing
	}
	if !fileExists(matFile) {
		return nil, fmt.Errorf("material %q: %w", material, ErrProfileNotFound)
	}
	if !fileExists(qualFile) {
		return nil, fmt.Errorf("quality %q: %w", quality, ErrProfileNotFound)
	}

	return []string{base, matFile, qualFile}, nil
}

func (c *catalog) Catalog() Catalog {
	cat := Catalog{
		BasePresent: fileExists(filepath.Join(c.basePath, BaseProfile)),
		Materials:   make([]Preset, 0, len(c.materials)),
		Qualities:   make([]Preset, 0, len(c.qualities)),
	}

	for _, name := range c.materials {
		cat.Materials = append(cat.Materials, c.preset(name, KindMaterial))
	}
	for _, name := range c.qualities {
		cat.Qualities = append(cat.Qualities, c.preset(name, KindQuality))
	}

	return cat
}

func (c *catalog) preset(name string, kind Kind) Preset {
	file := name + ".ini"
	return Preset{
		Name:      name,
		Kind:      kind,
		File:      file,
		Available: fileExists(filepath.Join(c.basePath, file)),
	}
}

// presetPath maps a preset name onto its file path, rejecting names that
// would escape the profiles directory.
func (c *catalog) presetPath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrInvalidPreset
	}
	return filepath.Join(c.basePath, name+".ini"), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
