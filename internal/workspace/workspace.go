// Package workspace manages per-job scratch directories. Every estimate gets
// an isolated directory for the downloaded model and exported G-code, removed
// when the job finishes.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
)

// Job is a scratch directory reserved for a single estimate.
type Job struct {
	ID  uuid.UUID
	Dir string
}

// ModelPath returns the path a model file with the given name should use
// inside the job directory. Returns ErrInvalidName for unsafe names.
func (j *Job) ModelPath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, "..") ||
		filepath.IsAbs(cleaned) || strings.ContainsRune(cleaned, filepath.Separator) {
		return "", ErrInvalidName
	}
	return filepath.Join(j.Dir, cleaned), nil
}

// GCodePath returns the output path for the exported G-code.
func (j *Job) GCodePath() string {
	return filepath.Join(j.Dir, "out.gcode")
}

// System defines the interface for scratch workspace management.
type System interface {
	// Start registers base directory initialization with the coordinator.
	Start(lc *lifecycle.Coordinator) error

	// Create reserves a fresh job directory.
	Create() (*Job, error)

	// Remove deletes a job directory and its contents. Removing a job that
	// no longer exists is not an error.
	Remove(job *Job) error
}

type filesystem struct {
	basePath string
	logger   *slog.Logger
}

// New creates a filesystem workspace rooted at the configured base path.
// Directory creation is deferred to Start for lifecycle integration.
func New(cfg *config.WorkspaceConfig, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		logger:   logger.With("system", "workspace"),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting workspace", "base_path", f.basePath)

	lc.OnStartup(func() {
		if err := os.MkdirAll(f.basePath, 0755); err != nil {
			f.logger.Error("workspace initialization failed", "error", err)
			return
		}

		// Leftover job directories from a previous run hold no value.
		entries, err := os.ReadDir(f.basePath)
		if err != nil {
			f.logger.Warn("workspace cleanup skipped", "error", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				os.RemoveAll(filepath.Join(f.basePath, entry.Name()))
			}
		}

		f.logger.Info("workspace initialized")
	})

	return nil
}

func (f *filesystem) Create() (*Job, error) {
	id := uuid.New()
	dir := filepath.Join(f.basePath, id.String())

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create job directory: %w", err)
	}

	return &Job{ID: id, Dir: dir}, nil
}

func (f *filesystem) Remove(job *Job) error {
	if job == nil || job.Dir == "" {
		return nil
	}

	// Refuse to remove anything outside the workspace root.
	if !strings.HasPrefix(job.Dir, f.basePath+string(filepath.Separator)) {
		return ErrInvalidPath
	}

	if err := os.RemoveAll(job.Dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove job directory: %w", err)
	}

	return nil
}
