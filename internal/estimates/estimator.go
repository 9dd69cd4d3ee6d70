package estimates

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/layerbylayersg/slicer-estimate-api/internal/download"
	"github.com/layerbylayersg/slicer-estimate-api/internal/metrics"
	"github.com/layerbylayersg/slicer-estimate-api/internal/profiles"
	"github.com/layerbylayersg/slicer-estimate-api/internal/slicer"
	"github.com/layerbylayersg/slicer-estimate-api/internal/workspace"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/pagination"
)

// store abstracts estimate persistence for the estimator.
type store interface {
	Insert(ctx context.Context, e Estimate) (*Estimate, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Estimate], error)
	Find(ctx context.Context, id uuid.UUID) (*Estimate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type estimator struct {
	store     store
	profiles  profiles.System
	slicer    slicer.System
	downloads download.System
	workspace workspace.System
	logger    *slog.Logger
}

// New creates the estimate system backed by the given database and subsystems.
func New(
	db *sql.DB,
	prof profiles.System,
	eng slicer.System,
	dl download.System,
	ws workspace.System,
	logger *slog.Logger,
	pg pagination.Config,
) System {
	return &estimator{
		store:     newRepo(db, logger, pg),
		profiles:  prof,
		slicer:    eng,
		downloads: dl,
		workspace: ws,
		logger:    logger.With("system", "estimates"),
	}
}

func (e *estimator) Estimate(ctx context.Context, cmd EstimateCommand) (*Estimate, error) {
	cmd.Normalize()

	fileName, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	profilePaths, err := e.profiles.Resolve(cmd.Material, cmd.Quality)
	if err != nil {
		return nil, err
	}

	job, err := e.workspace.Create()
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	defer func() {
		if err := e.workspace.Remove(job); err != nil {
			e.logger.Warn("workspace cleanup failed", "job", job.ID, "error", err)
		}
	}()

	modelPath, err := job.ModelPath(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", download.ErrInvalidURL, fileName)
	}

	if _, err := e.downloads.Fetch(ctx, cmd.FileURL, modelPath); err != nil {
		return nil, err
	}

	start := time.Now()
	err = e.slicer.Slice(ctx, slicer.Request{
		ModelPath:    modelPath,
		OutputPath:   job.GCodePath(),
		ProfilePaths: profilePaths,
		Supports:     cmd.Supports,
	})
	elapsed := time.Since(start)

	metrics.SliceDuration.Observe(elapsed.Seconds())
	if err != nil {
		metrics.SlicesTotal.WithLabelValues(cmd.Material, cmd.Quality, "error").Inc()
		return nil, err
	}
	metrics.SlicesTotal.WithLabelValues(cmd.Material, cmd.Quality, "ok").Inc()

	gcode, err := os.ReadFile(job.GCodePath())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEstimateFailed, err)
	}

	seconds, ok := slicer.ParsePrintTimeSeconds(string(gcode))
	if !ok {
		return nil, ErrEstimateFailed
	}
	// Older slicer builds omit the mass comment; zero is reported rather
	// than failing the estimate.
	grams, _ := slicer.ParseFilamentGrams(string(gcode))

	copies := int64(cmd.Copies)
	record := Estimate{
		ID:               uuid.New(),
		FileURL:          cmd.FileURL,
		FileName:         fileName,
		Material:         cmd.Material,
		Quality:          cmd.Quality,
		Supports:         cmd.Supports,
		Copies:           cmd.Copies,
		PrintTimeSeconds: seconds * copies,
		FilamentGrams:    math.Round(grams*float64(copies)*100) / 100,
		DurationMS:       elapsed.Milliseconds(),
	}

	stored, err := e.store.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("persist estimate: %w", err)
	}

	e.logger.Info(
		"estimate complete",
		"id", stored.ID,
		"file", stored.FileName,
		"material", stored.Material,
		"quality", stored.Quality,
		"print_time_seconds", stored.PrintTimeSeconds,
		"filament_g", stored.FilamentGrams,
		"slice_duration", elapsed,
	)

	return stored, nil
}

func (e *estimator) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Estimate], error) {
	return e.store.List(ctx, page, filters)
}

func (e *estimator) Find(ctx context.Context, id uuid.UUID) (*Estimate, error) {
	return e.store.Find(ctx, id)
}

func (e *estimator) Delete(ctx context.Context, id uuid.UUID) error {
	return e.store.Delete(ctx, id)
}
