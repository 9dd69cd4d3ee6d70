package slicer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
)

// outputLimit caps how much slicer output is carried into error messages.
const outputLimit = 1200

type engine struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// New resolves the slicer binary on PATH and returns the execution system.
// Returns ErrBinaryNotFound when the binary cannot be located.
func New(cfg *config.SlicerConfig, logger *slog.Logger) (System, error) {
	path, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBinaryNotFound, cfg.Binary)
	}

	return &engine{
		binary:  path,
		timeout: cfg.TimeoutDuration(),
		logger:  logger.With("system", "slicer"),
	}, nil
}

func (e *engine) Slice(ctx context.Context, req Request) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := buildArgs(req)
	cmd := exec.CommandContext(ctx, e.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: timed out after %s", ErrSlicerFailed, e.timeout)
		}
		return fmt.Errorf("%w: %s", ErrSlicerFailed, excerpt(stderr.String(), stdout.String()))
	}

	e.logger.Info(
		"slice complete",
		"model", req.ModelPath,
		"output", req.OutputPath,
		"duration", elapsed,
	)

	return nil
}

func (e *engine) Check(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, e.binary, "--help")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrBinaryNotFound, err)
	}
	return nil
}

// buildArgs assembles the slicer command line: layered profiles, optional
// support material, and G-code export.
func buildArgs(req Request) []string {
	args := []string{"--slice"}

	for _, profile := range req.ProfilePaths {
		args = append(args, "--load", profile)
	}

	// Support material is a bare flag; its absence disables supports.
	if req.Supports {
		args = append(args, "--support-material")
	}

	args = append(args,
		"--export-gcode",
		"--output="+req.OutputPath,
		req.ModelPath,
	)

	return args
}

// excerpt prefers stderr over stdout and truncates to outputLimit,
// matching what the service reports for slicer failures.
func excerpt(stderr, stdout string) string {
	out := stderr
	if out == "" {
		out = stdout
	}
	if len(out) > outputLimit {
		out = out[:outputLimit]
	}
	return out
}
