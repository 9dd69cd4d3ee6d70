// Package slicer wraps the external prusa-slicer command-line binary.
// The binary is treated as opaque: this package builds its argument list,
// bounds its execution, and interprets its G-code output.
package slicer

import "context"

// Request describes a single slice invocation.
type Request struct {
	// ModelPath is the local path of the downloaded model file.
	ModelPath string

	// OutputPath is where the exported G-code is written.
	OutputPath string

	// ProfilePaths are the configuration presets loaded in order.
	ProfilePaths []string

	// Supports enables support material generation.
	Supports bool
}

// System defines the interface for slicer execution.
type System interface {
	// Slice runs the slicer for the given request. The G-code is written to
	// req.OutputPath. Returns ErrSlicerFailed (with truncated slicer output)
	// on non-zero exit.
	Slice(ctx context.Context, req Request) error

	// Check verifies the slicer binary is reachable and executable.
	Check(ctx context.Context) error
}
