package slicer

import "errors"

// Domain errors for slicer execution.
var (
	// ErrBinaryNotFound indicates the prusa-slicer binary is missing or not executable.
	ErrBinaryNotFound = errors.New("slicer binary not found")

	// ErrSlicerFailed indicates the slicer exited non-zero or timed out.
	ErrSlicerFailed = errors.New("slicer failed")
)
