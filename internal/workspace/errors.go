package workspace

import "errors"

// Workspace errors returned by System implementations.
var (
	// ErrInvalidName indicates a file name that would escape the job directory.
	ErrInvalidName = errors.New("workspace: invalid file name")

	// ErrInvalidPath indicates a path outside the workspace root.
	ErrInvalidPath = errors.New("workspace: invalid path")
)
