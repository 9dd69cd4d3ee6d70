package estimates

import (
	"context"

	"github.com/google/uuid"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/pagination"
)

// System defines the interface for estimate operations.
type System interface {
	// Estimate downloads the model, slices it, parses the G-code, persists
	// the result, and returns the stored record.
	Estimate(ctx context.Context, cmd EstimateCommand) (*Estimate, error)

	// List returns a paginated history of estimates with optional filtering.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Estimate], error)

	// Find returns a single estimate by ID.
	Find(ctx context.Context, id uuid.UUID) (*Estimate, error)

	// Delete removes an estimate record.
	Delete(ctx context.Context, id uuid.UUID) error
}
