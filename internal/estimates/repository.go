package estimates

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/pagination"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/query"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

func newRepo(db *sql.DB, logger *slog.Logger, pg pagination.Config) *repo {
	return &repo{
		db:         db,
		logger:     logger.With("system", "estimates.repo"),
		pagination: pg,
	}
}

func (r *repo) Insert(ctx context.Context, e Estimate) (*Estimate, error) {
	q := `
		INSERT INTO estimates(
			id, file_url, file_name, material, quality,
			supports, copies, print_time_seconds, filament_g, duration_ms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, file_url, file_name, material, quality,
			supports, copies, print_time_seconds, filament_g,
			duration_ms, created_at`

	stored, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Estimate, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			e.ID, e.FileURL, e.FileName, e.Material, e.Quality,
			e.Supports, e.Copies, e.PrintTimeSeconds, e.FilamentGrams, e.DurationMS,
		}, scanEstimate)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &stored, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Estimate], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(estimateProjection, defaultSort).
		WhereSearch(page.Search, "FileName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count estimates: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEstimate)
	if err != nil {
		return nil, fmt.Errorf("query estimates: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Estimate, error) {
	q, args := query.NewBuilder(estimateProjection, defaultSort).
		WhereEquals("ID", id).
		Build()

	estimate, err := repository.QueryOne(ctx, r.db, q, args, scanEstimate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &estimate, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM estimates WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("estimate deleted", "id", id)
	return nil
}
