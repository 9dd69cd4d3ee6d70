package main

import (
	"fmt"
	"log/slog"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/database"
	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/logging"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/pagination"
)

type Runtime struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Database   database.System
	Pagination pagination.Config
}

func NewRuntime(cfg *config.Config) (*Runtime, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	dbSys, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Runtime{
		Lifecycle:  lc,
		Logger:     logger,
		Database:   dbSys,
		Pagination: cfg.Pagination,
	}, nil
}

func (r *Runtime) Start() error {
	if err := r.Database.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
