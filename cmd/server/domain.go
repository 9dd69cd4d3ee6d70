package main

import (
	"fmt"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/download"
	"github.com/layerbylayersg/slicer-estimate-api/internal/estimates"
	"github.com/layerbylayersg/slicer-estimate-api/internal/profiles"
	"github.com/layerbylayersg/slicer-estimate-api/internal/slicer"
	"github.com/layerbylayersg/slicer-estimate-api/internal/workspace"
)

type Domain struct {
	Profiles  profiles.System
	Slicer    slicer.System
	Downloads download.System
	Workspace workspace.System
	Estimates estimates.System
}

func NewDomain(runtime *Runtime, cfg *config.Config) (*Domain, error) {
	prof, err := profiles.New(&cfg.Slicer, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("profiles init failed: %w", err)
	}

	eng, err := slicer.New(&cfg.Slicer, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("slicer init failed: %w", err)
	}

	ws, err := workspace.New(&cfg.Workspace, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("workspace init failed: %w", err)
	}

	dl := download.New(&cfg.Download, runtime.Logger)

	return &Domain{
		Profiles:  prof,
		Slicer:    eng,
		Downloads: dl,
		Workspace: ws,
		Estimates: estimates.New(
			runtime.Database.DB(),
			prof,
			eng,
			dl,
			ws,
			runtime.Logger,
			runtime.Pagination,
		),
	}, nil
}

func (d *Domain) Start(runtime *Runtime) error {
	if err := d.Profiles.Start(runtime.Lifecycle); err != nil {
		return fmt.Errorf("profiles start failed: %w", err)
	}
	if err := d.Workspace.Start(runtime.Lifecycle); err != nil {
		return fmt.Errorf("workspace start failed: %w", err)
	}
	return nil
}
