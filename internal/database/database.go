// Package database manages the PostgreSQL connection pool and schema
// migrations for the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
	pkgdatabase "github.com/layerbylayersg/slicer-estimate-api/pkg/database"
)

// System manages the database connection lifecycle and exposes the pool.
type System interface {
	// Start pings the database, applies pending migrations, and registers
	// shutdown cleanup with the coordinator.
	Start(lc *lifecycle.Coordinator) error

	// DB returns the underlying connection pool.
	DB() *sql.DB
}

type system struct {
	db     *sql.DB
	cfg    *pkgdatabase.Config
	logger *slog.Logger
}

// New opens the connection pool with the configured limits.
// Connectivity is verified during Start.
func New(cfg *pkgdatabase.Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &system{
		db:     db,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (s *system) DB() *sql.DB {
	return s.db
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), s.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	s.logger.Info("database ready", "host", s.cfg.Host, "name", s.cfg.Name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		} else {
			s.logger.Info("database closed")
		}
	})

	return nil
}
