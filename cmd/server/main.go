package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
)

func main() {
	bootstrap := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		bootstrap.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		bootstrap.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		bootstrap.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		bootstrap.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	bootstrap.Info("server stopped")
}
