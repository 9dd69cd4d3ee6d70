package database_test

import (
	"strings"
	"testing"
	"time"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/database"
)

func validConfig() database.Config {
	return database.Config{Name: "estimates", User: "postgres"}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want 5432", cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want disable", cfg.SSLMode)
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeout = %s, want 5s", cfg.ConnTimeoutDuration())
	}
}

func TestConfig_Finalize_Required(t *testing.T) {
	cfg := database.Config{User: "postgres"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for missing name")
	}

	cfg = database.Config{Name: "estimates"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for missing user")
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "5433")

	cfg := validConfig()
	env := &database.Env{Host: "TEST_DB_HOST", Port: "TEST_DB_PORT"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("Host = %q, want db.internal", cfg.Host)
	}
	if cfg.Port != 5433 {
		t.Errorf("Port = %d, want 5433", cfg.Port)
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := validConfig()
	cfg.Password = "secret"
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	dsn := cfg.Dsn()
	for _, part := range []string{
		"host=localhost",
		"port=5432",
		"dbname=estimates",
		"user=postgres",
		"password=secret",
		"sslmode=disable",
	} {
		if !strings.Contains(dsn, part) {
			t.Errorf("Dsn() = %q, missing %q", dsn, part)
		}
	}
}
