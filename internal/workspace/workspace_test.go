package workspace_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
	"github.com/layerbylayersg/slicer-estimate-api/internal/workspace"
)

func newWorkspace(t *testing.T) (workspace.System, string) {
	t.Helper()

	base := filepath.Join(t.TempDir(), "jobs")
	sys, err := workspace.New(&config.WorkspaceConfig{BasePath: base}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	lc.WaitForStartup()

	return sys, base
}

func TestWorkspace_CreateRemove(t *testing.T) {
	sys, base := newWorkspace(t)

	job, err := sys.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if filepath.Dir(job.Dir) != base {
		t.Errorf("job dir %q not under base %q", job.Dir, base)
	}
	if _, err := os.Stat(job.Dir); err != nil {
		t.Fatalf("job directory missing: %v", err)
	}

	if err := sys.Remove(job); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(job.Dir); !errors.Is(err, os.ErrNotExist) {
		t.Error("job directory still present after Remove")
	}
}

func TestWorkspace_Remove_Idempotent(t *testing.T) {
	sys, _ := newWorkspace(t)

	job, err := sys.Create()
	if err != nil {
		t.Fatal(err)
	}

	if err := sys.Remove(job); err != nil {
		t.Fatalf("first Remove() error = %v", err)
	}
	if err := sys.Remove(job); err != nil {
		t.Errorf("second Remove() error = %v, want nil", err)
	}
}

func TestWorkspace_Remove_OutsideBase(t *testing.T) {
	sys, _ := newWorkspace(t)

	outside := t.TempDir()
	err := sys.Remove(&workspace.Job{Dir: outside})
	if !errors.Is(err, workspace.ErrInvalidPath) {
		t.Errorf("error = %v, want ErrInvalidPath", err)
	}
	if _, statErr := os.Stat(outside); statErr != nil {
		t.Error("directory outside workspace was removed")
	}
}

func TestWorkspace_Start_CleansLeftovers(t *testing.T) {
	base := filepath.Join(t.TempDir(), "jobs")
	if err := os.MkdirAll(filepath.Join(base, "stale-job"), 0o755); err != nil {
		t.Fatal(err)
	}

	sys, err := workspace.New(&config.WorkspaceConfig{BasePath: base}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatal(err)
	}
	lc.WaitForStartup()

	if _, err := os.Stat(filepath.Join(base, "stale-job")); !errors.Is(err, os.ErrNotExist) {
		t.Error("stale job directory survived startup")
	}
}

func TestJob_ModelPath(t *testing.T) {
	job := &workspace.Job{Dir: "/jobs/abc"}

	got, err := job.ModelPath("benchy.stl")
	if err != nil {
		t.Fatalf("ModelPath() error = %v", err)
	}
	if got != filepath.Join("/jobs/abc", "benchy.stl") {
		t.Errorf("path = %q", got)
	}
}

func TestJob_ModelPath_Invalid(t *testing.T) {
	job := &workspace.Job{Dir: "/jobs/abc"}

	for _, name := range []string{"", ".", "..", "../escape.stl", "/abs.stl", "a/b.stl"} {
		if _, err := job.ModelPath(name); !errors.Is(err, workspace.ErrInvalidName) {
			t.Errorf("ModelPath(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestJob_GCodePath(t *testing.T) {
	job := &workspace.Job{Dir: "/jobs/abc"}

	if got := job.GCodePath(); got != filepath.Join("/jobs/abc", "out.gcode") {
		t.Errorf("GCodePath() = %q", got)
	}
}
