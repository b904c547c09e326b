package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

func TestNewApp_WiresComponents(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Config == nil || app.Config.RoadmapFile != "roadmap.json" {
		t.Fatalf("expected default config, got %+v", app.Config)
	}
	if app.TaskMgr == nil || app.RoadmapMgr == nil || app.IDGen == nil {
		t.Fatal("expected all core components wired")
	}

	// End to end through the wired stack: create, persist, read back.
	task, err := app.TaskMgr.CreateTask(models.TaskTypeFeature, "First feature", core.CreateTaskOpts{})
	if err != nil {
		t.Fatalf("creating task through app: %v", err)
	}
	if task.ID != "F-001" {
		t.Fatalf("expected F-001, got %s", task.ID)
	}
	if _, err := os.Stat(filepath.Join(dir, "roadmap.json")); err != nil {
		t.Fatalf("expected roadmap file written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".roadmap_events.jsonl")); err != nil {
		t.Fatalf("expected event log written: %v", err)
	}
}

func TestNewApp_RespectsRoadmaprc(t *testing.T) {
	dir := t.TempDir()
	rc := "roadmap:\n  file: plan.json\ndefaults:\n  priority: P1\n"
	if err := os.WriteFile(filepath.Join(dir, ".roadmaprc"), []byte(rc), 0o600); err != nil {
		t.Fatalf("writing .roadmaprc: %v", err)
	}

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Config.RoadmapFile != "plan.json" {
		t.Fatalf("expected plan.json, got %q", app.Config.RoadmapFile)
	}

	task, err := app.TaskMgr.CreateTask(models.TaskTypeBug, "Crash on start", core.CreateTaskOpts{})
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}
	if task.Priority != models.P1 {
		t.Fatalf("expected configured default priority P1, got %s", task.Priority)
	}
	if _, err := os.Stat(filepath.Join(dir, "plan.json")); err != nil {
		t.Fatalf("expected configured roadmap file written: %v", err)
	}
}

func TestNewApp_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	rc := "defaults:\n  priority: P9\n"
	if err := os.WriteFile(filepath.Join(dir, ".roadmaprc"), []byte(rc), 0o600); err != nil {
		t.Fatalf("writing .roadmaprc: %v", err)
	}

	if _, err := NewApp(dir); err == nil {
		t.Fatal("expected an error for invalid configuration")
	}
}

func TestResolveBasePath_EnvVarWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROADMAP_HOME", dir)

	if got := ResolveBasePath(); got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestResolveBasePath_WalksUpToMarker(t *testing.T) {
	t.Setenv("ROADMAP_HOME", "")
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "roadmap.json"), []byte(`{"version":1}`), 0o600); err != nil {
		t.Fatalf("writing marker: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatalf("creating nested dir: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting cwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("changing directory: %v", err)
	}

	got := ResolveBasePath()
	// Resolve symlinks: on some platforms TempDir paths go through /private
	// or similar.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Fatalf("expected %s, got %s", wantResolved, gotResolved)
	}
}
