// Package internal provides the App struct that wires all components of the
// roadmap tool together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/cli"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/observability"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/storage"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// App holds all service dependencies for the roadmap tool.
type App struct {
	BasePath string

	ConfigMgr  core.ConfigurationManager
	Config     *models.Config
	RoadmapMgr storage.RoadmapManager
	IDGen      core.TaskIDGenerator
	TaskMgr    core.TaskManager
	EventLog   observability.EventLog
}

// NewApp creates and wires all components. basePath is the directory holding
// the roadmap file and .roadmaprc.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	app.Config = cfg

	// --- Storage layer ---
	app.RoadmapMgr = storage.NewRoadmapManager(basePath, cfg.RoadmapFile)

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".roadmap_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if the log can't be created.
		app.EventLog = nil
	}

	// --- Core services ---
	app.IDGen = core.NewTaskIDGenerator()
	storeAdapter := &roadmapStoreAdapter{mgr: app.RoadmapMgr}
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.TaskMgr = core.NewTaskManager(storeAdapter, app.IDGen, evtAdapter, cfg.DefaultPriority, cfg.DefaultOwner)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.RoadmapFile = filepath.Join(basePath, cfg.RoadmapFile)
	cli.TaskMgr = app.TaskMgr
	cli.EventLog = app.EventLog
	cli.Config = app.Config

	return app, nil
}

// Close releases resources held by the App. Safe to call when EventLog is
// nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the directory holding the roadmap data. It
// checks the ROADMAP_HOME env var, then walks up from the working directory
// looking for a .roadmaprc or roadmap.json, and falls back to the working
// directory.
func ResolveBasePath() string {
	if home := os.Getenv("ROADMAP_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".roadmaprc")); err == nil {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, "roadmap.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// roadmapStoreAdapter adapts storage.RoadmapManager to core.RoadmapStore.
type roadmapStoreAdapter struct {
	mgr storage.RoadmapManager
}

func (a *roadmapStoreAdapter) Roadmap() *models.Roadmap {
	return a.mgr.Roadmap()
}

func (a *roadmapStoreAdapter) AddTask(task models.Task) error {
	return a.mgr.AddTask(task)
}

func (a *roadmapStoreAdapter) UpdateTask(taskID string, updates models.Task) error {
	return a.mgr.UpdateTask(taskID, updates)
}

func (a *roadmapStoreAdapter) RemoveTask(taskID string) error {
	return a.mgr.RemoveTask(taskID)
}

func (a *roadmapStoreAdapter) GetTask(taskID string) (*models.Task, error) {
	return a.mgr.GetTask(taskID)
}

func (a *roadmapStoreAdapter) GetAllTasks() ([]models.Task, error) {
	return a.mgr.GetAllTasks()
}

func (a *roadmapStoreAdapter) FilterTasks(filter core.RoadmapStoreFilter) ([]models.Task, error) {
	return a.mgr.FilterTasks(storage.RoadmapFilter{
		Status:   filter.Status,
		Type:     filter.Type,
		Priority: filter.Priority,
		Tags:     filter.Tags,
	})
}

func (a *roadmapStoreAdapter) Load() error {
	return a.mgr.Load()
}

func (a *roadmapStoreAdapter) Save() error {
	return a.mgr.Save()
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
