package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// ErrTaskNotFound is the sentinel wrapped by errors caused by a task ID that
// does not resolve, so callers can branch on it with errors.Is.
var ErrTaskNotFound = errors.New("task not found")

// RoadmapStore is the subset of storage.RoadmapManager that TaskManager
// needs. Defining it here keeps core independent of the storage package.
type RoadmapStore interface {
	Roadmap() *models.Roadmap
	AddTask(task models.Task) error
	UpdateTask(taskID string, updates models.Task) error
	RemoveTask(taskID string) error
	GetTask(taskID string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	FilterTasks(filter RoadmapStoreFilter) ([]models.Task, error)
	Load() error
	Save() error
}

// RoadmapStoreFilter mirrors storage.RoadmapFilter.
type RoadmapStoreFilter struct {
	Status   []models.TaskStatus
	Type     []models.TaskType
	Priority []models.Priority
	Tags     []string
}

// EventLogger is the narrow logging interface TaskManager consumes. A nil
// EventLogger disables observability.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// CreateTaskOpts holds optional attributes for a new task.
type CreateTaskOpts struct {
	Priority  models.Priority
	Owner     string
	Tags      []string
	DependsOn []string
	Blocks    []string
}

// TaskManager defines the interface for roadmap task lifecycle operations.
type TaskManager interface {
	CreateTask(taskType models.TaskType, title string, opts CreateTaskOpts) (*models.Task, error)
	GetTask(taskID string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	FilterTasks(filter RoadmapStoreFilter) ([]models.Task, error)
	Roadmap() (*models.Roadmap, error)
	UpdateTaskStatus(taskID string, status models.TaskStatus) error
	UpdateTaskPriority(taskID string, priority models.Priority) error
	RemoveTask(taskID string) ([]string, error)
	AddDependency(fromID, toID string) error
	RemoveDependency(fromID, toID string) error
	AddBlock(fromID, toID string) error
	RemoveBlock(fromID, toID string) error
	Dependencies(taskID string) ([]models.Task, error)
	Dependents(taskID string) ([]models.Task, error)
	Validate() ([]models.Finding, error)
	SortedTasks() ([]models.Task, error)
}

// taskManager implements TaskManager by coordinating the RoadmapStore, the
// dependency-integrity engine, and the event log.
type taskManager struct {
	store  RoadmapStore
	idGen  TaskIDGenerator
	events EventLogger
	// defaults applied when CreateTaskOpts leaves fields empty.
	defaultPriority models.Priority
	defaultOwner    string
}

// NewTaskManager creates a TaskManager with all dependencies injected.
// events may be nil if observability is disabled.
func NewTaskManager(store RoadmapStore, idGen TaskIDGenerator, events EventLogger, defaultPriority models.Priority, defaultOwner string) TaskManager {
	if defaultPriority == "" {
		defaultPriority = models.P2
	}
	return &taskManager{
		store:           store,
		idGen:           idGen,
		events:          events,
		defaultPriority: defaultPriority,
		defaultOwner:    defaultOwner,
	}
}

// logEvent writes an event if logging is enabled. Logging failures are
// swallowed: observability must never fail an operation.
func (tm *taskManager) logEvent(eventType string, data map[string]any) {
	if tm.events == nil {
		return
	}
	_ = tm.events.LogEvent(eventType, data)
}

// CreateTask generates the next sequential ID for the type, appends the task
// to the roadmap in input order, and persists it.
func (tm *taskManager) CreateTask(taskType models.TaskType, title string, opts CreateTaskOpts) (*models.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("creating task: title must not be empty")
	}
	if !validTaskTypes[taskType] {
		return nil, fmt.Errorf("creating task: invalid type %q, must be one of: bug, feature, improvement, planning, research", taskType)
	}

	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("creating task: loading roadmap: %w", err)
	}

	existing, err := tm.store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	id, err := tm.idGen.NextTaskID(taskType, existing)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	priority := opts.Priority
	if priority == "" {
		priority = tm.defaultPriority
	}
	owner := opts.Owner
	if owner == "" {
		owner = tm.defaultOwner
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:        id,
		Title:     title,
		Type:      taskType,
		Status:    models.StatusPlanned,
		Priority:  priority,
		Owner:     owner,
		Created:   now,
		Updated:   now,
		Tags:      opts.Tags,
		DependsOn: opts.DependsOn,
		Blocks:    opts.Blocks,
	}

	if err := tm.store.AddTask(task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	if err := tm.store.Save(); err != nil {
		return nil, fmt.Errorf("creating task: saving roadmap: %w", err)
	}

	tm.logEvent("task.created", map[string]any{"task_id": id, "type": string(taskType), "title": title})
	return &task, nil
}

// GetTask returns a single task by ID.
func (tm *taskManager) GetTask(taskID string) (*models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("getting task %s: loading roadmap: %w", taskID, err)
	}
	task, err := tm.store.GetTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w: %s", ErrTaskNotFound, taskID)
	}
	return task, nil
}

// GetAllTasks returns all tasks in roadmap order.
func (tm *taskManager) GetAllTasks() ([]models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("getting all tasks: loading roadmap: %w", err)
	}
	return tm.store.GetAllTasks()
}

// FilterTasks returns tasks matching the filter, in roadmap order.
func (tm *taskManager) FilterTasks(filter RoadmapStoreFilter) ([]models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("filtering tasks: loading roadmap: %w", err)
	}
	return tm.store.FilterTasks(filter)
}

// Roadmap returns the loaded roadmap including its file-level metadata.
func (tm *taskManager) Roadmap() (*models.Roadmap, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("getting roadmap: loading: %w", err)
	}
	return tm.store.Roadmap(), nil
}

// UpdateTaskStatus changes the lifecycle status of a task and persists it.
func (tm *taskManager) UpdateTaskStatus(taskID string, status models.TaskStatus) error {
	if err := tm.updateTask(taskID, models.Task{Status: status}); err != nil {
		return fmt.Errorf("updating status of %s: %w", taskID, err)
	}
	tm.logEvent("task.updated", map[string]any{"task_id": taskID, "status": string(status)})
	return nil
}

// UpdateTaskPriority changes the priority of a task and persists it.
func (tm *taskManager) UpdateTaskPriority(taskID string, priority models.Priority) error {
	if err := tm.updateTask(taskID, models.Task{Priority: priority}); err != nil {
		return fmt.Errorf("updating priority of %s: %w", taskID, err)
	}
	tm.logEvent("task.updated", map[string]any{"task_id": taskID, "priority": string(priority)})
	return nil
}

// updateTask loads, merges non-zero fields into the stored task, and saves.
func (tm *taskManager) updateTask(taskID string, updates models.Task) error {
	if err := tm.store.Load(); err != nil {
		return fmt.Errorf("loading roadmap: %w", err)
	}
	if _, err := tm.store.GetTask(taskID); err != nil {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	updates.Updated = time.Now().UTC()
	if err := tm.store.UpdateTask(taskID, updates); err != nil {
		return err
	}
	return tm.store.Save()
}

// RemoveTask deletes the task and returns the IDs of tasks that still
// reference it under depends-on or blocks. References are left in place for
// validate to report: hand-edited roadmap files are first-class input, so
// dangling references are an expected, reportable state rather than one the
// manager silently rewrites.
func (tm *taskManager) RemoveTask(taskID string) ([]string, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("removing task %s: loading roadmap: %w", taskID, err)
	}
	if _, err := tm.store.GetTask(taskID); err != nil {
		return nil, fmt.Errorf("removing task: %w: %s", ErrTaskNotFound, taskID)
	}

	all, err := tm.store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("removing task %s: %w", taskID, err)
	}
	var referencedBy []string
	for _, t := range all {
		if t.ID == taskID {
			continue
		}
		if containsID(t.DependsOn, taskID) || containsID(t.Blocks, taskID) {
			referencedBy = append(referencedBy, t.ID)
		}
	}

	if err := tm.store.RemoveTask(taskID); err != nil {
		return nil, fmt.Errorf("removing task %s: %w", taskID, err)
	}
	if err := tm.store.Save(); err != nil {
		return nil, fmt.Errorf("removing task %s: saving roadmap: %w", taskID, err)
	}

	tm.logEvent("task.removed", map[string]any{"task_id": taskID})
	return referencedBy, nil
}

// AddDependency records that fromID depends on toID. Both tasks must exist,
// duplicate edges are no-ops, and edges that would introduce a cycle in the
// unified graph are refused with an error wrapping ErrCycleDetected.
func (tm *taskManager) AddDependency(fromID, toID string) error {
	return tm.addEdge(fromID, toID, "depends-on")
}

// AddBlock records that fromID blocks toID, under the same existence, dedup,
// and cycle rules as AddDependency.
func (tm *taskManager) AddBlock(fromID, toID string) error {
	return tm.addEdge(fromID, toID, "blocks")
}

func (tm *taskManager) addEdge(fromID, toID, relation string) error {
	if err := tm.store.Load(); err != nil {
		return fmt.Errorf("adding %s edge: loading roadmap: %w", relation, err)
	}

	from, err := tm.store.GetTask(fromID)
	if err != nil {
		return fmt.Errorf("adding %s edge: %w: %s", relation, ErrTaskNotFound, fromID)
	}
	if _, err := tm.store.GetTask(toID); err != nil {
		return fmt.Errorf("adding %s edge: %w: %s", relation, ErrTaskNotFound, toID)
	}

	ids := from.DependsOn
	if relation == "blocks" {
		ids = from.Blocks
	}
	if containsID(ids, toID) {
		return nil // edge already present
	}

	// Try the edge against a tentative copy of the roadmap before
	// persisting anything.
	all, err := tm.store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("adding %s edge: %w", relation, err)
	}
	tentative := make([]models.Task, len(all))
	copy(tentative, all)
	for i := range tentative {
		if tentative[i].ID != fromID {
			continue
		}
		if relation == "blocks" {
			tentative[i].Blocks = append(append([]string(nil), tentative[i].Blocks...), toID)
		} else {
			tentative[i].DependsOn = append(append([]string(nil), tentative[i].DependsOn...), toID)
		}
	}
	if result := DetectCircular(tentative); result != nil {
		return fmt.Errorf("adding %s edge %s -> %s: %w", relation, fromID, toID, result.Error())
	}

	updates := models.Task{Updated: time.Now().UTC()}
	if relation == "blocks" {
		updates.Blocks = append(append([]string(nil), from.Blocks...), toID)
	} else {
		updates.DependsOn = append(append([]string(nil), from.DependsOn...), toID)
	}
	if err := tm.store.UpdateTask(fromID, updates); err != nil {
		return fmt.Errorf("adding %s edge: %w", relation, err)
	}
	if err := tm.store.Save(); err != nil {
		return fmt.Errorf("adding %s edge: saving roadmap: %w", relation, err)
	}

	tm.logEvent("dependency.added", map[string]any{"from": fromID, "to": toID, "relation": relation})
	return nil
}

// RemoveDependency removes toID from fromID's depends-on list.
func (tm *taskManager) RemoveDependency(fromID, toID string) error {
	return tm.removeEdge(fromID, toID, "depends-on")
}

// RemoveBlock removes toID from fromID's blocks list.
func (tm *taskManager) RemoveBlock(fromID, toID string) error {
	return tm.removeEdge(fromID, toID, "blocks")
}

func (tm *taskManager) removeEdge(fromID, toID, relation string) error {
	if err := tm.store.Load(); err != nil {
		return fmt.Errorf("removing %s edge: loading roadmap: %w", relation, err)
	}

	from, err := tm.store.GetTask(fromID)
	if err != nil {
		return fmt.Errorf("removing %s edge: %w: %s", relation, ErrTaskNotFound, fromID)
	}

	ids := from.DependsOn
	if relation == "blocks" {
		ids = from.Blocks
	}
	if !containsID(ids, toID) {
		return fmt.Errorf("removing %s edge: %s has no %s entry for %s", relation, fromID, relation, toID)
	}

	remaining := make([]string, 0, len(ids)-1)
	for _, id := range ids {
		if id != toID {
			remaining = append(remaining, id)
		}
	}

	updates := models.Task{Updated: time.Now().UTC()}
	if relation == "blocks" {
		updates.Blocks = remaining
	} else {
		updates.DependsOn = remaining
	}
	if err := tm.store.UpdateTask(fromID, updates); err != nil {
		return fmt.Errorf("removing %s edge: %w", relation, err)
	}
	if err := tm.store.Save(); err != nil {
		return fmt.Errorf("removing %s edge: saving roadmap: %w", relation, err)
	}

	tm.logEvent("dependency.removed", map[string]any{"from": fromID, "to": toID, "relation": relation})
	return nil
}

// Dependencies resolves the tasks the given task depends on, in list order.
func (tm *taskManager) Dependencies(taskID string) ([]models.Task, error) {
	task, all, err := tm.taskAndAll(taskID)
	if err != nil {
		return nil, fmt.Errorf("resolving dependencies: %w", err)
	}
	return DependenciesOf(*task, all), nil
}

// Dependents returns the tasks whose depends-on lists include the given
// task, in roadmap order.
func (tm *taskManager) Dependents(taskID string) ([]models.Task, error) {
	task, all, err := tm.taskAndAll(taskID)
	if err != nil {
		return nil, fmt.Errorf("resolving dependents: %w", err)
	}
	return DependentsOf(*task, all), nil
}

func (tm *taskManager) taskAndAll(taskID string) (*models.Task, []models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, nil, fmt.Errorf("loading roadmap: %w", err)
	}
	task, err := tm.store.GetTask(taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	all, err := tm.store.GetAllTasks()
	if err != nil {
		return nil, nil, err
	}
	return task, all, nil
}

// Validate runs the dependency-integrity engine over the loaded roadmap and
// returns the findings.
func (tm *taskManager) Validate() ([]models.Finding, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("validating roadmap: loading: %w", err)
	}
	tasks, err := tm.store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("validating roadmap: %w", err)
	}

	findings := ValidateDependencies(&models.Roadmap{Tasks: tasks})

	data := map[string]any{"findings": len(findings)}
	for _, f := range findings {
		if f.Type == models.FindingCircular {
			tm.logEvent("validation.cycle_found", map[string]any{"cycle": f.RelatedTaskIDs})
			break
		}
	}
	tm.logEvent("validation.completed", data)

	return findings, nil
}

// SortedTasks returns the tasks in topological order, or an error wrapping
// ErrCycleDetected when no order exists.
func (tm *taskManager) SortedTasks() ([]models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("sorting tasks: loading roadmap: %w", err)
	}
	tasks, err := tm.store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("sorting tasks: %w", err)
	}
	ordered, err := TopologicalOrder(tasks)
	if err != nil {
		return nil, fmt.Errorf("sorting tasks: %w", err)
	}
	return ordered, nil
}
