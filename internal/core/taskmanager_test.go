package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// memStore is an in-memory RoadmapStore for exercising TaskManager without
// touching disk.
type memStore struct {
	roadmap models.Roadmap
	saves   int
}

func (m *memStore) Roadmap() *models.Roadmap { return &m.roadmap }

func (m *memStore) AddTask(task models.Task) error {
	m.roadmap.Tasks = append(m.roadmap.Tasks, task)
	return nil
}

func (m *memStore) UpdateTask(taskID string, updates models.Task) error {
	for i := range m.roadmap.Tasks {
		if m.roadmap.Tasks[i].ID != taskID {
			continue
		}
		t := &m.roadmap.Tasks[i]
		if updates.Title != "" {
			t.Title = updates.Title
		}
		if updates.Status != "" {
			t.Status = updates.Status
		}
		if updates.Priority != "" {
			t.Priority = updates.Priority
		}
		if updates.Owner != "" {
			t.Owner = updates.Owner
		}
		if updates.DependsOn != nil {
			t.DependsOn = updates.DependsOn
		}
		if updates.Blocks != nil {
			t.Blocks = updates.Blocks
		}
		if !updates.Updated.IsZero() {
			t.Updated = updates.Updated
		}
		return nil
	}
	return fmt.Errorf("task %s not found", taskID)
}

func (m *memStore) RemoveTask(taskID string) error {
	for i := range m.roadmap.Tasks {
		if m.roadmap.Tasks[i].ID == taskID {
			m.roadmap.Tasks = append(m.roadmap.Tasks[:i], m.roadmap.Tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %s not found", taskID)
}

func (m *memStore) GetTask(taskID string) (*models.Task, error) {
	for i := range m.roadmap.Tasks {
		if m.roadmap.Tasks[i].ID == taskID {
			task := m.roadmap.Tasks[i]
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task %s not found", taskID)
}

func (m *memStore) GetAllTasks() ([]models.Task, error) {
	return append([]models.Task(nil), m.roadmap.Tasks...), nil
}

func (m *memStore) FilterTasks(filter RoadmapStoreFilter) ([]models.Task, error) {
	return m.GetAllTasks()
}

func (m *memStore) Load() error { return nil }
func (m *memStore) Save() error { m.saves++; return nil }

// recordingLogger captures event types for assertions.
type recordingLogger struct {
	events []string
}

func (l *recordingLogger) LogEvent(eventType string, data map[string]any) error {
	l.events = append(l.events, eventType)
	return nil
}

func (l *recordingLogger) has(eventType string) bool {
	for _, e := range l.events {
		if e == eventType {
			return true
		}
	}
	return false
}

func newTestManager(tasks ...models.Task) (TaskManager, *memStore, *recordingLogger) {
	store := &memStore{roadmap: models.Roadmap{Version: 1, Tasks: tasks}}
	logger := &recordingLogger{}
	return NewTaskManager(store, NewTaskIDGenerator(), logger, models.P2, ""), store, logger
}

func TestTaskManager_CreateTask(t *testing.T) {
	tm, store, logger := newTestManager()

	task, err := tm.CreateTask(models.TaskTypeFeature, "Add search", CreateTaskOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "F-001" {
		t.Errorf("expected F-001, got %s", task.ID)
	}
	if task.Status != models.StatusPlanned {
		t.Errorf("expected new task planned, got %s", task.Status)
	}
	if task.Priority != models.P2 {
		t.Errorf("expected default priority P2, got %s", task.Priority)
	}
	if store.saves != 1 {
		t.Errorf("expected one save, got %d", store.saves)
	}
	if !logger.has("task.created") {
		t.Error("expected task.created event")
	}
}

func TestTaskManager_CreateTask_EmptyTitle(t *testing.T) {
	tm, _, _ := newTestManager()
	if _, err := tm.CreateTask(models.TaskTypeFeature, "", CreateTaskOpts{}); err == nil {
		t.Fatal("expected an error for empty title")
	}
}

func TestTaskManager_CreateTask_InvalidType(t *testing.T) {
	tm, _, _ := newTestManager()
	if _, err := tm.CreateTask(models.TaskType("epic"), "x", CreateTaskOpts{}); err == nil {
		t.Fatal("expected an error for invalid type")
	}
}

func TestTaskManager_GetTask_NotFound(t *testing.T) {
	tm, _, _ := newTestManager()
	_, err := tm.GetTask("F-999")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskManager_UpdateTaskStatus(t *testing.T) {
	tm, store, logger := newTestManager(taskWith("F-001", nil, nil))

	if err := tm.UpdateTaskStatus("F-001", models.StatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.roadmap.Tasks[0].Status != models.StatusInProgress {
		t.Errorf("status not applied, got %s", store.roadmap.Tasks[0].Status)
	}
	if !logger.has("task.updated") {
		t.Error("expected task.updated event")
	}

	err := tm.UpdateTaskStatus("F-999", models.StatusDone)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskManager_RemoveTask_ReportsReferences(t *testing.T) {
	tm, _, logger := newTestManager(
		taskWith("F-001", nil, nil),
		taskWith("F-002", []string{"F-001"}, nil),
		taskWith("F-003", nil, []string{"F-001"}),
	)

	referencedBy, err := tm.RemoveTask("F-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(referencedBy) != 2 || referencedBy[0] != "F-002" || referencedBy[1] != "F-003" {
		t.Fatalf("expected references [F-002 F-003], got %v", referencedBy)
	}

	// The references are left dangling for validate to report.
	all, _ := tm.GetAllTasks()
	if !containsID(all[0].DependsOn, "F-001") {
		t.Error("expected dangling depends-on reference preserved")
	}
	if !logger.has("task.removed") {
		t.Error("expected task.removed event")
	}
}

func TestTaskManager_AddDependency(t *testing.T) {
	tm, _, logger := newTestManager(
		taskWith("F-001", nil, nil),
		taskWith("F-002", nil, nil),
	)

	if err := tm.AddDependency("F-002", "F-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deps, err := tm.Dependencies("F-002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps) != 1 || deps[0].ID != "F-001" {
		t.Fatalf("expected [F-001], got %v", deps)
	}
	if !logger.has("dependency.added") {
		t.Error("expected dependency.added event")
	}
}

func TestTaskManager_AddDependency_DuplicateIsNoOp(t *testing.T) {
	tm, store, _ := newTestManager(
		taskWith("F-001", nil, nil),
		taskWith("F-002", []string{"F-001"}, nil),
	)

	if err := tm.AddDependency("F-002", "F-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.roadmap.Tasks[1].DependsOn) != 1 {
		t.Fatalf("expected no duplicate edge, got %v", store.roadmap.Tasks[1].DependsOn)
	}
	if store.saves != 0 {
		t.Errorf("expected no save for a no-op, got %d", store.saves)
	}
}

func TestTaskManager_AddDependency_RefusesCycle(t *testing.T) {
	tm, store, _ := newTestManager(
		taskWith("F-001", []string{"F-002"}, nil),
		taskWith("F-002", nil, nil),
	)

	err := tm.AddDependency("F-002", "F-001")
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
	// The refused edge must not be persisted.
	if len(store.roadmap.Tasks[1].DependsOn) != 0 {
		t.Fatalf("refused edge was persisted: %v", store.roadmap.Tasks[1].DependsOn)
	}
	if store.saves != 0 {
		t.Errorf("expected no save on refusal, got %d", store.saves)
	}
}

func TestTaskManager_AddDependency_SelfReferenceRefused(t *testing.T) {
	tm, _, _ := newTestManager(taskWith("F-001", nil, nil))

	err := tm.AddDependency("F-001", "F-001")
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected for self-reference, got %v", err)
	}
}

func TestTaskManager_AddDependency_MissingTask(t *testing.T) {
	tm, _, _ := newTestManager(taskWith("F-001", nil, nil))

	err := tm.AddDependency("F-001", "F-999")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskManager_AddBlock_RefusesCycle(t *testing.T) {
	// F-001 depends on F-002; F-001 blocks F-002 reverses to F-002 -> F-001
	// and closes a loop.
	tm, _, _ := newTestManager(
		taskWith("F-001", []string{"F-002"}, nil),
		taskWith("F-002", nil, nil),
	)

	err := tm.AddBlock("F-001", "F-002")
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
}

func TestTaskManager_RemoveDependency(t *testing.T) {
	tm, store, logger := newTestManager(
		taskWith("F-001", nil, nil),
		taskWith("F-002", []string{"F-001"}, nil),
	)

	if err := tm.RemoveDependency("F-002", "F-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.roadmap.Tasks[1].DependsOn) != 0 {
		t.Fatalf("edge not removed: %v", store.roadmap.Tasks[1].DependsOn)
	}
	if !logger.has("dependency.removed") {
		t.Error("expected dependency.removed event")
	}

	if err := tm.RemoveDependency("F-002", "F-001"); err == nil {
		t.Fatal("expected an error when the edge does not exist")
	}
}

func TestTaskManager_Dependents(t *testing.T) {
	tm, _, _ := newTestManager(
		taskWith("F-001", nil, nil),
		taskWith("F-002", []string{"F-001"}, nil),
		taskWith("F-003", []string{"F-001"}, nil),
	)

	dependents, err := tm.Dependents("F-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dependents) != 2 || dependents[0].ID != "F-002" || dependents[1].ID != "F-003" {
		t.Fatalf("expected [F-002 F-003], got %v", dependents)
	}
}

func TestTaskManager_Validate(t *testing.T) {
	tm, _, logger := newTestManager(
		taskWith("F-001", []string{"F-002"}, nil),
		taskWith("F-002", []string{"F-001"}, nil),
	)

	findings, err := tm.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) == 0 {
		t.Fatal("expected findings for a cyclic roadmap")
	}
	if !logger.has("validation.cycle_found") {
		t.Error("expected validation.cycle_found event")
	}
	if !logger.has("validation.completed") {
		t.Error("expected validation.completed event")
	}
}

func TestTaskManager_SortedTasks_CycleError(t *testing.T) {
	tm, _, _ := newTestManager(
		taskWith("F-001", []string{"F-002"}, nil),
		taskWith("F-002", []string{"F-001"}, nil),
	)

	_, err := tm.SortedTasks()
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
}

func TestTaskManager_NilEventLoggerIsFine(t *testing.T) {
	store := &memStore{roadmap: models.Roadmap{Version: 1}}
	tm := NewTaskManager(store, NewTaskIDGenerator(), nil, models.P2, "")

	if _, err := tm.CreateTask(models.TaskTypeBug, "Fix crash", CreateTaskOpts{}); err != nil {
		t.Fatalf("unexpected error with nil logger: %v", err)
	}
}
