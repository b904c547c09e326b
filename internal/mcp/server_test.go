package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// fakeTaskManager is a canned-response core.TaskManager for handler tests.
type fakeTaskManager struct {
	tasks    []models.Task
	findings []models.Finding
	sortErr  error
	statuses map[string]models.TaskStatus
}

func (f *fakeTaskManager) CreateTask(taskType models.TaskType, title string, opts core.CreateTaskOpts) (*models.Task, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTaskManager) GetTask(taskID string) (*models.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == taskID {
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, core.ErrTaskNotFound
}

func (f *fakeTaskManager) GetAllTasks() ([]models.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskManager) FilterTasks(filter core.RoadmapStoreFilter) ([]models.Task, error) {
	var result []models.Task
	for _, t := range f.tasks {
		for _, s := range filter.Status {
			if t.Status == s {
				result = append(result, t)
			}
		}
	}
	return result, nil
}

func (f *fakeTaskManager) Roadmap() (*models.Roadmap, error) {
	return &models.Roadmap{Version: 1, Tasks: f.tasks}, nil
}

func (f *fakeTaskManager) UpdateTaskStatus(taskID string, status models.TaskStatus) error {
	if _, err := f.GetTask(taskID); err != nil {
		return err
	}
	if f.statuses == nil {
		f.statuses = make(map[string]models.TaskStatus)
	}
	f.statuses[taskID] = status
	return nil
}

func (f *fakeTaskManager) UpdateTaskPriority(taskID string, priority models.Priority) error {
	_, err := f.GetTask(taskID)
	return err
}

func (f *fakeTaskManager) RemoveTask(taskID string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTaskManager) AddDependency(fromID, toID string) error    { return nil }
func (f *fakeTaskManager) RemoveDependency(fromID, toID string) error { return nil }
func (f *fakeTaskManager) AddBlock(fromID, toID string) error         { return nil }
func (f *fakeTaskManager) RemoveBlock(fromID, toID string) error      { return nil }

func (f *fakeTaskManager) Dependencies(taskID string) ([]models.Task, error) {
	task, err := f.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	return core.DependenciesOf(*task, f.tasks), nil
}

func (f *fakeTaskManager) Dependents(taskID string) ([]models.Task, error) {
	task, err := f.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	return core.DependentsOf(*task, f.tasks), nil
}

func (f *fakeTaskManager) Validate() ([]models.Finding, error) {
	return f.findings, nil
}

func (f *fakeTaskManager) SortedTasks() ([]models.Task, error) {
	if f.sortErr != nil {
		return nil, f.sortErr
	}
	return f.tasks, nil
}

func fakeTask(id string, status models.TaskStatus, dependsOn []string) models.Task {
	return models.Task{
		ID:        id,
		Title:     "Task " + id,
		Type:      models.TaskTypeFeature,
		Status:    status,
		Priority:  models.P2,
		DependsOn: dependsOn,
	}
}

func newTestServer(fake *fakeTaskManager) *Server {
	return NewServer(fake, "test")
}

func TestHandleGetTask(t *testing.T) {
	s := newTestServer(&fakeTaskManager{
		tasks: []models.Task{fakeTask("F-001", models.StatusPlanned, nil)},
	})

	result, out, err := s.handleGetTask(context.Background(), nil, getTaskInput{TaskID: "F-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %v", result)
	}
	if out.ID != "F-001" || out.Status != "planned" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestHandleGetTask_NotFound(t *testing.T) {
	s := newTestServer(&fakeTaskManager{})

	result, _, err := s.handleGetTask(context.Background(), nil, getTaskInput{TaskID: "F-999"})
	if err != nil {
		t.Fatalf("tool errors must be results, not Go errors: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result")
	}
}

func TestHandleGetTask_EmptyID(t *testing.T) {
	s := newTestServer(&fakeTaskManager{})

	result, _, err := s.handleGetTask(context.Background(), nil, getTaskInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result for missing task_id")
	}
}

func TestHandleListTasks(t *testing.T) {
	s := newTestServer(&fakeTaskManager{
		tasks: []models.Task{
			fakeTask("F-001", models.StatusDone, nil),
			fakeTask("F-002", models.StatusPlanned, nil),
		},
	})

	_, out, err := s.handleListTasks(context.Background(), nil, listTasksInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("expected 2 tasks, got %d", out.Count)
	}

	_, filtered, err := s.handleListTasks(context.Background(), nil, listTasksInput{Status: "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered.Count != 1 || filtered.Tasks[0].ID != "F-001" {
		t.Fatalf("expected only F-001, got %+v", filtered)
	}
}

func TestHandleUpdateTaskStatus(t *testing.T) {
	fake := &fakeTaskManager{
		tasks: []models.Task{fakeTask("F-001", models.StatusPlanned, nil)},
	}
	s := newTestServer(fake)

	result, out, err := s.handleUpdateTaskStatus(context.Background(), nil, updateTaskStatusInput{
		TaskID: "F-001",
		Status: "in-progress",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %v", result)
	}
	if fake.statuses["F-001"] != models.StatusInProgress {
		t.Fatal("status update did not reach the task manager")
	}
	if out.Message == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestHandleValidateRoadmap(t *testing.T) {
	s := newTestServer(&fakeTaskManager{
		findings: []models.Finding{
			{
				TaskID:         "F-001",
				Type:           models.FindingCircular,
				Message:        "circular dependency: F-001 -> F-002 -> F-001",
				RelatedTaskIDs: []string{"F-001", "F-002", "F-001"},
			},
			{
				TaskID:  "F-003",
				Type:    models.FindingMissingTask,
				Message: "F-003 depends on B-999, which does not exist",
			},
		},
	})

	_, out, err := s.handleValidateRoadmap(context.Background(), nil, validateRoadmapInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("expected 2 findings, got %d", out.Count)
	}
	if len(out.Cycle) != 3 || out.Cycle[0] != "F-001" {
		t.Fatalf("expected cycle surfaced, got %v", out.Cycle)
	}
}

func TestHandleGetDependencies(t *testing.T) {
	s := newTestServer(&fakeTaskManager{
		tasks: []models.Task{
			fakeTask("F-001", models.StatusPlanned, nil),
			fakeTask("F-002", models.StatusPlanned, []string{"F-001"}),
		},
	})

	_, out, err := s.handleGetDependencies(context.Background(), nil, getDependenciesInput{TaskID: "F-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Dependencies) != 0 {
		t.Fatalf("expected no dependencies, got %v", out.Dependencies)
	}
	if len(out.Dependents) != 1 || out.Dependents[0].ID != "F-002" {
		t.Fatalf("expected dependent F-002, got %v", out.Dependents)
	}
}

func TestHandleSortTasks_CycleError(t *testing.T) {
	s := newTestServer(&fakeTaskManager{
		sortErr: core.ErrCycleDetected,
	})

	result, _, err := s.handleSortTasks(context.Background(), nil, sortTasksInput{})
	if err != nil {
		t.Fatalf("tool errors must be results, not Go errors: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result for a cyclic roadmap")
	}
}
