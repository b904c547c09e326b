// Package storage provides the file-backed persistence layer for the
// roadmap tool. The roadmap is a single JSON file holding an ordered task
// list; task order is significant and preserved across load/save.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// RoadmapFilter specifies criteria for filtering tasks. All specified fields
// use AND logic: a task must match every criterion.
type RoadmapFilter struct {
	Status   []models.TaskStatus
	Type     []models.TaskType
	Priority []models.Priority
	Tags     []string
}

// RoadmapManager defines the interface for managing the roadmap file. The
// parsed roadmap is held in memory between Load and Save.
type RoadmapManager interface {
	AddTask(task models.Task) error
	UpdateTask(taskID string, updates models.Task) error
	RemoveTask(taskID string) error
	GetTask(taskID string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	FilterTasks(filter RoadmapFilter) ([]models.Task, error)
	Roadmap() *models.Roadmap
	Load() error
	Save() error
}

type fileRoadmapManager struct {
	basePath string
	fileName string
	data     models.Roadmap
}

// NewRoadmapManager creates a RoadmapManager backed by fileName (e.g.
// roadmap.json) in the given base directory.
func NewRoadmapManager(basePath, fileName string) RoadmapManager {
	return &fileRoadmapManager{
		basePath: basePath,
		fileName: fileName,
		data:     models.Roadmap{Version: 1},
	}
}

func (m *fileRoadmapManager) filePath() string {
	return filepath.Join(m.basePath, m.fileName)
}

// AddTask appends the task to the roadmap, preserving input order.
func (m *fileRoadmapManager) AddTask(task models.Task) error {
	if task.ID == "" {
		return fmt.Errorf("adding task: ID must not be empty")
	}
	if !models.ValidTaskID(task.ID) {
		return fmt.Errorf("adding task: ID %q does not match pattern %s", task.ID, models.TaskIDPattern)
	}
	if m.find(task.ID) >= 0 {
		return fmt.Errorf("adding task: task %s already exists", task.ID)
	}
	m.data.Tasks = append(m.data.Tasks, task)
	return nil
}

// UpdateTask merges non-zero fields of updates into the stored task. Slice
// fields replace wholesale when non-nil, so an empty (but non-nil) slice
// clears the relation.
func (m *fileRoadmapManager) UpdateTask(taskID string, updates models.Task) error {
	i := m.find(taskID)
	if i < 0 {
		return fmt.Errorf("updating task: task %s not found", taskID)
	}

	existing := m.data.Tasks[i]
	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Type != "" {
		existing.Type = updates.Type
	}
	if updates.Status != "" {
		existing.Status = updates.Status
	}
	if updates.Priority != "" {
		existing.Priority = updates.Priority
	}
	if updates.Owner != "" {
		existing.Owner = updates.Owner
	}
	if !updates.Updated.IsZero() {
		existing.Updated = updates.Updated
	}
	if updates.Tags != nil {
		existing.Tags = updates.Tags
	}
	if updates.DependsOn != nil {
		existing.DependsOn = updates.DependsOn
	}
	if updates.Blocks != nil {
		existing.Blocks = updates.Blocks
	}
	if updates.Notes != "" {
		existing.Notes = updates.Notes
	}

	m.data.Tasks[i] = existing
	return nil
}

// RemoveTask deletes the task, closing the gap so remaining order is kept.
func (m *fileRoadmapManager) RemoveTask(taskID string) error {
	i := m.find(taskID)
	if i < 0 {
		return fmt.Errorf("removing task: task %s not found", taskID)
	}
	m.data.Tasks = append(m.data.Tasks[:i], m.data.Tasks[i+1:]...)
	return nil
}

// GetTask returns a copy of the task with the given ID.
func (m *fileRoadmapManager) GetTask(taskID string) (*models.Task, error) {
	i := m.find(taskID)
	if i < 0 {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	task := m.data.Tasks[i]
	return &task, nil
}

// GetAllTasks returns the tasks in roadmap order. The order is never
// re-sorted: it is the deterministic root-iteration order for cycle search.
func (m *fileRoadmapManager) GetAllTasks() ([]models.Task, error) {
	tasks := make([]models.Task, len(m.data.Tasks))
	copy(tasks, m.data.Tasks)
	return tasks, nil
}

// FilterTasks returns the tasks matching the filter, in roadmap order.
func (m *fileRoadmapManager) FilterTasks(filter RoadmapFilter) ([]models.Task, error) {
	var result []models.Task
	for _, task := range m.data.Tasks {
		if matchesFilter(task, filter) {
			result = append(result, task)
		}
	}
	return result, nil
}

// Roadmap returns the in-memory roadmap, including metadata.
func (m *fileRoadmapManager) Roadmap() *models.Roadmap {
	rm := m.data
	rm.Tasks = make([]models.Task, len(m.data.Tasks))
	copy(rm.Tasks, m.data.Tasks)
	return &rm
}

func (m *fileRoadmapManager) find(taskID string) int {
	for i, task := range m.data.Tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

func matchesFilter(task models.Task, filter RoadmapFilter) bool {
	if len(filter.Status) > 0 && !containsStatus(filter.Status, task.Status) {
		return false
	}
	if len(filter.Type) > 0 && !containsType(filter.Type, task.Type) {
		return false
	}
	if len(filter.Priority) > 0 && !containsPriority(filter.Priority, task.Priority) {
		return false
	}
	if len(filter.Tags) > 0 && !hasAllTags(task.Tags, filter.Tags) {
		return false
	}
	return true
}

func containsStatus(haystack []models.TaskStatus, needle models.TaskStatus) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsType(haystack []models.TaskType, needle models.TaskType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []models.Priority, needle models.Priority) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}

func hasAllTags(taskTags []string, requiredTags []string) bool {
	tagSet := make(map[string]struct{}, len(taskTags))
	for _, t := range taskTags {
		tagSet[t] = struct{}{}
	}
	for _, req := range requiredTags {
		if _, found := tagSet[req]; !found {
			return false
		}
	}
	return true
}

// Load reads the roadmap file. A missing file is not an error: an empty
// version-1 roadmap is used.
func (m *fileRoadmapManager) Load() error {
	data, err := os.ReadFile(m.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			m.data = models.Roadmap{Version: 1}
			return nil
		}
		return fmt.Errorf("loading roadmap: %w", err)
	}

	var rm models.Roadmap
	if err := json.Unmarshal(data, &rm); err != nil {
		return fmt.Errorf("loading roadmap: parsing JSON: %w", err)
	}
	m.data = rm
	return nil
}

// Save writes the roadmap file as indented JSON.
func (m *fileRoadmapManager) Save() error {
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return fmt.Errorf("saving roadmap: creating directory: %w", err)
	}
	data, err := json.MarshalIndent(&m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("saving roadmap: marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(m.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving roadmap: writing file: %w", err)
	}
	return nil
}
