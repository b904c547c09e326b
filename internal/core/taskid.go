package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// TaskIDGenerator defines the interface for generating sequential task IDs.
type TaskIDGenerator interface {
	NextTaskID(taskType models.TaskType, existing []models.Task) (string, error)
}

// scanTaskIDGenerator implements TaskIDGenerator by scanning the existing
// tasks for the highest number under the type's letter. No counter file: the
// roadmap itself is the source of truth, so hand-edited files stay
// consistent.
type scanTaskIDGenerator struct{}

// NewTaskIDGenerator creates a TaskIDGenerator that derives the next ID from
// the tasks already in the roadmap.
func NewTaskIDGenerator() TaskIDGenerator {
	return scanTaskIDGenerator{}
}

// NextTaskID returns the next sequential ID for the type's letter, formatted
// as {letter}-{number:03d} (e.g. F-001). IDs that do not match the task ID
// pattern are ignored during the scan. Each letter supports 999 tasks;
// exceeding that is an error.
func (scanTaskIDGenerator) NextTaskID(taskType models.TaskType, existing []models.Task) (string, error) {
	letter := taskType.Letter()
	if letter == "" {
		return "", fmt.Errorf("generating task ID: unknown task type %q", taskType)
	}

	highest := 0
	for _, task := range existing {
		if !models.ValidTaskID(task.ID) || !strings.HasPrefix(task.ID, letter+"-") {
			continue
		}
		n, err := strconv.Atoi(task.ID[len(letter)+1:])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	next := highest + 1
	if next > 999 {
		return "", fmt.Errorf("generating task ID: %s-series is full (999 tasks)", letter)
	}
	return fmt.Sprintf("%s-%03d", letter, next), nil
}
