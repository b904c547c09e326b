package models

import (
	"regexp"
	"time"
)

// TaskType represents the kind of work a task involves. Each type maps to a
// single uppercase letter used as the task ID prefix.
type TaskType string

const (
	TaskTypeBug         TaskType = "bug"
	TaskTypeFeature     TaskType = "feature"
	TaskTypeImprovement TaskType = "improvement"
	TaskTypePlanning    TaskType = "planning"
	TaskTypeResearch    TaskType = "research"
)

// typeLetters maps each task type to its ID letter.
var typeLetters = map[TaskType]string{
	TaskTypeBug:         "B",
	TaskTypeFeature:     "F",
	TaskTypeImprovement: "I",
	TaskTypePlanning:    "P",
	TaskTypeResearch:    "R",
}

// Letter returns the ID prefix letter for the task type, or "" if the type
// is not recognized.
func (t TaskType) Letter() string {
	return typeLetters[t]
}

// TypeForLetter returns the task type for an ID prefix letter, or "" if the
// letter is not recognized.
func TypeForLetter(letter string) TaskType {
	for taskType, l := range typeLetters {
		if l == letter {
			return taskType
		}
	}
	return ""
}

// TaskStatus represents the current lifecycle state of a task.
type TaskStatus string

const (
	StatusPlanned    TaskStatus = "planned"
	StatusInProgress TaskStatus = "in-progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusDone       TaskStatus = "done"
	StatusDropped    TaskStatus = "dropped"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	P0 Priority = "P0"
	P1 Priority = "P1"
	P2 Priority = "P2"
	P3 Priority = "P3"
)

// TaskIDPattern matches valid task identifiers: a type letter followed by a
// dash and exactly three digits (e.g. F-001, B-042).
var TaskIDPattern = regexp.MustCompile(`^(B|F|I|P|R)-\d{3}$`)

// ValidTaskID reports whether id matches the task identifier pattern.
func ValidTaskID(id string) bool {
	return TaskIDPattern.MatchString(id)
}

// Task represents a single roadmap entry. DependsOn lists the IDs of tasks
// that must complete before this one; Blocks lists the IDs of tasks this one
// prevents from proceeding. Both are ordered and may reference IDs that no
// longer exist (validation reports those as findings rather than failing).
type Task struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Type      TaskType   `json:"type" yaml:"type"`
	Status    TaskStatus `json:"status" yaml:"status"`
	Priority  Priority   `json:"priority" yaml:"priority"`
	Owner     string     `json:"owner,omitempty" yaml:"owner,omitempty"`
	Created   time.Time  `json:"created" yaml:"created"`
	Updated   time.Time  `json:"updated" yaml:"updated"`
	Tags      []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	DependsOn []string   `json:"depends-on,omitempty" yaml:"depends-on,omitempty"`
	Blocks    []string   `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Notes     string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}
