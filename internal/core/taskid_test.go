package core

import (
	"testing"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

func TestNextTaskID_FirstOfSeries(t *testing.T) {
	gen := NewTaskIDGenerator()

	id, err := gen.NextTaskID(models.TaskTypeFeature, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "F-001" {
		t.Fatalf("expected F-001, got %s", id)
	}
}

func TestNextTaskID_SequentialPerLetter(t *testing.T) {
	gen := NewTaskIDGenerator()
	existing := []models.Task{
		taskWith("F-001", nil, nil),
		taskWith("F-007", nil, nil),
		taskWith("B-003", nil, nil),
	}

	id, err := gen.NextTaskID(models.TaskTypeFeature, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "F-008" {
		t.Fatalf("expected F-008, got %s", id)
	}

	id, err = gen.NextTaskID(models.TaskTypeBug, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "B-004" {
		t.Fatalf("expected B-004, got %s", id)
	}
}

func TestNextTaskID_GapsAreNotReused(t *testing.T) {
	gen := NewTaskIDGenerator()
	existing := []models.Task{
		taskWith("F-005", nil, nil),
	}

	id, err := gen.NextTaskID(models.TaskTypeFeature, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "F-006" {
		t.Fatalf("expected F-006 (highest+1, not first gap), got %s", id)
	}
}

func TestNextTaskID_IgnoresMalformedIDs(t *testing.T) {
	gen := NewTaskIDGenerator()
	existing := []models.Task{
		{ID: "feature-42", Type: models.TaskTypeFeature},
		{ID: "F-12", Type: models.TaskTypeFeature},
		taskWith("F-002", nil, nil),
	}

	id, err := gen.NextTaskID(models.TaskTypeFeature, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "F-003" {
		t.Fatalf("expected malformed IDs skipped, got %s", id)
	}
}

func TestNextTaskID_SeriesFull(t *testing.T) {
	gen := NewTaskIDGenerator()
	existing := []models.Task{taskWith("R-999", nil, nil)}

	if _, err := gen.NextTaskID(models.TaskTypeResearch, existing); err == nil {
		t.Fatal("expected an error when the series is exhausted")
	}
}

func TestNextTaskID_UnknownType(t *testing.T) {
	gen := NewTaskIDGenerator()

	if _, err := gen.NextTaskID(models.TaskType("epic"), nil); err == nil {
		t.Fatal("expected an error for an unknown task type")
	}
}
