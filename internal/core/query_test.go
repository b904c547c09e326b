package core

import (
	"testing"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

func idsOf(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestDependenciesOf_ResolvesInListOrder(t *testing.T) {
	all := []models.Task{
		taskWith("F-001", nil, nil),
		taskWith("F-002", nil, nil),
		taskWith("F-003", []string{"F-002", "F-001"}, nil),
	}

	deps := DependenciesOf(all[2], all)
	got := idsOf(deps)
	if len(got) != 2 || got[0] != "F-002" || got[1] != "F-001" {
		t.Fatalf("expected [F-002 F-001], got %v", got)
	}
}

func TestDependenciesOf_DropsUnresolved(t *testing.T) {
	all := []models.Task{
		taskWith("F-001", []string{"B-999", "F-002"}, nil),
		taskWith("F-002", nil, nil),
	}

	deps := DependenciesOf(all[0], all)
	got := idsOf(deps)
	if len(got) != 1 || got[0] != "F-002" {
		t.Fatalf("expected dangling reference dropped, got %v", got)
	}
}

func TestDependenciesOf_NoDependencies(t *testing.T) {
	all := []models.Task{taskWith("F-001", nil, nil)}
	if deps := DependenciesOf(all[0], all); len(deps) != 0 {
		t.Fatalf("expected no dependencies, got %v", deps)
	}
}

func TestDependentsOf_FindsDependentsInRoadmapOrder(t *testing.T) {
	all := []models.Task{
		taskWith("F-001", nil, nil),
		taskWith("F-003", []string{"F-001"}, nil),
		taskWith("F-002", []string{"F-001"}, nil),
	}

	dependents := DependentsOf(all[0], all)
	got := idsOf(dependents)
	if len(got) != 2 || got[0] != "F-003" || got[1] != "F-002" {
		t.Fatalf("expected roadmap order [F-003 F-002], got %v", got)
	}
}

func TestDependentsOf_BlocksDoesNotCount(t *testing.T) {
	// Only depends-on entries make a task a dependent; blocks is a separate
	// relation.
	all := []models.Task{
		taskWith("F-001", nil, nil),
		taskWith("F-002", nil, []string{"F-001"}),
	}

	if dependents := DependentsOf(all[0], all); len(dependents) != 0 {
		t.Fatalf("expected no dependents via blocks, got %v", idsOf(dependents))
	}
}
