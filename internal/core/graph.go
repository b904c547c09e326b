package core

import "github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"

// DependencyGraph holds the two relation adjacency maps derived from a task
// list: DependsOn maps a task ID to the IDs it requires, Blocks maps a task
// ID to the IDs it prevents from proceeding. It is rebuilt from scratch on
// every call and never cached or mutated in place.
type DependencyGraph struct {
	DependsOn map[string][]string
	Blocks    map[string][]string
}

// UnifiedGraph is a single adjacency map expressing both relation kinds as
// one set of ordering constraints: a forward edge for every depends-on entry
// and a reversed edge for every blocks entry (A blocks B adds B -> A).
type UnifiedGraph map[string][]string

// BuildDependencyGraph derives the two relation maps from tasks. Every task
// ID in the input gets an adjacency entry, even when empty. Referenced IDs
// absent from the input become dead-end leaves rather than errors; the
// reference validator reports them separately.
func BuildDependencyGraph(tasks []models.Task) DependencyGraph {
	g := DependencyGraph{
		DependsOn: make(map[string][]string, len(tasks)),
		Blocks:    make(map[string][]string, len(tasks)),
	}
	for _, task := range tasks {
		g.DependsOn[task.ID] = append([]string(nil), task.DependsOn...)
		g.Blocks[task.ID] = append([]string(nil), task.Blocks...)
	}
	return g
}

// BuildUnifiedGraph merges both relation kinds into one ordering-constraint
// graph. Edge order follows task input order, depends-on entries before the
// reversed blocks entries contributed by other tasks.
func BuildUnifiedGraph(tasks []models.Task) UnifiedGraph {
	unified := make(UnifiedGraph, len(tasks))
	for _, task := range tasks {
		unified[task.ID] = append(unified[task.ID], task.DependsOn...)
	}
	for _, task := range tasks {
		for _, blocked := range task.Blocks {
			unified[blocked] = append(unified[blocked], task.ID)
		}
	}
	return unified
}
