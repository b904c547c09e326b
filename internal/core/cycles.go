package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// ErrCycleDetected is the sentinel wrapped by every error caused by a cycle
// in the unified dependency graph, so callers can branch on it with
// errors.Is.
var ErrCycleDetected = errors.New("dependency cycle detected")

// CycleResult describes the first cycle found in a roadmap. Cycle holds the
// closed path: it starts and ends with the same ID except for a
// self-referential task, which yields a one-element cycle.
type CycleResult struct {
	Cycle   []string
	Message string
}

// Error returns an error wrapping ErrCycleDetected that describes the cycle.
func (r *CycleResult) Error() error {
	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(r.Cycle, " -> "))
}

// DFS colors. A node is unvisited (absent from both sets), in-progress (on
// the current recursion path), or fully explored.
type cycleSearch struct {
	graph    UnifiedGraph
	inPath   map[string]bool
	explored map[string]bool
	path     []string
}

// DetectCircular searches the unified graph built from tasks for a cycle,
// driving a depth-first search from each task in input order. It returns the
// first cycle encountered in root-then-DFS order, or nil for an acyclic
// graph. Referenced IDs that do not correspond to any task are dead ends and
// never an error.
//
// The explored set is shared across all roots: a node fully explored from one
// root is never re-explored from a later root, which keeps the whole search
// linear in nodes plus edges.
func DetectCircular(tasks []models.Task) *CycleResult {
	s := &cycleSearch{
		graph:    BuildUnifiedGraph(tasks),
		inPath:   make(map[string]bool, len(tasks)),
		explored: make(map[string]bool, len(tasks)),
	}

	for _, task := range tasks {
		if s.explored[task.ID] {
			continue
		}
		if cycle := s.visit(task.ID); cycle != nil {
			return &CycleResult{
				Cycle:   cycle,
				Message: fmt.Sprintf("circular dependency: %s", strings.Join(cycle, " -> ")),
			}
		}
	}
	return nil
}

// visit explores node depth-first, returning the closed cycle path when a
// back-edge to an in-progress node is found, or nil when the subtree is
// acyclic.
func (s *cycleSearch) visit(node string) []string {
	s.inPath[node] = true
	s.path = append(s.path, node)

	for _, neighbor := range s.graph[node] {
		if s.explored[neighbor] {
			continue
		}
		if s.inPath[neighbor] {
			return s.extractCycle(neighbor)
		}
		if cycle := s.visit(neighbor); cycle != nil {
			return cycle
		}
	}

	s.inPath[node] = false
	s.path = s.path[:len(s.path)-1]
	s.explored[node] = true
	return nil
}

// extractCycle slices the current path from the first occurrence of repeated
// onward and closes the loop by appending repeated again. A self-loop (the
// path's last element equals repeated) stays a one-element cycle.
func (s *cycleSearch) extractCycle(repeated string) []string {
	start := 0
	for i, id := range s.path {
		if id == repeated {
			start = i
			break
		}
	}
	cycle := append([]string(nil), s.path[start:]...)
	if len(cycle) > 1 {
		cycle = append(cycle, repeated)
	}
	return cycle
}
