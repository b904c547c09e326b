package core

import (
	"testing"

	"pgregory.net/rapid"
)

// Feature: roadmap, Property 4: Topological order respects every edge
// For any acyclic task list, each task must appear after all tasks it points
// at through the unified graph, and the output must be a permutation of the
// input.
func TestProperty_TopologicalOrderRespectsEdges(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tasks := genAcyclicTasks().Draw(rt, "tasks")

		ordered, err := TopologicalOrder(tasks)
		if err != nil {
			t.Fatalf("unexpected error on acyclic input: %v", err)
		}
		if len(ordered) != len(tasks) {
			t.Fatalf("expected %d tasks, got %d", len(tasks), len(ordered))
		}

		position := make(map[string]int, len(ordered))
		for i, task := range ordered {
			if _, seen := position[task.ID]; seen {
				t.Fatalf("task %s emitted twice", task.ID)
			}
			position[task.ID] = i
		}

		unified := BuildUnifiedGraph(tasks)
		for _, task := range tasks {
			for _, neighbor := range unified[task.ID] {
				np, ok := position[neighbor]
				if !ok {
					continue
				}
				if position[task.ID] < np {
					t.Fatalf("%s ordered before its prerequisite %s", task.ID, neighbor)
				}
			}
		}
	})
}

// Feature: roadmap, Property 5: Independent tasks keep input order
// Tasks with no edges between them at all must come out in exactly the order
// they went in.
func TestProperty_TopologicalOrderStableWithoutEdges(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tasks := genAcyclicTasks().Draw(rt, "tasks")
		for i := range tasks {
			tasks[i].DependsOn = nil
			tasks[i].Blocks = nil
		}

		ordered, err := TopologicalOrder(tasks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range tasks {
			if ordered[i].ID != tasks[i].ID {
				t.Fatalf("position %d: expected %s, got %s", i, tasks[i].ID, ordered[i].ID)
			}
		}
	})
}
