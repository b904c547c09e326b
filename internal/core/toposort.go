package core

import (
	"container/heap"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// intMinHeap is a min-heap of task input indices, so ties among tasks that
// become ready together resolve in original input order.
type intMinHeap []int

func (h intMinHeap) Len() int            { return len(h) }
func (h intMinHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intMinHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopologicalOrder returns the tasks ordered so that every task appears after
// all tasks it depends on, across both relation kinds (a blocks edge orders
// the blocked task after the blocker). Ties among mutually independent tasks
// preserve input order. When the unified graph contains a cycle no order
// exists; the cycle is detected first and returned as an error wrapping
// ErrCycleDetected rather than producing a partial order.
func TopologicalOrder(tasks []models.Task) ([]models.Task, error) {
	if result := DetectCircular(tasks); result != nil {
		return nil, result.Error()
	}

	indexOf := make(map[string]int, len(tasks))
	for i, task := range tasks {
		indexOf[task.ID] = i
	}

	// Count only constraints against tasks that exist; dangling references
	// are dead ends and never hold a task back.
	unified := BuildUnifiedGraph(tasks)
	indegree := make([]int, len(tasks))
	dependents := make(map[string][]int, len(tasks))
	for i, task := range tasks {
		for _, neighbor := range unified[task.ID] {
			if _, ok := indexOf[neighbor]; !ok {
				continue
			}
			indegree[i]++
			dependents[neighbor] = append(dependents[neighbor], i)
		}
	}

	ready := &intMinHeap{}
	heap.Init(ready)
	for i := range tasks {
		if indegree[i] == 0 {
			heap.Push(ready, i)
		}
	}

	ordered := make([]models.Task, 0, len(tasks))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		ordered = append(ordered, tasks[i])
		for _, dependent := range dependents[tasks[i].ID] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				heap.Push(ready, dependent)
			}
		}
	}

	return ordered, nil
}
