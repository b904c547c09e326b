package core

import "github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"

// DependenciesOf resolves each ID in task's depends-on list to its task
// object, in list order. IDs that do not resolve are silently dropped here;
// ValidateDependencies reports those same gaps explicitly.
func DependenciesOf(task models.Task, allTasks []models.Task) []models.Task {
	byID := make(map[string]models.Task, len(allTasks))
	for _, t := range allTasks {
		byID[t.ID] = t
	}

	var deps []models.Task
	for _, id := range task.DependsOn {
		if dep, ok := byID[id]; ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// DependentsOf returns the tasks whose depends-on list includes task's ID, in
// roadmap order. A linear scan with no reverse index, which is fine at
// expected roadmap sizes.
func DependentsOf(task models.Task, allTasks []models.Task) []models.Task {
	var dependents []models.Task
	for _, t := range allTasks {
		if containsID(t.DependsOn, task.ID) {
			dependents = append(dependents, t)
		}
	}
	return dependents
}
