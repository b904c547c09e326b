package core

import (
	"fmt"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// ValidateDependencies runs every dependency check over the roadmap and
// returns the collected findings: the first cycle (if any), every dangling
// reference, and every blocks/depends-on asymmetry. Findings are data, never
// errors; the order is deterministic for a given roadmap, so repeated calls
// on unchanged input yield identical lists.
func ValidateDependencies(roadmap *models.Roadmap) []models.Finding {
	findings := []models.Finding{}

	if result := DetectCircular(roadmap.Tasks); result != nil {
		findings = append(findings, models.Finding{
			TaskID:         result.Cycle[0],
			Type:           models.FindingCircular,
			Message:        result.Message,
			RelatedTaskIDs: result.Cycle,
		})
	}

	findings = append(findings, validateReferences(roadmap.Tasks)...)
	findings = append(findings, checkBlockConsistency(roadmap.Tasks)...)

	return findings
}

// validateReferences checks that every ID listed under depends-on or blocks
// resolves to a task in the roadmap. The check is exhaustive: all dangling
// references across all tasks are collected, never short-circuited on the
// first failure.
func validateReferences(tasks []models.Task) []models.Finding {
	known := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		known[task.ID] = true
	}

	var findings []models.Finding
	for _, task := range tasks {
		for _, dep := range task.DependsOn {
			if !known[dep] {
				findings = append(findings, models.Finding{
					TaskID:         task.ID,
					Type:           models.FindingMissingTask,
					Message:        fmt.Sprintf("%s depends on %s, which does not exist", task.ID, dep),
					RelatedTaskIDs: []string{dep},
				})
			}
		}
		for _, blocked := range task.Blocks {
			if !known[blocked] {
				findings = append(findings, models.Finding{
					TaskID:         task.ID,
					Type:           models.FindingMissingTask,
					Message:        fmt.Sprintf("%s blocks %s, which does not exist", task.ID, blocked),
					RelatedTaskIDs: []string{blocked},
				})
			}
		}
	}
	return findings
}

// checkBlockConsistency is the advisory symmetry check: when task A lists B
// under blocks, B is expected to list A under depends-on. A mismatch is
// diagnostic only; the two relations may legitimately be used independently,
// so these findings must not be treated as blocking by default.
func checkBlockConsistency(tasks []models.Task) []models.Finding {
	byID := make(map[string]models.Task, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	var findings []models.Finding
	for _, task := range tasks {
		for _, blocked := range task.Blocks {
			target, ok := byID[blocked]
			if !ok {
				continue // dangling reference, reported by validateReferences
			}
			if !containsID(target.DependsOn, task.ID) {
				findings = append(findings, models.Finding{
					TaskID: task.ID,
					Type:   models.FindingInvalidReference,
					Message: fmt.Sprintf("%s blocks %s, but %s does not list %s under depends-on",
						task.ID, blocked, blocked, task.ID),
					RelatedTaskIDs: []string{blocked},
				})
			}
		}
	}
	return findings
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
