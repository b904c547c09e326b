package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeTaskIDs lists task IDs with their titles for shell completion.
func completeTaskIDs(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if TaskMgr == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	tasks, err := TaskMgr.GetAllTasks()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var ids []string
	for _, task := range tasks {
		if toComplete == "" || strings.HasPrefix(task.ID, toComplete) {
			ids = append(ids, task.ID+"\t"+string(task.Type)+": "+task.Title)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// completeTaskTypes returns valid task type values for shell completion.
func completeTaskTypes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"bug\tBug fix (B-series IDs)",
		"feature\tNew feature work (F-series IDs)",
		"improvement\tIncremental improvement (I-series IDs)",
		"planning\tPlanning or coordination (P-series IDs)",
		"research\tResearch or investigation (R-series IDs)",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeStatuses returns valid task status values for shell completion.
func completeStatuses(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"planned\tQueued for future work",
		"in-progress\tActively being worked on",
		"blocked\tWaiting on a dependency",
		"done\tCompleted",
		"dropped\tAbandoned",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completePriorities returns valid priority values for shell completion.
func completePriorities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"P0\tCritical",
		"P1\tHigh",
		"P2\tMedium",
		"P3\tLow",
	}, cobra.ShellCompDirectiveNoFileComp
}
