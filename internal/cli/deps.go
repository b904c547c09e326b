package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps <task-id>",
	Short: "Show a task's dependencies and dependents",
	Long: `Resolve and print the tasks the given task depends on, and the tasks
whose depends-on lists include it. IDs that do not resolve to a task are
listed as missing; "roadmap validate" reports them as findings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.GetTask(args[0])
		if err != nil {
			return notFoundErr(err)
		}

		deps, err := TaskMgr.Dependencies(task.ID)
		if err != nil {
			return fmt.Errorf("resolving dependencies of %s: %w", task.ID, err)
		}
		dependents, err := TaskMgr.Dependents(task.ID)
		if err != nil {
			return fmt.Errorf("resolving dependents of %s: %w", task.ID, err)
		}

		fmt.Printf("%s  %s\n", headerStyle.Render(task.ID), task.Title)

		fmt.Println("\nDependencies (must finish first):")
		if len(task.DependsOn) == 0 {
			fmt.Println("  none")
		} else {
			printResolvedRelation(task.DependsOn, deps)
		}

		fmt.Println("\nDependents (waiting on this task):")
		if len(dependents) == 0 {
			fmt.Println("  none")
		} else {
			for _, d := range dependents {
				fmt.Printf("  %s  %s (%s)\n", d.ID, d.Title, renderStatus(d.Status))
			}
		}
		return nil
	},
}

func init() {
	depsCmd.ValidArgsFunction = completeTaskIDs
	rootCmd.AddCommand(depsCmd)
}
