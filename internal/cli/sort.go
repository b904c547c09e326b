package cli

import (
	"errors"
	"fmt"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Print tasks in topological order",
	Long: `Print the tasks ordered so every task appears after the tasks it depends
on, across both depends-on and blocks relations. Ties among independent
tasks keep roadmap order. Fails with exit code 2 when the roadmap contains
a cycle, since no valid order exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		tasks, err := TaskMgr.SortedTasks()
		if err != nil {
			if errors.Is(err, core.ErrCycleDetected) {
				return &ExitError{Code: ExitDependency, Err: err}
			}
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Println(renderTaskTable(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
