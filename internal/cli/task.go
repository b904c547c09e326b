package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks (add, list, show, status, priority, remove, link, unlink)",
	Long: `Unified task management commands.

Add new tasks, inspect and list existing ones, update status and priority,
remove tasks, and edit dependency relations between them.`,
}

var (
	taskAddType      string
	taskAddPriority  string
	taskAddOwner     string
	taskAddTags      []string
	taskAddDependsOn []string
	taskAddBlocks    []string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task to the roadmap",
	Long: `Add a new task with the given title.

The task gets the next sequential ID for its type letter (e.g. F-003 for the
third feature) and is appended to the roadmap in creation order. Relations
given via --depends-on and --blocks may reference tasks that do not exist
yet; "roadmap validate" reports them until they resolve.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.CreateTask(models.TaskType(taskAddType), args[0], core.CreateTaskOpts{
			Priority:  models.Priority(taskAddPriority),
			Owner:     taskAddOwner,
			Tags:      taskAddTags,
			DependsOn: taskAddDependsOn,
			Blocks:    taskAddBlocks,
		})
		if err != nil {
			return fmt.Errorf("adding %s task: %w", taskAddType, err)
		}

		fmt.Printf("Created task %s\n", task.ID)
		fmt.Printf("  Type:     %s\n", task.Type)
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.Owner != "" {
			fmt.Printf("  Owner:    %s\n", task.Owner)
		}
		if len(task.DependsOn) > 0 {
			fmt.Printf("  Depends:  %s\n", strings.Join(task.DependsOn, ", "))
		}
		if len(task.Blocks) > 0 {
			fmt.Printf("  Blocks:   %s\n", strings.Join(task.Blocks, ", "))
		}
		return nil
	},
}

var (
	taskListStatus string
	taskListType   string
	taskListTags   []string
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in roadmap order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		filter := core.RoadmapStoreFilter{Tags: taskListTags}
		if taskListStatus != "" {
			filter.Status = []models.TaskStatus{models.TaskStatus(taskListStatus)}
		}
		if taskListType != "" {
			filter.Type = []models.TaskType{models.TaskType(taskListType)}
		}

		tasks, err := TaskMgr.FilterTasks(filter)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Println(renderTaskTable(tasks))
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task's full record with resolved relations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.GetTask(args[0])
		if err != nil {
			return notFoundErr(err)
		}

		fmt.Printf("%s  %s\n", headerStyle.Render(task.ID), task.Title)
		fmt.Printf("  Type:     %s\n", task.Type)
		fmt.Printf("  Status:   %s\n", renderStatus(task.Status))
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.Owner != "" {
			fmt.Printf("  Owner:    %s\n", task.Owner)
		}
		if len(task.Tags) > 0 {
			fmt.Printf("  Tags:     %s\n", strings.Join(task.Tags, ", "))
		}
		fmt.Printf("  Created:  %s\n", task.Created.Format("2006-01-02"))
		fmt.Printf("  Updated:  %s\n", task.Updated.Format("2006-01-02"))
		if task.Notes != "" {
			fmt.Printf("  Notes:    %s\n", task.Notes)
		}

		deps, err := TaskMgr.Dependencies(task.ID)
		if err != nil {
			return fmt.Errorf("showing task %s: %w", task.ID, err)
		}
		dependents, err := TaskMgr.Dependents(task.ID)
		if err != nil {
			return fmt.Errorf("showing task %s: %w", task.ID, err)
		}

		if len(task.DependsOn) > 0 {
			fmt.Println("\nDepends on:")
			printResolvedRelation(task.DependsOn, deps)
		}
		if len(dependents) > 0 {
			fmt.Println("\nDepended on by:")
			for _, d := range dependents {
				fmt.Printf("  %s  %s (%s)\n", d.ID, d.Title, renderStatus(d.Status))
			}
		}
		if len(task.Blocks) > 0 {
			fmt.Printf("\nBlocks: %s\n", strings.Join(task.Blocks, ", "))
		}
		return nil
	},
}

// printResolvedRelation prints listed IDs with resolved task details where
// available, marking the IDs that did not resolve.
func printResolvedRelation(ids []string, resolved []models.Task) {
	byID := make(map[string]models.Task, len(resolved))
	for _, t := range resolved {
		byID[t.ID] = t
	}
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			fmt.Printf("  %s  %s (%s)\n", t.ID, t.Title, renderStatus(t.Status))
		} else {
			fmt.Printf("  %s  %s\n", id, missingStyle.Render("(missing)"))
		}
	}
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <task-id> <status>",
	Short: "Update a task's lifecycle status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		if err := TaskMgr.UpdateTaskStatus(args[0], models.TaskStatus(args[1])); err != nil {
			return notFoundErr(err)
		}
		fmt.Printf("Task %s is now %s\n", args[0], args[1])
		return nil
	},
}

var taskPriorityCmd = &cobra.Command{
	Use:   "priority <task-id> <priority>",
	Short: "Update a task's priority",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		if err := TaskMgr.UpdateTaskPriority(args[0], models.Priority(args[1])); err != nil {
			return notFoundErr(err)
		}
		fmt.Printf("Task %s is now %s\n", args[0], args[1])
		return nil
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove <task-id>",
	Short: "Remove a task from the roadmap",
	Long: `Remove a task. References to it from other tasks' depends-on and blocks
lists are left in place; run "roadmap validate" to find them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		referencedBy, err := TaskMgr.RemoveTask(args[0])
		if err != nil {
			return notFoundErr(err)
		}

		fmt.Printf("Removed task %s\n", args[0])
		if len(referencedBy) > 0 {
			fmt.Printf("Still referenced by: %s\n", strings.Join(referencedBy, ", "))
			fmt.Println("Run \"roadmap validate\" to review the dangling references.")
		}
		return nil
	},
}

var taskLinkBlocks bool

var taskLinkCmd = &cobra.Command{
	Use:   "link <task-id> <target-id>",
	Short: "Add a dependency edge between two tasks",
	Long: `Record that <task-id> depends on <target-id>, or with --blocks that
<task-id> blocks <target-id>. Both tasks must exist, and edges that would
introduce a cycle in the unified dependency graph are refused.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		var err error
		if taskLinkBlocks {
			err = TaskMgr.AddBlock(args[0], args[1])
		} else {
			err = TaskMgr.AddDependency(args[0], args[1])
		}
		if err != nil {
			if errors.Is(err, core.ErrCycleDetected) {
				return &ExitError{Code: ExitDependency, Err: err}
			}
			return notFoundErr(err)
		}

		if taskLinkBlocks {
			fmt.Printf("%s now blocks %s\n", args[0], args[1])
		} else {
			fmt.Printf("%s now depends on %s\n", args[0], args[1])
		}
		return nil
	},
}

var taskUnlinkBlocks bool

var taskUnlinkCmd = &cobra.Command{
	Use:   "unlink <task-id> <target-id>",
	Short: "Remove a dependency edge between two tasks",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		var err error
		if taskUnlinkBlocks {
			err = TaskMgr.RemoveBlock(args[0], args[1])
		} else {
			err = TaskMgr.RemoveDependency(args[0], args[1])
		}
		if err != nil {
			return notFoundErr(err)
		}

		fmt.Printf("Removed edge %s -> %s\n", args[0], args[1])
		return nil
	},
}

// notFoundErr maps task-resolution failures to the not-found exit code and
// passes other errors through.
func notFoundErr(err error) error {
	if errors.Is(err, core.ErrTaskNotFound) {
		return &ExitError{Code: ExitNotFound, Err: err}
	}
	return err
}

func init() {
	taskAddCmd.Flags().StringVar(&taskAddType, "type", "feature", "Task type: bug, feature, improvement, planning, or research")
	taskAddCmd.Flags().StringVar(&taskAddPriority, "priority", "", "Task priority (P0, P1, P2, P3)")
	taskAddCmd.Flags().StringVar(&taskAddOwner, "owner", "", "Task owner (e.g. @username)")
	taskAddCmd.Flags().StringSliceVar(&taskAddTags, "tags", nil, "Comma-separated tags")
	taskAddCmd.Flags().StringSliceVar(&taskAddDependsOn, "depends-on", nil, "Comma-separated IDs of tasks this one requires")
	taskAddCmd.Flags().StringSliceVar(&taskAddBlocks, "blocks", nil, "Comma-separated IDs of tasks this one blocks")
	_ = taskAddCmd.RegisterFlagCompletionFunc("type", completeTaskTypes)
	_ = taskAddCmd.RegisterFlagCompletionFunc("priority", completePriorities)

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().StringVar(&taskListType, "type", "", "Filter by type")
	taskListCmd.Flags().StringSliceVar(&taskListTags, "tag", nil, "Filter by tags (all must match)")
	_ = taskListCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = taskListCmd.RegisterFlagCompletionFunc("type", completeTaskTypes)

	taskShowCmd.ValidArgsFunction = completeTaskIDs
	taskStatusCmd.ValidArgsFunction = completeTaskIDs
	taskPriorityCmd.ValidArgsFunction = completeTaskIDs
	taskRemoveCmd.ValidArgsFunction = completeTaskIDs

	taskLinkCmd.Flags().BoolVar(&taskLinkBlocks, "blocks", false, "Add a blocks edge instead of depends-on")
	taskLinkCmd.ValidArgsFunction = completeTaskIDs
	taskUnlinkCmd.Flags().BoolVar(&taskUnlinkBlocks, "blocks", false, "Remove a blocks edge instead of depends-on")
	taskUnlinkCmd.ValidArgsFunction = completeTaskIDs

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskStatusCmd)
	taskCmd.AddCommand(taskPriorityCmd)
	taskCmd.AddCommand(taskRemoveCmd)
	taskCmd.AddCommand(taskLinkCmd)
	taskCmd.AddCommand(taskUnlinkCmd)
	rootCmd.AddCommand(taskCmd)
}
