package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/integration"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate the roadmap whenever the file changes",
	Long: `Watch the roadmap file and rerun dependency validation after each
change. Edit bursts within the configured debounce window coalesce into a
single validation pass. Ctrl-C exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		debounce := 250 * time.Millisecond
		if Config != nil && Config.WatchDebounceMS > 0 {
			debounce = time.Duration(Config.WatchDebounceMS) * time.Millisecond
		}

		watcher, err := integration.NewFileWatcher(RoadmapFile, debounce)
		if err != nil {
			return fmt.Errorf("starting watch mode: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Printf("Watching %s (Ctrl-C to exit)\n", RoadmapFile)
		runValidationPass()

		err = watcher.Watch(ctx, runValidationPass)
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nStopped watching.")
			return nil
		}
		return err
	},
}

// runValidationPass validates the current roadmap and prints a timestamped
// result. Watch mode never exits on findings; it keeps reporting each pass.
func runValidationPass() {
	stamp := time.Now().Format("15:04:05")

	findings, err := TaskMgr.Validate()
	if err != nil {
		fmt.Printf("[%s] %s\n", stamp, missingStyle.Render(fmt.Sprintf("validation error: %v", err)))
		return
	}

	if len(findings) == 0 {
		fmt.Printf("[%s] %s\n", stamp, okStyle.Render("roadmap valid"))
		return
	}

	counts := make(map[models.FindingType]int)
	for _, f := range findings {
		counts[f.Type]++
	}
	fmt.Printf("[%s] %d finding(s): %d circular, %d missing-task, %d invalid-reference\n",
		stamp, len(findings),
		counts[models.FindingCircular],
		counts[models.FindingMissingTask],
		counts[models.FindingInvalidReference],
	)
	for _, f := range findings {
		fmt.Println(renderFinding(f))
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
