package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const roadmaprcTemplate = `# roadmap configuration
#
# roadmap:
#   file: roadmap.json
# defaults:
#   priority: P2
#   owner: ""
# validate:
#   strict_blocks: false
# watch:
#   debounce_ms: 250
`

const emptyRoadmap = `{
  "version": 1,
  "tasks": []
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty roadmap and config in the current directory",
	Long: `Scaffold a new roadmap: an empty roadmap.json (version 1) and a
commented .roadmaprc. Refuses to overwrite files that already exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("initializing roadmap: %w", err)
		}

		roadmapPath := filepath.Join(dir, "roadmap.json")
		rcPath := filepath.Join(dir, ".roadmaprc")

		if _, err := os.Stat(roadmapPath); err == nil {
			return fmt.Errorf("initializing roadmap: %s already exists", roadmapPath)
		}
		if _, err := os.Stat(rcPath); err == nil {
			return fmt.Errorf("initializing roadmap: %s already exists", rcPath)
		}

		if err := os.WriteFile(roadmapPath, []byte(emptyRoadmap), 0o600); err != nil {
			return fmt.Errorf("initializing roadmap: writing roadmap.json: %w", err)
		}
		if err := os.WriteFile(rcPath, []byte(roadmaprcTemplate), 0o600); err != nil {
			return fmt.Errorf("initializing roadmap: writing .roadmaprc: %w", err)
		}

		fmt.Printf("Initialized empty roadmap in %s\n", dir)
		fmt.Println("  roadmap.json  empty roadmap (version 1)")
		fmt.Println("  .roadmaprc    commented configuration")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
