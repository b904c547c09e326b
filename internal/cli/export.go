package cli

import (
	"fmt"
	"os"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roadmap as markdown, YAML, or JSON",
	Long: `Render the roadmap in the requested format. Markdown groups tasks by
status in lifecycle order and appends a dependency appendix; yaml and json
are direct encodings of the roadmap file shape. Output goes to stdout
unless --output names a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		roadmap, err := TaskMgr.Roadmap()
		if err != nil {
			return fmt.Errorf("exporting roadmap: %w", err)
		}

		data, err := core.RenderRoadmap(roadmap, core.ExportFormat(exportFormat))
		if err != nil {
			return fmt.Errorf("exporting roadmap: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("exporting roadmap: writing %s: %w", exportOutput, err)
		}
		fmt.Printf("Wrote %s export to %s\n", exportFormat, exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "Output format: markdown, yaml, or json")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file (default stdout)")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"markdown", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(exportCmd)
}
