// Package cli implements the roadmap command tree. Commands are registered
// in init() and use package-level service variables wired by the App during
// startup.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Project roadmap tracker with dependency validation",
	Long: `roadmap tracks a project's tasks in a roadmap.json file and validates
the dependency relations between them.

Tasks carry two relation lists: depends-on (tasks that must finish first)
and blocks (tasks this one prevents from proceeding). The validate, sort,
and watch commands interpret both relations as one ordering-constraint
graph, detect cycles, and report dangling references.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roadmap %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
