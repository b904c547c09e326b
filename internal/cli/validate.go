package cli

import (
	"fmt"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"github.com/spf13/cobra"
)

var validateStrictBlocks bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the roadmap's dependency relations",
	Long: `Run the dependency checks over the roadmap: cycle detection across the
unified graph of depends-on and blocks relations, dangling-reference
detection, and the advisory blocks/depends-on symmetry check.

Exit codes: 0 when the roadmap is valid (advisory findings alone do not
fail), 2 when a cycle is found, 3 when references to missing tasks are
found. --strict-blocks escalates advisory asymmetry findings to failures.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		findings, err := TaskMgr.Validate()
		if err != nil {
			return fmt.Errorf("validating roadmap: %w", err)
		}

		strict := validateStrictBlocks
		if !cmd.Flags().Changed("strict-blocks") && Config != nil {
			strict = Config.StrictBlocks
		}

		return reportFindings(findings, strict)
	},
}

// reportFindings prints findings with per-type styling and a summary line,
// then maps them to the exit code contract.
func reportFindings(findings []models.Finding, strictBlocks bool) error {
	if len(findings) == 0 {
		fmt.Println(okStyle.Render("Roadmap is valid: no findings."))
		return nil
	}

	counts := make(map[models.FindingType]int)
	for _, f := range findings {
		fmt.Println(renderFinding(f))
		counts[f.Type]++
	}

	fmt.Printf("\n%d finding(s): %d circular, %d missing-task, %d invalid-reference\n",
		len(findings),
		counts[models.FindingCircular],
		counts[models.FindingMissingTask],
		counts[models.FindingInvalidReference],
	)

	// Cycles outrank missing references when both are present.
	switch {
	case counts[models.FindingCircular] > 0:
		return exitErrorf(ExitDependency, "validation failed: circular dependency")
	case counts[models.FindingMissingTask] > 0:
		return exitErrorf(ExitNotFound, "validation failed: missing task reference")
	case strictBlocks && counts[models.FindingInvalidReference] > 0:
		return exitErrorf(ExitDependency, "validation failed: blocks/depends-on asymmetry (strict mode)")
	default:
		fmt.Println("Advisory findings only; roadmap is still considered valid.")
		return nil
	}
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrictBlocks, "strict-blocks", false,
		"Treat blocks/depends-on asymmetry findings as failures")
	rootCmd.AddCommand(validateCmd)
}
