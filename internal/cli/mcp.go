package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	roadmapmcp "github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the roadmap MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the roadmap MCP server on stdio",
	Long: `Start the roadmap MCP server on stdio transport.

The server exposes roadmap functionality as MCP tools that AI coding
assistants can call: get_task, list_tasks, update_task_status,
validate_roadmap, get_dependencies, sort_tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		srv := roadmapmcp.NewServer(TaskMgr, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
