// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/babylog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your baby log
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "babylog": {
        "command": "babylog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_entry       Record or overwrite milk/pee/poop flags
  list_entries    List entries for a timeframe
  delete_entry    Delete the entry at a timestamp
  get_stats       Totals, daily counts, and average intervals
  last_events     Most recent occurrence of each event
  add_weight      Record a daily weight
  weight_series   All weights, ascending by date
  add_baby        Create a baby (idempotent)
  list_babies     List baby names
  set_dob         Set a baby's date of birth

AVAILABLE RESOURCES:

  babylog://babies     Babies with dates of birth
  babylog://today      Today's entries per baby
  babylog://summary    7-day dashboard per baby`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, loc)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
