// ABOUTME: Root Cobra command for babylog CLI.
// ABOUTME: Opens config, storage, and timezone via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/babylog/internal/config"
	"github.com/harperreed/babylog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	repo   storage.Repository
	loc    *time.Location
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "babylog",
	Short: "Baby care data logger",
	Long: `Babylog is a CLI tool for tracking baby care events and weights.

WHAT IT TRACKS:

  Events   milk feedings, urination (pee), bowel movements (poop)
  Weights  one measurement per baby per day, in pounds

QUICK START:

  $ babylog baby add June                   # Register a baby
  $ babylog log June --milk                 # Log a feeding right now
  $ babylog log June --pee --poop --at "2024-03-10 14:30"
  $ babylog list June                       # Today's entries
  $ babylog stats June -t 7d                # Weekly totals and intervals
  $ babylog weight add June 8 12            # 8 lb 12 oz today

TIMEFRAMES:

  today (default), 3d, 7d, 30d, or custom with --from/--to.
  Days run from 00:00:00 through 23:59:59 in your configured timezone.

MCP INTEGRATION:

  Run 'babylog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "babylog": { "command": "babylog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  By default entries live in SQLite at ~/.local/share/babylog/babylog.db.
  Set BABYLOG_BACKEND=postgres and DATABASE_URL to use PostgreSQL
  instead, or edit ~/.config/babylog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		loc, err = cfg.Location()
		if err != nil {
			return fmt.Errorf("failed to load timezone: %w", err)
		}

		if dbPath != "" {
			repo, err = storage.Open(dbPath)
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}
