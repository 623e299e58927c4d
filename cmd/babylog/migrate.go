// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies babies, entries, and weights from SQLite to PostgreSQL or back.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/config"
	"github.com/harperreed/babylog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo  string
	migrateURL string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate --to <backend>",
	Short: "Copy data to another storage backend",
	Long: `Copy all babies, entries, and weights from the currently configured
backend to another one. Babies are matched by name on the target, so
running the migration twice upserts rather than duplicating.

The source is whatever the current config (or --db) opens. The target
is named with --to:

  sqlite     target is the default SQLite database (or --db path)
  postgres   target is DATABASE_URL, or --database-url

EXAMPLES:

  babylog migrate --to postgres --database-url postgres://localhost/babylog
  BABYLOG_BACKEND=postgres babylog migrate --to sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			dst storage.Repository
			err error
		)
		switch migrateTo {
		case "postgres":
			url := migrateURL
			if url == "" {
				url = cfg.DatabaseURL
			}
			if url == "" {
				return fmt.Errorf("postgres target needs --database-url or DATABASE_URL")
			}
			dst, err = storage.OpenPostgres(url)
		case "sqlite":
			target := config.Config{Backend: "sqlite", DataDir: cfg.DataDir}
			dst, err = target.OpenStorage()
		default:
			return fmt.Errorf("unknown target backend: %q (sqlite or postgres)", migrateTo)
		}
		if err != nil {
			return fmt.Errorf("failed to open target backend: %w", err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migration complete")
		fmt.Printf("  %d babies, %d entries, %d weights\n",
			summary.Babies, summary.Entries, summary.Weights)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "Target backend: sqlite or postgres")
	migrateCmd.Flags().StringVar(&migrateURL, "database-url", "", "PostgreSQL connection URL for the target")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
