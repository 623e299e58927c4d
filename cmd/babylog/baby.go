// ABOUTME: CLI commands for managing babies.
// ABOUTME: Registration, listing, date of birth, and removal.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/storage"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/spf13/cobra"
)

var (
	babyDeleteYes bool
	babyDeleteDOB string
)

var babyCmd = &cobra.Command{
	Use:   "baby",
	Short: "Manage babies",
	Long: `Manage the babies tracked by babylog.

EXAMPLES:

  babylog baby add June                 # Register a baby (idempotent)
  babylog baby list                     # Show all babies
  babylog baby dob June 2024-02-14      # Set date of birth
  babylog baby delete June --yes        # Remove a baby and all its data`,
}

var babyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a baby",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.GetOrCreateBaby(args[0])
		if err != nil {
			return err
		}
		color.Green("✓ Baby %q ready", baby.Name)
		return nil
	},
}

var babyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all babies",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := repo.ListBabyNames()
		if err != nil {
			return fmt.Errorf("failed to list babies: %w", err)
		}
		if len(names) == 0 {
			fmt.Println("No babies yet. Add one with 'babylog baby add <name>'.")
			return nil
		}

		today := timeframe.TodayIn(loc)
		for _, name := range names {
			baby, err := repo.FindBaby(name)
			if err != nil {
				return fmt.Errorf("failed to load baby %s: %w", name, err)
			}
			line := baby.Name
			if baby.DOB != nil {
				line += color.New(color.Faint).Sprintf("  (born %s", baby.DOB.Format("2006-01-02"))
				if dol, ok := baby.DayOfLife(today); ok {
					line += color.New(color.Faint).Sprintf(", day %d", dol)
				}
				line += color.New(color.Faint).Sprint(")")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var babyDOBCmd = &cobra.Command{
	Use:   "dob <name> [YYYY-MM-DD]",
	Short: "Set or show a baby's date of birth",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.FindBaby(args[0])
		if err != nil {
			return fmt.Errorf("baby not found: %s", args[0])
		}

		if len(args) == 1 {
			if baby.DOB == nil {
				fmt.Printf("No date of birth recorded for %s.\n", baby.Name)
				return nil
			}
			line := fmt.Sprintf("%s: born %s", baby.Name, baby.DOB.Format("2006-01-02"))
			if dol, ok := baby.DayOfLife(timeframe.TodayIn(loc)); ok {
				line += color.New(color.Faint).Sprintf("  (day %d of life)", dol)
			}
			fmt.Println(line)
			return nil
		}

		dob, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date of birth: %s", args[1])
		}

		if err := repo.SetDateOfBirth(baby.ID, dob); err != nil {
			return fmt.Errorf("failed to set date of birth: %w", err)
		}
		color.Green("✓ Saved date of birth for %s", baby.Name)
		return nil
	},
}

var babyDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a baby and all its entries and weights",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.FindBaby(args[0])
		if err != nil {
			return fmt.Errorf("baby not found: %s", args[0])
		}

		if err := confirmBabyDeletion(baby, babyDeleteDOB, babyDeleteYes); err != nil {
			return err
		}

		if _, err := repo.DeleteBaby(baby.ID); err != nil {
			return fmt.Errorf("failed to delete baby: %w", err)
		}
		color.Yellow("✗ Deleted %s", baby.Name)
		return nil
	},
}

// requireBaby resolves a baby by name with a uniform error message.
func requireBaby(name string) (int64, string, error) {
	baby, err := repo.FindBaby(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, "", fmt.Errorf("baby not found: %s (add with 'babylog baby add')", name)
		}
		return 0, "", err
	}
	return baby.ID, baby.Name, nil
}

func init() {
	babyDeleteCmd.Flags().BoolVar(&babyDeleteYes, "yes", false, "Confirm deletion")
	babyDeleteCmd.Flags().StringVar(&babyDeleteDOB, "dob", "", "Confirm with the baby's recorded date of birth")
	babyCmd.AddCommand(babyAddCmd, babyListCmd, babyDOBCmd, babyDeleteCmd)
	rootCmd.AddCommand(babyCmd)
}
