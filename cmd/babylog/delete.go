// ABOUTME: CLI commands for deleting entries.
// ABOUTME: Single entry by timestamp, whole day, or everything.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/models"
	"github.com/spf13/cobra"
)

var (
	deleteAllYes bool
	delBabyYes   bool
	delBabyDOB   string
)

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"del", "rm"},
	Short:   "Delete entries",
	Long: `Delete care entries.

EXAMPLES:

  babylog delete entry June "2024-03-10 14:30"   # One entry by timestamp
  babylog delete day June 2024-03-10             # Every entry on a day
  babylog delete baby June --dob 2024-02-14      # Baby plus all its data
  babylog delete all --yes                       # Wipe all entries and babies

CAUTION:

  Deletion is permanent. There is no undo.`,
}

var deleteEntryCmd = &cobra.Command{
	Use:   "entry <baby> <timestamp>",
	Short: "Delete the entry at an exact timestamp",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		babyID, babyName, err := requireBaby(args[0])
		if err != nil {
			return err
		}

		ts, err := parseTime(args[1])
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", args[1])
		}
		ts = ts.Truncate(time.Minute)

		removed, err := repo.DeleteEntry(babyID, ts)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if removed == 0 {
			fmt.Printf("No entry for %s at %s.\n", babyName, ts.Format("2006-01-02 15:04"))
			return nil
		}
		color.Yellow("✗ Deleted entry at %s", ts.Format("2006-01-02 03:04 PM"))
		return nil
	},
}

var deleteDayCmd = &cobra.Command{
	Use:   "day <baby> <YYYY-MM-DD>",
	Short: "Delete every entry on a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		babyID, babyName, err := requireBaby(args[0])
		if err != nil {
			return err
		}

		day, err := time.ParseInLocation("2006-01-02", args[1], loc)
		if err != nil {
			return fmt.Errorf("invalid date: %s", args[1])
		}

		removed, err := repo.DeleteDay(babyID, day)
		if err != nil {
			return fmt.Errorf("failed to delete day: %w", err)
		}
		if removed == 0 {
			fmt.Printf("No entries for %s on %s.\n", babyName, args[1])
			return nil
		}
		color.Yellow("✗ Deleted %d entries on %s", removed, args[1])
		return nil
	},
}

var deleteBabyCmd = &cobra.Command{
	Use:   "baby <name>",
	Short: "Delete a baby and all its entries and weights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.FindBaby(args[0])
		if err != nil {
			return fmt.Errorf("baby not found: %s", args[0])
		}

		if err := confirmBabyDeletion(baby, delBabyDOB, delBabyYes); err != nil {
			return err
		}

		if _, err := repo.DeleteBaby(baby.ID); err != nil {
			return fmt.Errorf("failed to delete baby: %w", err)
		}
		color.Yellow("✗ Deleted %s", baby.Name)
		return nil
	},
}

var deleteAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete every entry and every baby",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteAllYes {
			return fmt.Errorf("this wipes every baby, entry, and weight; re-run with --yes to confirm")
		}
		if err := repo.DeleteEverything(); err != nil {
			return fmt.Errorf("failed to delete data: %w", err)
		}
		color.Yellow("✗ Deleted all data")
		return nil
	},
}

// confirmBabyDeletion gates baby removal. When a date of birth is on
// record it must be repeated back via --dob; otherwise --yes suffices.
func confirmBabyDeletion(baby *models.Baby, dobConfirm string, yes bool) error {
	if baby.DOB != nil {
		if dobConfirm == "" {
			return fmt.Errorf("deleting %q removes all its entries and weights; confirm with --dob %s",
				baby.Name, "YYYY-MM-DD")
		}
		if dobConfirm != baby.DOB.Format("2006-01-02") {
			return fmt.Errorf("date of birth does not match; deletion refused")
		}
		return nil
	}
	if !yes {
		return fmt.Errorf("deleting %q removes all its entries and weights; re-run with --yes to confirm", baby.Name)
	}
	return nil
}

func init() {
	deleteBabyCmd.Flags().BoolVar(&delBabyYes, "yes", false, "Confirm deletion")
	deleteBabyCmd.Flags().StringVar(&delBabyDOB, "dob", "", "Confirm with the baby's recorded date of birth")
	deleteAllCmd.Flags().BoolVar(&deleteAllYes, "yes", false, "Confirm deletion")
	deleteCmd.AddCommand(deleteEntryCmd, deleteDayCmd, deleteBabyCmd, deleteAllCmd)
	rootCmd.AddCommand(deleteCmd)
}
