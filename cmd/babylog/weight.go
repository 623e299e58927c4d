// ABOUTME: CLI commands for weight tracking.
// ABOUTME: One measurement per baby per day, entered as pounds and ounces.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/spf13/cobra"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track baby weights",
	Long: `Track baby weights, one measurement per day. Re-entering a weight
for the same date replaces the earlier value.

EXAMPLES:

  babylog weight add June 8 12              # 8 lb 12 oz today
  babylog weight add June 9 --date 2024-03-10
  babylog weight list June                  # Full series, oldest first`,
}

var weightAddCmd = &cobra.Command{
	Use:   "add <baby> <pounds> [ounces]",
	Short: "Record a weight",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.GetOrCreateBaby(args[0])
		if err != nil {
			return err
		}

		lbs, err := strconv.Atoi(args[1])
		if err != nil || lbs < 0 {
			return fmt.Errorf("invalid pounds: %s", args[1])
		}

		oz := 0
		if len(args) == 3 {
			oz, err = strconv.Atoi(args[2])
			if err != nil || oz < 0 || oz > 15 {
				return fmt.Errorf("invalid ounces (0-15): %s", args[2])
			}
		}

		date := timeframe.TodayIn(loc)
		if weightDate != "" {
			date, err = time.ParseInLocation("2006-01-02", weightDate, loc)
			if err != nil {
				return fmt.Errorf("invalid date: %s", weightDate)
			}
		}

		w := models.NewWeight(baby.ID, date, models.PoundsOunces(lbs, oz))
		if err := repo.UpsertWeight(w); err != nil {
			return fmt.Errorf("failed to save weight: %w", err)
		}

		color.Green("✓ Saved weight for %s", baby.Name)
		fmt.Printf("  %s  %d lb %d oz (%.3f lb)\n",
			color.New(color.Faint).Sprint(w.Date.Format("2006-01-02")),
			lbs, oz, w.Weight)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list <baby>",
	Aliases: []string{"ls", "series"},
	Short:   "Show the weight series",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		babyID, babyName, err := requireBaby(args[0])
		if err != nil {
			return err
		}

		weights, err := repo.WeightSeries(babyID)
		if err != nil {
			return fmt.Errorf("failed to load weights: %w", err)
		}
		if len(weights) == 0 {
			fmt.Printf("No weights recorded for %s.\n", babyName)
			return nil
		}

		for i, w := range weights {
			line := fmt.Sprintf("  %s  %.3f lb", w.Date.Format("2006-01-02"), w.Weight)
			if i > 0 {
				delta := w.Weight - weights[i-1].Weight
				line += color.New(color.Faint).Sprintf("  (%+.3f)", delta)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Measurement date (YYYY-MM-DD, default today)")
	weightCmd.AddCommand(weightAddCmd, weightListCmd)
	rootCmd.AddCommand(weightCmd)
}
