// ABOUTME: CLI command for listing care entries.
// ABOUTME: Supports timeframe selection and custom date ranges.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/spf13/cobra"
)

var (
	listTimeframe string
	listFrom      string
	listTo        string
)

var listCmd = &cobra.Command{
	Use:     "list <baby>",
	Aliases: []string{"ls", "l"},
	Short:   "List care entries",
	Long: `List a baby's care entries for a timeframe.

OUTPUT FORMAT:

  Each line shows: TIMESTAMP  FLAGS

TIMEFRAMES:

  today    today only (default)
  3d       today and the 2 days before
  7d       today and the 6 days before
  30d      today and the 29 days before
  custom   use --from and --to (either may be omitted; defaults to today)

EXAMPLES:

  babylog list June                  # Today's entries
  babylog list June -t 7d            # Last 7 days
  babylog list June -t custom --from 2024-03-01 --to 2024-03-05`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		babyID, babyName, err := requireBaby(args[0])
		if err != nil {
			return err
		}

		r, err := resolveTimeframe(listTimeframe, listFrom, listTo)
		if err != nil {
			return err
		}

		entries, err := repo.FetchRange(babyID, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("failed to fetch entries: %w", err)
		}

		fmt.Printf("%s: %s to %s\n", babyName,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
		if len(entries) == 0 {
			fmt.Println("No entries in this timeframe.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("  %s  %s\n",
				e.Ts.In(loc).Format("2006-01-02 03:04 PM"),
				colorFlags(e))
		}
		fmt.Printf("\n%d entries\n", len(entries))
		return nil
	},
}

// colorFlags renders set flags with per-event colors.
func colorFlags(e *models.Entry) string {
	var parts []string
	if e.Milk {
		parts = append(parts, color.CyanString("milk"))
	}
	if e.Pee {
		parts = append(parts, color.YellowString("pee"))
	}
	if e.Poop {
		parts = append(parts, color.MagentaString("poop"))
	}
	if len(parts) == 0 {
		return color.New(color.Faint).Sprint("(none)")
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

// resolveTimeframe maps CLI flags to a concrete window in the
// configured timezone.
func resolveTimeframe(tf, from, to string) (timeframe.Range, error) {
	if tf == "" {
		tf = "today"
	}
	opt, err := timeframe.ParseOption(tf)
	if err != nil {
		return timeframe.Range{}, err
	}

	var custom *timeframe.DateRange
	if opt == timeframe.OptionCustom {
		custom = &timeframe.DateRange{}
		if from != "" {
			d, err := time.ParseInLocation("2006-01-02", from, loc)
			if err != nil {
				return timeframe.Range{}, fmt.Errorf("invalid --from date: %s", from)
			}
			custom.From = d
		}
		if to != "" {
			d, err := time.ParseInLocation("2006-01-02", to, loc)
			if err != nil {
				return timeframe.Range{}, fmt.Errorf("invalid --to date: %s", to)
			}
			custom.To = d
		}
	} else if from != "" || to != "" {
		return timeframe.Range{}, fmt.Errorf("--from/--to require --timeframe custom")
	}

	return timeframe.Resolve(opt, custom, timeframe.TodayIn(loc)), nil
}

func init() {
	listCmd.Flags().StringVarP(&listTimeframe, "timeframe", "t", "today", "Timeframe: today, 3d, 7d, 30d, custom")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Custom range start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Custom range end date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}
