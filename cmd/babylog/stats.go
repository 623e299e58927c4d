// ABOUTME: CLI command for timeframe statistics.
// ABOUTME: Totals, daily counts, average intervals, and last events.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/spf13/cobra"
)

var (
	statsTimeframe string
	statsFrom      string
	statsTo        string
)

var statsCmd = &cobra.Command{
	Use:   "stats <baby>",
	Short: "Show statistics for a timeframe",
	Long: `Show totals, per-day counts, average intervals between events,
and the most recent occurrence of each event for a baby.

Average intervals need at least two events of a kind inside the
timeframe, otherwise they are reported as not available.

EXAMPLES:

  babylog stats June                 # Today
  babylog stats June -t 7d           # Last 7 days
  babylog stats June -t custom --from 2024-03-01 --to 2024-03-05`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baby, err := repo.FindBaby(args[0])
		if err != nil {
			return fmt.Errorf("baby not found: %s", args[0])
		}

		r, err := resolveTimeframe(statsTimeframe, statsFrom, statsTo)
		if err != nil {
			return err
		}

		entries, err := repo.FetchRange(baby.ID, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("failed to fetch entries: %w", err)
		}

		summary := report.Summarize(entries, loc)

		header := fmt.Sprintf("%s: %s to %s", baby.Name,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
		if dol, ok := baby.DayOfLife(timeframe.TodayIn(loc)); ok {
			header += color.New(color.Faint).Sprintf("  (day %d of life)", dol)
		}
		fmt.Println(header)
		fmt.Println()

		color.New(color.Bold).Println("Totals")
		fmt.Printf("  milk %d   pee %d   poop %d\n\n",
			summary.Totals.Milk, summary.Totals.Pee, summary.Totals.Poop)

		if len(summary.Daily) > 0 {
			color.New(color.Bold).Println("Per day")
			printDaily(summary.Daily)
			fmt.Println()
		}

		color.New(color.Bold).Println("Average interval")
		for _, kind := range models.AllEventKinds {
			if avg, ok := summary.Intervals[kind]; ok {
				fmt.Printf("  %-5s %s\n", kind, formatDuration(avg))
			} else {
				fmt.Printf("  %-5s %s\n", kind, color.New(color.Faint).Sprint("n/a"))
			}
		}
		fmt.Println()

		last, err := repo.LatestPerEvent(baby.ID)
		if err != nil {
			return fmt.Errorf("failed to load last events: %w", err)
		}
		color.New(color.Bold).Println("Last seen")
		now := time.Now().In(loc)
		for _, kind := range models.AllEventKinds {
			if ts := last.For(kind); ts != nil {
				fmt.Printf("  %-5s %s %s\n", kind,
					ts.In(loc).Format("2006-01-02 03:04 PM"),
					color.New(color.Faint).Sprintf("(%s ago)", formatDuration(now.Sub(*ts))))
			} else {
				fmt.Printf("  %-5s %s\n", kind, color.New(color.Faint).Sprint("never"))
			}
		}
		return nil
	},
}

// printDaily groups daily counts into one line per date.
func printDaily(daily []report.DailyCount) {
	type row struct{ milk, pee, poop int }
	rows := make(map[string]*row)
	var order []string
	for _, dc := range daily {
		r, ok := rows[dc.Date]
		if !ok {
			r = &row{}
			rows[dc.Date] = r
			order = append(order, dc.Date)
		}
		switch dc.Kind {
		case models.EventMilk:
			r.milk = dc.Count
		case models.EventPee:
			r.pee = dc.Count
		case models.EventPoop:
			r.poop = dc.Count
		}
	}
	for _, date := range order {
		r := rows[date]
		fmt.Printf("  %s  milk %-3d pee %-3d poop %d\n", date, r.milk, r.pee, r.poop)
	}
}

// formatDuration renders durations as "3h 24m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func init() {
	statsCmd.Flags().StringVarP(&statsTimeframe, "timeframe", "t", "today", "Timeframe: today, 3d, 7d, 30d, custom")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Custom range start date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Custom range end date (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}
