// ABOUTME: CLI command for logging baby care entries.
// ABOUTME: Upserts milk/pee/poop flags keyed by baby and minute timestamp.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logAt   string
	logDate string
	logTime string
	logMilk bool
	logPee  bool
	logPoop bool
)

var logCmd = &cobra.Command{
	Use:   "log <baby>",
	Short: "Log a care entry",
	Long: `Log a care entry for a baby. An entry records which of milk, pee,
and poop happened at a timestamp, truncated to the minute.

Logging again at the same minute overwrites the earlier flags rather
than adding a second row, so corrections are just re-logs.

EXAMPLES:

  babylog log June --milk                        # Feeding right now
  babylog log June --pee --poop                  # Diaper change right now
  babylog log June --milk --at "2024-03-10 14:30"
  babylog log June --at 14:30 --poop             # Today at 14:30
  babylog log June --date 2024-03-10 --time 14:30 --milk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !logMilk && !logPee && !logPoop {
			return fmt.Errorf("nothing to log: pass at least one of --milk, --pee, --poop")
		}

		baby, err := repo.GetOrCreateBaby(args[0])
		if err != nil {
			return err
		}

		ts := time.Now().In(loc)
		switch {
		case logAt != "":
			ts, err = parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
		case logDate != "" || logTime != "":
			ts, err = composeDateTime(logDate, logTime)
			if err != nil {
				return err
			}
		}

		e := models.NewEntry(baby.ID, ts, logMilk, logPee, logPoop)

		// Warn when an existing entry is about to be replaced
		if existing, err := repo.GetEntry(baby.ID, e.Ts); err == nil {
			color.Yellow("Overwriting entry at %s (was %s)",
				e.Ts.Format("2006-01-02 15:04"), flagSummary(existing))
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check existing entry: %w", err)
		}

		if err := repo.UpsertEntry(e); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("✓ Logged %s for %s", flagSummary(e), baby.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(e.Ts.Format("2006-01-02 03:04 PM")))
		return nil
	},
}

// flagSummary renders an entry's set flags as "milk+pee".
func flagSummary(e *models.Entry) string {
	var parts []string
	for _, kind := range models.AllEventKinds {
		if e.Has(kind) {
			parts = append(parts, string(kind))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "+" + p
	}
	return out
}

// composeDateTime builds a timestamp from separate date and time parts.
// A missing date means today; a missing time means the current clock.
func composeDateTime(dateStr, timeStr string) (time.Time, error) {
	now := time.Now().In(loc)

	day := now
	if dateStr != "" {
		d, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date: %s", dateStr)
		}
		day = d
	}

	hour, minute := now.Hour(), now.Minute()
	if timeStr != "" {
		t, err := time.ParseInLocation("15:04", timeStr, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time (HH:MM): %s", timeStr)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// parseTime accepts common timestamp shapes in the configured timezone.
// Bare dates resolve to midnight, bare times to today.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, loc); err == nil {
			return t, nil
		}
	}

	// Bare time of day applies to today
	if t, err := time.ParseInLocation("15:04", s, loc); err == nil {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "Timestamp (default now)")
	logCmd.Flags().StringVar(&logDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logTime, "time", "", "Entry time (HH:MM, default current time)")
	logCmd.Flags().BoolVar(&logMilk, "milk", false, "Milk feeding happened")
	logCmd.Flags().BoolVar(&logPee, "pee", false, "Urination happened")
	logCmd.Flags().BoolVar(&logPoop, "poop", false, "Bowel movement happened")
	rootCmd.AddCommand(logCmd)
}
