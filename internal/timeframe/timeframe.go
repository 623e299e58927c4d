// ABOUTME: Timeframe resolution from named options or custom date ranges.
// ABOUTME: "Today" is computed in a fixed named timezone, never the process zone.
package timeframe

import (
	"fmt"
	"time"
)

// Option is a named timeframe selection.
type Option string

const (
	OptionToday  Option = "Today"
	OptionLast3  Option = "Last 3 days"
	OptionLast7  Option = "Last 7 days"
	OptionLast30 Option = "Last 30 days"
	OptionCustom Option = "Custom"
)

// AllOptions returns the selectable timeframe options in display order.
var AllOptions = []Option{OptionToday, OptionLast3, OptionLast7, OptionLast30, OptionCustom}

// DefaultZone is the named timezone used to compute "today". Keeping this
// fixed keeps today stable across deployments regardless of the host zone.
const DefaultZone = "America/New_York"

// ParseOption maps CLI spellings to an Option.
func ParseOption(s string) (Option, error) {
	switch s {
	case "today", string(OptionToday):
		return OptionToday, nil
	case "3d", string(OptionLast3):
		return OptionLast3, nil
	case "7d", string(OptionLast7):
		return OptionLast7, nil
	case "30d", string(OptionLast30):
		return OptionLast30, nil
	case "custom", string(OptionCustom):
		return OptionCustom, nil
	}
	return "", fmt.Errorf("unknown timeframe: %s (valid: today, 3d, 7d, 30d, custom)", s)
}

// Range is a resolved inclusive time window.
type Range struct {
	Start time.Time
	End   time.Time
}

// DateRange is a caller-supplied custom date pair. Zero fields count as
// absent and default to today.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Resolve maps a timeframe option to concrete start/end instants relative
// to today's calendar date. Start is the start date at 00:00:00 and End is
// the end date at 23:59:59. The window is inclusive at both ends, not a
// half-open midnight boundary.
func Resolve(opt Option, custom *DateRange, today time.Time) Range {
	startD, endD := today, today
	switch opt {
	case OptionToday:
	case OptionLast3:
		startD = today.AddDate(0, 0, -2)
	case OptionLast7:
		startD = today.AddDate(0, 0, -6)
	case OptionLast30:
		startD = today.AddDate(0, 0, -29)
	case OptionCustom:
		if custom != nil {
			if !custom.From.IsZero() {
				startD = custom.From
			}
			if !custom.To.IsZero() {
				endD = custom.To
			}
		}
	}
	return Range{Start: StartOfDay(startD), End: EndOfDay(endD)}
}

// StartOfDay returns t's calendar date at 00:00:00 in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns t's calendar date at 23:59:59 in t's location. Entries
// are minute-truncated, so the day window is the closed interval
// [00:00:00, 23:59:59].
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Contains reports whether ts falls inside the range, inclusive on both ends.
func (r Range) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// TodayIn returns the current instant in the given location. Pass the
// result as "today" to Resolve so date math happens in the reporting zone.
func TodayIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// LoadLocation loads a named timezone, falling back to DefaultZone when
// name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
