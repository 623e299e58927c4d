// ABOUTME: Pure aggregation over entry slices for stats display.
// ABOUTME: Daily per-event counts, average inter-event intervals, totals, last-seen.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/babylog/internal/models"
)

// DailyCount is the count of one event kind on one calendar date.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Kind  models.EventKind
	Count int
}

// Totals holds per-event counts over a filtered range.
type Totals struct {
	Milk int
	Pee  int
	Poop int
}

// LastSeen holds the most recent timestamp per event kind, each tracked
// independently (not the max of any single row). Nil means never seen.
type LastSeen struct {
	Milk *time.Time
	Pee  *time.Time
	Poop *time.Time
}

// Summary bundles the aggregates the stats views need.
type Summary struct {
	Totals    Totals
	Daily     []DailyCount
	Intervals map[models.EventKind]time.Duration
	Last      LastSeen
}

// DailyEventCounts counts rows with each flag set, grouped by the calendar
// date of the entry timestamp in the given location and by event kind.
// The three kinds are independent series; a single entry can contribute
// to all of them. Results are sorted by date ascending, then kind
// display order.
func DailyEventCounts(entries []*models.Entry, loc *time.Location) []DailyCount {
	if loc == nil {
		loc = time.UTC
	}
	type key struct {
		date string
		kind models.EventKind
	}
	counts := make(map[key]int)
	for _, e := range entries {
		date := e.Ts.In(loc).Format("2006-01-02")
		for _, k := range models.AllEventKinds {
			if e.Has(k) {
				counts[key{date, k}]++
			}
		}
	}

	kindOrder := make(map[models.EventKind]int, len(models.AllEventKinds))
	for i, k := range models.AllEventKinds {
		kindOrder[k] = i
	}

	var out []DailyCount
	for k, n := range counts {
		out = append(out, DailyCount{Date: k.date, Kind: k.kind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return kindOrder[out[i].Kind] < kindOrder[out[j].Kind]
	})
	return out
}

// AverageInterval returns the arithmetic mean of the gaps between
// consecutive occurrences of the given event kind, sorted ascending by
// timestamp. The second return is false when fewer than two rows qualify.
func AverageInterval(entries []*models.Entry, kind models.EventKind) (time.Duration, bool) {
	var times []time.Time
	for _, e := range entries {
		if e.Has(kind) {
			times = append(times, e.Ts)
		}
	}
	if len(times) < 2 {
		return 0, false
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	var total time.Duration
	for i := 1; i < len(times); i++ {
		total += times[i].Sub(times[i-1])
	}
	return total / time.Duration(len(times)-1), true
}

// ComputeTotals sums each flag over the given entries.
func ComputeTotals(entries []*models.Entry) Totals {
	var t Totals
	for _, e := range entries {
		if e.Milk {
			t.Milk++
		}
		if e.Pee {
			t.Pee++
		}
		if e.Poop {
			t.Poop++
		}
	}
	return t
}

// LastEvents finds the maximum timestamp among rows where each flag is
// set, per event kind.
func LastEvents(entries []*models.Entry) LastSeen {
	var ls LastSeen
	for _, e := range entries {
		ts := e.Ts
		if e.Milk && (ls.Milk == nil || ts.After(*ls.Milk)) {
			t := ts
			ls.Milk = &t
		}
		if e.Pee && (ls.Pee == nil || ts.After(*ls.Pee)) {
			t := ts
			ls.Pee = &t
		}
		if e.Poop && (ls.Poop == nil || ts.After(*ls.Poop)) {
			t := ts
			ls.Poop = &t
		}
	}
	return ls
}

// For returns the last-seen timestamp for one event kind.
func (ls LastSeen) For(kind models.EventKind) *time.Time {
	switch kind {
	case models.EventMilk:
		return ls.Milk
	case models.EventPee:
		return ls.Pee
	case models.EventPoop:
		return ls.Poop
	}
	return nil
}

// Summarize computes the full aggregate bundle for a filtered entry set.
// Daily counts group by calendar date in the given location.
func Summarize(entries []*models.Entry, loc *time.Location) Summary {
	s := Summary{
		Totals:    ComputeTotals(entries),
		Daily:     DailyEventCounts(entries, loc),
		Intervals: make(map[models.EventKind]time.Duration),
		Last:      LastEvents(entries),
	}
	for _, k := range models.AllEventKinds {
		if avg, ok := AverageInterval(entries, k); ok {
			s.Intervals[k] = avg
		}
	}
	return s
}
