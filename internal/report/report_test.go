// ABOUTME: Tests for event aggregation.
// ABOUTME: Daily counts, totals, average intervals, and last-seen timestamps.
package report

import (
	"testing"
	"time"

	"github.com/harperreed/babylog/internal/models"
)

func entryAt(ts time.Time, milk, pee, poop bool) *models.Entry {
	return models.NewEntry(1, ts, milk, pee, poop)
}

func TestComputeTotals(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entryAt(base, true, true, false),
		entryAt(base.Add(time.Hour), true, false, false),
		entryAt(base.Add(2*time.Hour), false, true, true),
	}

	totals := ComputeTotals(entries)
	if totals.Milk != 2 {
		t.Errorf("Milk = %d, want 2", totals.Milk)
	}
	if totals.Pee != 2 {
		t.Errorf("Pee = %d, want 2", totals.Pee)
	}
	if totals.Poop != 1 {
		t.Errorf("Poop = %d, want 1", totals.Poop)
	}
}

func TestDailyEventCounts(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entryAt(day1, true, false, false),
		entryAt(day1.Add(time.Hour), true, true, false),
		entryAt(day2, false, false, true),
	}

	counts := DailyEventCounts(entries, time.UTC)

	want := []DailyCount{
		{Date: "2024-03-10", Kind: models.EventMilk, Count: 2},
		{Date: "2024-03-10", Kind: models.EventPee, Count: 1},
		{Date: "2024-03-11", Kind: models.EventPoop, Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(counts), counts)
	}
	for i, w := range want {
		if counts[i] != w {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], w)
		}
	}
}

func TestDailyEventCountsEmpty(t *testing.T) {
	if counts := DailyEventCounts(nil, time.UTC); len(counts) != 0 {
		t.Errorf("expected no rows for no entries, got %+v", counts)
	}
}

func TestDailyEventCountsGroupsInLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	// 04:30 UTC is 23:30 the previous evening in EST.
	entries := []*models.Entry{
		entryAt(time.Date(2024, 3, 11, 4, 30, 0, 0, time.UTC), true, false, false),
	}

	counts := DailyEventCounts(entries, est)
	if len(counts) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(counts), counts)
	}
	if counts[0].Date != "2024-03-10" {
		t.Errorf("Date = %q, want %q", counts[0].Date, "2024-03-10")
	}

	counts = DailyEventCounts(entries, time.UTC)
	if counts[0].Date != "2024-03-11" {
		t.Errorf("Date in UTC = %q, want %q", counts[0].Date, "2024-03-11")
	}
}

func TestAverageInterval(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	// Milk at 08:00, 12:00, 16:00: two gaps of 4h each
	entries := []*models.Entry{
		entryAt(base, true, false, false),
		entryAt(base.Add(4*time.Hour), true, false, false),
		entryAt(base.Add(8*time.Hour), true, false, false),
	}

	avg, ok := AverageInterval(entries, models.EventMilk)
	if !ok {
		t.Fatal("expected an average interval")
	}
	if avg != 4*time.Hour {
		t.Errorf("average = %v, want 4h", avg)
	}
}

func TestAverageIntervalUnsortedInput(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entryAt(base.Add(8*time.Hour), true, false, false),
		entryAt(base, true, false, false),
		entryAt(base.Add(4*time.Hour), true, false, false),
	}

	avg, ok := AverageInterval(entries, models.EventMilk)
	if !ok {
		t.Fatal("expected an average interval")
	}
	if avg != 4*time.Hour {
		t.Errorf("average = %v, want 4h", avg)
	}
}

func TestAverageIntervalNeedsTwoEvents(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	// One milk event, plenty of other flags
	entries := []*models.Entry{
		entryAt(base, true, true, true),
		entryAt(base.Add(time.Hour), false, true, true),
	}

	if _, ok := AverageInterval(entries, models.EventMilk); ok {
		t.Error("expected no average with a single milk event")
	}
	if _, ok := AverageInterval(nil, models.EventMilk); ok {
		t.Error("expected no average with no entries")
	}
}

func TestLastEvents(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entryAt(base, true, true, false),
		entryAt(base.Add(2*time.Hour), false, true, false),
		entryAt(base.Add(4*time.Hour), true, false, false),
	}

	last := LastEvents(entries)
	if last.Milk == nil || !last.Milk.Equal(base.Add(4*time.Hour)) {
		t.Errorf("last milk = %v, want %v", last.Milk, base.Add(4*time.Hour))
	}
	if last.Pee == nil || !last.Pee.Equal(base.Add(2*time.Hour)) {
		t.Errorf("last pee = %v, want %v", last.Pee, base.Add(2*time.Hour))
	}
	if last.Poop != nil {
		t.Errorf("last poop = %v, want nil", last.Poop)
	}

	// For mirrors the fields
	if got := last.For(models.EventMilk); got == nil || !got.Equal(base.Add(4*time.Hour)) {
		t.Errorf("For(milk) = %v", got)
	}
	if got := last.For(models.EventPoop); got != nil {
		t.Errorf("For(poop) = %v, want nil", got)
	}
}

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entryAt(base, true, false, false),
		entryAt(base.Add(4*time.Hour), true, true, false),
		entryAt(base.Add(8*time.Hour), true, false, true),
	}

	s := Summarize(entries, time.UTC)
	if s.Totals.Milk != 3 || s.Totals.Pee != 1 || s.Totals.Poop != 1 {
		t.Errorf("totals mismatch: %+v", s.Totals)
	}
	if avg, ok := s.Intervals[models.EventMilk]; !ok || avg != 4*time.Hour {
		t.Errorf("milk interval = %v (ok=%v), want 4h", avg, ok)
	}
	if _, ok := s.Intervals[models.EventPee]; ok {
		t.Error("expected no pee interval with one event")
	}
	if len(s.Daily) == 0 {
		t.Error("expected daily counts")
	}
	if s.Last.Milk == nil || !s.Last.Milk.Equal(base.Add(8*time.Hour)) {
		t.Errorf("last milk = %v", s.Last.Milk)
	}
}
