// ABOUTME: Tests for timeframe option parsing and range resolution.
// ABOUTME: Verifies day boundaries and the today/3d/7d/30d/custom windows.
package timeframe

import (
	"testing"
	"time"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		input   string
		want    Option
		wantErr bool
	}{
		{"today", OptionToday, false},
		{"Today", OptionToday, false},
		{"3d", OptionLast3, false},
		{"Last 3 days", OptionLast3, false},
		{"7d", OptionLast7, false},
		{"30d", OptionLast30, false},
		{"custom", OptionCustom, false},
		{"yesterday", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOption(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOption(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOption(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOption(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		opt       Option
		custom    *DateRange
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			opt:       OptionToday,
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "last 3 days starts two days back",
			opt:       OptionLast3,
			wantStart: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "last 7 days starts six days back",
			opt:       OptionLast7,
			wantStart: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "last 30 days starts twenty-nine days back",
			opt:       OptionLast30,
			wantStart: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "custom single day",
			opt:  OptionCustom,
			custom: &DateRange{
				From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "custom missing ends default to today",
			opt:  OptionCustom,
			custom: &DateRange{
				From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "custom nil falls back to today",
			opt:       OptionCustom,
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.opt, tt.custom, today)
			if !r.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", r.Start, tt.wantStart)
			}
			if !r.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", r.End, tt.wantEnd)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	r := Range{Start: StartOfDay(day), End: EndOfDay(day)}

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"midnight start", day, true},
		{"mid day", day.Add(12 * time.Hour), true},
		{"last second", day.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true},
		{"just before midnight next day", day.Add(24*time.Hour - time.Nanosecond), false},
		{"next midnight", day.Add(24 * time.Hour), false},
		{"previous day", day.Add(-time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.ts); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.ts, got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 10, 14, 30, 45, 0, time.UTC)
	end := EndOfDay(ts)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59", end)
	}
	if end.Nanosecond() != 0 {
		t.Errorf("EndOfDay carries nanoseconds: %v", end)
	}
}

func TestTodayInKeepsLocation(t *testing.T) {
	loc, err := LoadLocation(DefaultZone)
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}
	today := TodayIn(loc)
	if today.Location() != loc {
		t.Errorf("TodayIn location = %v, want %v", today.Location(), loc)
	}
}
