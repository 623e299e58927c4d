// ABOUTME: Tests for baby, entry, and weight models.
// ABOUTME: Covers name normalization, day-of-life math, and unit conversion.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"June", "June"},
		{"  June  ", "June"},
		{"\tJune\n", "June"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDayOfLife(t *testing.T) {
	dob := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{
			name:  "birth day is day 1",
			today: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "next day is day 2",
			today: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "one week later is day 8",
			today: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			want:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := (&Baby{ID: 1, Name: "June"}).WithDOB(dob)
			got, ok := b.DayOfLife(tt.today)
			if !ok {
				t.Fatal("expected DayOfLife to be available")
			}
			if got != tt.want {
				t.Errorf("DayOfLife = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayOfLifeWithoutDOB(t *testing.T) {
	b := &Baby{ID: 1, Name: "June"}
	if _, ok := b.DayOfLife(time.Now()); ok {
		t.Error("expected DayOfLife to be unavailable without a DOB")
	}
}

func TestNewEntryTruncatesToMinute(t *testing.T) {
	ts := time.Date(2024, 3, 10, 14, 30, 45, 123456789, time.UTC)
	e := NewEntry(1, ts, true, false, false)

	if e.Ts.Second() != 0 || e.Ts.Nanosecond() != 0 {
		t.Errorf("timestamp not truncated to minute: %v", e.Ts)
	}
	if e.Ts.Hour() != 14 || e.Ts.Minute() != 30 {
		t.Errorf("timestamp changed beyond truncation: %v", e.Ts)
	}
	if e.ID == uuid.Nil {
		t.Error("expected a generated row ID")
	}
}

func TestEntryHas(t *testing.T) {
	e := NewEntry(1, time.Now(), true, false, true)

	if !e.Has(EventMilk) {
		t.Error("expected milk flag")
	}
	if e.Has(EventPee) {
		t.Error("unexpected pee flag")
	}
	if !e.Has(EventPoop) {
		t.Error("expected poop flag")
	}
}

func TestIsValidEventKind(t *testing.T) {
	for _, k := range AllEventKinds {
		if !IsValidEventKind(string(k)) {
			t.Errorf("expected %q to be valid", k)
		}
	}
	for _, s := range []string{"", "sleep", "MILK"} {
		if IsValidEventKind(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestNewWeightTruncatesToDate(t *testing.T) {
	date := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	w := NewWeight(1, date, 8.75)

	if w.Date.Hour() != 0 || w.Date.Minute() != 0 {
		t.Errorf("date not truncated to midnight: %v", w.Date)
	}
	if w.Date.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("date mismatch: %v", w.Date)
	}
}

func TestPoundsOunces(t *testing.T) {
	tests := []struct {
		lbs, oz int
		want    float64
	}{
		{8, 0, 8.0},
		{8, 8, 8.5},
		{8, 12, 8.75},
		{0, 4, 0.25},
	}
	for _, tt := range tests {
		if got := PoundsOunces(tt.lbs, tt.oz); got != tt.want {
			t.Errorf("PoundsOunces(%d, %d) = %v, want %v", tt.lbs, tt.oz, got, tt.want)
		}
	}
}
