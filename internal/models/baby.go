// ABOUTME: Baby model with surrogate ID, unique name, and optional date of birth.
// ABOUTME: Name validation and trimming happen at the storage boundary.
package models

import (
	"strings"
	"time"
)

// Baby represents one tracked baby. Names are unique (case-sensitive,
// trimmed); DOB is optional and date-granular.
type Baby struct {
	ID   int64
	Name string
	DOB  *time.Time
}

// NormalizeName trims surrounding whitespace from a baby name.
// An empty result means the name is invalid.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// WithDOB sets the baby's date of birth, keeping only the calendar date.
func (b *Baby) WithDOB(dob time.Time) *Baby {
	d := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	b.DOB = &d
	return b
}

// DayOfLife returns the number of days since birth, counting the birth
// day itself as day 1. Returns false when no DOB is recorded.
func (b *Baby) DayOfLife(today time.Time) (int, bool) {
	if b.DOB == nil {
		return 0, false
	}
	d0 := time.Date(b.DOB.Year(), b.DOB.Month(), b.DOB.Day(), 0, 0, 0, 0, time.UTC)
	d1 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d1.Sub(d0).Hours()/24) + 1, true
}
