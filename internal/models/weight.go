// ABOUTME: Weight model for day-granular weight measurements.
// ABOUTME: One measurement per baby per calendar day; upsert replaces.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Weight is a single weight measurement for one baby on one calendar day.
// Identity for upsert purposes is (BabyID, Date); ID is the row key.
type Weight struct {
	ID     uuid.UUID
	BabyID int64
	Date   time.Time
	Weight float64
}

// NewWeight creates a Weight with a generated row ID, keeping only the
// calendar date of the measurement.
func NewWeight(babyID int64, date time.Time, value float64) *Weight {
	return &Weight{
		ID:     uuid.New(),
		BabyID: babyID,
		Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Weight: value,
	}
}

// PoundsOunces converts a pounds-and-ounces scale reading into decimal
// pounds, the unit weights are stored in.
func PoundsOunces(lbs, oz int) float64 {
	return float64(lbs) + float64(oz)/16
}
