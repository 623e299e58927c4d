// ABOUTME: Data migration between baby log storage backends.
// ABOUTME: Copies babies, entries, and weights from source to destination.

package storage

import (
	"fmt"
	"time"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Babies  int
	Entries int
	Weights int
}

// allTime spans every storable timestamp so FetchRange returns the full
// history during migration.
var allTime = struct{ start, end time.Time }{
	start: time.Time{},
	end:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
}

// MigrateData copies all data from src to dst storage. Baby IDs are
// surrogate per backend, so entries and weights are re-keyed through each
// baby's name. The destination should be empty before calling this.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	names, err := src.ListBabyNames()
	if err != nil {
		return nil, fmt.Errorf("list source babies: %w", err)
	}

	for _, name := range names {
		srcBaby, err := src.GetOrCreateBaby(name)
		if err != nil {
			return nil, fmt.Errorf("load baby %q: %w", name, err)
		}

		dstBaby, err := dst.GetOrCreateBaby(name)
		if err != nil {
			return nil, fmt.Errorf("create baby %q: %w", name, err)
		}
		if srcBaby.DOB != nil {
			if err := dst.SetDateOfBirth(dstBaby.ID, *srcBaby.DOB); err != nil {
				return nil, fmt.Errorf("set dob for %q: %w", name, err)
			}
		}
		summary.Babies++

		entries, err := src.FetchRange(srcBaby.ID, allTime.start, allTime.end)
		if err != nil {
			return nil, fmt.Errorf("fetch entries for %q: %w", name, err)
		}
		for _, e := range entries {
			e.BabyID = dstBaby.ID
			if err := dst.UpsertEntry(e); err != nil {
				return nil, fmt.Errorf("copy entry %s: %w", e.ID, err)
			}
			summary.Entries++
		}

		weights, err := src.WeightSeries(srcBaby.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch weights for %q: %w", name, err)
		}
		for _, w := range weights {
			w.BabyID = dstBaby.ID
			if err := dst.UpsertWeight(w); err != nil {
				return nil, fmt.Errorf("copy weight %s: %w", w.ID, err)
			}
			summary.Weights++
		}
	}

	return summary, nil
}
