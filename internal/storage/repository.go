// ABOUTME: Repository interface for baby log storage.
// ABOUTME: One implementation per backing engine; semantics never vary by engine.
package storage

import (
	"time"

	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
)

// Repository defines the storage contract for babies, entries, and
// weights. Range semantics are inclusive at both ends, and range checks
// are done on parsed timestamps in the application layer rather than on
// stored strings.
type Repository interface {
	// Baby operations
	GetOrCreateBaby(name string) (*models.Baby, error)
	FindBaby(name string) (*models.Baby, error)
	GetBaby(id int64) (*models.Baby, error)
	ListBabyNames() ([]string, error)
	SetDateOfBirth(id int64, dob time.Time) error
	DateOfBirth(id int64) (*time.Time, error)
	DeleteBaby(id int64) (int64, error)

	// Entry operations
	UpsertEntry(e *models.Entry) error
	GetEntry(babyID int64, ts time.Time) (*models.Entry, error)
	FetchRange(babyID int64, start, end time.Time) ([]*models.Entry, error)
	LatestPerEvent(babyID int64) (report.LastSeen, error)
	DeleteEntry(babyID int64, ts time.Time) (int64, error)
	DeleteDay(babyID int64, day time.Time) (int64, error)
	DeleteEntriesForBaby(babyID int64) (int64, error)
	DeleteEverything() error

	// Weight operations
	UpsertWeight(w *models.Weight) error
	WeightSeries(babyID int64) ([]*models.Weight, error)

	// Lifecycle
	Close() error
}

// filterWindow keeps entries whose parsed timestamp satisfies
// start <= ts <= end. Both backends route range reads and day deletes
// through this so inclusion never depends on string comparison.
func filterWindow(entries []*models.Entry, start, end time.Time) []*models.Entry {
	var out []*models.Entry
	for _, e := range entries {
		if !e.Ts.Before(start) && !e.Ts.After(end) {
			out = append(out, e)
		}
	}
	return out
}
