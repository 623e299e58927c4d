// ABOUTME: Entry CRUD operations for SQLite storage.
// ABOUTME: Upsert keyed by (baby_id, ts); range reads post-filter parsed timestamps.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
)

// tsKey renders an entry timestamp in its canonical stored form.
// Timestamps are normalized to UTC first so the same instant expressed
// in different offsets always keys the same row.
func tsKey(t time.Time) string {
	return t.In(time.UTC).Format(time.RFC3339)
}

// UpsertEntry inserts the entry or replaces all three flags of the
// existing row keyed by (baby_id, ts). There is no partial-field update.
func (d *DB) UpsertEntry(e *models.Entry) error {
	query := `
		INSERT INTO entries (id, baby_id, ts, milk, pee, poop, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(baby_id, ts) DO UPDATE SET
			milk = excluded.milk,
			pee = excluded.pee,
			poop = excluded.poop
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.BabyID,
		tsKey(e.Ts),
		boolToInt(e.Milk),
		boolToInt(e.Pee),
		boolToInt(e.Poop),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

// GetEntry retrieves the entry at an exact timestamp, if any.
func (d *DB) GetEntry(babyID int64, ts time.Time) (*models.Entry, error) {
	row := d.db.QueryRow(`
		SELECT id, baby_id, ts, milk, pee, poop, created_at
		FROM entries
		WHERE baby_id = ? AND ts = ?
	`, babyID, tsKey(ts))

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// FetchRange returns the baby's entries with start <= ts <= end, ascending
// by timestamp. All rows for the baby are loaded and filtered on parsed
// timestamps; stored-string comparison is never trusted for inclusion.
func (d *DB) FetchRange(babyID int64, start, end time.Time) ([]*models.Entry, error) {
	entries, err := d.entriesForBaby(babyID)
	if err != nil {
		return nil, err
	}
	return filterWindow(entries, start, end), nil
}

// LatestPerEvent returns the most recent timestamp per event kind,
// each flag tracked independently.
func (d *DB) LatestPerEvent(babyID int64) (report.LastSeen, error) {
	entries, err := d.entriesForBaby(babyID)
	if err != nil {
		return report.LastSeen{}, err
	}
	return report.LastEvents(entries), nil
}

// DeleteEntry removes the entry at an exact timestamp and returns the
// number of rows removed.
func (d *DB) DeleteEntry(babyID int64, ts time.Time) (int64, error) {
	res, err := d.db.Exec(`DELETE FROM entries WHERE baby_id = ? AND ts = ?`,
		babyID, tsKey(ts))
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return affected, nil
}

// DeleteDay removes all entries in the closed interval [day 00:00:00,
// day 23:59:59], not a half-open midnight boundary. Candidate rows are
// selected by parsed timestamp and removed by row ID.
func (d *DB) DeleteDay(babyID int64, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	entries, err := d.FetchRange(babyID, start, end)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, e := range entries {
		res, err := d.db.Exec(`DELETE FROM entries WHERE id = ?`, e.ID.String())
		if err != nil {
			return removed, fmt.Errorf("delete day: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return removed, fmt.Errorf("delete day: %w", err)
		}
		removed += n
	}
	return removed, nil
}

// DeleteEntriesForBaby removes every entry for one baby.
func (d *DB) DeleteEntriesForBaby(babyID int64) (int64, error) {
	res, err := d.db.Exec(`DELETE FROM entries WHERE baby_id = ?`, babyID)
	if err != nil {
		return 0, fmt.Errorf("delete entries for baby: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete entries for baby: %w", err)
	}
	return affected, nil
}

// DeleteEverything wipes all entries and all babies. Weights go with the
// babies via cascade.
func (d *DB) DeleteEverything() error {
	if _, err := d.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("delete all entries: %w", err)
	}
	if _, err := d.db.Exec(`DELETE FROM babies`); err != nil {
		return fmt.Errorf("delete all babies: %w", err)
	}
	return nil
}

// entriesForBaby loads all of a baby's entries sorted ascending by parsed
// timestamp.
func (d *DB) entriesForBaby(babyID int64) ([]*models.Entry, error) {
	rows, err := d.db.Query(`
		SELECT id, baby_id, ts, milk, pee, poop, created_at
		FROM entries
		WHERE baby_id = ?
		ORDER BY ts ASC
	`, babyID)
	if err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	// New rows store UTC and sort correctly as strings, but rows written
	// before normalization may carry offsets. Re-sort on parsed timestamps.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Ts.Before(entries[j].Ts) })
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var e models.Entry
	var idStr, ts string
	var milk, pee, poop int
	var createdAt sql.NullString

	err := row.Scan(&idStr, &e.BabyID, &ts, &milk, &pee, &poop, &createdAt)
	if err != nil {
		return nil, err
	}

	e.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse entry id %q: %w", idStr, err)
	}
	e.Ts, err = time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, fmt.Errorf("parse entry timestamp %q: %w", ts, err)
	}
	e.Milk = milk != 0
	e.Pee = pee != 0
	e.Poop = poop != 0
	if createdAt.Valid {
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]*models.Entry, error) {
	var entries []*models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
