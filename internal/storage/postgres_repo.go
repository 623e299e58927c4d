// ABOUTME: Repository operations for the Postgres backend.
// ABOUTME: Same semantics as the SQLite backend, $n placeholders and RETURNING id.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
)

// GetOrCreateBaby returns the baby with the given name, creating it if
// absent. A concurrent identical insert is resolved by retrying as a
// lookup.
func (p *PG) GetOrCreateBaby(name string) (*models.Baby, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	b, err := p.babyByName(name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var id int64
	err = p.db.QueryRow(`INSERT INTO babies (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isPGUniqueViolation(err) {
			b, lerr := p.babyByName(name)
			if lerr != nil {
				return nil, fmt.Errorf("get or create baby %q: %w", name, ErrConflict)
			}
			return b, nil
		}
		return nil, fmt.Errorf("create baby: %w", err)
	}
	return &models.Baby{ID: id, Name: name}, nil
}

// FindBaby looks up a baby by exact name without creating it.
func (p *PG) FindBaby(name string) (*models.Baby, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return p.babyByName(name)
}

// GetBaby retrieves a baby by ID.
func (p *PG) GetBaby(id int64) (*models.Baby, error) {
	row := p.db.QueryRow(`SELECT id, name, to_char(dob, 'YYYY-MM-DD') FROM babies WHERE id = $1`, id)
	return scanBaby(row)
}

// ListBabyNames returns all baby names, lexicographically ascending.
func (p *PG) ListBabyNames() ([]string, error) {
	rows, err := p.db.Query(`SELECT name FROM babies ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list babies: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan baby name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SetDateOfBirth records the baby's date of birth (date-granular).
func (p *PG) SetDateOfBirth(id int64, dob time.Time) error {
	res, err := p.db.Exec(`UPDATE babies SET dob = $1 WHERE id = $2`, dob.Format(dateLayout), id)
	if err != nil {
		return fmt.Errorf("set date of birth: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set date of birth: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("baby %d: %w", id, ErrNotFound)
	}
	return nil
}

// DateOfBirth returns the baby's date of birth, or nil when unset.
func (p *PG) DateOfBirth(id int64) (*time.Time, error) {
	b, err := p.GetBaby(id)
	if err != nil {
		return nil, err
	}
	return b.DOB, nil
}

// DeleteBaby removes the baby row and cascades to entries and weights.
func (p *PG) DeleteBaby(id int64) (int64, error) {
	res, err := p.db.Exec(`DELETE FROM babies WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete baby: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete baby: %w", err)
	}
	return affected, nil
}

// UpsertEntry inserts the entry or replaces all three flags of the
// existing row keyed by (baby_id, ts).
func (p *PG) UpsertEntry(e *models.Entry) error {
	query := `
		INSERT INTO entries (id, baby_id, ts, milk, pee, poop, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (baby_id, ts) DO UPDATE SET
			milk = excluded.milk,
			pee = excluded.pee,
			poop = excluded.poop
	`
	_, err := p.db.Exec(query,
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
func (p *PG) GetEntry(babyID int64, ts time.Time) (*models.Entry, error) {
	row := p.db.QueryRow(`
		SELECT id, baby_id, ts, milk, pee, poop, created_at
		FROM entries
		WHERE baby_id = $1 AND ts = $2
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
// by timestamp, filtered on parsed timestamps in the application layer.
func (p *PG) FetchRange(babyID int64, start, end time.Time) ([]*models.Entry, error) {
	entries, err := p.entriesForBaby(babyID)
	if err != nil {
		return nil, err
	}
	return filterWindow(entries, start, end), nil
}

// LatestPerEvent returns the most recent timestamp per event kind.
func (p *PG) LatestPerEvent(babyID int64) (report.LastSeen, error) {
	entries, err := p.entriesForBaby(babyID)
	if err != nil {
		return report.LastSeen{}, err
	}
	return report.LastEvents(entries), nil
}

// DeleteEntry removes the entry at an exact timestamp.
func (p *PG) DeleteEntry(babyID int64, ts time.Time) (int64, error) {
	res, err := p.db.Exec(`DELETE FROM entries WHERE baby_id = $1 AND ts = $2`,
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

// DeleteDay removes all entries in [day 00:00:00, day 23:59:59] inclusive,
// selected by parsed timestamp and removed by row ID.
func (p *PG) DeleteDay(babyID int64, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	entries, err := p.FetchRange(babyID, start, end)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, e := range entries {
		res, err := p.db.Exec(`DELETE FROM entries WHERE id = $1`, e.ID.String())
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
func (p *PG) DeleteEntriesForBaby(babyID int64) (int64, error) {
	res, err := p.db.Exec(`DELETE FROM entries WHERE baby_id = $1`, babyID)
	if err != nil {
		return 0, fmt.Errorf("delete entries for baby: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete entries for baby: %w", err)
	}
	return affected, nil
}

// DeleteEverything wipes all entries and all babies.
func (p *PG) DeleteEverything() error {
	if _, err := p.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("delete all entries: %w", err)
	}
	if _, err := p.db.Exec(`DELETE FROM babies`); err != nil {
		return fmt.Errorf("delete all babies: %w", err)
	}
	return nil
}

// UpsertWeight inserts the measurement or replaces the existing value for
// the same (baby_id, date).
func (p *PG) UpsertWeight(w *models.Weight) error {
	query := `
		INSERT INTO weights (id, baby_id, date, weight)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (baby_id, date) DO UPDATE SET
			weight = excluded.weight
	`
	_, err := p.db.Exec(query,
		w.ID.String(),
		w.BabyID,
		w.Date.Format(dateLayout),
		w.Weight,
	)
	if err != nil {
		return fmt.Errorf("upsert weight: %w", err)
	}
	return nil
}

// WeightSeries returns the baby's measurements ascending by date.
func (p *PG) WeightSeries(babyID int64) ([]*models.Weight, error) {
	rows, err := p.db.Query(`
		SELECT id, baby_id, date, weight
		FROM weights
		WHERE baby_id = $1
		ORDER BY date ASC
	`, babyID)
	if err != nil {
		return nil, fmt.Errorf("weight series: %w", err)
	}
	defer rows.Close()

	return scanWeights(rows)
}

func (p *PG) babyByName(name string) (*models.Baby, error) {
	row := p.db.QueryRow(`SELECT id, name, to_char(dob, 'YYYY-MM-DD') FROM babies WHERE name = $1`, name)
	return scanBaby(row)
}

func (p *PG) entriesForBaby(babyID int64) ([]*models.Entry, error) {
	rows, err := p.db.Query(`
		SELECT id, baby_id, ts, milk, pee, poop, created_at
		FROM entries
		WHERE baby_id = $1
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
	sort.Slice(entries, func(i, j int) bool { return entries[i].Ts.Before(entries[j].Ts) })
	return entries, nil
}
