// ABOUTME: Baby CRUD operations for SQLite storage.
// ABOUTME: Get-or-create by name with retry-as-lookup on uniqueness races.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/babylog/internal/models"
)

const dateLayout = "2006-01-02"

// GetOrCreateBaby returns the baby with the given name, creating it if
// absent. Names are trimmed; exact case-sensitive match. A concurrent
// identical insert is resolved by retrying as a lookup.
func (d *DB) GetOrCreateBaby(name string) (*models.Baby, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	b, err := d.babyByName(name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	res, err := d.db.Exec(`INSERT INTO babies (name) VALUES (?)`, name)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			// Lost the insert race; the winner's row is authoritative.
			b, lerr := d.babyByName(name)
			if lerr != nil {
				return nil, fmt.Errorf("get or create baby %q: %w", name, ErrConflict)
			}
			return b, nil
		}
		return nil, fmt.Errorf("create baby: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create baby: %w", err)
	}
	return &models.Baby{ID: id, Name: name}, nil
}

// FindBaby looks up a baby by exact name without creating it.
func (d *DB) FindBaby(name string) (*models.Baby, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return d.babyByName(name)
}

// GetBaby retrieves a baby by ID.
func (d *DB) GetBaby(id int64) (*models.Baby, error) {
	row := d.db.QueryRow(`SELECT id, name, dob FROM babies WHERE id = ?`, id)
	return scanBaby(row)
}

// ListBabyNames returns all baby names, lexicographically ascending.
func (d *DB) ListBabyNames() ([]string, error) {
	rows, err := d.db.Query(`SELECT name FROM babies ORDER BY name ASC`)
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
func (d *DB) SetDateOfBirth(id int64, dob time.Time) error {
	res, err := d.db.Exec(`UPDATE babies SET dob = ? WHERE id = ?`, dob.Format(dateLayout), id)
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
func (d *DB) DateOfBirth(id int64) (*time.Time, error) {
	b, err := d.GetBaby(id)
	if err != nil {
		return nil, err
	}
	return b.DOB, nil
}

// DeleteBaby removes the baby row; entries and weights go with it via
// cascade. Returns the number of baby rows removed (0 or 1).
func (d *DB) DeleteBaby(id int64) (int64, error) {
	res, err := d.db.Exec(`DELETE FROM babies WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete baby: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete baby: %w", err)
	}
	return affected, nil
}

func (d *DB) babyByName(name string) (*models.Baby, error) {
	row := d.db.QueryRow(`SELECT id, name, dob FROM babies WHERE name = ?`, name)
	return scanBaby(row)
}

// scanBaby scans one row into a Baby, mapping no-rows to ErrNotFound.
func scanBaby(row *sql.Row) (*models.Baby, error) {
	var b models.Baby
	var dob sql.NullString

	err := row.Scan(&b.ID, &b.Name, &dob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan baby: %w", err)
	}

	if dob.Valid && dob.String != "" {
		t, err := time.Parse(dateLayout, dob.String)
		if err != nil {
			return nil, fmt.Errorf("parse dob %q: %w", dob.String, err)
		}
		b.DOB = &t
	}
	return &b, nil
}

// isSQLiteUniqueViolation matches the modernc driver's constraint error.
// The driver exposes no typed error for this, so match on the message.
func isSQLiteUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
