// ABOUTME: Weight CRUD operations for SQLite storage.
// ABOUTME: One measurement per baby per calendar day; upsert replaces the value.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/babylog/internal/models"
)

// UpsertWeight inserts the measurement or replaces the existing value for
// the same (baby_id, date).
func (d *DB) UpsertWeight(w *models.Weight) error {
	query := `
		INSERT INTO weights (id, baby_id, date, weight)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(baby_id, date) DO UPDATE SET
			weight = excluded.weight
	`
	_, err := d.db.Exec(query,
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
func (d *DB) WeightSeries(babyID int64) ([]*models.Weight, error) {
	rows, err := d.db.Query(`
		SELECT id, baby_id, date, weight
		FROM weights
		WHERE baby_id = ?
		ORDER BY date ASC
	`, babyID)
	if err != nil {
		return nil, fmt.Errorf("weight series: %w", err)
	}
	defer rows.Close()

	return scanWeights(rows)
}

func scanWeights(rows *sql.Rows) ([]*models.Weight, error) {
	var weights []*models.Weight
	for rows.Next() {
		var w models.Weight
		var idStr, date string

		if err := rows.Scan(&idStr, &w.BabyID, &date, &w.Weight); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse weight id %q: %w", idStr, err)
		}
		w.ID = id
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse weight date %q: %w", date, err)
		}
		w.Date = t

		weights = append(weights, &w)
	}
	return weights, rows.Err()
}
