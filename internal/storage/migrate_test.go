// ABOUTME: Tests for cross-backend data migration.
// ABOUTME: Uses two SQLite databases; babies are re-keyed by name.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/babylog/internal/models"
)

func TestMigrateData(t *testing.T) {
	src := setupTestDB(t)
	dst := setupTestDB(t)

	june, err := src.GetOrCreateBaby("June")
	if err != nil {
		t.Fatalf("GetOrCreateBaby failed: %v", err)
	}
	dob := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	if err := src.SetDateOfBirth(june.ID, dob); err != nil {
		t.Fatalf("SetDateOfBirth failed: %v", err)
	}

	ts := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := src.UpsertEntry(models.NewEntry(june.ID, ts, true, false, true)); err != nil {
		t.Fatalf("UpsertEntry failed: %v", err)
	}
	if err := src.UpsertWeight(models.NewWeight(june.ID, ts, 8.75)); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}

	// Give the target a pre-existing baby so IDs diverge between stores
	if _, err := dst.GetOrCreateBaby("Ada"); err != nil {
		t.Fatalf("GetOrCreateBaby on target failed: %v", err)
	}

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Babies != 1 || summary.Entries != 1 || summary.Weights != 1 {
		t.Errorf("summary mismatch: %+v", summary)
	}

	moved, err := dst.FindBaby("June")
	if err != nil {
		t.Fatalf("FindBaby on target failed: %v", err)
	}
	if moved.DOB == nil || moved.DOB.Format("2006-01-02") != "2024-02-14" {
		t.Errorf("DOB not migrated: got %v", moved.DOB)
	}

	entries, err := dst.FetchRange(moved.ID, ts.Add(-time.Hour), ts.Add(time.Hour))
	if err != nil {
		t.Fatalf("FetchRange on target failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 migrated entry, got %d", len(entries))
	}
	if !entries[0].Milk || entries[0].Pee || !entries[0].Poop {
		t.Errorf("entry flags mismatch: %+v", entries[0])
	}

	weights, err := dst.WeightSeries(moved.ID)
	if err != nil {
		t.Fatalf("WeightSeries on target failed: %v", err)
	}
	if len(weights) != 1 || weights[0].Weight != 8.75 {
		t.Errorf("weight not migrated: %+v", weights)
	}
}

func TestMigrateDataIdempotent(t *testing.T) {
	src := setupTestDB(t)
	dst := setupTestDB(t)

	june, err := src.GetOrCreateBaby("June")
	if err != nil {
		t.Fatalf("GetOrCreateBaby failed: %v", err)
	}
	ts := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := src.UpsertEntry(models.NewEntry(june.ID, ts, true, false, false)); err != nil {
		t.Fatalf("UpsertEntry failed: %v", err)
	}

	if _, err := MigrateData(src, dst); err != nil {
		t.Fatalf("first MigrateData failed: %v", err)
	}
	if _, err := MigrateData(src, dst); err != nil {
		t.Fatalf("second MigrateData failed: %v", err)
	}

	moved, err := dst.FindBaby("June")
	if err != nil {
		t.Fatalf("FindBaby on target failed: %v", err)
	}
	entries, err := dst.FetchRange(moved.ID, ts.Add(-time.Hour), ts.Add(time.Hour))
	if err != nil {
		t.Fatalf("FetchRange on target failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after repeat migration, got %d", len(entries))
	}
}
