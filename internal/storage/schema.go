// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for babies, entries, and weights with cascade deletes.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS babies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		dob TEXT
	);

	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		baby_id INTEGER NOT NULL REFERENCES babies(id) ON DELETE CASCADE,
		ts TEXT NOT NULL,
		milk INTEGER NOT NULL DEFAULT 0,
		pee INTEGER NOT NULL DEFAULT 0,
		poop INTEGER NOT NULL DEFAULT 0,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (baby_id, ts)
	);

	CREATE TABLE IF NOT EXISTS weights (
		id TEXT PRIMARY KEY,
		baby_id INTEGER NOT NULL REFERENCES babies(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		weight REAL NOT NULL,
		UNIQUE (baby_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_baby_ts ON entries(baby_id, ts);
	CREATE INDEX IF NOT EXISTS idx_weights_baby_date ON weights(baby_id, date);
	`

	_, err := d.db.Exec(schema)
	return err
}
