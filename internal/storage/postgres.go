// ABOUTME: Postgres connection and lifecycle management via pgx stdlib driver.
// ABOUTME: Normalizes DATABASE_URL variants and applies pool limits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PG is the Postgres-backed Repository implementation.
type PG struct {
	db *sql.DB
}

// OpenPostgres connects to the database named by rawURL and ensures the
// schema exists. Managed-Postgres URL dialects (prisma+postgres://,
// postgresql+psycopg://) are normalized to plain postgres://.
func OpenPostgres(rawURL string) (*PG, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	db, err := sql.Open("pgx", normalizeDatabaseURL(rawURL))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	p := &PG{db: db}

	if err := p.db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := p.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return p, nil
}

// Close closes the database connection.
func (p *PG) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *PG) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS babies (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			dob DATE
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			baby_id BIGINT NOT NULL REFERENCES babies(id) ON DELETE CASCADE,
			ts TEXT NOT NULL,
			milk INTEGER NOT NULL DEFAULT 0,
			pee INTEGER NOT NULL DEFAULT 0,
			poop INTEGER NOT NULL DEFAULT 0,
			created_at TEXT,
			UNIQUE (baby_id, ts)
		)`,
		`CREATE TABLE IF NOT EXISTS weights (
			id TEXT PRIMARY KEY,
			baby_id BIGINT NOT NULL REFERENCES babies(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			weight REAL NOT NULL,
			UNIQUE (baby_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_baby_ts ON entries(baby_id, ts)`,
		`CREATE INDEX IF NOT EXISTS idx_weights_baby_date ON weights(baby_id, date)`,
	}
	for _, stmt := range stmts {
		if _, err := p.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// normalizeDatabaseURL rewrites managed-Postgres URL dialects to plain
// postgres:// and drops query parameters libpq does not understand.
func normalizeDatabaseURL(rawURL string) string {
	normalized := strings.TrimSpace(rawURL)
	for _, prefix := range []string{"prisma+postgres://", "postgresql+psycopg://", "postgresql://"} {
		if strings.HasPrefix(normalized, prefix) {
			normalized = "postgres://" + normalized[len(prefix):]
			break
		}
	}

	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Scheme != "postgres" {
		return normalized
	}

	filtered := make(url.Values)
	for key, values := range parsed.Query() {
		if _, ok := supportedPGQueryKeys[key]; ok {
			for _, v := range values {
				filtered.Add(key, v)
			}
		}
	}
	parsed.RawQuery = filtered.Encode()
	return parsed.String()
}

var supportedPGQueryKeys = map[string]struct{}{
	"application_name":     {},
	"channel_binding":      {},
	"client_encoding":      {},
	"connect_timeout":      {},
	"gssencmode":           {},
	"keepalives":           {},
	"keepalives_count":     {},
	"keepalives_idle":      {},
	"keepalives_interval":  {},
	"krbsrvname":           {},
	"options":              {},
	"passfile":             {},
	"service":              {},
	"sslcert":              {},
	"sslcrl":               {},
	"sslkey":               {},
	"sslmode":              {},
	"sslpassword":          {},
	"sslrootcert":          {},
	"target_session_attrs": {},
}

// isPGUniqueViolation matches SQLSTATE 23505 (unique_violation).
func isPGUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
