// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains a SQLite query index over the merged store.
// The index is derived data: it is rebuilt wholesale from the JSON store
// and can be deleted at any time without losing measurements.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/probelio/labextract/internal/store"
	"github.com/probelio/labextract/pkg/types"
)

// DB wraps the index database.
type DB struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.DBFile and ensures the
// schema exists.
func Open(cfg types.IndexConfig) (*DB, error) {
	if dir := filepath.Dir(cfg.DBFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBFile+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	d := &DB{db: db, maxResults: maxResults}
	if err := d.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return d, nil
}

// Close releases the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS measurements (
			date TEXT NOT NULL,
			name TEXT NOT NULL,
			value TEXT NOT NULL,
			unit TEXT,
			refrange TEXT,
			oldvalue TEXT,
			PRIMARY KEY (date, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_name ON measurements(name)`,
	}
	for _, stmt := range statements {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Rebuild replaces the index content with the store's records in one
// transaction and returns the indexed count. An absent store empties the
// index; an unreadable store is an error, since rebuilding from it would
// silently wipe queryable history.
func (d *DB) Rebuild(st *store.Store) (int, error) {
	records, state := st.Load()
	if state == store.LoadCorrupt {
		return 0, fmt.Errorf("store %s is unreadable", st.Path())
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM measurements`); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO measurements (date, name, value, unit, refrange, oldvalue)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Date, r.Name, r.Value, r.Unit, r.Range, r.OldValue); err != nil {
			return 0, fmt.Errorf("indexing %s/%s: %w", r.Date, r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(records), nil
}

// QueryOptions filters index queries. Zero values mean no filter.
type QueryOptions struct {
	// Name filters by substring of the measurement name.
	Name string

	// DatePrefix filters by the leading characters of the date field;
	// "01/10/2023" selects one day.
	DatePrefix string

	// Limit caps results; 0 uses the configured maximum.
	Limit int
}

// Query returns matching measurements ordered by name, then date.
func (d *DB) Query(opts QueryOptions) ([]types.Measurement, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = d.maxResults
	}

	query := `SELECT date, name, value, unit, refrange, oldvalue FROM measurements WHERE 1=1`
	var args []any
	if opts.Name != "" {
		query += ` AND name LIKE ?`
		args = append(args, "%"+opts.Name+"%")
	}
	if opts.DatePrefix != "" {
		query += ` AND date LIKE ?`
		args = append(args, opts.DatePrefix+"%")
	}
	query += ` ORDER BY name, date LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var out []types.Measurement
	for rows.Next() {
		var m types.Measurement
		if err := rows.Scan(&m.Date, &m.Name, &m.Value, &m.Unit, &m.Range, &m.OldValue); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
