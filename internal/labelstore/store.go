// Package labelstore persists user-defined labels in a SQLite database.
// It backs the multi-select demo: configured options are loaded from the
// store and free-text creations are written back, so labels survive
// restarts.
package labelstore

import (
	"context"
	"database/sql"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	apperrors "fieldkit/internal/errors"
)

// Label is a stored selectable item. ID is a UUID assigned on insert and
// stable across renames.
type Label struct {
	ID   string
	Name string
}

// Store is a label database handle. Safe for use from a single goroutine;
// the connection pool is pinned to one connection.
type Store struct {
	dbPath string
	db     *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS labels (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE
);
`

// Open opens (creating if needed) the label database at dbPath.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeConfigurationError, "label database path is empty", nil)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStorageFailed, "open label db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeStorageFailed, "ping label db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeStorageFailed, "create labels table", err)
	}

	return &Store{dbPath: trimmed, db: db}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "close label db", err)
	}
	return nil
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// List returns all labels in insertion order.
func (s *Store) List(ctx context.Context) ([]Label, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM labels ORDER BY rowid`)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStorageFailed, "query labels", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var labels []Label
	for rows.Next() {
		var l Label
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, apperrors.New(apperrors.CodeStorageFailed, "scan label", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeStorageFailed, "iterate labels", err)
	}
	return labels, nil
}

// Get returns the label with the given id.
func (s *Store) Get(ctx context.Context, id string) (Label, error) {
	var l Label
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM labels WHERE id = ?`, id).Scan(&l.ID, &l.Name)
	if err == sql.ErrNoRows {
		return Label{}, apperrors.New(apperrors.CodeNotFound, "label "+id+" not found", nil)
	}
	if err != nil {
		return Label{}, apperrors.New(apperrors.CodeStorageFailed, "query label", err)
	}
	return l, nil
}

// Add inserts a new label with a generated id. A name that already exists
// (case-insensitive) returns the stored label instead of inserting a
// duplicate.
func (s *Store) Add(ctx context.Context, name string) (Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Label{}, apperrors.New(apperrors.CodeConfigurationError, "label name is empty", nil)
	}

	var existing Label
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM labels WHERE name = ? COLLATE NOCASE`, name).
		Scan(&existing.ID, &existing.Name)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return Label{}, apperrors.New(apperrors.CodeStorageFailed, "query label by name", err)
	}

	l := Label{ID: uuid.NewString(), Name: name}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO labels (id, name) VALUES (?, ?)`, l.ID, l.Name); err != nil {
		return Label{}, apperrors.New(apperrors.CodeStorageFailed, "insert label", err)
	}
	return l, nil
}

// Remove deletes the label with the given id.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "delete label", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "delete label", err)
	}
	if affected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "label "+id+" not found", nil)
	}
	return nil
}

// Seed inserts the given names if the store is empty. Used by demos to
// provide a starting option set on first run.
func (s *Store) Seed(ctx context.Context, names []string) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM labels`).Scan(&count); err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "count labels", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range names {
		if _, err := s.Add(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
