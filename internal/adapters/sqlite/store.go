// Package sqlite implements ports.Store on SQLite through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	key         TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	priority    INTEGER NOT NULL DEFAULT 0,
	sort_order  INTEGER NOT NULL DEFAULT 0,
	active      INTEGER NOT NULL DEFAULT 1,
	due_date    TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_rules (
	task_id     INTEGER PRIMARY KEY REFERENCES tasks(id) ON DELETE CASCADE,
	rrule       TEXT NOT NULL,
	start_date  TEXT NOT NULL,
	end_date    TEXT,
	active      INTEGER NOT NULL DEFAULT 1,
	timezone    TEXT NOT NULL DEFAULT 'America/New_York',
	CHECK (end_date IS NULL OR end_date >= start_date)
);

CREATE TABLE IF NOT EXISTS task_instances (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id           INTEGER NOT NULL REFERENCES tasks(id),
	instance_date     TEXT NOT NULL,
	status            TEXT NOT NULL DEFAULT 'incomplete',
	source            TEXT NOT NULL,
	assigned_order    INTEGER NOT NULL DEFAULT 0,
	completion_order  INTEGER,
	completed_at      TEXT,
	skipped_at        TEXT,
	created_at        TEXT NOT NULL,
	updated_at        TEXT NOT NULL,
	UNIQUE (task_id, instance_date),
	CHECK ((status = 'complete') = (completion_order IS NOT NULL))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_instances_completion
	ON task_instances (instance_date, completion_order)
	WHERE completion_order IS NOT NULL;

CREATE INDEX IF NOT EXISTS idx_instances_date_status
	ON task_instances (instance_date, status);

CREATE TABLE IF NOT EXISTS task_executions (
	id                TEXT PRIMARY KEY,
	instance_id       INTEGER NOT NULL REFERENCES task_instances(id),
	event             TEXT NOT NULL,
	actor             TEXT NOT NULL DEFAULT '',
	completion_order  INTEGER,
	performed_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_executions_instance
	ON task_executions (instance_id);
`

var (
	_ ports.StoreOpener = Opener{}
	_ ports.Store       = (*Store)(nil)
)

// Opener opens SQLite stores. It is the ports.StoreOpener registered in the graph.
type Opener struct{}

// Open opens the store at path. See Open.
func (Opener) Open(ctx context.Context, path string) (ports.Store, error) {
	return Open(ctx, path)
}

// Store is a SQLite backed ports.Store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// The caller is responsible for calling Close.
func Open(ctx context.Context, path string) (*Store, error) {
	if !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	// A single connection serializes every transaction of this process.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreMigrateFailed.Error()), "path", path)
	}
	return &Store{db: db}, nil
}

// dsn builds a file URL enabling foreign keys, a busy timeout, WAL and
// immediate write locks on BEGIN.
func dsn(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: path}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_txlock", "immediate")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Atomic runs fn in one transaction.
func (s *Store) Atomic(ctx context.Context, fn func(ports.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "begin transaction")
	}
	defer func() { _ = sqlTx.Rollback() }()

	if err := fn(&tx{tx: sqlTx}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return zerr.Wrap(err, "commit transaction")
	}
	return nil
}

// tx implements ports.Tx over a database/sql transaction.
type tx struct {
	tx *sql.Tx
}

var _ ports.Tx = (*tx)(nil)

func readFailed(err error, what string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "query", what)
}

func writeFailed(err error, what string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "statement", what)
}
