package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// SQLiteStore is the default state store, backed by an embedded SQLite
// database.
type SQLiteStore struct {
	baseStore
	path string
}

// OpenSQLite opens the SQLite state database at path, creating it and
// applying pending migrations as needed. Use ":memory:" for an ephemeral
// store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite state store: empty path")
	}

	dsn := path + "?_pragma=foreign_keys(1)"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
		dsn = path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection: sqlite serializes writers anyway, and the driver
	// opens a distinct database per connection for ":memory:".
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := MigrateWithDB(db, "sqlite"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{baseStore: baseStore{db: db, bind: bindQuestion}, path: path}, nil
}

// Path returns the database file path the store was opened with.
func (s *SQLiteStore) Path() string { return s.path }

var _ core.Store = (*SQLiteStore)(nil)
