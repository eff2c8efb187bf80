package state

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// PostgresStore is the state store backend for a shared PostgreSQL
// database. The SQL shape is the sqlite one with numbered placeholders;
// migrations run under the postgres goose dialect.
type PostgresStore struct {
	baseStore
}

// OpenPostgres connects to PostgreSQL with the given DSN and applies
// pending migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres state store: empty dsn")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if err := MigrateWithDB(db, "postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &PostgresStore{baseStore: baseStore{db: db, bind: bindDollar}}, nil
}

var _ core.Store = (*PostgresStore)(nil)
