// Package state persists the review queue and analysis history. The store
// interfaces live in pkg/core; this package provides the SQLite (default)
// and PostgreSQL backends plus the disabled placeholder used when no state
// database is configured.
package state

import (
	"context"
	"fmt"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Options selects and configures a store backend.
type Options struct {
	// Driver is "sqlite" (the default when empty) or "postgres".
	Driver string
	// Path is the sqlite database file, ":memory:" for an ephemeral store.
	Path string
	// DSN is the postgres connection string.
	DSN string
}

// Open opens the configured state store and applies pending migrations.
func Open(ctx context.Context, opts Options) (core.Store, error) {
	switch opts.Driver {
	case "", "sqlite":
		return OpenSQLite(ctx, opts.Path)
	case "postgres":
		return OpenPostgres(ctx, opts.DSN)
	default:
		return nil, fmt.Errorf("unknown state driver %q", opts.Driver)
	}
}

// Disabled is the store used when no state database is configured. Every
// operation reports core.ErrStoreNotConfigured; callers that treat
// persistence as best-effort check for it with errors.Is.
type Disabled struct{}

func (Disabled) RecordUnresolved(context.Context, string, string, string) (*core.ReviewEntry, error) {
	return nil, core.ErrStoreNotConfigured
}

func (Disabled) ListReview(context.Context, core.ReviewStatus) ([]*core.ReviewEntry, error) {
	return nil, core.ErrStoreNotConfigured
}

func (Disabled) GetReview(context.Context, string) (*core.ReviewEntry, error) {
	return nil, core.ErrStoreNotConfigured
}

func (Disabled) ResolveReview(context.Context, string, string) error {
	return core.ErrStoreNotConfigured
}

func (Disabled) DismissReview(context.Context, string) error {
	return core.ErrStoreNotConfigured
}

func (Disabled) SaveAnalysis(context.Context, *core.Analysis, []core.NormalizedYoga) error {
	return core.ErrStoreNotConfigured
}

func (Disabled) GetAnalysis(context.Context, string) (*core.Analysis, []*core.AnalysisYoga, error) {
	return nil, nil, core.ErrStoreNotConfigured
}

func (Disabled) ListAnalyses(context.Context, string, int) ([]*core.Analysis, error) {
	return nil, core.ErrStoreNotConfigured
}

func (Disabled) Ping(context.Context) error { return core.ErrStoreNotConfigured }

func (Disabled) Close() error { return nil }

var _ core.Store = Disabled{}
