// Package features provides shared test utilities for API feature tests.
package features

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/api/notifier"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/testutil"
)

// TestFixture holds all dependencies needed for API handler tests.
type TestFixture struct {
	Engine   *engine.Engine
	Notifier *notifier.Notifier
}

// SetupTestFixture creates an engine backed by a throwaway sqlite state
// store, so endpoints that record or resolve review entries have somewhere
// to write.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	eng, err := engine.New(context.Background(), engine.Config{
		StateDriver:  "sqlite",
		StatePath:    filepath.Join(t.TempDir(), "state.db"),
		CacheBackend: "memory",
		Logger:       testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = eng.Close() })

	return &TestFixture{Engine: eng, Notifier: notifier.New()}
}

// SetupCatalogFixture creates an engine without persistence. Use this for
// read-only endpoint tests that never touch the state store.
func SetupCatalogFixture(t *testing.T) *TestFixture {
	t.Helper()

	eng, err := engine.New(context.Background(), engine.Config{
		StateDriver:  "none",
		CacheBackend: "memory",
		Logger:       testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = eng.Close() })

	return &TestFixture{Engine: eng, Notifier: notifier.New()}
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
