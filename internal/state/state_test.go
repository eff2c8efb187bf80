package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err, "failed to open in-memory store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenSQLite_InMemory(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	assert.NoError(t, store.Ping(ctx))
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Close())
}

func TestOpen_Dispatch(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{Path: ":memory:"})
	require.NoError(t, err, "empty driver defaults to sqlite")
	_ = store.Close()

	_, err = Open(ctx, Options{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown state driver "oracle"`)
}

func TestStore_RecordUnresolved_Upsert(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	first, err := store.RecordUnresolved(ctx, "Xyz Yoga", "xyz yoga", "chart-001")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Xyz Yoga", first.RawName)
	assert.Equal(t, "xyz yoga", first.NormalizedName)
	assert.Equal(t, "chart-001", first.ChartID)
	assert.Equal(t, 1, first.Occurrences)
	assert.Equal(t, core.ReviewPending, first.Status)
	assert.False(t, first.FirstSeen.IsZero())

	// A repeat sighting, even with a different raw spelling, folds into the
	// same row.
	second, err := store.RecordUnresolved(ctx, "xyz-yoga", "xyz yoga", "chart-002")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert keeps the original row")
	assert.Equal(t, 2, second.Occurrences)
	assert.Equal(t, "Xyz Yoga", second.RawName, "first raw spelling wins")
	assert.Equal(t, "chart-001", second.ChartID, "first chart id wins")
	assert.False(t, second.LastSeen.Before(first.LastSeen))
}

func TestStore_ReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	entry, err := store.RecordUnresolved(ctx, "Abc Yoga", "abc yoga", "chart-001")
	require.NoError(t, err)
	_, err = store.RecordUnresolved(ctx, "Def Yoga", "def yoga", "chart-001")
	require.NoError(t, err)

	pending, err := store.ListReview(ctx, core.ReviewPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, store.ResolveReview(ctx, entry.ID, "Gaja Kesari Yoga"))

	got, err := store.GetReview(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, core.ReviewResolved, got.Status)
	assert.Equal(t, "Gaja Kesari Yoga", got.ResolvedCanonical)

	pending, err = store.ListReview(ctx, core.ReviewPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "def yoga", pending[0].NormalizedName)

	require.NoError(t, store.DismissReview(ctx, pending[0].ID))

	all, err := store.ListReview(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "empty status lists every entry")
}

func TestStore_ReviewNotFound(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	got, err := store.GetReview(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got, "missing entries are nil, not an error")

	err = store.ResolveReview(ctx, "no-such-id", "Dhana Yoga")
	assert.True(t, errors.Is(err, core.ErrNotFound), "expected ErrNotFound, got %v", err)

	err = store.DismissReview(ctx, "no-such-id")
	assert.True(t, errors.Is(err, core.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestStore_SaveAnalysis_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	analysis := &core.Analysis{
		ChartID:         "chart-001",
		DetectionCount:  3,
		YogaCount:       2,
		UnresolvedCount: 1,
	}
	yogas := []core.NormalizedYoga{
		{
			CanonicalName: "Gaja Kesari Yoga",
			Tier:          core.TierMajorPositive,
			LifeArea:      core.AreaFame,
			Strength:      core.StrengthStrong,
			Provenance:    []string{"Gajakesari Yoga", "Gaj Kesari Yoga"},
		},
		{
			CanonicalName: "Xyz Yoga",
			Tier:          core.TierStandard,
			Strength:      core.StrengthWeak,
			Provenance:    []string{"xyz-yoga"},
			Unresolved:    true,
		},
	}

	require.NoError(t, store.SaveAnalysis(ctx, analysis, yogas))
	assert.NotEmpty(t, analysis.ID, "save fills a zero id")
	assert.False(t, analysis.CreatedAt.IsZero(), "save fills a zero created_at")

	got, gotYogas, err := store.GetAnalysis(ctx, analysis.ID)
	require.NoError(t, err)
	assert.Equal(t, "chart-001", got.ChartID)
	assert.Equal(t, 3, got.DetectionCount)
	assert.Equal(t, 1, got.UnresolvedCount)

	require.Len(t, gotYogas, 2)
	assert.Equal(t, "Gaja Kesari Yoga", gotYogas[0].CanonicalName, "save order preserved")
	assert.Equal(t, core.TierMajorPositive, gotYogas[0].Tier)
	assert.Equal(t, core.StrengthStrong, gotYogas[0].Strength)
	assert.Equal(t, []string{"Gajakesari Yoga", "Gaj Kesari Yoga"}, gotYogas[0].Provenance)
	assert.False(t, gotYogas[0].Unresolved)
	assert.True(t, gotYogas[1].Unresolved)
	assert.Equal(t, analysis.ID, gotYogas[1].AnalysisID)
}

func TestStore_GetAnalysis_NotFound(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, _, err := store.GetAnalysis(ctx, "no-such-id")
	assert.True(t, errors.Is(err, core.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestStore_ListAnalyses(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, chart := range []string{"chart-001", "chart-002", "chart-001"} {
		a := &core.Analysis{ChartID: chart, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, store.SaveAnalysis(ctx, a, nil))
	}

	all, err := store.ListAnalyses(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt), "newest first")

	chart1, err := store.ListAnalyses(ctx, "chart-001", 0)
	require.NoError(t, err)
	require.Len(t, chart1, 2)
	for _, a := range chart1 {
		assert.Equal(t, "chart-001", a.ChartID)
	}

	limited, err := store.ListAnalyses(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDisabled_AllMethodsReport(t *testing.T) {
	ctx := context.Background()
	var store core.Store = Disabled{}

	_, err := store.RecordUnresolved(ctx, "a", "a", "")
	assert.True(t, errors.Is(err, core.ErrStoreNotConfigured))
	_, err = store.ListReview(ctx, "")
	assert.True(t, errors.Is(err, core.ErrStoreNotConfigured))
	_, err = store.GetReview(ctx, "id")
	assert.True(t, errors.Is(err, core.ErrStoreNotConfigured))
	assert.True(t, errors.Is(store.ResolveReview(ctx, "id", "x"), core.ErrStoreNotConfigured))
	assert.True(t, errors.Is(store.DismissReview(ctx, "id"), core.ErrStoreNotConfigured))
	assert.True(t, errors.Is(store.SaveAnalysis(ctx, &core.Analysis{}, nil), core.ErrStoreNotConfigured))
	_, _, err = store.GetAnalysis(ctx, "id")
	assert.True(t, errors.Is(err, core.ErrStoreNotConfigured))
	_, err = store.ListAnalyses(ctx, "", 0)
	assert.True(t, errors.Is(err, core.ErrStoreNotConfigured))
	assert.True(t, errors.Is(store.Ping(ctx), core.ErrStoreNotConfigured))
	assert.NoError(t, store.Close())
}
