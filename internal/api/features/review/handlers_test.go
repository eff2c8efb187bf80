package review

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/api/features"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/testutil"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func setupFixture(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.Engine, testutil.NewTestLogger(t)), fixture
}

// seedEntry records one unresolved detection and returns its review entry.
func seedEntry(t *testing.T, fixture *features.TestFixture, rawName string) *core.ReviewEntry {
	t.Helper()

	_, err := fixture.Engine.Analyze(t.Context(), engine.AnalyzeRequest{
		ChartID:    "chart-001",
		Detections: []core.YogaDetection{{RawName: rawName, Strength: core.StrengthWeak}},
	})
	require.NoError(t, err)

	entries, err := fixture.Engine.Store().ListReview(t.Context(), core.ReviewPending)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		if e.RawName == rawName {
			return e
		}
	}
	t.Fatalf("no review entry recorded for %q", rawName)
	return nil
}

func TestList_Empty(t *testing.T) {
	h, _ := setupFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/review", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Entries)
}

func TestList_StatusFilter(t *testing.T) {
	h, fixture := setupFixture(t)
	entry := seedEntry(t, fixture, "Mystery Combination")

	require.NoError(t, fixture.Engine.Store().DismissReview(t.Context(), entry.ID))
	seedEntry(t, fixture, "Another Oddity")

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"default lists pending", "", 1},
		{"pending", "?status=pending", 1},
		{"dismissed", "?status=dismissed", 1},
		{"resolved is empty", "?status=resolved", 0},
		{"all", "?status=all", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/review"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp ListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCount, resp.Count)
		})
	}
}

func TestList_UnknownStatus(t *testing.T) {
	h, _ := setupFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/review?status=limbo", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status")
}

func TestResolve(t *testing.T) {
	h, fixture := setupFixture(t)
	entry := seedEntry(t, fixture, "Mystery Combination")

	req := httptest.NewRequest(http.MethodPost, "/api/review/id/resolve",
		strings.NewReader(`{"canonical": "Gajakesari Yoga"}`))
	req = features.RequestWithPathParam(req, "id", entry.ID)
	rec := httptest.NewRecorder()

	h.Resolve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resolved core.ReviewEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, core.ReviewResolved, resolved.Status)
	// Variant spellings resolve to the canonical entry
	assert.Equal(t, "Gaja Kesari Yoga", resolved.ResolvedCanonical)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "missing entry",
			id:         "no-such-id",
			body:       `{"canonical": "Gaja Kesari Yoga"}`,
			wantStatus: http.StatusNotFound,
			wantErr:    "no review entry",
		},
		{
			name:       "empty canonical",
			id:         "seeded",
			body:       `{"canonical": ""}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "canonical is required",
		},
		{
			name:       "unknown canonical",
			id:         "seeded",
			body:       `{"canonical": "Imaginary Yoga"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "no yoga named",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fixture := setupFixture(t)

			id := tt.id
			if id == "seeded" {
				id = seedEntry(t, fixture, "Mystery Combination").ID
			}

			req := httptest.NewRequest(http.MethodPost, "/api/review/id/resolve", strings.NewReader(tt.body))
			req = features.RequestWithPathParam(req, "id", id)
			rec := httptest.NewRecorder()

			h.Resolve(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErr)
		})
	}
}

func TestDismiss(t *testing.T) {
	h, fixture := setupFixture(t)
	entry := seedEntry(t, fixture, "Mystery Combination")

	req := httptest.NewRequest(http.MethodPost, "/api/review/id/dismiss", nil)
	req = features.RequestWithPathParam(req, "id", entry.ID)
	rec := httptest.NewRecorder()

	h.Dismiss(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var dismissed core.ReviewEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dismissed))
	assert.Equal(t, core.ReviewDismissed, dismissed.Status)
}

func TestDismiss_MissingEntry(t *testing.T) {
	h, _ := setupFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/review/id/dismiss", nil)
	req = features.RequestWithPathParam(req, "id", "no-such-id")
	rec := httptest.NewRecorder()

	h.Dismiss(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReview_WithoutStore(t *testing.T) {
	fixture := features.SetupCatalogFixture(t)
	h := NewHandlers(fixture.Engine, testutil.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/review", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "state store")
}
