package encyclopedia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/api/features"
	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func setupHandlers(t *testing.T) *Handlers {
	t.Helper()
	fixture := features.SetupCatalogFixture(t)
	return NewHandlers(fixture.Engine)
}

func TestList(t *testing.T) {
	h := setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/yogas", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, len(resp.Yogas), resp.Count)
	assert.Greater(t, resp.Count, 100, "full catalog should be returned")

	names := make(map[string]bool, len(resp.Yogas))
	for _, def := range resp.Yogas {
		names[def.CanonicalName] = true
	}
	assert.True(t, names["Gaja Kesari Yoga"])
	assert.True(t, names["Kemadruma Yoga"])
}

func TestList_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, resp ListResponse)
	}{
		{
			name:  "tier filter keeps only that tier",
			query: "?tier=major_challenge",
			check: func(t *testing.T, resp ListResponse) {
				require.NotEmpty(t, resp.Yogas)
				for _, def := range resp.Yogas {
					assert.Equal(t, core.TierMajorChallenge, def.Tier)
				}
			},
		},
		{
			name:  "area filter keeps only that area",
			query: "?area=wealth",
			check: func(t *testing.T, resp ListResponse) {
				require.NotEmpty(t, resp.Yogas)
				for _, def := range resp.Yogas {
					assert.Equal(t, core.AreaWealth, def.LifeArea)
				}
			},
		},
		{
			name:  "search matches variant spellings",
			query: "?q=gajakesari",
			check: func(t *testing.T, resp ListResponse) {
				require.Len(t, resp.Yogas, 1)
				assert.Equal(t, "Gaja Kesari Yoga", resp.Yogas[0].CanonicalName)
			},
		},
		{
			name:  "combined filters intersect",
			query: "?tier=major_positive&area=fame",
			check: func(t *testing.T, resp ListResponse) {
				require.NotEmpty(t, resp.Yogas)
				for _, def := range resp.Yogas {
					assert.Equal(t, core.TierMajorPositive, def.Tier)
					assert.Equal(t, core.AreaFame, def.LifeArea)
				}
			},
		},
		{
			name:  "no matches yields empty list not null",
			query: "?q=zzzznothing",
			check: func(t *testing.T, resp ListResponse) {
				assert.Equal(t, 0, resp.Count)
				assert.NotNil(t, resp.Yogas)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandlers(t)

			req := httptest.NewRequest(http.MethodGet, "/api/yogas"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp ListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.check(t, resp)
		})
	}
}

func TestList_BadFilters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{"unknown tier", "?tier=legendary", "unknown tier"},
		{"unknown area", "?area=luck", "unknown life area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandlers(t)

			req := httptest.NewRequest(http.MethodGet, "/api/yogas"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErr)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name          string
		param         string
		wantCanonical string
	}{
		{"canonical name", "Gaja Kesari Yoga", "Gaja Kesari Yoga"},
		{"variant spelling", "Gajakesari Yoga", "Gaja Kesari Yoga"},
		{"case insensitive", "gaja kesari yoga", "Gaja Kesari Yoga"},
		{"url escaped", "Gaja%20Kesari%20Yoga", "Gaja Kesari Yoga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandlers(t)

			req := httptest.NewRequest(http.MethodGet, "/api/yogas/name", nil)
			req = features.RequestWithPathParam(req, "name", tt.param)
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var def core.YogaDefinition
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &def))
			assert.Equal(t, tt.wantCanonical, def.CanonicalName)
			assert.Equal(t, core.TierMajorPositive, def.Tier)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	h := setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/yogas/name", nil)
	req = features.RequestWithPathParam(req, "name", "Gaja Kesri Yoga")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp common.NotFoundPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "Gaja Kesri Yoga", resp.Query)
	assert.Contains(t, resp.Suggestions, "Gaja Kesari Yoga")
}
