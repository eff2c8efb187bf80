package registryinfo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/api/features"
)

func TestInfo(t *testing.T) {
	fixture := features.SetupCatalogFixture(t)
	h := NewHandlers(fixture.Engine, fixture.Notifier)

	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	rec := httptest.NewRecorder()

	h.Info(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp InfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Version)
	assert.False(t, resp.BuiltAt.IsZero())
	assert.Greater(t, resp.Entries, 0)
	assert.Greater(t, resp.Variants, resp.Entries, "every entry indexes at least its canonical spelling")
}

func TestEvents(t *testing.T) {
	fixture := features.SetupCatalogFixture(t)
	h := NewHandlers(fixture.Engine, fixture.Notifier)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/registry/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Events(rec, req)
		close(done)
	}()

	// Let the initial event flush, then simulate a hot-swap
	time.Sleep(50 * time.Millisecond)
	fixture.Notifier.Broadcast()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Events handler did not return after context cancellation")
	}

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: registry\n")
	assert.Contains(t, body, "event: registry_reloaded\n")
	assert.Contains(t, body, `"version"`)
	assert.True(t, rec.Flushed)
}
