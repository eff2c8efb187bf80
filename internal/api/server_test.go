package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/testutil"
)

func TestNewServer_DefaultsLogger(t *testing.T) {
	srv := NewServer(Config{})
	require.NotNil(t, srv.logger)
	require.NotNil(t, srv.Notifier())
}

func TestWatchOverlay_ReloadsAndBroadcasts(t *testing.T) {
	overlayPath := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(overlayPath, []byte("aliases: {}\n"), 0600))

	eng, err := engine.New(context.Background(), engine.Config{
		OverlayPath:  overlayPath,
		StateDriver:  "none",
		CacheBackend: "memory",
		Logger:       testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	srv := NewServer(Config{
		Engine:      eng,
		Watch:       true,
		OverlayPath: overlayPath,
		Logger:      testutil.NewTestLogger(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := srv.Notifier().Subscribe()
	defer srv.Notifier().Unsubscribe(updates)

	done := make(chan error, 1)
	go func() { done <- srv.watchOverlay(ctx) }()

	// Give the watcher a beat to install before touching the file
	time.Sleep(100 * time.Millisecond)

	before := eng.Registry().Version()
	overlay := "aliases:\n  Gaja Kesari Yoga:\n    - Elephant Lion Combo\n"
	require.NoError(t, os.WriteFile(overlayPath, []byte(overlay), 0600))

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast after overlay change")
	}

	assert.NotEqual(t, before, eng.Registry().Version())

	def, err := eng.Lookup("Elephant Lion Combo")
	require.NoError(t, err)
	assert.Equal(t, "Gaja Kesari Yoga", def.CanonicalName)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchOverlay_BadOverlayKeepsRegistry(t *testing.T) {
	overlayPath := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(overlayPath, []byte("aliases: {}\n"), 0600))

	eng, err := engine.New(context.Background(), engine.Config{
		OverlayPath:  overlayPath,
		StateDriver:  "none",
		CacheBackend: "memory",
		Logger:       testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	srv := NewServer(Config{
		Engine:      eng,
		Watch:       true,
		OverlayPath: overlayPath,
		Logger:      testutil.NewTestLogger(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := srv.Notifier().Subscribe()
	defer srv.Notifier().Unsubscribe(updates)

	done := make(chan error, 1)
	go func() { done <- srv.watchOverlay(ctx) }()

	time.Sleep(100 * time.Millisecond)

	before := eng.Registry().Version()
	require.NoError(t, os.WriteFile(overlayPath, []byte("aliases:\n  No Such Yoga:\n    - Whatever\n"), 0600))

	// A failed rebuild must not swap the registry or ping clients
	select {
	case <-updates:
		t.Fatal("broadcast after failed registry rebuild")
	case <-time.After(500 * time.Millisecond):
	}

	assert.Equal(t, before, eng.Registry().Version())

	cancel()
	require.NoError(t, <-done)
}
