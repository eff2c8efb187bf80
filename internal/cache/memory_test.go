package cache

import (
	"context"
	"testing"
	"time"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func TestKey(t *testing.T) {
	got := Key("Gaja Kesari Yoga", "vimshottari-2026-01")
	want := "Gaja Kesari Yoga@vimshottari-2026-01"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	timeline := &core.Timeline{CanonicalName: "Gaja Kesari Yoga", Status: core.StatusCurrentlyActive}
	if err := m.Set(ctx, "k", timeline, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != timeline {
		t.Error("expected the stored timeline value back")
	}
}

func TestMemory_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	clock := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	if err := m.Set(ctx, "k", &core.Timeline{}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock = clock.Add(59 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired early")
	}

	clock = clock.Add(2 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("entry should have expired")
	}

	// The expired entry is gone, not just hidden.
	m.mu.RLock()
	_, present := m.entries["k"]
	m.mu.RUnlock()
	if present {
		t.Error("expired entry should be deleted on read")
	}
}

func TestMemory_NoExpiryForNonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	clock := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	if err := m.Set(ctx, "k", &core.Timeline{}, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock = clock.Add(1000 * time.Hour)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("zero-ttl entry should never expire")
	}
}

func TestMemory_SetReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first := &core.Timeline{CanonicalName: "A"}
	second := &core.Timeline{CanonicalName: "B"}
	_ = m.Set(ctx, "k", first, 0)
	_ = m.Set(ctx, "k", second, 0)

	got, ok, _ := m.Get(ctx, "k")
	if !ok || got.CanonicalName != "B" {
		t.Fatalf("expected replacement value, got %+v ok=%v", got, ok)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "memcached", RedisOptions{})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	c, err := Open(context.Background(), "", RedisOptions{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Errorf("expected *Memory backend, got %T", c)
	}
}
