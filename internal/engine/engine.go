// Package engine wires the catalog registry, name normalizer, deduplicator,
// timing engine and coverage aggregator behind one orchestrating surface
// shared by the CLI and the HTTP API.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/arytiwari/jioastro-sub006/internal/cache"
	"github.com/arytiwari/jioastro-sub006/internal/catalog"
	"github.com/arytiwari/jioastro-sub006/internal/state"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Config holds engine configuration.
type Config struct {
	// OverlayPath is the alias overlay file merged into the registry at
	// build time (optional).
	OverlayPath string
	// StateDriver selects persistence: "sqlite" (default), "postgres", or
	// "none" to disable the state store.
	StateDriver string
	// StatePath is the sqlite database file.
	StatePath string
	// StateDSN is the postgres connection string.
	StateDSN string
	// CacheBackend is "memory" (default) or "redis".
	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// TimelineTTL bounds cached timeline lifetime. Zero caches without
	// expiry.
	TimelineTTL time.Duration
	// Implemented is the set of canonical names the upstream detector
	// implements, used by coverage reports.
	Implemented map[string]struct{}
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Engine orchestrates analysis runs against an atomically swappable
// registry snapshot. Every request reads the current snapshot once; a
// concurrent reload never mutates a registry in use.
type Engine struct {
	registry atomic.Pointer[catalog.Registry]

	overlayPath string
	store       core.Store
	cache       cache.TimelineCache
	timelineTTL time.Duration
	implemented map[string]struct{}
	logger      *slog.Logger
}

// New builds the registry, opens the configured state store and cache, and
// returns a ready engine. Registry and overlay problems are fatal here;
// nothing degrades at startup.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	registry, err := buildRegistry(cfg.OverlayPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog registry built",
		"version", registry.Version(),
		"entries", registry.Count(),
		"variants", registry.VariantCount())

	var store core.Store
	if cfg.StateDriver == "none" {
		store = state.Disabled{}
	} else {
		store, err = state.Open(ctx, state.Options{
			Driver: cfg.StateDriver,
			Path:   cfg.StatePath,
			DSN:    cfg.StateDSN,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open state store: %w", err)
		}
	}

	timelineCache, err := cache.Open(ctx, cfg.CacheBackend, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to open timeline cache: %w", err)
	}

	e := &Engine{
		overlayPath: cfg.OverlayPath,
		store:       store,
		cache:       timelineCache,
		timelineTTL: cfg.TimelineTTL,
		implemented: cfg.Implemented,
		logger:      logger,
	}
	e.registry.Store(registry)
	return e, nil
}

func buildRegistry(overlayPath string) (*catalog.Registry, error) {
	opts := catalog.BuildOptions{}
	if overlayPath != "" {
		overlay, err := catalog.LoadOverlay(overlayPath)
		if err != nil {
			return nil, err
		}
		opts.Overlay = overlay
	}
	registry, err := catalog.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog registry: %w", err)
	}
	return registry, nil
}

// Registry returns the current registry snapshot.
func (e *Engine) Registry() *catalog.Registry {
	return e.registry.Load()
}

// ReloadRegistry rebuilds the registry, including the alias overlay, and
// swaps it in atomically. On failure the previous snapshot stays active.
func (e *Engine) ReloadRegistry() (*catalog.Registry, error) {
	registry, err := buildRegistry(e.overlayPath)
	if err != nil {
		return nil, err
	}
	e.registry.Store(registry)
	e.logger.Info("catalog registry reloaded",
		"version", registry.Version(),
		"entries", registry.Count(),
		"variants", registry.VariantCount())
	return registry, nil
}

// Store returns the state store (possibly state.Disabled).
func (e *Engine) Store() core.Store {
	return e.store
}

// Cache returns the timeline cache.
func (e *Engine) Cache() cache.TimelineCache {
	return e.cache
}

// Implemented returns the configured implemented-yoga set (possibly nil).
func (e *Engine) Implemented() map[string]struct{} {
	return e.implemented
}

// Close releases the store and cache.
func (e *Engine) Close() error {
	var errs []error
	if err := e.store.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := e.cache.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing engine: %v", errs)
	}
	return nil
}
