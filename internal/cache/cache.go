// Package cache memoizes computed activation timelines. Entries are keyed
// by canonical yoga name and period tree version and expire by TTL; there
// are no staleness semantics beyond that.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Key builds the cache key for a yoga's timeline under a period tree
// version.
func Key(canonicalName, periodsVersion string) string {
	return canonicalName + "@" + periodsVersion
}

// TimelineCache is the memoization surface consulted by the engine when a
// caller supplies a periods version. Cached timelines are shared values and
// must be treated as immutable.
type TimelineCache interface {
	// Get returns the cached timeline and true, or false on a miss.
	Get(ctx context.Context, key string) (*core.Timeline, bool, error)
	// Set stores a timeline under key for ttl; a non-positive ttl means no
	// expiry.
	Set(ctx context.Context, key string, timeline *core.Timeline, ttl time.Duration) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the configured cache backend: "memory" (the default when
// empty) or "redis".
func Open(ctx context.Context, backend string, opts RedisOptions) (TimelineCache, error) {
	switch backend {
	case "", "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
