// Package cache stores encoded mazes keyed by the parameters that produced
// them.
//
// Generation is a pure function of height, width, seed, algorithm and mode,
// so an encoding never goes stale; TTLs only bound how much space a cache may
// hold on to. Three backends implement [Cache]:
//
//   - [FileCache] keeps one JSON entry per key under a directory (CLI default)
//   - [RedisCache] shares entries between processes through Redis
//   - [NullCache] stores nothing (--no-cache)
//
// Keys come from a [Keyer], so backends never interpret them.
package cache

import (
	"context"
	"time"
)

// TTLMaze is the default lifetime of a cached encoding.
const TTLMaze = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false) and not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
