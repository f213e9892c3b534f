package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultResolutionTTL is the default TTL for cached resolutions.
	// Resolutions can only change when the catalog reloads, which is
	// daily, so 24h keeps the cache warm without going stale.
	DefaultResolutionTTL = 24 * time.Hour
)

// Store handles Redis operations for usage counters and the resolution
// cache. All of its features are best-effort; the catalog answers
// queries identically with or without it.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
