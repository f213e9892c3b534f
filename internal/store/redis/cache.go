package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheResolution stores a query -> tool key resolution in cache
func (s *Store) CacheResolution(ctx context.Context, query, toolKey string, ttl time.Duration) error {
	if err := s.client.Set(ctx, ResolveKey(query), toolKey, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache resolution: %w", err)
	}
	return nil
}

// GetCachedResolution retrieves a cached resolution. A cache miss
// returns "" with no error.
func (s *Store) GetCachedResolution(ctx context.Context, query string) (string, error) {
	toolKey, err := s.client.Get(ctx, ResolveKey(query)).Result()
	if err != nil {
		if isNil(err) {
			return "", nil // Cache miss
		}
		return "", fmt.Errorf("failed to get cached resolution: %w", err)
	}
	return toolKey, nil
}

// InvalidateResolution removes a cached resolution
func (s *Store) InvalidateResolution(ctx context.Context, query string) error {
	if err := s.client.Del(ctx, ResolveKey(query)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate resolution: %w", err)
	}
	return nil
}

// FlushResolutions removes all cached resolutions. Called after each
// catalog reload since fuzzy outcomes may shift with the key set.
func (s *Store) FlushResolutions(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixResolve+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached resolution: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush resolutions: %w", err)
	}
	return nil
}

func isNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
