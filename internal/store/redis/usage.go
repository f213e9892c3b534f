package redis

import (
	"context"
	"fmt"
	"strconv"
)

// IncrementLookup bumps the lookup counter for a resolved tool key and
// tracks the key in the global set so stats can enumerate it.
func (s *Store) IncrementLookup(ctx context.Context, toolKey string) error {
	if err := s.client.Incr(ctx, UsageKey(toolKey)).Err(); err != nil {
		return fmt.Errorf("failed to increment usage counter: %w", err)
	}
	if err := s.client.SAdd(ctx, KeyAllTools, toolKey).Err(); err != nil {
		return fmt.Errorf("failed to track tool key: %w", err)
	}
	return nil
}

// LookupCount returns the counter for one tool key (0 if never looked up).
func (s *Store) LookupCount(ctx context.Context, toolKey string) (int64, error) {
	val, err := s.client.Get(ctx, UsageKey(toolKey)).Result()
	if err != nil {
		if isNil(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get usage counter: %w", err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt usage counter for %q: %w", toolKey, err)
	}
	return n, nil
}

// UsageStats retrieves lookup counters for all tracked tool keys.
func (s *Store) UsageStats(ctx context.Context) (map[string]int64, error) {
	keys, err := s.client.SMembers(ctx, KeyAllTools).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked tools: %w", err)
	}

	stats := make(map[string]int64, len(keys))
	for _, k := range keys {
		n, err := s.LookupCount(ctx, k)
		if err != nil {
			return nil, err
		}
		stats[k] = n
	}
	return stats, nil
}
