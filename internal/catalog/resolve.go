package catalog

import (
	"strings"

	"biofinder/internal/domain"
)

// Resolve maps free-form user input to one index key. Resolution is
// exact first, then fuzzy by substring containment in both directions.
// A single fuzzy candidate wins outright; among several, the key with
// the most container builds wins, ties going to the lexicographically
// smallest key so the outcome never depends on map order.
func (c *Catalog) Resolve(query string) (string, error) {
	key := domain.NormalizeKey(query)
	if key == "" {
		return "", &domain.NotFoundError{Query: query}
	}

	if c.has(key) {
		return key, nil
	}

	var candidates []string
	for _, k := range c.keys {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			candidates = append(candidates, k)
		}
	}

	switch len(candidates) {
	case 0:
		return "", &domain.NotFoundError{Query: query}
	case 1:
		return candidates[0], nil
	}

	// c.keys is sorted, so the scan visits candidates in ascending key
	// order and a strict > keeps the smallest key on count ties.
	best := candidates[0]
	bestCount := len(c.containers[best])
	for _, k := range candidates[1:] {
		if n := len(c.containers[k]); n > bestCount {
			best, bestCount = k, n
		}
	}
	return best, nil
}

func (c *Catalog) has(key string) bool {
	if _, ok := c.tools[key]; ok {
		return true
	}
	_, ok := c.containers[key]
	return ok
}
