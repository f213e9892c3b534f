package catalog

import (
	"sync/atomic"

	"biofinder/internal/domain"
)

// Holder publishes the current Catalog to concurrent readers. Reloads
// build a complete replacement off to the side and Swap it in; readers
// always see a fully-built snapshot, never a partial one.
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder starts with an empty catalog so queries are answerable
// (with empty results) before the first load completes.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(Build(nil, nil, domain.CacheInfo{}, nil))
	return h
}

// Load returns the current snapshot. Never nil.
func (h *Holder) Load() *Catalog {
	return h.current.Load()
}

// Swap publishes a new snapshot and returns the previous one.
func (h *Holder) Swap(c *Catalog) *Catalog {
	if c == nil {
		return h.current.Load()
	}
	return h.current.Swap(c)
}
