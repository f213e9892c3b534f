package catalog

import (
	"sort"
	"time"

	"biofinder/internal/domain"
	"biofinder/internal/logger"
)

// Catalog is the immutable, queryable view over one load of the two
// source files. Build constructs it once; readers share it without
// locking. Reloads produce a fresh Catalog and swap it in via Holder.
type Catalog struct {
	// tools maps every normalized identity key (primary ID, display
	// name, external IDs) to its metadata record.
	tools map[string]*domain.Tool

	// containers maps normalized tool keys to builds, sorted
	// newest-first at construction time.
	containers map[string][]*domain.Container

	// toolList preserves metadata source order for scoring ties.
	toolList []*domain.Tool

	// toolIDs are the primary metadata IDs, sorted alphabetically.
	toolIDs []string

	// keys is the sorted union of metadata and container keys, used by
	// the fuzzy resolution pass.
	keys []string

	collisions []AliasCollision
	info       domain.CacheInfo
	builtAt    time.Time
}

// AliasCollision records an identity key claimed by two different tools.
// The first registration wins; the collision is kept for diagnostics.
type AliasCollision struct {
	Key       string `json:"key"`
	KeptID    string `json:"kept_id"`
	DroppedID string `json:"dropped_id"`
}

// Build indexes tool metadata and container records into a Catalog.
// Both inputs may be empty; a Catalog over partial data still answers
// queries for whatever did load.
func Build(tools []*domain.Tool, containers []*domain.Container, info domain.CacheInfo, log logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}

	c := &Catalog{
		tools:      make(map[string]*domain.Tool, len(tools)*2),
		containers: make(map[string][]*domain.Container),
		toolList:   make([]*domain.Tool, 0, len(tools)),
		toolIDs:    make([]string, 0, len(tools)),
		info:       info,
		builtAt:    time.Now(),
	}

	for _, t := range tools {
		if t == nil || t.ID == "" {
			continue
		}
		c.toolList = append(c.toolList, t)
		c.toolIDs = append(c.toolIDs, t.ID)

		c.register(t.Key(), t)
		if t.Name != "" {
			c.register(domain.NormalizeKey(t.Name), t)
		}
		for _, ext := range t.ExternalIDs {
			if ext != "" {
				c.register(domain.NormalizeKey(ext), t)
			}
		}
	}
	sort.Strings(c.toolIDs)

	for _, ct := range containers {
		if ct == nil || ct.ToolKey == "" {
			continue
		}
		ct.Version = domain.ParseVersion(ct.Tag)
		key := domain.NormalizeKey(ct.ToolKey)
		c.containers[key] = append(c.containers[key], ct)
	}
	for _, list := range c.containers {
		domain.SortContainersNewestFirst(list)
	}

	keySet := make(map[string]struct{}, len(c.tools)+len(c.containers))
	for k := range c.tools {
		keySet[k] = struct{}{}
	}
	for k := range c.containers {
		keySet[k] = struct{}{}
	}
	c.keys = make([]string, 0, len(keySet))
	for k := range keySet {
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)

	for _, col := range c.collisions {
		log.Warn("alias collision, first registration kept",
			logger.String("key", col.Key),
			logger.String("kept", col.KeptID),
			logger.String("dropped", col.DroppedID))
	}
	log.Info("catalog built",
		logger.Int("tools", len(c.toolList)),
		logger.Int("container_keys", len(c.containers)),
		logger.Int("keys", len(c.keys)))

	return c
}

// register claims key for t unless another tool already holds it.
func (c *Catalog) register(key string, t *domain.Tool) {
	if key == "" {
		return
	}
	if prev, ok := c.tools[key]; ok {
		if prev != t {
			c.collisions = append(c.collisions, AliasCollision{
				Key:       key,
				KeptID:    prev.ID,
				DroppedID: t.ID,
			})
		}
		return
	}
	c.tools[key] = t
}

// FindTool resolves query to a single tool and returns its metadata
// plus full container history. Missing metadata or missing containers
// are both acceptable partial results; only full resolution failure
// returns NotFoundError.
func (c *Catalog) FindTool(query string) (*domain.ToolResult, error) {
	key, err := c.Resolve(query)
	if err != nil {
		return nil, err
	}

	containers := c.containersFor(key)
	res := &domain.ToolResult{
		Query:      query,
		Key:        key,
		Tool:       c.tools[key],
		Containers: containers,
	}
	if len(containers) > 0 {
		res.Newest = containers[0]
	}
	return res, nil
}

// SearchByFunction ranks metadata records against a free-text query.
// An empty query yields an empty result set. limit <= 0 means no cap.
func (c *Catalog) SearchByFunction(query string, limit int) []*domain.SearchHit {
	q := domain.ParseSearchQuery(query)
	if q.Empty() {
		return nil
	}

	var hits []*domain.SearchHit
	for _, t := range c.toolList {
		score := domain.Score(q, t)
		if score <= 0 {
			continue
		}
		containers := c.containers[t.Key()]
		hit := &domain.SearchHit{
			Tool:           t,
			Score:          score,
			ContainerCount: len(containers),
		}
		if len(containers) > 0 {
			hit.Newest = containers[0]
		}
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Tool.ID < hits[j].Tool.ID
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// ContainerVersions resolves query and returns every known build for
// the key, newest first.
func (c *Catalog) ContainerVersions(query string) (*domain.VersionListing, error) {
	key, err := c.Resolve(query)
	if err != nil {
		return nil, err
	}
	return &domain.VersionListing{
		Query:      query,
		Key:        key,
		Tool:       c.tools[key],
		Containers: c.containersFor(key),
	}, nil
}

// ListTools returns the alphabetical primary IDs of all metadata
// records. limit <= 0 returns the complete list.
func (c *Catalog) ListTools(limit int) []string {
	ids := c.toolIDs
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// containersFor returns a defensive copy so callers can never reorder
// the shared index slices.
func (c *Catalog) containersFor(key string) []*domain.Container {
	list := c.containers[key]
	if len(list) == 0 {
		return nil
	}
	out := make([]*domain.Container, len(list))
	copy(out, list)
	return out
}

func (c *Catalog) ToolCount() int { return len(c.toolList) }

func (c *Catalog) ContainerCount() int {
	n := 0
	for _, list := range c.containers {
		n += len(list)
	}
	return n
}

func (c *Catalog) KeyCount() int                { return len(c.keys) }
func (c *Catalog) CacheInfo() domain.CacheInfo  { return c.info }
func (c *Catalog) BuiltAt() time.Time           { return c.builtAt }
func (c *Catalog) Collisions() []AliasCollision { return c.collisions }
