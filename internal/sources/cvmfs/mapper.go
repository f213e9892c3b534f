package cvmfs

import (
	"time"

	"biofinder/internal/domain"
)

// MapContainers converts snapshot entries to domain records. Entries
// missing a tool name or path are unindexable and dropped.
func MapContainers(entries []CacheEntry) []*domain.Container {
	containers := make([]*domain.Container, 0, len(entries))
	for _, e := range entries {
		if e.ToolName == "" || e.Path == "" {
			continue
		}
		c := &domain.Container{
			ToolKey:   e.ToolName,
			Tag:       e.Tag,
			Path:      e.Path,
			SizeBytes: e.SizeBytes,
		}
		if e.MTime > 0 {
			c.ModifiedAt = time.Unix(e.MTime, 0).UTC()
		}
		containers = append(containers, c)
	}
	return containers
}
