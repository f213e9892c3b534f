package domain

import (
	"sort"
	"time"
)

// Container represents one immutable container image build of a tool,
// located at a specific path in the CVMFS tree.
//
// Multiple containers share a ToolKey; Path is unique per record.
type Container struct {
	// ToolKey is the raw tool name from the snapshot. It is normalized
	// before indexing and may differ from the matching Tool.ID.
	ToolKey string `json:"tool"`

	// Tag is the raw version/build string as found in the source.
	// Example: "1.17--h00cdaf9_0"
	Tag string `json:"tag"`

	// Path is the fully-qualified image path, unique per record.
	Path string `json:"path"`

	// SizeBytes is the image size; 0 means unknown.
	SizeBytes int64 `json:"size_bytes,omitempty"`

	// ModifiedAt is the image mtime; the zero value means unknown.
	ModifiedAt time.Time `json:"modified_at,omitzero"`

	// Version is the parsed form of Tag, cached at index build time.
	Version ParsedVersion `json:"-"`
}

// SortContainersNewestFirst orders containers descending by parsed
// version. The sort is stable so records with fully identical tags keep
// their source order, making results deterministic.
func SortContainersNewestFirst(containers []*Container) {
	sort.SliceStable(containers, func(i, j int) bool {
		return containers[i].Version.Compare(containers[j].Version) > 0
	})
}

// NewestContainer returns the maximum container under the version order,
// or nil for an empty list. On ties the earliest record in source order
// wins, consistent with SortContainersNewestFirst.
func NewestContainer(containers []*Container) *Container {
	var newest *Container
	for _, c := range containers {
		if newest == nil || c.Version.Compare(newest.Version) > 0 {
			newest = c
		}
	}
	return newest
}
