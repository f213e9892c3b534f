package domain

// ToolResult is the outcome of an exact/fuzzy tool lookup.
type ToolResult struct {
	// Query is the original user input, Key the resolved index key.
	Query string `json:"query"`
	Key   string `json:"key"`

	// Tool is nil when containers exist for the key but no metadata
	// record does.
	Tool *Tool `json:"tool,omitempty"`

	// Containers are sorted newest-first; Newest is Containers[0],
	// highlighted separately for presenters. Both may be empty/nil when
	// metadata exists without container builds.
	Containers []*Container `json:"containers"`
	Newest     *Container   `json:"newest,omitempty"`
}

// SearchHit is one ranked entry of a functional search. Entries with
// zero containers are still valid hits; ranking is metadata-only.
type SearchHit struct {
	Tool           *Tool      `json:"tool"`
	Score          int        `json:"score"`
	Newest         *Container `json:"newest,omitempty"`
	ContainerCount int        `json:"container_count"`
}

// VersionListing is the complete container history for a resolved key.
type VersionListing struct {
	Query string `json:"query"`
	Key   string `json:"key"`

	// Tool is nil for container-only keys; that is a valid result,
	// not an error.
	Tool       *Tool        `json:"tool,omitempty"`
	Containers []*Container `json:"containers"`
}

// CacheInfo is the provenance header of the container snapshot.
type CacheInfo struct {
	GeneratedAt string `json:"generated_at,omitempty"`
	CVMFSRoot   string `json:"cvmfs_root,omitempty"`
	EntryCount  int    `json:"entry_count,omitempty"`
}
