package cvmfs

// CacheFile mirrors the container snapshot JSON produced by the CVMFS
// tree scanner.
type CacheFile struct {
	GeneratedAt string       `json:"generated_at"`
	CVMFSRoot   string       `json:"cvmfs_root"`
	EntryCount  int          `json:"entry_count"`
	Entries     []CacheEntry `json:"entries"`
}

// CacheEntry is one image in the snapshot. MTime is a unix timestamp;
// 0 means the scanner could not stat the file.
type CacheEntry struct {
	ToolName  string `json:"tool_name"`
	Tag       string `json:"tag"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	MTime     int64  `json:"mtime"`
}
