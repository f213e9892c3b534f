package cvmfs

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"biofinder/internal/domain"
	"biofinder/internal/utils"
)

// Load reads the container snapshot and maps it to domain records.
// Files ending in .gz are transparently decompressed; the snapshots
// ship gzipped but uncompressed copies are common in dev setups.
func Load(path string) ([]*domain.Container, domain.CacheInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.CacheInfo{}, fmt.Errorf("open container snapshot: %w", err)
	}
	defer utils.Close(f)

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, domain.CacheInfo{}, fmt.Errorf("open gzip stream: %w", err)
		}
		defer utils.Close(gz)
		r = gz
	}

	return Parse(r)
}

// Parse decodes a snapshot stream into domain containers plus its
// provenance header.
func Parse(r io.Reader) ([]*domain.Container, domain.CacheInfo, error) {
	var file CacheFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, domain.CacheInfo{}, fmt.Errorf("parse container snapshot: %w", err)
	}

	info := domain.CacheInfo{
		GeneratedAt: file.GeneratedAt,
		CVMFSRoot:   file.CVMFSRoot,
		EntryCount:  file.EntryCount,
	}
	if info.EntryCount == 0 {
		info.EntryCount = len(file.Entries)
	}

	return MapContainers(file.Entries), info, nil
}
