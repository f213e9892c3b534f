package integration

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"biofinder/internal/catalog"
	"biofinder/internal/logger"
	"biofinder/internal/scheduler"
)

const metaFixture = `
- id: fastqc
  name: FastQC
  description: A quality control tool for high throughput sequence data
  biotools: fastqc
  edam-operations:
    - Sequence quality control
  edam-topics:
    - Sequencing
- id: bwa
  name: BWA
  description: Burrows-Wheeler Aligner for short-read sequence alignment
  edam-operations:
    - Sequence alignment
- id: multiqc
  name: MultiQC
  description: Aggregate results from bioinformatics analyses into a single report
`

const cacheFixture = `{
  "generated_at": "2026-08-01T03:00:00Z",
  "cvmfs_root": "/cvmfs/singularity.galaxyproject.org",
  "entry_count": 5,
  "entries": [
    {"tool_name": "fastqc", "tag": "0.11.9--0", "path": "/c/fastqc:0.11.9--0", "size_bytes": 100, "mtime": 1600000000},
    {"tool_name": "fastqc", "tag": "0.12.1--hdfd78af_0", "path": "/c/fastqc:0.12.1--hdfd78af_0", "size_bytes": 120, "mtime": 1700000000},
    {"tool_name": "fastqc", "tag": "0.11.9--hdfd78af_1", "path": "/c/fastqc:0.11.9--hdfd78af_1", "size_bytes": 110, "mtime": 1650000000},
    {"tool_name": "BWA_MEM", "tag": "0.7.17--1", "path": "/c/bwa_mem:0.7.17--1", "size_bytes": 90, "mtime": 1500000000},
    {"tool_name": "samtools", "tag": "1.17--h00cdaf9_0", "path": "/c/samtools:1.17--h00cdaf9_0", "size_bytes": 80, "mtime": 1550000000}
  ]
}`

// loadedCatalog runs the real pipeline: write fixtures, reload through
// the scheduler (gzipped snapshot, as in production), query the holder.
func loadedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "toolfinder_meta.yaml")
	if err := os.WriteFile(metaPath, []byte(metaFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	cachePath := filepath.Join(dir, "galaxy_singularity_cache.json.gz")
	f, err := os.Create(cachePath)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(cacheFixture)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	holder := catalog.NewHolder()
	r := scheduler.NewCatalogReloader(metaPath, cachePath, holder, nil, nil, logger.Nop(), time.Hour, nil)
	if err := r.Reload(context.Background()); err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	return holder.Load()
}

func TestFindToolFlow(t *testing.T) {
	cat := loadedCatalog(t)

	tests := []struct {
		name       string
		query      string
		wantKey    string
		wantNewest string
	}{
		{
			name:       "exact id with version history",
			query:      "fastqc",
			wantKey:    "fastqc",
			wantNewest: "0.12.1--hdfd78af_0",
		},
		{
			name:       "display name case-insensitive",
			query:      "FastQC",
			wantKey:    "fastqc",
			wantNewest: "0.12.1--hdfd78af_0",
		},
		{
			name:       "underscore and hyphen are equivalent",
			query:      "bwa-mem",
			wantKey:    "bwa-mem",
			wantNewest: "0.7.17--1",
		},
		{
			name:       "container-only tool without metadata",
			query:      "samtools",
			wantKey:    "samtools",
			wantNewest: "1.17--h00cdaf9_0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := cat.FindTool(tt.query)
			if err != nil {
				t.Fatalf("FindTool(%q) error: %v", tt.query, err)
			}
			if res.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", res.Key, tt.wantKey)
			}
			if res.Newest == nil || res.Newest.Tag != tt.wantNewest {
				t.Errorf("newest = %+v, want tag %q", res.Newest, tt.wantNewest)
			}
		})
	}
}

func TestVersionOrderingFlow(t *testing.T) {
	cat := loadedCatalog(t)

	listing, err := cat.ContainerVersions("fastqc")
	if err != nil {
		t.Fatalf("ContainerVersions error: %v", err)
	}

	want := []string{"0.12.1--hdfd78af_0", "0.11.9--hdfd78af_1", "0.11.9--0"}
	if len(listing.Containers) != len(want) {
		t.Fatalf("got %d versions, want %d", len(listing.Containers), len(want))
	}
	for i, tag := range want {
		if listing.Containers[i].Tag != tag {
			t.Errorf("version[%d] = %q, want %q", i, listing.Containers[i].Tag, tag)
		}
	}
}

func TestSearchFlow(t *testing.T) {
	cat := loadedCatalog(t)

	hits := cat.SearchByFunction("sequence alignment", 10)
	if len(hits) == 0 {
		t.Fatal("no hits for 'sequence alignment'")
	}
	if hits[0].Tool.ID != "bwa" {
		t.Errorf("top hit = %s, want bwa", hits[0].Tool.ID)
	}

	// The snapshot stores bwa's builds under bwa_mem, a different key,
	// so the metadata-ranked hit legitimately carries no containers.
	if hits[0].ContainerCount != 0 {
		t.Errorf("bwa hit container count = %d", hits[0].ContainerCount)
	}

	if hits := cat.SearchByFunction("", 10); len(hits) != 0 {
		t.Errorf("empty query returned %d hits", len(hits))
	}
}

func TestListFlow(t *testing.T) {
	cat := loadedCatalog(t)

	ids := cat.ListTools(0)
	want := []string{"bwa", "fastqc", "multiqc"}
	if len(ids) != len(want) {
		t.Fatalf("ListTools = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	first := loadedCatalog(t)
	second := loadedCatalog(t)

	if first.ToolCount() != second.ToolCount() || first.KeyCount() != second.KeyCount() {
		t.Errorf("rebuilds differ: %d/%d tools, %d/%d keys",
			first.ToolCount(), second.ToolCount(), first.KeyCount(), second.KeyCount())
	}

	a, err := first.FindTool("fastqc")
	if err != nil {
		t.Fatal(err)
	}
	b, err := second.FindTool("fastqc")
	if err != nil {
		t.Fatal(err)
	}
	if a.Newest.Tag != b.Newest.Tag || len(a.Containers) != len(b.Containers) {
		t.Errorf("rebuild changed answers: %+v vs %+v", a.Newest, b.Newest)
	}
}
