package catalog

import (
	"testing"

	"biofinder/internal/domain"
)

func testCatalog() *Catalog {
	tools := []*domain.Tool{
		{
			ID:          "fastqc",
			Name:        "FastQC",
			Description: "A quality control tool for high throughput sequence data",
			Operations:  []string{"Sequence quality control"},
			Topics:      []string{"Sequencing"},
		},
		{
			ID:          "bwa",
			Name:        "BWA",
			ExternalIDs: []string{"bwa-aligner"},
			Description: "Burrows-Wheeler Aligner for short-read sequence alignment",
			Operations:  []string{"Sequence alignment"},
			Topics:      []string{"Genomics"},
		},
		{
			ID:          "multiqc",
			Name:        "MultiQC",
			Description: "Aggregate results from bioinformatics analyses into a single report",
			Operations:  []string{"Validation"},
		},
	}
	containers := []*domain.Container{
		{ToolKey: "fastqc", Tag: "0.11.9--0", Path: "/cvmfs/fastqc:0.11.9--0"},
		{ToolKey: "fastqc", Tag: "0.12.1--hdfd78af_0", Path: "/cvmfs/fastqc:0.12.1--hdfd78af_0"},
		{ToolKey: "fastqc", Tag: "0.11.9--hdfd78af_1", Path: "/cvmfs/fastqc:0.11.9--hdfd78af_1"},
		{ToolKey: "BWA_MEM", Tag: "0.7.17--1", Path: "/cvmfs/bwa_mem:0.7.17--1"},
		{ToolKey: "samtools", Tag: "1.17--h00cdaf9_0", Path: "/cvmfs/samtools:1.17--h00cdaf9_0"},
	}
	return Build(tools, containers, domain.CacheInfo{CVMFSRoot: "/cvmfs/test"}, nil)
}

func TestFindToolExact(t *testing.T) {
	cat := testCatalog()

	res, err := cat.FindTool("fastqc")
	if err != nil {
		t.Fatalf("FindTool(fastqc) error: %v", err)
	}
	if res.Tool == nil || res.Tool.ID != "fastqc" {
		t.Fatalf("resolved wrong tool: %+v", res.Tool)
	}
	if res.Newest == nil || res.Newest.Tag != "0.12.1--hdfd78af_0" {
		t.Errorf("newest = %v, want 0.12.1--hdfd78af_0", res.Newest)
	}
	want := []string{"0.12.1--hdfd78af_0", "0.11.9--hdfd78af_1", "0.11.9--0"}
	if len(res.Containers) != len(want) {
		t.Fatalf("got %d containers, want %d", len(res.Containers), len(want))
	}
	for i, tag := range want {
		if res.Containers[i].Tag != tag {
			t.Errorf("containers[%d] = %q, want %q", i, res.Containers[i].Tag, tag)
		}
	}
}

func TestFindToolByDisplayNameCase(t *testing.T) {
	cat := testCatalog()
	res, err := cat.FindTool("FastQC")
	if err != nil {
		t.Fatalf("FindTool(FastQC) error: %v", err)
	}
	if res.Key != "fastqc" {
		t.Errorf("key = %q, want fastqc", res.Key)
	}
}

func TestFindToolByExternalID(t *testing.T) {
	cat := testCatalog()
	res, err := cat.FindTool("bwa-aligner")
	if err != nil {
		t.Fatalf("FindTool(bwa-aligner) error: %v", err)
	}
	if res.Tool == nil || res.Tool.ID != "bwa" {
		t.Errorf("resolved %+v, want bwa", res.Tool)
	}
}

func TestFindToolContainerOnlyKey(t *testing.T) {
	cat := testCatalog()

	// samtools has containers but no metadata record.
	res, err := cat.FindTool("samtools")
	if err != nil {
		t.Fatalf("FindTool(samtools) error: %v", err)
	}
	if res.Tool != nil {
		t.Errorf("expected nil metadata, got %+v", res.Tool)
	}
	if res.Newest == nil || res.Newest.Tag != "1.17--h00cdaf9_0" {
		t.Errorf("newest = %v", res.Newest)
	}
}

func TestFindToolMetadataOnlyKey(t *testing.T) {
	cat := testCatalog()

	// multiqc has metadata but no containers.
	res, err := cat.FindTool("multiqc")
	if err != nil {
		t.Fatalf("FindTool(multiqc) error: %v", err)
	}
	if res.Tool == nil || res.Tool.ID != "multiqc" {
		t.Fatalf("resolved wrong tool: %+v", res.Tool)
	}
	if res.Newest != nil || len(res.Containers) != 0 {
		t.Errorf("expected no containers, got %d", len(res.Containers))
	}
}

func TestFindToolSeparatorEquivalence(t *testing.T) {
	cat := testCatalog()

	// Snapshot stores BWA_MEM; underscore and hyphen forms must both hit.
	for _, query := range []string{"bwa-mem", "BWA_MEM", "bwa_mem"} {
		res, err := cat.FindTool(query)
		if err != nil {
			t.Fatalf("FindTool(%q) error: %v", query, err)
		}
		if res.Key != "bwa-mem" {
			t.Errorf("FindTool(%q).Key = %q, want bwa-mem", query, res.Key)
		}
	}
}

func TestFindToolNotFound(t *testing.T) {
	cat := testCatalog()

	_, err := cat.FindTool("cellranger")
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !domain.IsNotFound(err) {
		t.Errorf("error %v is not a not-found error", err)
	}
}

func TestSearchByFunctionRanking(t *testing.T) {
	cat := testCatalog()

	hits := cat.SearchByFunction("sequence alignment", 0)
	if len(hits) == 0 {
		t.Fatal("expected hits for 'sequence alignment'")
	}
	if hits[0].Tool.ID != "bwa" {
		t.Errorf("top hit = %s, want bwa", hits[0].Tool.ID)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Score > hits[i-1].Score {
			t.Errorf("hits not sorted by score: %d after %d", hits[i].Score, hits[i-1].Score)
		}
	}
}

func TestSearchByFunctionEmptyQuery(t *testing.T) {
	cat := testCatalog()
	if hits := cat.SearchByFunction("   ", 10); len(hits) != 0 {
		t.Errorf("empty query returned %d hits, want 0", len(hits))
	}
}

func TestSearchByFunctionLimit(t *testing.T) {
	cat := testCatalog()

	all := cat.SearchByFunction("sequence", 0)
	if len(all) < 2 {
		t.Fatalf("need at least 2 hits for limit test, got %d", len(all))
	}
	limited := cat.SearchByFunction("sequence", 1)
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d hits", len(limited))
	}
	if limited[0].Tool.ID != all[0].Tool.ID {
		t.Errorf("limit must keep the top hit, got %s want %s", limited[0].Tool.ID, all[0].Tool.ID)
	}
}

func TestSearchHitsCarryNewestContainer(t *testing.T) {
	cat := testCatalog()

	hits := cat.SearchByFunction("quality control", 0)
	if len(hits) == 0 || hits[0].Tool.ID != "fastqc" {
		t.Fatalf("expected fastqc as top hit, got %+v", hits)
	}
	if hits[0].Newest == nil || hits[0].Newest.Tag != "0.12.1--hdfd78af_0" {
		t.Errorf("hit newest = %v", hits[0].Newest)
	}
	if hits[0].ContainerCount != 3 {
		t.Errorf("container count = %d, want 3", hits[0].ContainerCount)
	}
}

func TestContainerVersions(t *testing.T) {
	cat := testCatalog()

	listing, err := cat.ContainerVersions("fastqc")
	if err != nil {
		t.Fatalf("ContainerVersions error: %v", err)
	}
	if len(listing.Containers) != 3 {
		t.Fatalf("got %d containers, want 3", len(listing.Containers))
	}
	if listing.Containers[0].Tag != "0.12.1--hdfd78af_0" {
		t.Errorf("first tag = %q, want newest", listing.Containers[0].Tag)
	}
}

func TestListTools(t *testing.T) {
	cat := testCatalog()

	// Metadata IDs only, alphabetical; container-only keys excluded.
	all := cat.ListTools(0)
	want := []string{"bwa", "fastqc", "multiqc"}
	if len(all) != len(want) {
		t.Fatalf("ListTools(0) = %v, want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("ListTools(0)[%d] = %q, want %q", i, all[i], want[i])
		}
	}

	if limited := cat.ListTools(2); len(limited) != 2 || limited[0] != "bwa" {
		t.Errorf("ListTools(2) = %v", limited)
	}
}

func TestBuildAliasCollisionFirstWins(t *testing.T) {
	tools := []*domain.Tool{
		{ID: "star", Name: "STAR"},
		{ID: "star2", Name: "star"}, // display name collides with star's key
	}
	cat := Build(tools, nil, domain.CacheInfo{}, nil)

	res, err := cat.FindTool("star")
	if err != nil {
		t.Fatalf("FindTool(star) error: %v", err)
	}
	if res.Tool.ID != "star" {
		t.Errorf("collision winner = %s, want star (first registration)", res.Tool.ID)
	}
	if len(cat.Collisions()) != 1 {
		t.Errorf("collisions = %v, want 1 entry", cat.Collisions())
	}
}

func TestResultSlicesAreCopies(t *testing.T) {
	cat := testCatalog()

	res, err := cat.FindTool("fastqc")
	if err != nil {
		t.Fatal(err)
	}
	// Mangle the returned slice, then query again.
	res.Containers[0], res.Containers[2] = res.Containers[2], res.Containers[0]

	again, err := cat.FindTool("fastqc")
	if err != nil {
		t.Fatal(err)
	}
	if again.Containers[0].Tag != "0.12.1--hdfd78af_0" {
		t.Error("index order leaked to callers")
	}
}

func TestBuildEmpty(t *testing.T) {
	cat := Build(nil, nil, domain.CacheInfo{}, nil)

	if n := cat.ToolCount(); n != 0 {
		t.Errorf("ToolCount = %d", n)
	}
	if hits := cat.SearchByFunction("anything", 10); len(hits) != 0 {
		t.Errorf("search on empty catalog returned %d hits", len(hits))
	}
	if _, err := cat.FindTool("fastqc"); !domain.IsNotFound(err) {
		t.Errorf("expected not-found on empty catalog, got %v", err)
	}
	if ids := cat.ListTools(0); len(ids) != 0 {
		t.Errorf("ListTools on empty catalog = %v", ids)
	}
}
