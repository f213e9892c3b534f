package domain

import "testing"

func TestScore(t *testing.T) {
	bwa := &Tool{
		ID:          "bwa",
		Name:        "BWA",
		Description: "Burrows-Wheeler Aligner for short-read sequence alignment",
		Operations:  []string{"Sequence alignment", "Read mapping"},
		Topics:      []string{"Genomics"},
	}

	tests := []struct {
		name  string
		query string
		tool  *Tool
		want  int
	}{
		{
			name:  "single keyword hits description and operation",
			query: "alignment",
			tool:  bwa,
			// description keyword + operation + phrase-in-description
			want: ScoreDescriptionKeyword + ScoreOperationMatch + ScoreDescriptionPhrase,
		},
		{
			name:  "id and name match",
			query: "bwa",
			tool:  bwa,
			want:  ScoreIDMatch + ScoreNameMatch,
		},
		{
			name:  "topic match only",
			query: "genomics",
			tool:  bwa,
			want:  ScoreTopicMatch,
		},
		{
			name:  "no overlap scores zero",
			query: "mass spectrometry",
			tool:  bwa,
			want:  0,
		},
		{
			name:  "empty query scores zero",
			query: "   ",
			tool:  bwa,
			want:  0,
		},
		{
			name:  "tool with empty fields",
			query: "alignment",
			tool:  &Tool{ID: "mystery"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseSearchQuery(tt.query)
			if got := Score(q, tt.tool); got != tt.want {
				t.Errorf("Score(%q, %s) = %d, want %d", tt.query, tt.tool.ID, got, tt.want)
			}
		})
	}
}

func TestScorePhraseBonusOnlyWhenContiguous(t *testing.T) {
	tool := &Tool{
		ID:          "fastqc",
		Description: "A quality control tool for high throughput sequence data",
	}

	// Both keywords appear, and so does the contiguous phrase.
	withPhrase := Score(ParseSearchQuery("quality control"), tool)
	// Both keywords appear but not adjacent in this order.
	withoutPhrase := Score(ParseSearchQuery("control quality"), tool)

	if withPhrase-withoutPhrase != ScoreDescriptionPhrase {
		t.Errorf("phrase bonus mismatch: contiguous=%d scattered=%d", withPhrase, withoutPhrase)
	}
}

func TestParseSearchQueryEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "--,,!"} {
		if q := ParseSearchQuery(in); !q.Empty() {
			t.Errorf("ParseSearchQuery(%q).Empty() = false, want true", in)
		}
	}
	if q := ParseSearchQuery("alignment"); q.Empty() {
		t.Error("non-empty query reported empty")
	}
	var nilQuery *SearchQuery
	if !nilQuery.Empty() {
		t.Error("nil query must be empty")
	}
}
