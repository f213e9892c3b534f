package domain

import "strings"

const (
	// Scoring weights for functional search. The values are heuristic
	// and kept stable for result compatibility; they are tunable, not
	// load-bearing invariants.
	ScoreIDMatch            = 4
	ScoreNameMatch          = 4
	ScoreDescriptionKeyword = 2
	ScoreDescriptionPhrase  = 5
	ScoreOperationMatch     = 3
	ScoreTopicMatch         = 2
)

// SearchQuery is the parsed form of a free-text functional query.
type SearchQuery struct {
	Raw      string   // original input
	Phrase   string   // trimmed, lowercased input, used for the phrase bonus
	Keywords []string // lowercase tokens, split on whitespace/punctuation
}

// ParseSearchQuery tokenizes user input for scoring. A query that is
// empty or whitespace-only parses to an empty SearchQuery; searching
// with it is a valid no-op, not an error.
func ParseSearchQuery(input string) *SearchQuery {
	phrase := strings.ToLower(strings.TrimSpace(input))
	return &SearchQuery{
		Raw:      input,
		Phrase:   phrase,
		Keywords: Tokenize(phrase),
	}
}

// Empty reports whether the query carries no searchable keywords.
func (q *SearchQuery) Empty() bool {
	return q == nil || len(q.Keywords) == 0
}

// Score accumulates the weighted keyword-overlap score of a tool for a
// query. Each keyword is tested for case-insensitive substring
// containment against id, name, description, operations and topics;
// the whole query phrase earns an extra bonus when contained in the
// description. Absent fields simply contribute nothing.
func Score(q *SearchQuery, t *Tool) int {
	if q.Empty() || t == nil {
		return 0
	}

	id := strings.ToLower(t.ID)
	name := strings.ToLower(t.Name)
	desc := strings.ToLower(t.Description)

	score := 0
	for _, kw := range q.Keywords {
		if id != "" && strings.Contains(id, kw) {
			score += ScoreIDMatch
		}
		if name != "" && strings.Contains(name, kw) {
			score += ScoreNameMatch
		}
		if desc != "" && strings.Contains(desc, kw) {
			score += ScoreDescriptionKeyword
		}
		if anyContains(t.Operations, kw) {
			score += ScoreOperationMatch
		}
		if anyContains(t.Topics, kw) {
			score += ScoreTopicMatch
		}
	}

	// Whole-phrase containment in the description outranks isolated
	// token hits ("quality control" as a phrase beats "quality" alone).
	if desc != "" && strings.Contains(desc, q.Phrase) {
		score += ScoreDescriptionPhrase
	}

	return score
}

func anyContains(values []string, keyword string) bool {
	for _, v := range values {
		if v != "" && strings.Contains(strings.ToLower(v), keyword) {
			return true
		}
	}
	return false
}
