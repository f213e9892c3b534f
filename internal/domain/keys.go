package domain

import (
	"strings"
	"unicode"
)

// NormalizeKey canonicalizes an identifier for indexing and lookup:
// lowercase, with `-` and `_` treated as the same separator.
// "BWA_MEM" and "bwa-mem" normalize to the identical key.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}

// Tokenize splits free text into lowercase keywords, discarding
// whitespace and punctuation. Used for functional search queries.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
