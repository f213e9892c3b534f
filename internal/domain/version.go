package domain

import (
	"strconv"
	"strings"
)

// ParsedVersion is the comparable form of a container tag: a sequence of
// numeric components plus the residual build suffix. Parsing never
// fails; a wholly non-numeric tag sorts as all-zero components ordered
// by its raw string, which places it deterministically.
type ParsedVersion struct {
	// Numeric holds the integer components of the leading version part.
	// "0.12.1--hdfd78af_0" -> [0, 12, 1]
	Numeric []int

	// Suffix is the build string after the numeric part, with leading
	// separators stripped. "0.12.1--hdfd78af_0" -> "hdfd78af_0"
	Suffix string

	// Tag is the full original tag, kept as the final tie-break.
	Tag string
}

// ParseVersion splits a raw tag into its numeric components and build
// suffix. The numeric part is the leading run of digits and dots; each
// dot-separated component parses as an integer, with empty or
// non-numeric components counting as 0.
func ParseVersion(tag string) ParsedVersion {
	i := 0
	for i < len(tag) && (tag[i] == '.' || (tag[i] >= '0' && tag[i] <= '9')) {
		i++
	}
	suffix := strings.TrimLeft(tag[i:], "-.")

	var numeric []int
	if i > 0 {
		for _, part := range strings.Split(tag[:i], ".") {
			n, err := strconv.Atoi(part)
			if err != nil {
				n = 0
			}
			numeric = append(numeric, n)
		}
	}
	if len(numeric) == 0 {
		numeric = []int{0}
	}

	return ParsedVersion{Numeric: numeric, Suffix: suffix, Tag: tag}
}

// Compare returns -1, 0 or 1 ordering v against o. Numeric components
// compare lexicographically with zero padding; equal components fall
// back to the build suffix, then to the full raw tag.
func (v ParsedVersion) Compare(o ParsedVersion) int {
	n := len(v.Numeric)
	if len(o.Numeric) > n {
		n = len(o.Numeric)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.Numeric) {
			a = v.Numeric[i]
		}
		if i < len(o.Numeric) {
			b = o.Numeric[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	if v.Suffix != o.Suffix {
		if v.Suffix < o.Suffix {
			return -1
		}
		return 1
	}
	if v.Tag != o.Tag {
		if v.Tag < o.Tag {
			return -1
		}
		return 1
	}
	return 0
}
