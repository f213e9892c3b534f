package domain

import (
	"errors"
	"fmt"
)

// NotFoundError signals that key resolution failed for a lookup: no
// metadata and no containers match the query, even after the fuzzy
// pass. It is a distinguishable outcome, not a fault; presenters render
// it as "no results".
type NotFoundError struct {
	// Query is the normalized query that failed, for caller display.
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no tool or container found for %q", e.Query)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
