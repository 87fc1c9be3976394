// Package filter converts the caller-supplied glob-like filter strings of
// spec.md §4.6 into a predicate, using github.com/bmatcuk/doublestar/v4
// for the actual glob matching. This is a boundary utility, not part of
// the core detection algorithm.
package filter

import "github.com/bmatcuk/doublestar/v4"

// Set is an OR'd collection of glob patterns, adapted from the teacher's
// single-pattern GlobFilter (internal/syncengine/filter.go) — spec.md's
// entry points accept a *list* of filters, and a filename passes if any
// one of them matches, or the list is empty.
type Set struct {
	patterns []string
}

// New returns a Set matching filenames against patterns. An empty Set (no
// patterns) matches everything.
func New(patterns []string) Set {
	return Set{patterns: patterns}
}

// Match reports whether filename passes the filter set.
func (s Set) Match(filename string) bool {
	if len(s.patterns) == 0 {
		return true
	}

	for _, pattern := range s.patterns {
		if ok, err := doublestar.Match(pattern, filename); err == nil && ok {
			return true
		}
	}

	return false
}
