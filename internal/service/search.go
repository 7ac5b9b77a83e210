package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// foldForSearch normalizes s so that visually equal strings compare equal
// regardless of case or composition, e.g. "ДЫХАНИЕ" and "дыхание".
func foldForSearch(s string) string {
	return folder.String(norm.NFKC.String(strings.TrimSpace(s)))
}

// matchesQuery reports whether title contains query, ignoring case.
// An empty query matches everything.
func matchesQuery(title, query string) bool {
	q := foldForSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(foldForSearch(title), q)
}
