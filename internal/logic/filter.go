package logic

import (
	"strings"

	"scriptpick/internal/domain"
)

// MatchesFilter checks if a script name contains the query.
// Matching is case-sensitive and unanchored; an empty query matches everything.
func MatchesFilter(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(name, query)
}

// FilterEntries returns the entries whose name matches query, keeping their order
func FilterEntries(entries []domain.ScriptEntry, query string) []domain.ScriptEntry {
	results := make([]domain.ScriptEntry, 0, len(entries))
	for _, entry := range entries {
		if MatchesFilter(entry.Name, query) {
			results = append(results, entry)
		}
	}
	return results
}
