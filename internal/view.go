package internal

import (
	"sort"
	"strings"
)

// Sort orders accepted by Project.
const (
	OrderNewest = "newest"
	OrderOldest = "oldest"
)

// Project derives the history browser's view of a turn sequence: turns whose
// query contains the search string (case-insensitive, empty matches all),
// ordered by query timestamp. The sort is stable so ties keep their original
// relative order. The input slice is never mutated.
func Project(turns []Turn, query string, order string) []Turn {
	needle := strings.ToLower(query)

	filtered := make([]Turn, 0, len(turns))
	for _, turn := range turns {
		if needle == "" || strings.Contains(strings.ToLower(turn.Query.Content), needle) {
			filtered = append(filtered, turn)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if order == OrderOldest {
			return filtered[i].Query.Timestamp.Before(filtered[j].Query.Timestamp)
		}
		return filtered[i].Query.Timestamp.After(filtered[j].Query.Timestamp)
	})

	return filtered
}
