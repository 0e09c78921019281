// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"strings"

	"github.com/jessecu2024/search-paper/pkg/types"
)

// dedupKey collapses records of the same paper: trimmed lowercase title
// plus venue plus year.
func dedupKey(title, venue, year string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + venue + "\x00" + year
}

// Deduplicate removes records sharing a dedup key, keeping the first seen.
// It is stable and idempotent; the removed count is returned alongside.
func Deduplicate(papers []types.PaperRecord) ([]types.PaperRecord, int) {
	seen := make(map[string]bool, len(papers))
	uniq := make([]types.PaperRecord, 0, len(papers))
	for _, p := range papers {
		key := dedupKey(p.Title, p.Venue, p.Year)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, p)
	}
	return uniq, len(papers) - len(uniq)
}
