// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import "strings"

// Field searches are scoped to a window of lines around the candidate so
// that markup belonging to neighbouring papers is not picked up.
const (
	authorLinesBefore   = 5
	authorLinesAfter    = 15
	abstractLinesBefore = 5
	abstractLinesAfter  = 25
)

// contextWindow joins lines[anchor-before : anchor+after) back into text,
// clamped to the document bounds.
func contextWindow(lines []string, anchor, before, after int) string {
	start := anchor - before
	if start < 0 {
		start = 0
	}
	end := anchor + after
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}
