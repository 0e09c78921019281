// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"html"
	"regexp"
	"strings"
)

// Candidate marks a line of a listing page judged likely to hold a paper
// title. Title has already passed keyword matching and title validation.
type Candidate struct {
	// Line is the 0-based line index the title was found on.
	Line int

	// Title is the cleaned title text.
	Title string

	// RawHTML is the original snippet the title came from, kept for
	// attribute-based URL extraction.
	RawHTML string
}

// structuralPatterns drive the fallback pass: pages that pack everything on
// few lines defeat the line scan, so likely title containers are matched
// directly. Order is precedence.
var structuralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`),
	regexp.MustCompile(`(?is)<[^>]*class="[^"]*title[^"]*"[^>]*>(.*?)</[^>]*>`),
	regexp.MustCompile(`(?is)<a[^>]*href="[^"]*"[^>]*>(.*?)</a>`),
	regexp.MustCompile(`(?is)<strong[^>]*>(.*?)</strong>`),
}

// detectCandidates scans listing-page content for title candidates. The
// primary pass works line by line; only when it finds nothing does the
// structural fallback run over the raw HTML.
func detectCandidates(content string, keys keywordSet) []Candidate {
	lines := strings.Split(content, "\n")

	var candidates []Candidate
	for i, line := range lines {
		clean := strings.TrimSpace(html.UnescapeString(stripTags(line)))
		if clean == "" {
			continue
		}
		if keys.matches(clean) && validTitle(clean) {
			candidates = append(candidates, Candidate{Line: i, Title: clean, RawHTML: line})
		}
	}
	if len(candidates) > 0 {
		return candidates
	}

	for _, re := range structuralPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			raw := content[m[0]:m[1]]
			inner := strings.TrimSpace(html.UnescapeString(stripTags(content[m[2]:m[3]])))
			if inner == "" || !keys.matches(inner) || !validTitle(inner) {
				continue
			}
			line := strings.Count(content[:m[0]], "\n")
			candidates = append(candidates, Candidate{Line: line, Title: inner, RawHTML: raw})
		}
	}
	return candidates
}
